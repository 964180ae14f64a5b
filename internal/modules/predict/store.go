// README: Prediction history store backed by PostgreSQL.
package predict

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"farecast/internal/modules/confidence"
	"farecast/internal/modules/dataset"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, r *Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO predictions (
			pickup_lat, pickup_lng, dest_lat, dest_lng,
			hour, day_of_week, is_rainy, category,
			distance_km, fare, eta_minutes,
			surge_applied, confidence, recommended_destination, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11,
			$12, $13, $14, $15
		)`,
		r.Pickup.Lat, r.Pickup.Lng,
		r.Destination.Lat, r.Destination.Lng,
		r.Hour, r.DayOfWeek, r.IsRainy,
		r.Category.String(),
		r.DistanceKm, r.Fare, r.ETAMinutes,
		r.SurgeApplied, string(r.Confidence),
		r.RecommendedDestination,
		r.CreatedAt,
	)
	return err
}

func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, pickup_lat, pickup_lng, dest_lat, dest_lng,
		       hour, day_of_week, is_rainy, category,
		       distance_km, fare, eta_minutes,
		       surge_applied, confidence, recommended_destination, created_at
		FROM predictions
		ORDER BY created_at DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var category string
		var conf string
		var recommended sql.NullString
		if err := rows.Scan(
			&r.ID, &r.Pickup.Lat, &r.Pickup.Lng, &r.Destination.Lat, &r.Destination.Lng,
			&r.Hour, &r.DayOfWeek, &r.IsRainy, &category,
			&r.DistanceKm, &r.Fare, &r.ETAMinutes,
			&r.SurgeApplied, &conf, &recommended, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		if c, err := dataset.ParseCategory(category); err == nil {
			r.Category = c
		}
		r.Confidence = confidence.Level(conf)
		if recommended.Valid {
			r.RecommendedDestination = &recommended.String
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
