// README: Prediction orchestrator; owns the lazily trained model pair.
package predict

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"farecast/internal/geo"
	"farecast/internal/modules/confidence"
	"farecast/internal/modules/dataset"
	"farecast/internal/modules/recommend"
	"farecast/internal/modules/surge"
	"farecast/internal/types"
)

// Clamp fallback for category values that somehow miss the profile
// table.
const defaultMaxDistanceKm = 50.0

// Service runs the full prediction pipeline. The model pair is trained
// once, on the first request, under sync.Once single-flight; afterwards
// it is read-shared without further synchronisation. store and cache
// are optional collaborators and may be nil.
type Service struct {
	trainer TrainerConfig
	surge   *surge.Resolver
	store   *Store
	cache   *Cache

	once     sync.Once
	pair     *ModelPair
	trainErr error
}

func NewService(cfg TrainerConfig, resolver *surge.Resolver, store *Store, cache *Cache) *Service {
	return &Service{trainer: cfg, surge: resolver, store: store, cache: cache}
}

// Predict validates the request, derives the trip distance, runs both
// regressors, and applies the deterministic post-processing rules.
func (s *Service) Predict(ctx context.Context, req Request) (*Result, error) {
	pickup, err := parseCoord(req.Pickup, "pickup")
	if err != nil {
		return nil, err
	}
	destination, err := parseCoord(req.Destination, "destination")
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, req); ok {
			return cached, nil
		}
	}

	distance := geo.HaversineKm(pickup, destination)
	distance = clampDistance(distance, req.Category)

	pair, err := s.models()
	if err != nil {
		return nil, err
	}

	features := dataset.FeatureVector(distance, req.Hour, req.DayOfWeek, req.IsRainy, req.Category)
	fare := pair.Fare.Predict(features)
	eta := pair.ETA.Predict(features)

	multiplier := s.surge.Multiplier(pickup)
	fare *= multiplier
	surgeApplied := multiplier > surge.NoSurge

	level := confidence.Estimate(confidence.Input{
		DistanceKm: distance,
		Hour:       req.Hour,
		IsRainy:    req.IsRainy,
		Category:   req.Category,
	})

	var recommended *string
	if dest, ok := recommend.Destination(req.PickupName); ok {
		recommended = &dest
	}

	result := &Result{
		Fare:                   fmt.Sprintf("%.2f BDT", fare),
		ETA:                    fmt.Sprintf("%d mins", int(eta)),
		Distance:               fmt.Sprintf("%.2f km", distance),
		SurgeApplied:           surgeApplied,
		Confidence:             level,
		RecommendedDestination: recommended,
		FeatureImpacts:         featureImpacts(req.Hour, req.IsRainy, surgeApplied),
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, req, result)
	}
	if s.store != nil {
		_ = s.store.Insert(ctx, &Record{
			Pickup:                 pickup,
			Destination:            destination,
			Hour:                   req.Hour,
			DayOfWeek:              req.DayOfWeek,
			IsRainy:                req.IsRainy,
			Category:               req.Category,
			DistanceKm:             distance,
			Fare:                   fare,
			ETAMinutes:             eta,
			SurgeApplied:           surgeApplied,
			Confidence:             level,
			RecommendedDestination: recommended,
			CreatedAt:              time.Now(),
		})
	}

	return result, nil
}

// Recent exposes the persisted history; empty when no store is wired.
func (s *Service) Recent(ctx context.Context, limit int) ([]Record, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.Recent(ctx, limit)
}

// models returns the process-wide model pair, training it on first use.
// A training failure is cached and re-surfaced on every call; it is an
// initialisation fault, not a per-request input error.
func (s *Service) models() (*ModelPair, error) {
	s.once.Do(func() {
		s.pair, s.trainErr = Train(s.trainer)
	})
	if s.trainErr != nil {
		return nil, fmt.Errorf("model training failed: %w", s.trainErr)
	}
	return s.pair, nil
}

func parseCoord(raw []float64, field string) (types.Point, error) {
	if len(raw) != 2 {
		return types.Point{}, fmt.Errorf("%w: %s must be a [latitude, longitude] pair, got %d values", ErrInvalidInput, field, len(raw))
	}
	for _, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return types.Point{}, fmt.Errorf("%w: %s contains a non-finite value", ErrInvalidInput, field)
		}
	}
	return types.Point{Lat: raw[0], Lng: raw[1]}, nil
}

func clampDistance(distance float64, c dataset.Category) float64 {
	max := defaultMaxDistanceKm
	if profile, ok := dataset.ProfileFor(c); ok {
		max = profile.MaxDistanceKm
	}
	if distance > max {
		return max
	}
	return distance
}
