package predict

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"farecast/internal/modules/confidence"
	"farecast/internal/modules/dataset"
	"farecast/internal/modules/surge"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(testTrainerConfig(), surge.NewResolver(surge.DefaultZones()), nil, nil)
}

// parseValue extracts the numeric prefix of "123.45 BDT" style fields.
func parseValue(t *testing.T, field, suffix string) float64 {
	t.Helper()
	if !strings.HasSuffix(field, suffix) {
		t.Fatalf("field %q missing suffix %q", field, suffix)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(field, suffix), 64)
	if err != nil {
		t.Fatalf("field %q has non-numeric prefix: %v", field, err)
	}
	return v
}

func TestPredictGulshanRushHourSurge(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Predict(context.Background(), Request{
		Pickup:      []float64{23.785, 90.415},
		Destination: []float64{23.8200, 90.4220},
		Hour:        18,
		DayOfWeek:   4,
		IsRainy:     false,
		Category:    dataset.AutoRiksha,
		PickupName:  "Gulshan 1",
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if !res.SurgeApplied {
		t.Error("expected surge inside the Gulshan zone")
	}
	// Rush hour and AutoRiksha penalties fire: 3-1-1 = 1 → Low.
	if res.Confidence != confidence.Low {
		t.Errorf("confidence = %s, want Low", res.Confidence)
	}
	if res.RecommendedDestination == nil || *res.RecommendedDestination != "Bashundhara R/A" {
		t.Errorf("recommended destination = %v, want Bashundhara R/A", res.RecommendedDestination)
	}

	fare := parseValue(t, res.Fare, " BDT")
	if fare <= 0 {
		t.Errorf("fare %q not positive", res.Fare)
	}
	eta := parseValue(t, res.ETA, " mins")
	if eta < 5 || eta > 90 {
		t.Errorf("eta %q implausible for a ~4km trip", res.ETA)
	}
	dist := parseValue(t, res.Distance, " km")
	if dist < 3 || dist > 6 {
		t.Errorf("distance %q implausible, want ~4km", res.Distance)
	}

	want := Impacts{Distance: 38, TimeOfDay: 25, DemandLevel: 20, LocationSituation: 20}
	if res.FeatureImpacts != want {
		t.Errorf("feature impacts = %+v, want %+v", res.FeatureImpacts, want)
	}
}

func TestPredictMirpurOffPeakNoSurge(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Predict(context.Background(), Request{
		Pickup:      []float64{23.8070, 90.3680},
		Destination: []float64{23.8759, 90.3978},
		Hour:        10,
		DayOfWeek:   0,
		IsRainy:     false,
		Category:    dataset.Motorbike,
		PickupName:  "Mirpur 10",
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if res.SurgeApplied {
		t.Error("expected no surge for a Mirpur pickup")
	}
	if res.Confidence != confidence.High {
		t.Errorf("confidence = %s, want High", res.Confidence)
	}
	if res.RecommendedDestination == nil || *res.RecommendedDestination != "Uttara" {
		t.Errorf("recommended destination = %v, want Uttara", res.RecommendedDestination)
	}

	dist := parseValue(t, res.Distance, " km")
	if dist < 7 || dist > 10 {
		t.Errorf("distance %q implausible, want ~8.3km", res.Distance)
	}
	if res.FeatureImpacts.TimeOfDay != 15 {
		t.Errorf("time-of-day impact = %d, want 15 (moderate window)", res.FeatureImpacts.TimeOfDay)
	}
	if res.FeatureImpacts.DemandLevel != 5 || res.FeatureImpacts.LocationSituation != 5 {
		t.Errorf("demand/location impacts = %d/%d, want base 5/5",
			res.FeatureImpacts.DemandLevel, res.FeatureImpacts.LocationSituation)
	}
}

func TestPredictClampsDistanceByCategory(t *testing.T) {
	svc := newTestService(t)

	// Dhaka to Chattogram is ~215km; a riksha is capped at 10.
	res, err := svc.Predict(context.Background(), Request{
		Pickup:      []float64{23.8103, 90.4125},
		Destination: []float64{22.3569, 91.7832},
		Hour:        12,
		DayOfWeek:   2,
		IsRainy:     false,
		Category:    dataset.Riksha,
		PickupName:  "somewhere",
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if res.Distance != "10.00 km" {
		t.Errorf("distance = %q, want clamped 10.00 km", res.Distance)
	}
}

func TestPredictInvalidCoordinates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "destination not a pair",
			req: Request{
				Pickup:      []float64{23.78, 90.41},
				Destination: []float64{23.78},
				Category:    dataset.Economy,
			},
		},
		{
			name: "destination with extra values",
			req: Request{
				Pickup:      []float64{23.78, 90.41},
				Destination: []float64{23.78, 90.41, 1.0},
				Category:    dataset.Economy,
			},
		},
		{
			name: "pickup missing entirely",
			req: Request{
				Pickup:      nil,
				Destination: []float64{23.78, 90.41},
				Category:    dataset.Economy,
			},
		},
		{
			name: "pickup with NaN",
			req: Request{
				Pickup:      []float64{math.NaN(), 90.41},
				Destination: []float64{23.78, 90.41},
				Category:    dataset.Economy,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Predict(ctx, tt.req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPredictNoRecommendationForUnknownPickup(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.Predict(context.Background(), Request{
		Pickup:      []float64{23.70, 90.45},
		Destination: []float64{23.71, 90.46},
		Hour:        3,
		DayOfWeek:   6,
		Category:    dataset.Economy,
		PickupName:  "downtown",
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if res.RecommendedDestination != nil {
		t.Errorf("expected no recommendation, got %q", *res.RecommendedDestination)
	}
}

func TestPredictTrainsOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	req := Request{
		Pickup:      []float64{23.75, 90.38},
		Destination: []float64{23.78, 90.41},
		Hour:        14,
		DayOfWeek:   1,
		Category:    dataset.Premium,
		PickupName:  "Dhanmondi 27",
	}

	if _, err := svc.Predict(ctx, req); err != nil {
		t.Fatalf("first predict: %v", err)
	}
	first := svc.pair
	if first == nil {
		t.Fatal("model pair not initialised after first predict")
	}

	if _, err := svc.Predict(ctx, req); err != nil {
		t.Fatalf("second predict: %v", err)
	}
	if svc.pair != first {
		t.Error("model pair was replaced between requests")
	}
}

func TestCacheKeyStableAndDistinct(t *testing.T) {
	base := Request{
		Pickup:      []float64{23.785, 90.415},
		Destination: []float64{23.82, 90.422},
		Hour:        18,
		DayOfWeek:   4,
		Category:    dataset.AutoRiksha,
		PickupName:  "Gulshan 1",
	}
	if cacheKey(base) != cacheKey(base) {
		t.Error("cache key not stable for identical requests")
	}

	variant := base
	variant.Hour = 19
	if cacheKey(base) == cacheKey(variant) {
		t.Error("cache key ignores hour")
	}

	renamed := base
	renamed.PickupName = "Mirpur 10"
	if cacheKey(base) == cacheKey(renamed) {
		t.Error("cache key ignores pickup name")
	}

	folded := base
	folded.PickupName = "  GULSHAN 1 "
	if cacheKey(base) != cacheKey(folded) {
		t.Error("cache key should fold pickup name case and whitespace")
	}
}
