// README: Ride categories, per-category cost profiles, and the trip sample schema.
package dataset

import (
	"errors"
	"strings"
)

// Category is the vehicle/service class of a trip. It is a closed
// enumeration; values outside the five named constants never enter the
// pipeline (ParseCategory rejects them at the boundary).
type Category int

const (
	Economy Category = iota
	Premium
	Motorbike
	Riksha
	AutoRiksha
)

var ErrUnknownCategory = errors.New("unknown ride category")

func (c Category) String() string {
	switch c {
	case Economy:
		return "economy"
	case Premium:
		return "premium"
	case Motorbike:
		return "motorbike"
	case Riksha:
		return "riksha"
	case AutoRiksha:
		return "auto_riksha"
	}
	return "unknown"
}

// ParseCategory maps a wire-format category name to its enum value.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "economy":
		return Economy, nil
	case "premium":
		return Premium, nil
	case "motorbike":
		return Motorbike, nil
	case "riksha":
		return Riksha, nil
	case "auto_riksha", "autoriksha":
		return AutoRiksha, nil
	}
	return 0, ErrUnknownCategory
}

// Profile holds the fixed cost constants for one category. The generator
// uses these as the ground truth the regressors are asked to recover, so
// the table must not drift.
type Profile struct {
	BaseFare      float64
	CostPerKm     float64
	ETAMultiplier float64
	MaxDistanceKm float64
}

var profiles = map[Category]Profile{
	Economy:    {BaseFare: 50, CostPerKm: 25, ETAMultiplier: 1.0, MaxDistanceKm: 30},
	Premium:    {BaseFare: 100, CostPerKm: 40, ETAMultiplier: 0.8, MaxDistanceKm: 50},
	Motorbike:  {BaseFare: 30, CostPerKm: 15, ETAMultiplier: 0.7, MaxDistanceKm: 40},
	Riksha:     {BaseFare: 20, CostPerKm: 10, ETAMultiplier: 1.5, MaxDistanceKm: 10},
	AutoRiksha: {BaseFare: 35, CostPerKm: 18, ETAMultiplier: 1.2, MaxDistanceKm: 20},
}

// ProfileFor returns the cost profile for a category. ok is false for
// values outside the closed enum.
func ProfileFor(c Category) (Profile, bool) {
	p, ok := profiles[c]
	return p, ok
}

// Categories returns the five valid categories in enum order.
func Categories() []Category {
	return []Category{Economy, Premium, Motorbike, Riksha, AutoRiksha}
}

// TripSample is one labeled training example. Immutable once produced.
type TripSample struct {
	DistanceKm float64
	Hour       int
	DayOfWeek  int
	IsRainy    bool
	Category   Category
	Fare       float64
	ETAMinutes float64
}

// Features returns the ordered feature vector consumed by the
// regressors. Training and inference must agree on this ordering.
func (s TripSample) Features() []float64 {
	return FeatureVector(s.DistanceKm, s.Hour, s.DayOfWeek, s.IsRainy, s.Category)
}

// FeatureVector builds the canonical [distance, hour, day, rain, category]
// encoding shared by trainer and orchestrator.
func FeatureVector(distanceKm float64, hour, day int, isRainy bool, category Category) []float64 {
	rain := 0.0
	if isRainy {
		rain = 1.0
	}
	return []float64{distanceKm, float64(hour), float64(day), rain, float64(category)}
}
