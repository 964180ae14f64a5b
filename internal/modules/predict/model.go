// README: Request/result payloads and error taxonomy for ride prediction.
package predict

import (
	"errors"
	"time"

	"farecast/internal/modules/confidence"
	"farecast/internal/modules/dataset"
	"farecast/internal/types"
)

// ErrInvalidInput marks a malformed request (coordinate pair with wrong
// arity or non-finite values). It is the only per-request, user-visible
// failure; everything else in the pipeline falls back or is fatal.
var ErrInvalidInput = errors.New("invalid input")

// Request is a single prediction call. Coordinates arrive as raw
// [lat, lng] pairs so arity can be validated rather than assumed.
type Request struct {
	Pickup      []float64
	Destination []float64
	Hour        int
	DayOfWeek   int
	IsRainy     bool
	Category    dataset.Category
	PickupName  string
}

// Impacts is the illustrative feature-impact breakdown. The percentages
// are presentation heuristics and are NOT derived from the trained
// forests' internal feature importances.
type Impacts struct {
	Distance          int `json:"distance"`
	TimeOfDay         int `json:"time_of_day"`
	DemandLevel       int `json:"demand_level"`
	LocationSituation int `json:"location_situation"`
}

// Result is the wire-format prediction. The formatted strings
// ("<value> BDT", "<int> mins", "<value> km") are part of the payload
// contract and must not change shape.
type Result struct {
	Fare                   string            `json:"fare"`
	ETA                    string            `json:"eta"`
	Distance               string            `json:"distance_km"`
	SurgeApplied           bool              `json:"surge_applied"`
	Confidence             confidence.Level  `json:"prediction_confidence"`
	RecommendedDestination *string           `json:"recommended_destination"`
	FeatureImpacts         Impacts           `json:"feature_impacts"`
}

// Record is the persisted form of one served prediction, kept for
// offline inspection. Persistence is best-effort and never fails a
// request.
type Record struct {
	ID                     int64
	Pickup                 types.Point
	Destination            types.Point
	Hour                   int
	DayOfWeek              int
	IsRainy                bool
	Category               dataset.Category
	DistanceKm             float64
	Fare                   float64
	ETAMinutes             float64
	SurgeApplied           bool
	Confidence             confidence.Level
	RecommendedDestination *string
	CreatedAt              time.Time
}
