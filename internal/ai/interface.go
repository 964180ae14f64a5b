package ai

import "context"

// TripSummary is the context handed to an explainer: the request plus
// the pipeline's outcome, already formatted for display.
type TripSummary struct {
	PickupName             string
	Category               string
	Hour                   int
	DayOfWeek              int
	IsRainy                bool
	Fare                   string
	ETA                    string
	Distance               string
	SurgeApplied           bool
	Confidence             string
	RecommendedDestination string
}

// Explainer turns a served prediction into a short rider-facing
// explanation. This interface allows for swapping different AI
// providers (Gemini, OpenAI, etc.) in the future.
type Explainer interface {
	Explain(ctx context.Context, summary TripSummary) (string, error)
}
