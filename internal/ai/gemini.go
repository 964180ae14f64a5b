package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiExplainer implements Explainer using Google's Gemini models.
type GeminiExplainer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiExplainer initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiExplainer(ctx context.Context, apiKey string) (*GeminiExplainer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.4)

	return &GeminiExplainer{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (e *GeminiExplainer) Close() {
	e.client.Close()
}

// Explain produces a short plain-language explanation of a prediction.
// The explanation is additive text for the rider; it does not inspect
// the trained models.
func (e *GeminiExplainer) Explain(ctx context.Context, summary TripSummary) (string, error) {
	resp, err := e.model.GenerateContent(ctx, genai.Text(buildPrompt(summary)))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(out.String()), nil
}

func buildPrompt(s TripSummary) string {
	rain := "dry"
	if s.IsRainy {
		rain = "rainy"
	}
	surge := "no surge pricing"
	if s.SurgeApplied {
		surge = "surge pricing is active at the pickup"
	}
	recommended := s.RecommendedDestination
	if recommended == "" {
		recommended = "none"
	}

	return fmt.Sprintf(`Role: You are the rider-facing assistant for a Dhaka ride-hailing app.
A fare estimate was just produced. Write 2-3 short sentences, in plain
English, explaining the estimate to the rider. Mention the surge and
confidence level. Do not invent numbers; use only the values given.

Trip:
- Pickup area: %s
- Ride category: %s
- Hour of day: %d, day of week: %d, weather: %s
- Estimated fare: %s, ETA: %s, distance: %s
- Surge: %s
- Prediction confidence: %s
- Suggested destination: %s
`, s.PickupName, s.Category, s.Hour, s.DayOfWeek, rain,
		s.Fare, s.ETA, s.Distance, surge, s.Confidence, recommended)
}
