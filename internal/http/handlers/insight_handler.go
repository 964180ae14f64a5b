// README: Insight handler; predicts and asks the explainer for rider-facing text.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"farecast/internal/ai"
	"farecast/internal/modules/predict"
)

type InsightHandler struct {
	predict   *predict.Service
	explainer ai.Explainer
}

// NewInsightHandler accepts a nil explainer; the endpoint then reports
// itself unavailable instead of failing at wiring time.
func NewInsightHandler(svc *predict.Service, explainer ai.Explainer) *InsightHandler {
	return &InsightHandler{predict: svc, explainer: explainer}
}

// Explain handles POST /api/predictions/explain.
func (h *InsightHandler) Explain(c *gin.Context) {
	if h.explainer == nil {
		writeError(c, http.StatusServiceUnavailable, "explainer not configured")
		return
	}

	ph := PredictHandler{predict: h.predict}
	req, ok := ph.bind(c)
	if !ok {
		return
	}

	res, err := h.predict.Predict(c.Request.Context(), req)
	if err != nil {
		writePredictError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	recommended := ""
	if res.RecommendedDestination != nil {
		recommended = *res.RecommendedDestination
	}
	explanation, err := h.explainer.Explain(ctx, ai.TripSummary{
		PickupName:             req.PickupName,
		Category:               req.Category.String(),
		Hour:                   req.Hour,
		DayOfWeek:              req.DayOfWeek,
		IsRainy:                req.IsRainy,
		Fare:                   res.Fare,
		ETA:                    res.ETA,
		Distance:               res.Distance,
		SurgeApplied:           res.SurgeApplied,
		Confidence:             string(res.Confidence),
		RecommendedDestination: recommended,
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{
		"prediction":  res,
		"explanation": explanation,
	})
}
