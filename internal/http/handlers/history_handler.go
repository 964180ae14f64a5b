// README: Prediction history handler.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/predict"
)

type HistoryHandler struct {
	predict *predict.Service
	enabled bool
}

func NewHistoryHandler(svc *predict.Service, enabled bool) *HistoryHandler {
	return &HistoryHandler{predict: svc, enabled: enabled}
}

type historyItem struct {
	ID                     int64    `json:"id"`
	PickupLat              float64  `json:"pickup_lat"`
	PickupLng              float64  `json:"pickup_lng"`
	DestLat                float64  `json:"dest_lat"`
	DestLng                float64  `json:"dest_lng"`
	Hour                   int      `json:"hour"`
	DayOfWeek              int      `json:"day_of_week"`
	IsRainy                bool     `json:"is_rainy"`
	Category               string   `json:"category"`
	DistanceKm             float64  `json:"distance_km"`
	Fare                   float64  `json:"fare"`
	ETAMinutes             float64  `json:"eta_minutes"`
	SurgeApplied           bool     `json:"surge_applied"`
	Confidence             string   `json:"confidence"`
	RecommendedDestination *string  `json:"recommended_destination"`
}

// Recent handles GET /api/predictions/recent.
func (h *HistoryHandler) Recent(c *gin.Context) {
	if !h.enabled {
		writeError(c, http.StatusServiceUnavailable, "history store not configured")
		return
	}

	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			writeError(c, http.StatusBadRequest, "limit must be in [1,200]")
			return
		}
		limit = n
	}

	records, err := h.predict.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]historyItem, len(records))
	for i, r := range records {
		items[i] = historyItem{
			ID:                     r.ID,
			PickupLat:              r.Pickup.Lat,
			PickupLng:              r.Pickup.Lng,
			DestLat:                r.Destination.Lat,
			DestLng:                r.Destination.Lng,
			Hour:                   r.Hour,
			DayOfWeek:              r.DayOfWeek,
			IsRainy:                r.IsRainy,
			Category:               r.Category.String(),
			DistanceKm:             r.DistanceKm,
			Fare:                   r.Fare,
			ETAMinutes:             r.ETAMinutes,
			SurgeApplied:           r.SurgeApplied,
			Confidence:             string(r.Confidence),
			RecommendedDestination: r.RecommendedDestination,
		}
	}
	writeJSON(c, http.StatusOK, map[string]any{"predictions": items})
}
