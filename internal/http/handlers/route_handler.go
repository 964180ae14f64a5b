// README: Road-route preview handler backed by Google Maps.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/maps"
)

type RouteHandler struct {
	routes *maps.RouteService
}

// NewRouteHandler accepts a nil route service; the endpoint then
// reports itself unavailable.
func NewRouteHandler(routes *maps.RouteService) *RouteHandler {
	return &RouteHandler{routes: routes}
}

// Preview handles GET /api/routes/preview.
func (h *RouteHandler) Preview(c *gin.Context) {
	if h.routes == nil {
		writeError(c, http.StatusServiceUnavailable, "route preview not configured")
		return
	}

	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}

	duration, distance, err := h.routes.GetTravelEstimate(c.Request.Context(), origin, destination)
	if err != nil {
		writeError(c, http.StatusBadGateway, "route lookup failed")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{
		"duration_mins": int(duration.Minutes()),
		"distance":      distance,
	})
}
