// README: Prediction handler; parses the request payload and delegates to the predict service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/dataset"
	"farecast/internal/modules/predict"
)

type PredictHandler struct {
	predict *predict.Service
}

func NewPredictHandler(svc *predict.Service) *PredictHandler {
	return &PredictHandler{predict: svc}
}

type predictReq struct {
	Pickup      []float64 `json:"pickup"`
	Destination []float64 `json:"destination"`
	Hour        int       `json:"hour"`
	DayOfWeek   int       `json:"day_of_week"`
	IsRainy     bool      `json:"is_rainy"`
	Category    string    `json:"category"`
	PickupName  string    `json:"pickup_name"`
}

// Create handles POST /api/predictions.
func (h *PredictHandler) Create(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	res, err := h.predict.Predict(c.Request.Context(), req)
	if err != nil {
		writePredictError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// bind parses and validates the shared prediction payload. Coordinate
// arity is deliberately NOT checked here; the service owns that rule
// and reports it as an invalid-input result.
func (h *PredictHandler) bind(c *gin.Context) (predict.Request, bool) {
	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return predict.Request{}, false
	}
	if req.Hour < 0 || req.Hour > 23 {
		writeError(c, http.StatusBadRequest, "hour must be in [0,23]")
		return predict.Request{}, false
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		writeError(c, http.StatusBadRequest, "day_of_week must be in [0,6]")
		return predict.Request{}, false
	}
	category, err := dataset.ParseCategory(req.Category)
	if err != nil {
		writeError(c, http.StatusBadRequest, "unknown category")
		return predict.Request{}, false
	}

	return predict.Request{
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Hour:        req.Hour,
		DayOfWeek:   req.DayOfWeek,
		IsRainy:     req.IsRainy,
		Category:    category,
		PickupName:  req.PickupName,
	}, true
}
