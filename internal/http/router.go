// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/ai"
	"farecast/internal/http/handlers"
	"farecast/internal/http/middleware"
	"farecast/internal/maps"
	"farecast/internal/modules/predict"
)

// RouterDeps carries the wired services. Explainer, routes, and
// historyEnabled are optional capabilities; their endpoints degrade to
// 503 when absent.
type RouterDeps struct {
	Predict        *predict.Service
	Explainer      ai.Explainer
	Routes         *maps.RouteService
	HistoryEnabled bool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	predictHandler := handlers.NewPredictHandler(deps.Predict)
	r.POST("/api/predictions", predictHandler.Create)

	historyHandler := handlers.NewHistoryHandler(deps.Predict, deps.HistoryEnabled)
	r.GET("/api/predictions/recent", historyHandler.Recent)

	insightHandler := handlers.NewInsightHandler(deps.Predict, deps.Explainer)
	r.POST("/api/predictions/explain", insightHandler.Explain)

	routeHandler := handlers.NewRouteHandler(deps.Routes)
	r.GET("/api/routes/preview", routeHandler.Preview)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
