// Package api exposes the query surface over HTTP: a search endpoint fed
// by a query string and a query-type selector, plus health, stats, and
// metrics endpoints.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textretrieval/go-text-retrieval/internal/metrics"
	"github.com/textretrieval/go-text-retrieval/services"
)

const maxRequestBodySize = 1 << 20 // 1 MiB; queries are small

// API holds dependencies for the HTTP handlers.
type API struct {
	engine services.Engine
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.Engine) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all routes on the router.
func SetupRoutes(router *gin.Engine, engine services.Engine, m *metrics.Metrics) {
	apiHandler := NewAPI(engine)

	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/stats", apiHandler.StatsHandler)
	router.POST("/search", apiHandler.SearchHandler)
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
}

// HealthCheckHandler reports liveness. The engine only serves requests
// after its indexes are fully built, so reachable means ready.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StatsHandler reports the dimensions of the built indexes.
func (api *API) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.Stats())
}
