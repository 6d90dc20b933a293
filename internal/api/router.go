package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AINative-Studio/kwanzaa-sub004/app"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/policy"
)

// NewRouter wires the evaluate API routes
func NewRouter(service *app.EvaluationService, registry *policy.Registry) *gin.Engine {
	router := gin.Default()

	handler := NewEvaluateHandler(service, registry)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "log_failures": service.LogFailures()})
	})

	v1 := router.Group("/v1")
	{
		v1.POST("/evaluate", handler.Evaluate)
		v1.GET("/personas", handler.Personas)
	}

	return router
}
