package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the travel endpoints onto rg. mw runs before the
// handler, e.g. the per-client rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, mw...), h.Orchestrate)
	rg.POST("/orchestrate", handlers...)
}
