package http

import (
	"github.com/gin-gonic/gin"
)

// processOrchestrateReq binds and validates the orchestrate request body.
func (h *handler) processOrchestrateReq(c *gin.Context) (orchestrateReq, error) {
	var req orchestrateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
