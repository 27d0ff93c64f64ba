package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-orchestrator/pkg/response"
)

// Orchestrate godoc
// @Summary     Orchestrate a travel conversation
// @Description Routes a structured intent to its static handler, or forwards a triggered conversation to the travel agent, and returns the normalized envelope.
// @Tags        Travel
// @Accept      json
// @Produce     json
// @Param       body body     orchestrateReq true "Conversation, optional intent and params"
// @Success     200  {object} model.Envelope
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /orchestrate [POST]
func (h *handler) Orchestrate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOrchestrateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "travel.http.Orchestrate: %v", err)
		response.Error(c, h.mapBindError(err), nil)
		return
	}

	output, err := h.uc.Orchestrate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Orchestrate: %v", err)
		if mapped := h.mapError(err); mapped != nil {
			response.Error(c, mapped, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newOrchestrateResp(output))
}
