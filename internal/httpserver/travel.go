package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	travelHTTP "travel-orchestrator/internal/travel/delivery/http"
)

// setupTravelDomain registers POST /orchestrate behind the rate limiter.
func (srv *HTTPServer) setupTravelDomain(ctx context.Context, rg *gin.RouterGroup) error {
	h := travelHTTP.New(srv.l, srv.travelUC)

	var mw []gin.HandlerFunc
	if srv.rateLimitPerMin > 0 {
		mw = append(mw, rateLimit(newRateLimiter(srv.rateLimitPerMin), srv.l))
		srv.l.Infof(ctx, "Rate limit on /orchestrate: %d req/min per client", srv.rateLimitPerMin)
	} else {
		srv.l.Infof(ctx, "Rate limit on /orchestrate disabled")
	}

	travelHTTP.RegisterRoutes(rg, h, mw...)

	srv.l.Infof(ctx, "Travel domain registered")
	return nil
}
