package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"travel-orchestrator/internal/travel"
	"travel-orchestrator/pkg/log"
)

// ShutdownTimeout bounds graceful shutdown once the run context is done.
const ShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int

	// Travel domain
	travelUC travel.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	TravelUseCase travel.UseCase
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		travelUC:        cfg.TravelUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.rateLimitPerMin < 0 {
		return errors.New("rate limit must not be negative")
	}
	if srv.travelUC == nil {
		return errors.New("travel use case is required")
	}
	return nil
}
