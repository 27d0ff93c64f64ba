package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-orchestrator/internal/model"
	"travel-orchestrator/internal/travel"
	"travel-orchestrator/pkg/log"
)

type stubUseCase struct {
	calls     int
	requestID string
}

func (s *stubUseCase) Orchestrate(ctx context.Context, _ travel.OrchestrateInput) (travel.OrchestrateOutput, error) {
	s.calls++
	s.requestID = log.GetRequestID(ctx)
	return travel.OrchestrateOutput{Envelope: model.NewInfoEnvelope("no_trigger_detected")}, nil
}

func newTestServer(t *testing.T, rateLimit int) (*HTTPServer, *stubUseCase) {
	t.Helper()
	uc := &stubUseCase{}
	srv, err := New(log.NewNop(), Config{
		Port:            8000,
		Mode:            "test",
		Environment:     "development",
		RateLimitPerMin: rateLimit,
		TravelUseCase:   uc,
	})
	require.NoError(t, err)
	return srv, uc
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func orchestrateReq() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/orchestrate", bytes.NewBufferString(`{"conversation_input":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestNew_Validation(t *testing.T) {
	uc := &stubUseCase{}
	tests := []struct {
		name   string
		logger log.Logger
		cfg    Config
	}{
		{name: "no logger", cfg: Config{Port: 1, Mode: "test", TravelUseCase: uc}},
		{name: "no mode", logger: log.NewNop(), cfg: Config{Port: 1, TravelUseCase: uc}},
		{name: "no port", logger: log.NewNop(), cfg: Config{Mode: "test", TravelUseCase: uc}},
		{name: "negative rate", logger: log.NewNop(), cfg: Config{Port: 1, Mode: "test", RateLimitPerMin: -1, TravelUseCase: uc}},
		{name: "no use case", logger: log.NewNop(), cfg: Config{Port: 1, Mode: "test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.logger, tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestHealthRoutes(t *testing.T) {
	srv, _ := newTestServer(t, 0)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, HealthStatus, body["status"])
	assert.Equal(t, ServiceName, body["service"])

	for _, path := range []string{"/ready", "/live"} {
		w := serve(srv, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestOrchestrateRoute(t *testing.T) {
	srv, uc := newTestServer(t, 0)

	w := serve(srv, orchestrateReq())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, uc.calls)
	assert.Contains(t, w.Body.String(), `"info":"no_trigger_detected"`)
}

func TestRequestID(t *testing.T) {
	srv, uc := newTestServer(t, 0)

	req := orchestrateReq()
	req.Header.Set(RequestIDHeader, "req-123")
	w := serve(srv, req)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-123", uc.requestID)

	w = serve(srv, orchestrateReq())
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, uc.requestID)
}

func TestRateLimit(t *testing.T) {
	srv, uc := newTestServer(t, 1)

	assert.Equal(t, http.StatusOK, serve(srv, orchestrateReq()).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(srv, orchestrateReq()).Code)
	assert.Equal(t, 1, uc.calls)

	// Health is never limited.
	for range 3 {
		assert.Equal(t, http.StatusOK, serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	}

	// Buckets are per client.
	other := orchestrateReq()
	other.RemoteAddr = "198.51.100.7:4000"
	assert.Equal(t, http.StatusOK, serve(srv, other).Code)
}

func TestRateLimiterBurst(t *testing.T) {
	rl := newRateLimiter(120)
	for i := range 12 {
		require.NoError(t, rl.Allow("a"), "request %d", i)
	}
	assert.Error(t, rl.Allow("a"))
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(1)

	const clients = 50
	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	start := make(chan struct{})
	for range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("203.0.113.9") == nil {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load(), "a new client gets exactly one burst")
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, 0)

	req := httptest.NewRequest(http.MethodOptions, "/orchestrate", nil)
	req.Header.Set("Origin", "http://localhost:8501")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(srv, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_GracefulShutdown(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())

	srv, err := New(log.NewNop(), Config{Port: port, Mode: "test", TravelUseCase: &stubUseCase{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
