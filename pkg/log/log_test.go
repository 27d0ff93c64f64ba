package log_test

import (
	"context"
	"testing"

	"travel-orchestrator/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := log.SetRequestID(context.Background(), "req-1")
	if got := log.GetRequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.GetRequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "development console", cfg: log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "unknown level", cfg: log.ZapConfig{Level: "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected non-nil logger")
			}
			ctx := log.SetRequestID(context.Background(), "req-2")
			l.Info(ctx, "structured", "key", "value")
			l.Infof(ctx, "formatted %d", 1)
			l.Warn(ctx, "two args: ", "no pairs")
		})
	}
}
