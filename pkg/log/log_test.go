package log

import (
	"context"
	"testing"
)

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	tests := []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
		{Level: "not-a-level", Mode: ModeProduction, Encoding: EncodingJSON},
	}
	for _, cfg := range tests {
		t.Run(cfg.Level+"/"+cfg.Encoding, func(t *testing.T) {
			l := Init(cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			l.Infof(WithRequestID(context.Background(), "req-2"), "hello %s", "world")
		})
	}
}
