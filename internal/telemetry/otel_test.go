package telemetry

import (
	"context"
	"testing"

	"github.com/blaisecz/wellness-outcomes/internal/config"
)

func TestInitTracer_DisabledWithoutLangfuse(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &config.Config{}, "wellness-outcomes-test")
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}
