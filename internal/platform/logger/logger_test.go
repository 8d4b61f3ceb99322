package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/dstrickland/wordsmith-api/internal/config"
)

func TestSetupParsesLogLevels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "WARN", "bogus"}

	for _, level := range levels {
		log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		if err != nil {
			t.Fatalf("Setup(%q) returned error: %v", level, err)
		}
		if log == nil {
			t.Fatalf("Setup(%q) returned nil logger", level)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	attached := slog.New(slog.NewTextHandler(os.Stderr, nil)).With(slog.String("component", "test"))
	ctx := WithContext(context.Background(), attached)

	if got := FromContext(ctx); got != attached {
		t.Error("FromContext did not return the attached logger")
	}

	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if got := FromContextOrDefault(context.Background(), fallback); got != fallback {
		t.Error("FromContextOrDefault did not use the fallback logger")
	}

	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext must never return nil")
	}
}
