package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewLoggerVerbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, 0)

	logger.Info("room placed", "index", 3)
	logger.V(1).Info("step checked")

	out := buf.String()
	if !strings.Contains(out, `"room placed"`) || !strings.Contains(out, `"index"=3`) {
		t.Errorf("expected info line with key/value, got %q", out)
	}
	if strings.Contains(out, "step checked") {
		t.Errorf("V(1) message emitted at verbosity 0: %q", out)
	}

	buf.Reset()
	logger = NewLogger(&buf, 1)
	logger.V(1).Info("step checked")
	if !strings.Contains(buf.String(), "step checked") {
		t.Errorf("V(1) message suppressed at verbosity 1: %q", buf.String())
	}
}

func TestTracerWhenDisabled(t *testing.T) {
	Disable()

	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("expected invalid span context from no-op provider")
	}
}
