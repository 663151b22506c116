// pkg/logging/logger_test.go
package logging

import (
	"context"
	"errors"
	"testing"
)

func TestWithCorrelationID(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc123")
	if got := GetCorrelationID(ctx); got != "abc123" {
		t.Errorf("GetCorrelationID() = %q, expected abc123", got)
	}
}

func TestWithCorrelationID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")
	if GetCorrelationID(ctx) == "" {
		t.Error("expected a generated correlation ID")
	}
}

func TestGetCorrelationID_MissingReturnsEmpty(t *testing.T) {
	if got := GetCorrelationID(context.Background()); got != "" {
		t.Errorf("GetCorrelationID() = %q, expected empty", got)
	}
}

func TestGenerateCorrelationID_Unique(t *testing.T) {
	a := GenerateCorrelationID()
	b := GenerateCorrelationID()
	if a == "" || a == b {
		t.Errorf("expected distinct nonempty IDs, got %q and %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("ID length = %d, expected 16 hex chars", len(a))
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("connection refused")

	wrapped := WrapError(base, "failed to dial %s", "127.0.0.1:40000")
	if wrapped == nil {
		t.Fatal("expected wrapped error")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should preserve the original")
	}
	expected := "failed to dial 127.0.0.1:40000: connection refused"
	if wrapped.Error() != expected {
		t.Errorf("Error() = %q, expected %q", wrapped.Error(), expected)
	}
}

func TestWrapError_NilPassthrough(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestGetLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "debug", value: "DEBUG"},
		{name: "lowercase", value: "warn"},
		{name: "unknown_defaults", value: "verbose"},
		{name: "empty_defaults", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GGW_LOG_LEVEL", tt.value)
			// Must not panic and must return a usable logger.
			if NewLogger() == nil {
				t.Fatal("NewLogger() returned nil")
			}
		})
	}
}
