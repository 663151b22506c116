// pkg/validation/validation_test.go
package validation

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestValidateMessage(t *testing.T) {
	v := NewMessageValidator(100)
	defer v.Close()

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "valid_json", data: []byte(`{"type":"toggle_sleep"}`), wantErr: false},
		{name: "invalid_json", data: []byte(`{"type":`), wantErr: true},
		{name: "oversized", data: []byte("{\"pad\":\"" + strings.Repeat("x", MaxMessageSize) + "\"}"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateMessage(tt.data, "client-1")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMessage_RateLimit(t *testing.T) {
	v := NewMessageValidator(3)
	defer v.Close()

	msg := []byte(`{"type":"toggle_sleep"}`)
	for i := 0; i < 3; i++ {
		if err := v.ValidateMessage(msg, "limited"); err != nil {
			t.Fatalf("message %d rejected: %v", i, err)
		}
	}
	if err := v.ValidateMessage(msg, "limited"); err == nil {
		t.Error("expected rate limit rejection")
	}
	// Other clients are unaffected.
	if err := v.ValidateMessage(msg, "other"); err != nil {
		t.Errorf("other client rejected: %v", err)
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	rl := NewRateLimiter(10, 100*time.Millisecond)
	defer rl.Close()

	for i := 0; i < 10; i++ {
		if !rl.Allow("c") {
			t.Fatalf("request %d denied before limit", i)
		}
	}
	if rl.Allow("c") {
		t.Error("request over limit should be denied")
	}

	time.Sleep(150 * time.Millisecond)
	if !rl.Allow("c") {
		t.Error("tokens should refill after the window passes")
	}
}

func TestClampTimeScale(t *testing.T) {
	tests := []struct {
		name      string
		requested float64
		expected  float64
	}{
		{name: "in_range", requested: 100, expected: 100},
		{name: "zero", requested: 0, expected: 0},
		{name: "negative", requested: -5, expected: 0},
		{name: "above_max", requested: 1e9, expected: 10000},
		{name: "nan", requested: math.NaN(), expected: 1},
		{name: "inf", requested: math.Inf(1), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampTimeScale(tt.requested, 10000, 1); got != tt.expected {
				t.Errorf("ClampTimeScale(%v) = %v, expected %v", tt.requested, got, tt.expected)
			}
		})
	}
}

func TestValidateMoveDelta(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  int
		wantErr bool
	}{
		{name: "step_right", dx: 1, dy: 0, wantErr: false},
		{name: "diagonal", dx: -1, dy: 1, wantErr: false},
		{name: "zero", dx: 0, dy: 0, wantErr: true},
		{name: "too_far", dx: 2, dy: 0, wantErr: true},
		{name: "huge", dx: -1000, dy: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMoveDelta(tt.dx, tt.dy)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMoveDelta(%d, %d) error = %v, wantErr %v", tt.dx, tt.dy, err, tt.wantErr)
			}
		})
	}
}

func TestValidateInteriorCoord(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		wantErr bool
	}{
		{name: "origin", x: 0, y: 0, wantErr: false},
		{name: "typical", x: 6, y: 7, wantErr: false},
		{name: "negative", x: -1, y: 0, wantErr: true},
		{name: "absurd", x: 100000, y: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInteriorCoord(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInteriorCoord(%d, %d) error = %v, wantErr %v", tt.x, tt.y, err, tt.wantErr)
			}
		})
	}
}
