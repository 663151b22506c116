// Package validation provides input validation for client command messages.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Message size and content limits
const (
	MaxMessageSize    = 64 * 1024 // 64KB max message
	MaxMessagesPerMin = 600

	// Pawn moves are single-tile steps
	MaxMoveDelta = 1

	// Interior coordinates are clamped well above any plausible ship size
	MaxInteriorCoord = 4096
)

// MessageValidator provides validation for raw command messages
type MessageValidator struct {
	rateLimiter *RateLimiter
}

// NewMessageValidator creates a new message validator with rate limiting
func NewMessageValidator(maxPerMinute int) *MessageValidator {
	if maxPerMinute <= 0 {
		maxPerMinute = MaxMessagesPerMin
	}
	return &MessageValidator{
		rateLimiter: NewRateLimiter(maxPerMinute, time.Minute),
	}
}

// Close releases resources used by the message validator
func (v *MessageValidator) Close() {
	if v.rateLimiter != nil {
		v.rateLimiter.Close()
	}
}

// ValidateMessage validates a raw message against size and format constraints
func (v *MessageValidator) ValidateMessage(data []byte, clientID string) error {
	if len(data) > MaxMessageSize {
		return fmt.Errorf("message too large: %d bytes (max %d)", len(data), MaxMessageSize)
	}

	if !json.Valid(data) {
		return fmt.Errorf("invalid JSON format")
	}

	if !v.rateLimiter.Allow(clientID) {
		return fmt.Errorf("rate limit exceeded")
	}

	return nil
}

// ClampTimeScale sanitizes a requested simulation speed multiplier.
// Non-finite values fall back to fallback; otherwise the result is
// clamped into [0, max].
func ClampTimeScale(requested, max, fallback float64) float64 {
	if math.IsNaN(requested) || math.IsInf(requested, 0) {
		return fallback
	}
	if requested < 0 {
		return 0
	}
	if requested > max {
		return max
	}
	return requested
}

// ValidateMoveDelta validates a pawn move step
func ValidateMoveDelta(dx, dy int) error {
	if dx < -MaxMoveDelta || dx > MaxMoveDelta || dy < -MaxMoveDelta || dy > MaxMoveDelta {
		return fmt.Errorf("move delta out of range: (%d, %d)", dx, dy)
	}
	if dx == 0 && dy == 0 {
		return fmt.Errorf("move delta cannot be zero")
	}
	return nil
}

// ValidateInteriorCoord validates an interior interaction target
func ValidateInteriorCoord(x, y int) error {
	if x < 0 || y < 0 || x > MaxInteriorCoord || y > MaxInteriorCoord {
		return fmt.Errorf("interior coordinate out of range: (%d, %d)", x, y)
	}
	return nil
}
