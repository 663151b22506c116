// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_vectors",
			v1:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 1, Y: 2},
			expected: Vector2D{X: 4, Y: 6},
		},
		{
			name:     "negative_vectors",
			v1:       Vector2D{X: -3, Y: -4},
			v2:       Vector2D{X: -1, Y: -2},
			expected: Vector2D{X: -4, Y: -6},
		},
		{
			name:     "zero_vector",
			v1:       Vector2D{X: 0, Y: 0},
			v2:       Vector2D{X: 5, Y: -3},
			expected: Vector2D{X: 5, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result.X != tt.expected.X || result.Y != tt.expected.Y {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Sub(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_result",
			v1:       Vector2D{X: 5, Y: 7},
			v2:       Vector2D{X: 2, Y: 3},
			expected: Vector2D{X: 3, Y: 4},
		},
		{
			name:     "same_vectors",
			v1:       Vector2D{X: 4, Y: 6},
			v2:       Vector2D{X: 4, Y: 6},
			expected: Vector2D{X: 0, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Sub(tt.v2)
			if result.X != tt.expected.X || result.Y != tt.expected.Y {
				t.Errorf("Sub() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Length(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		expected float64
	}{
		{name: "unit_x", v: Vector2D{X: 1, Y: 0}, expected: 1},
		{name: "three_four_five", v: Vector2D{X: 3, Y: 4}, expected: 5},
		{name: "zero", v: Vector2D{X: 0, Y: 0}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Length() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector2D_Normalize(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	unit := v.Normalize()
	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Normalize() length = %v, expected 1", unit.Length())
	}

	zero := Vector2D{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("Normalize() of zero vector = %v, expected zero", zero)
	}
}

func TestVector2D_Dot(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected float64
	}{
		{name: "orthogonal", v1: Vector2D{X: 1, Y: 0}, v2: Vector2D{X: 0, Y: 1}, expected: 0},
		{name: "parallel", v1: Vector2D{X: 2, Y: 0}, v2: Vector2D{X: 3, Y: 0}, expected: 6},
		{name: "general", v1: Vector2D{X: 1, Y: 2}, v2: Vector2D{X: 3, Y: 4}, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v1.Dot(tt.v2); got != tt.expected {
				t.Errorf("Dot() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector2D_Cross(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected float64
	}{
		{name: "right_handed", v1: Vector2D{X: 1, Y: 0}, v2: Vector2D{X: 0, Y: 1}, expected: 1},
		{name: "left_handed", v1: Vector2D{X: 0, Y: 1}, v2: Vector2D{X: 1, Y: 0}, expected: -1},
		{name: "parallel", v1: Vector2D{X: 2, Y: 2}, v2: Vector2D{X: 4, Y: 4}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v1.Cross(tt.v2); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Cross() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector2D_Rotate(t *testing.T) {
	v := Vector2D{X: 1, Y: 0}

	quarter := v.Rotate(math.Pi / 2)
	if math.Abs(quarter.X) > 1e-12 || math.Abs(quarter.Y-1) > 1e-12 {
		t.Errorf("Rotate(pi/2) = %v, expected (0, 1)", quarter)
	}

	full := v.Rotate(2 * math.Pi)
	if math.Abs(full.X-1) > 1e-12 || math.Abs(full.Y) > 1e-12 {
		t.Errorf("Rotate(2pi) = %v, expected (1, 0)", full)
	}
}
