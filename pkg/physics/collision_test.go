// pkg/physics/collision_test.go
package physics

import (
	"math"
	"testing"
)

func TestCircle_Collides(t *testing.T) {
	tests := []struct {
		name     string
		a        Circle
		b        Circle
		expected bool
	}{
		{
			name:     "overlapping",
			a:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			b:        Circle{Center: Vector2D{X: 3, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "touching",
			a:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			b:        Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "separated",
			a:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			b:        Circle{Center: Vector2D{X: 11, Y: 0}, Radius: 5},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Collides(tt.b); got != tt.expected {
				t.Errorf("Collides() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCheckCollision(t *testing.T) {
	a := Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 3}
	b := Circle{Center: Vector2D{X: 4, Y: 0}, Radius: 3}

	result := CheckCollision(a, b)
	if !result.Collided {
		t.Fatal("expected collision")
	}
	if math.Abs(result.Penetration-2) > 1e-12 {
		t.Errorf("Penetration = %v, expected 2", result.Penetration)
	}
	if math.Abs(result.Normal.X-1) > 1e-12 || math.Abs(result.Normal.Y) > 1e-12 {
		t.Errorf("Normal = %v, expected (1, 0)", result.Normal)
	}
	if math.Abs(result.ContactPoint.X-3) > 1e-12 {
		t.Errorf("ContactPoint = %v, expected x=3", result.ContactPoint)
	}

	miss := CheckCollision(a, Circle{Center: Vector2D{X: 100, Y: 0}, Radius: 1})
	if miss.Collided {
		t.Error("expected no collision")
	}
}

func TestHullShape_BoundingRadius(t *testing.T) {
	tests := []struct {
		name     string
		hull     HullShape
		expected float64
	}{
		{
			name: "unit_square",
			hull: HullShape{Vertices: []Vector2D{
				{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1},
			}},
			expected: math.Sqrt2,
		},
		{
			name: "asymmetric",
			hull: HullShape{Vertices: []Vector2D{
				{X: 3, Y: 4}, {X: 0, Y: 1}, {X: -1, Y: 0},
			}},
			expected: 5,
		},
		{
			name:     "empty",
			hull:     HullShape{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hull.BoundingRadius(); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("BoundingRadius() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
