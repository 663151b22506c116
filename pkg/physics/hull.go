// pkg/physics/hull.go
package physics

// HullShape is a closed polygon outline of a ship's pressure boundary,
// expressed in ship-local meters centered on the ship's geometric center.
type HullShape struct {
	Vertices []Vector2D
}

// BoundingRadius returns the distance from the origin to the farthest
// vertex. It is used as the hull's effective collision radius.
func (h HullShape) BoundingRadius() float64 {
	max := 0.0
	for _, v := range h.Vertices {
		if length := v.Length(); length > max {
			max = length
		}
	}
	return max
}
