// pkg/interior/hull.go
package interior

import (
	"github.com/ggwsim/ggw-server/pkg/physics"
)

// TileSizeMeters is the edge length of one interior tile in world meters
const TileSizeMeters = 1.0

type gridPoint struct {
	x, y int
}

type gridEdge struct {
	start, end gridPoint
}

func isHullTile(t TileType) bool {
	switch t {
	case TileWall, TileDoorClosed, TileDoorOpen:
		return true
	default:
		return false
	}
}

// RebuildHullShape retraces the hull polygon from the current tile
// layout. It collects every boundary edge of hull tiles, then follows
// edges start-to-end until the loop closes. Failing to close is an
// expected outcome for degenerate layouts, not a bug; the rectangular
// fallback always applies then.
func (s *Ship) RebuildHullShape() {
	var edges []gridEdge
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if !isHullTile(s.Tiles[s.idx(x, y)].Type) {
				continue
			}
			// For each side whose neighbor is not hull, emit the tile
			// edge wound clockwise.
			sides := [4]struct {
				dx, dy     int
				start, end gridPoint
			}{
				{0, -1, gridPoint{x, y}, gridPoint{x + 1, y}},
				{1, 0, gridPoint{x + 1, y}, gridPoint{x + 1, y + 1}},
				{0, 1, gridPoint{x + 1, y + 1}, gridPoint{x, y + 1}},
				{-1, 0, gridPoint{x, y + 1}, gridPoint{x, y}},
			}
			for _, side := range sides {
				nx, ny := x+side.dx, y+side.dy
				neighborIsHull := s.InBounds(nx, ny) && isHullTile(s.Tiles[s.idx(nx, ny)].Type)
				if !neighborIsHull {
					edges = append(edges, gridEdge{start: side.start, end: side.end})
				}
			}
		}
	}

	if len(edges) == 0 {
		s.Hull = rectangularHull(s.Width, s.Height)
		return
	}

	points := []gridPoint{edges[0].start}
	current := edges[0].start
	remaining := edges
	for guard := 0; len(remaining) > 0 && guard < 10000; guard++ {
		next := -1
		for i, edge := range remaining {
			if edge.start == current {
				next = i
				break
			}
		}
		if next < 0 {
			break
		}
		current = remaining[next].end
		remaining = append(remaining[:next], remaining[next+1:]...)
		points = append(points, current)
		if current == points[0] {
			break
		}
	}

	if len(points) < 4 || current != points[0] {
		s.Hull = rectangularHull(s.Width, s.Height)
		return
	}
	if points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}

	centerX := float64(s.Width) * TileSizeMeters / 2
	centerY := float64(s.Height) * TileSizeMeters / 2
	vertices := make([]physics.Vector2D, 0, len(points))
	for _, p := range points {
		vertices = append(vertices, physics.Vector2D{
			X: float64(p.x)*TileSizeMeters - centerX,
			Y: centerY - float64(p.y)*TileSizeMeters,
		})
	}
	s.Hull = physics.HullShape{Vertices: vertices}
}

func rectangularHull(width, height int) physics.HullShape {
	w := float64(width) * TileSizeMeters / 2
	h := float64(height) * TileSizeMeters / 2
	return physics.HullShape{
		Vertices: []physics.Vector2D{
			{X: -w, Y: h},
			{X: w, Y: h},
			{X: w, Y: -h},
			{X: -w, Y: -h},
		},
	}
}
