// pkg/engine/snapshot.go
package engine

import (
	"github.com/ggwsim/ggw-server/pkg/interior"
	"github.com/ggwsim/ggw-server/pkg/physics"
)

// HullSnapshot carries the hull polygon on the wire
type HullSnapshot struct {
	TileSizeM float64            `json:"tile_size_m"`
	Vertices  []physics.Vector2D `json:"vertices"`
}

// BodySnapshot is one body's wire state
type BodySnapshot struct {
	ID       uint64        `json:"id"`
	BodyType string        `json:"body_type"`
	RadiusM  float64       `json:"radius_m"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	VX       float64       `json:"vx"`
	VY       float64       `json:"vy"`
	Hull     *HullSnapshot `json:"hull_shape,omitempty"`
}

// Snapshot is one full wire frame of the simulation
type Snapshot struct {
	SimTime            float64           `json:"sim_time"`
	PlanetRadiusM      float64           `json:"planet_radius_m"`
	GravityWellRadiusM float64           `json:"gravity_well_radius_m"`
	DespawnRadiusM     float64           `json:"despawn_radius_m"`
	Mu                 float64           `json:"mu"`
	Bodies             []BodySnapshot    `json:"bodies"`
	Interior           interior.Snapshot `json:"interior"`
}

// BuildSnapshot captures the current world state for broadcasting
func (w *World) BuildSnapshot() Snapshot {
	bodies := make([]BodySnapshot, 0, len(w.Bodies))
	for _, body := range w.Bodies {
		snap := BodySnapshot{
			ID:       body.ID,
			BodyType: body.Type.String(),
			RadiusM:  body.Radius,
			X:        body.Position.X,
			Y:        body.Position.Y,
			VX:       body.Velocity.X,
			VY:       body.Velocity.Y,
		}
		if body.Hull != nil {
			snap.Hull = &HullSnapshot{
				TileSizeM: interior.TileSizeMeters,
				Vertices:  body.Hull.Vertices,
			}
		}
		bodies = append(bodies, snap)
	}

	return Snapshot{
		SimTime:            w.SimTime,
		PlanetRadiusM:      w.PlanetRadius,
		GravityWellRadiusM: GravityWellRadiusM,
		DespawnRadiusM:     DespawnRadiusM,
		Mu:                 w.Mu,
		Bodies:             bodies,
		Interior:           w.Interior.BuildSnapshot(),
	}
}
