// pkg/engine/world.go
package engine

import (
	"github.com/ggwsim/ggw-server/pkg/config"
	"github.com/ggwsim/ggw-server/pkg/event"
	"github.com/ggwsim/ggw-server/pkg/interior"
	"github.com/ggwsim/ggw-server/pkg/orbit"
	"github.com/ggwsim/ggw-server/pkg/physics"
)

// World geometry. The gravity well bounds where orbital mechanics apply;
// bodies drifting past the despawn radius are removed outright.
const (
	PlanetRadiusM      = 6_371_000.0
	GravityWellRadiusM = 1_500_000_000.0
	GravityWellAltM    = GravityWellRadiusM - PlanetRadiusM
	DespawnRadiusM     = PlanetRadiusM + 3.0*GravityWellAltM

	// MuEarth is the standard gravitational parameter of the central body
	MuEarth = 3.986004418e14
)

// BodyType categorizes a free-flying body
type BodyType int

const (
	BodyShip BodyType = iota
	BodyAsteroid
	BodyDebris
	BodyMissile
)

// String returns the wire name of the body type
func (b BodyType) String() string {
	switch b {
	case BodyShip:
		return "Ship"
	case BodyAsteroid:
		return "Asteroid"
	case BodyDebris:
		return "Debris"
	case BodyMissile:
		return "Missile"
	default:
		return "Unknown"
	}
}

// ThrustType categorizes an impulsive burn's propulsion source
type ThrustType int

const (
	ThrustRCS ThrustType = iota
	ThrustChemical
	ThrustIon
)

// String returns the wire name of the thrust type
func (t ThrustType) String() string {
	switch t {
	case ThrustRCS:
		return "RCS"
	case ThrustChemical:
		return "Chemical"
	case ThrustIon:
		return "Ion"
	default:
		return "Unknown"
	}
}

// Body is one free-flying object. The orbit is the durable trajectory;
// Position and Velocity are re-derived from it every step.
type Body struct {
	ID       uint64
	Mass     float64
	Radius   float64
	Orbit    orbit.State
	Position physics.Vector2D
	Velocity physics.Vector2D
	Type     BodyType
	Hull     *physics.HullShape
}

// ThrustEvent is an instantaneous velocity change applied to one body
// at a specific simulation time
type ThrustEvent struct {
	BodyID uint64
	Time   float64
	DeltaV physics.Vector2D
	Type   ThrustType
}

// CollisionEvent records a predicted overlap one step ahead. BodyB is
// zero for collisions against the planet surface.
type CollisionEvent struct {
	Time             float64
	BodyA            uint64
	BodyB            uint64
	RelativeVelocity physics.Vector2D
	ContactPoint     physics.Vector2D
}

// World is the top-level simulation: every orbital body, the crewed
// ship interior, and the event bus observers hang off it.
type World struct {
	Mu           float64
	SimTime      float64
	Bodies       []*Body
	PlanetRadius float64
	Interior     *interior.World
	Config       *config.GameConfig
	Events       *event.Bus

	nextID uint64
}

// NewWorld creates a world around a central body with gravitational
// parameter mu
func NewWorld(mu float64, cfg *config.GameConfig) *World {
	w := &World{
		Mu:           mu,
		PlanetRadius: PlanetRadiusM,
		Interior:     interior.NewTestShip(cfg),
		Config:       cfg,
		Events:       event.NewEventBus(),
		nextID:       1,
	}
	w.Interior.Ship.Events = w.Events
	return w
}

// AddBody registers a body and returns its ID. A zero ID is assigned
// from the world's counter. Bodies carrying a hull shape take their
// collision radius from the hull's bounding circle, and position and
// velocity are primed from the orbit immediately.
func (w *World) AddBody(body *Body) uint64 {
	if body.ID == 0 {
		body.ID = w.nextID
		w.nextID++
	}
	if body.Hull != nil {
		body.Radius = body.Hull.BoundingRadius()
	}
	body.Position, body.Velocity = orbit.ToCartesian(body.Orbit, w.Mu, w.SimTime)
	w.Bodies = append(w.Bodies, body)
	w.Events.Publish(event.NewBodyEvent(event.BodyAdded, w, body.ID, body.Type.String()))
	return body.ID
}

// Body returns the body with the given ID, or nil
func (w *World) Body(id uint64) *Body {
	for _, body := range w.Bodies {
		if body.ID == id {
			return body
		}
	}
	return nil
}

// Step advances the world by dt seconds: propagate every orbit to the
// new simulation time, cull bodies past the despawn radius, then run
// the interior simulation.
func (w *World) Step(dt float64) {
	w.SimTime += dt
	for _, body := range w.Bodies {
		body.Position, body.Velocity = orbit.ToCartesian(body.Orbit, w.Mu, w.SimTime)
	}
	w.cullDespawnedBodies()
	w.Interior.Step(dt)
}

// IsInsideGravityWell reports whether the body remains inside the
// region where orbital mechanics apply
func (w *World) IsInsideGravityWell(body *Body) bool {
	return body.Position.Length() <= GravityWellRadiusM
}

func (w *World) cullDespawnedBodies() {
	kept := w.Bodies[:0]
	for _, body := range w.Bodies {
		if body.Position.Length() <= DespawnRadiusM {
			kept = append(kept, body)
			continue
		}
		w.Events.Publish(event.NewBodyEvent(event.BodyCulled, w, body.ID, body.Type.String()))
	}
	w.Bodies = kept
}

// ApplyThrustEvent applies an impulsive burn: evaluate the orbit at the
// burn time, add the delta-v, recover the new elements, then re-derive
// the body's state at the current simulation time. Unknown body IDs are
// ignored.
func (w *World) ApplyThrustEvent(ev ThrustEvent) {
	body := w.Body(ev.BodyID)
	if body == nil {
		return
	}
	posAtBurn, velAtBurn := orbit.ToCartesian(body.Orbit, w.Mu, ev.Time)
	newVelocity := velAtBurn.Add(ev.DeltaV)
	body.Orbit = orbit.FromCartesian(posAtBurn, newVelocity, w.Mu, ev.Time)
	body.Position, body.Velocity = orbit.ToCartesian(body.Orbit, w.Mu, w.SimTime)
	w.Events.Publish(event.NewThrustEvent(w, body.ID, ev.Type.String(), ev.DeltaV.Length()))
}

// DetectCollisions predicts overlaps one step of dt ahead without
// mutating any state. Every unordered body pair is checked once, then
// each body is checked against the planet surface.
func (w *World) DetectCollisions(dt float64) []CollisionEvent {
	targetTime := w.SimTime + dt
	var events []CollisionEvent

	type futureState struct {
		pos, vel physics.Vector2D
	}
	future := make([]futureState, len(w.Bodies))
	for i, body := range w.Bodies {
		future[i].pos, future[i].vel = orbit.ToCartesian(body.Orbit, w.Mu, targetTime)
	}

	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			bodyA, bodyB := w.Bodies[i], w.Bodies[j]
			circleA := physics.Circle{Center: future[i].pos, Radius: bodyA.Radius}
			circleB := physics.Circle{Center: future[j].pos, Radius: bodyB.Radius}
			if circleA.Collides(circleB) {
				events = append(events, CollisionEvent{
					Time:             targetTime,
					BodyA:            bodyA.ID,
					BodyB:            bodyB.ID,
					RelativeVelocity: future[j].vel.Sub(future[i].vel),
					ContactPoint:     future[i].pos.Add(future[j].pos).Scale(0.5),
				})
			}
		}
	}

	planet := physics.Circle{Radius: w.PlanetRadius}
	for i, body := range w.Bodies {
		bodyCircle := physics.Circle{Center: future[i].pos, Radius: body.Radius}
		if planet.Collides(bodyCircle) {
			contact := physics.Vector2D{}
			if future[i].pos.Length() > 1e-6 {
				contact = future[i].pos.Normalize().Scale(w.PlanetRadius)
			}
			events = append(events, CollisionEvent{
				Time:             targetTime,
				BodyA:            body.ID,
				BodyB:            0,
				RelativeVelocity: future[i].vel,
				ContactPoint:     contact,
			})
		}
	}

	return events
}
