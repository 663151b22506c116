// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	BodyAdded       Type = "body_added"
	BodyCulled      Type = "body_culled"
	ThrustApplied   Type = "thrust_applied"
	BodyCollision   Type = "body_collision"
	ClientJoined    Type = "client_joined"
	ClientLeft      Type = "client_left"
	ServerStarted   Type = "server_started"
	ServerStopped   Type = "server_stopped"
	ReactorDepleted Type = "reactor_depleted"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// BodyEvent contains information about body lifecycle events
type BodyEvent struct {
	BaseEvent
	BodyID   uint64
	BodyType string
}

// NewBodyEvent creates a new body lifecycle event
func NewBodyEvent(eventType Type, source interface{}, bodyID uint64, bodyType string) *BodyEvent {
	return &BodyEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		BodyID:   bodyID,
		BodyType: bodyType,
	}
}

// ThrustEvent contains information about an applied impulsive burn
type ThrustEvent struct {
	BaseEvent
	BodyID     uint64
	ThrustType string
	DeltaVMps  float64
}

// NewThrustEvent creates a new thrust event
func NewThrustEvent(source interface{}, bodyID uint64, thrustType string, deltaVMps float64) *ThrustEvent {
	return &ThrustEvent{
		BaseEvent: BaseEvent{
			EventType: ThrustApplied,
			Source:    source,
		},
		BodyID:     bodyID,
		ThrustType: thrustType,
		DeltaVMps:  deltaVMps,
	}
}

// ReactorEvent contains information about a reactor running out of fuel
type ReactorEvent struct {
	BaseEvent
	DeviceID uint64
}

// NewReactorEvent creates a new reactor depletion event
func NewReactorEvent(source interface{}, deviceID uint64) *ReactorEvent {
	return &ReactorEvent{
		BaseEvent: BaseEvent{
			EventType: ReactorDepleted,
			Source:    source,
		},
		DeviceID: deviceID,
	}
}

// CollisionEvent contains information about a predicted body collision.
// BodyB is zero when the collision is against the planet surface.
type CollisionEvent struct {
	BaseEvent
	BodyA uint64
	BodyB uint64
	TimeS float64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, bodyA, bodyB uint64, timeS float64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: BodyCollision,
			Source:    source,
		},
		BodyA: bodyA,
		BodyB: bodyB,
		TimeS: timeS,
	}
}
