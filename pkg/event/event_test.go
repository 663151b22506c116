// pkg/event/event_test.go
package event

import (
	"testing"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewEventBus()

	var received []uint64
	bus.Subscribe(BodyAdded, func(e Event) {
		if be, ok := e.(*BodyEvent); ok {
			received = append(received, be.BodyID)
		}
	})

	bus.Publish(NewBodyEvent(BodyAdded, nil, 7, "Ship"))
	bus.Publish(NewBodyEvent(BodyAdded, nil, 9, "Debris"))

	if len(received) != 2 || received[0] != 7 || received[1] != 9 {
		t.Errorf("received = %v, expected [7 9]", received)
	}
}

func TestBus_TypeFiltering(t *testing.T) {
	bus := NewEventBus()

	var culls int
	bus.Subscribe(BodyCulled, func(e Event) { culls++ })

	bus.Publish(NewBodyEvent(BodyAdded, nil, 1, "Ship"))
	bus.Publish(NewBodyEvent(BodyCulled, nil, 1, "Ship"))

	if culls != 1 {
		t.Errorf("culled handler fired %d times, expected 1", culls)
	}
}

func TestBus_MultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	var first, second bool
	bus.Subscribe(ThrustApplied, func(e Event) { first = true })
	bus.Subscribe(ThrustApplied, func(e Event) { second = true })

	bus.Publish(NewThrustEvent(nil, 3, "Chemical", 50.0))

	if !first || !second {
		t.Errorf("handlers fired = (%v, %v), expected both", first, second)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	// Must not panic.
	bus.Publish(NewCollisionEvent(nil, 1, 2, 100.0))
}

func TestThrustEvent_Fields(t *testing.T) {
	ev := NewThrustEvent(nil, 5, "RCS", 12.5)
	if ev.GetType() != ThrustApplied {
		t.Errorf("type = %v", ev.GetType())
	}
	if ev.BodyID != 5 || ev.ThrustType != "RCS" || ev.DeltaVMps != 12.5 {
		t.Errorf("fields = %+v", ev)
	}
}

func TestCollisionEvent_PlanetUsesZeroBodyB(t *testing.T) {
	ev := NewCollisionEvent(nil, 4, 0, 60.0)
	if ev.GetType() != BodyCollision {
		t.Errorf("type = %v", ev.GetType())
	}
	if ev.BodyA != 4 || ev.BodyB != 0 || ev.TimeS != 60.0 {
		t.Errorf("fields = %+v", ev)
	}
}
