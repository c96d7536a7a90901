// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Collision lifecycle event types
const (
	ColliderRegistered   Type = "collider_registered"
	ColliderUnregistered Type = "collider_unregistered"
	ColliderOutOfWorld   Type = "collider_out_of_world"
	CollisionDetected    Type = "collision_detected"
	IndexRebuilt         Type = "index_rebuilt"
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

// Subscription is returned by Subscribe. Calling Cancel removes the handler;
// calling it more than once is harmless.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:   id,
		Type: eventType,
		Cancel: func() {
			b.unsubscribe(eventType, id)
		},
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			// copy so that a Publish iterating the old slice is unaffected
			next := make([]subscriber, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			b.handlers[eventType] = next
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// ColliderEvent reports a change to a single collider
type ColliderEvent struct {
	BaseEvent
	ColliderID uint64
}

// NewColliderEvent creates a new collider event
func NewColliderEvent(eventType Type, source interface{}, colliderID uint64) *ColliderEvent {
	return &ColliderEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ColliderID: colliderID,
	}
}

// CollisionEvent contains the pair found by a resolve pass. Subject is the
// collider that was resolved, Other the first collider it hit.
type CollisionEvent struct {
	BaseEvent
	Subject uint64
	Other   uint64
	Tick    uint64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, subject, other, tick uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: CollisionDetected,
			Source:    source,
		},
		Subject: subject,
		Other:   other,
		Tick:    tick,
	}
}

// RebuildEvent summarises one index rebuild
type RebuildEvent struct {
	BaseEvent
	Indexed  int
	Rejected int
}

// NewRebuildEvent creates a new rebuild event
func NewRebuildEvent(source interface{}, indexed, rejected int) *RebuildEvent {
	return &RebuildEvent{
		BaseEvent: BaseEvent{
			EventType: IndexRebuilt,
			Source:    source,
		},
		Indexed:  indexed,
		Rejected: rejected,
	}
}
