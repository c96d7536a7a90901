// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
	"time"
)

// TestNewEventBus tests the creation of a new event bus
func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}

	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}

	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

// TestBaseEvent tests the BaseEvent functionality
func TestBaseEvent_GetType_ReturnsCorrectType(t *testing.T) {
	tests := []struct {
		name      string
		eventType Type
		source    interface{}
	}{
		{
			name:      "ColliderRegistered event",
			eventType: ColliderRegistered,
			source:    "test_source",
		},
		{
			name:      "CollisionDetected event",
			eventType: CollisionDetected,
			source:    123,
		},
		{
			name:      "Empty source",
			eventType: IndexRebuilt,
			source:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &BaseEvent{
				EventType: tt.eventType,
				Source:    tt.source,
			}

			if event.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", event.GetType(), tt.eventType)
			}

			if event.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", event.GetSource(), tt.source)
			}
		})
	}
}

// TestBusSubscribe tests event subscription functionality
func TestBusSubscribe_SingleHandler_ReturnsValidSubscription(t *testing.T) {
	bus := NewEventBus()

	handler := func(e Event) {
		// Handler for testing subscription
	}

	sub := bus.Subscribe(ColliderRegistered, handler)

	if sub == nil {
		t.Fatal("Subscribe() returned nil subscription")
	}

	if sub.ID == 0 {
		t.Error("subscription ID should not be 0")
	}

	if sub.Cancel == nil {
		t.Error("subscription Cancel function should not be nil")
	}

	// Verify handler was registered
	bus.mu.RLock()
	handlers := bus.handlers[ColliderRegistered]
	bus.mu.RUnlock()

	if len(handlers) != 1 {
		t.Errorf("expected 1 handler, got %d", len(handlers))
	}
}

// TestBusSubscribe_MultipleHandlers tests multiple subscriptions
func TestBusSubscribe_MultipleHandlers_AllRegistered(t *testing.T) {
	bus := NewEventBus()
	var callCount int

	handler1 := func(e Event) { callCount++ }
	handler2 := func(e Event) { callCount++ }
	handler3 := func(e Event) { callCount++ }

	sub1 := bus.Subscribe(ColliderRegistered, handler1)
	sub2 := bus.Subscribe(ColliderRegistered, handler2)
	_ = bus.Subscribe(CollisionDetected, handler3)

	// Check unique IDs
	if sub1.ID == sub2.ID {
		t.Error("subscriptions should have unique IDs")
	}

	// Check handlers count
	bus.mu.RLock()
	shipHandlers := bus.handlers[ColliderRegistered]
	planetHandlers := bus.handlers[CollisionDetected]
	bus.mu.RUnlock()

	if len(shipHandlers) != 2 {
		t.Errorf("expected 2 handlers for ColliderRegistered, got %d", len(shipHandlers))
	}

	if len(planetHandlers) != 1 {
		t.Errorf("expected 1 handler for CollisionDetected, got %d", len(planetHandlers))
	}
}

// TestBusPublish tests event publishing functionality
func TestBusPublish_WithSubscribers_CallsAllHandlers(t *testing.T) {
	bus := NewEventBus()
	var callCount int
	var receivedEvents []Event

	handler1 := func(e Event) {
		callCount++
		receivedEvents = append(receivedEvents, e)
	}

	handler2 := func(e Event) {
		callCount++
		receivedEvents = append(receivedEvents, e)
	}

	bus.Subscribe(ColliderRegistered, handler1)
	bus.Subscribe(ColliderRegistered, handler2)

	event := &BaseEvent{
		EventType: ColliderRegistered,
		Source:    "test",
	}

	bus.Publish(event)

	if callCount != 2 {
		t.Errorf("expected 2 handler calls, got %d", callCount)
	}

	if len(receivedEvents) != 2 {
		t.Errorf("expected 2 received events, got %d", len(receivedEvents))
	}

	for _, e := range receivedEvents {
		if e.GetType() != ColliderRegistered {
			t.Errorf("expected event type %v, got %v", ColliderRegistered, e.GetType())
		}
	}
}

// TestBusPublish_NoSubscribers tests publishing without subscribers
func TestBusPublish_NoSubscribers_NoError(t *testing.T) {
	bus := NewEventBus()

	event := &BaseEvent{
		EventType: ColliderRegistered,
		Source:    "test",
	}

	// Should not panic or error
	bus.Publish(event)
}

// TestBusPublish_WrongEventType tests publishing to non-subscribed event type
func TestBusPublish_WrongEventType_HandlersNotCalled(t *testing.T) {
	bus := NewEventBus()
	handlerCalled := false

	handler := func(e Event) {
		handlerCalled = true
	}

	bus.Subscribe(ColliderRegistered, handler)

	event := &BaseEvent{
		EventType: CollisionDetected,
		Source:    "test",
	}

	bus.Publish(event)

	if handlerCalled {
		t.Error("handler should not have been called for different event type")
	}
}

// TestSubscriptionCancel tests canceling subscriptions
func TestSubscriptionCancel_ValidSubscription_RemovesHandler(t *testing.T) {
	bus := NewEventBus()
	handlerCalled := false

	handler := func(e Event) {
		handlerCalled = true
	}

	sub := bus.Subscribe(ColliderRegistered, handler)

	// Verify handler is registered
	bus.mu.RLock()
	handlersBefore := len(bus.handlers[ColliderRegistered])
	bus.mu.RUnlock()

	if handlersBefore != 1 {
		t.Errorf("expected 1 handler before cancel, got %d", handlersBefore)
	}

	// Cancel subscription
	sub.Cancel()

	// Verify handler is removed
	bus.mu.RLock()
	handlersAfter := len(bus.handlers[ColliderRegistered])
	bus.mu.RUnlock()

	if handlersAfter != 0 {
		t.Errorf("expected 0 handlers after cancel, got %d", handlersAfter)
	}

	// Verify handler is not called after cancellation
	event := &BaseEvent{
		EventType: ColliderRegistered,
		Source:    "test",
	}

	bus.Publish(event)

	if handlerCalled {
		t.Error("handler should not be called after cancellation")
	}
}

// TestConcurrentAccess tests thread safety
func TestBusSubscribe_ConcurrentAccess_ThreadSafe(t *testing.T) {
	bus := NewEventBus()
	var wg sync.WaitGroup
	handlerCount := 0
	var mu sync.Mutex

	handler := func(e Event) {
		mu.Lock()
		handlerCount++
		mu.Unlock()
	}

	// Start multiple goroutines to subscribe concurrently
	numGoroutines := 10
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			bus.Subscribe(ColliderRegistered, handler)
		}()
	}

	wg.Wait()

	// Verify all subscriptions were registered
	bus.mu.RLock()
	handlers := bus.handlers[ColliderRegistered]
	bus.mu.RUnlock()

	if len(handlers) != numGoroutines {
		t.Errorf("expected %d handlers, got %d", numGoroutines, len(handlers))
	}

	// Test concurrent publishing
	event := &BaseEvent{
		EventType: ColliderRegistered,
		Source:    "test",
	}

	// Publish concurrently
	wg.Add(3)
	for i := 0; i < 3; i++ {
		go func() {
			defer wg.Done()
			bus.Publish(event)
		}()
	}

	wg.Wait()

	// Give handlers time to execute
	time.Sleep(10 * time.Millisecond)

	mu.Lock()
	expectedCalls := numGoroutines * 3
	if handlerCount != expectedCalls {
		t.Errorf("expected %d handler calls, got %d", expectedCalls, handlerCount)
	}
	mu.Unlock()
}

// TestNewColliderEvent tests collider event creation
func TestNewColliderEvent_ValidParameters_ReturnsCorrectEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventType  Type
		source     interface{}
		colliderID uint64
	}{
		{
			name:       "Collider registered event",
			eventType:  ColliderRegistered,
			source:     "collision_server",
			colliderID: 12345,
		},
		{
			name:       "Collider out of world event",
			eventType:  ColliderOutOfWorld,
			source:     nil,
			colliderID: 67890,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := NewColliderEvent(tt.eventType, tt.source, tt.colliderID)

			if event == nil {
				t.Fatal("NewColliderEvent() returned nil")
			}

			if event.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", event.GetType(), tt.eventType)
			}

			if event.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", event.GetSource(), tt.source)
			}

			if event.ColliderID != tt.colliderID {
				t.Errorf("ColliderID = %v, want %v", event.ColliderID, tt.colliderID)
			}
		})
	}
}

// TestNewCollisionEvent tests collision event creation
func TestNewCollisionEvent_ValidParameters_ReturnsCorrectEvent(t *testing.T) {
	source := "collision_system"
	subject := uint64(100)
	other := uint64(200)

	event := NewCollisionEvent(source, subject, other, 7)

	if event == nil {
		t.Fatal("NewCollisionEvent() returned nil")
	}

	if event.GetType() != CollisionDetected {
		t.Errorf("GetType() = %v, want %v", event.GetType(), CollisionDetected)
	}

	if event.GetSource() != source {
		t.Errorf("GetSource() = %v, want %v", event.GetSource(), source)
	}

	if event.Subject != subject {
		t.Errorf("Subject = %v, want %v", event.Subject, subject)
	}

	if event.Other != other {
		t.Errorf("Other = %v, want %v", event.Other, other)
	}

	if event.Tick != 7 {
		t.Errorf("Tick = %v, want 7", event.Tick)
	}
}

// TestNewRebuildEvent tests rebuild summary events
func TestNewRebuildEvent_ValidParameters_ReturnsCorrectEvent(t *testing.T) {
	event := NewRebuildEvent(nil, 12, 2)

	if event.GetType() != IndexRebuilt {
		t.Errorf("GetType() = %v, want %v", event.GetType(), IndexRebuilt)
	}

	if event.Indexed != 12 || event.Rejected != 2 {
		t.Errorf("Indexed/Rejected = %d/%d, want 12/2", event.Indexed, event.Rejected)
	}
}

// TestEventTypes tests that all event type constants are properly defined
func TestEventTypes_Constants_AllDefined(t *testing.T) {
	expectedTypes := []Type{
		ColliderRegistered,
		ColliderUnregistered,
		ColliderOutOfWorld,
		CollisionDetected,
		IndexRebuilt,
	}

	seen := make(map[Type]bool)
	for _, eventType := range expectedTypes {
		if string(eventType) == "" {
			t.Errorf("event type %v is empty", eventType)
		}
		if seen[eventType] {
			t.Errorf("event type %v is duplicated", eventType)
		}
		seen[eventType] = true
	}
}

// TestSubscriptionCancel_Twice tests that a second Cancel is a no-op
func TestSubscriptionCancel_CalledTwice_OtherHandlersKept(t *testing.T) {
	bus := NewEventBus()

	sub := bus.Subscribe(ColliderRegistered, func(e Event) {})
	_ = bus.Subscribe(ColliderRegistered, func(e Event) {})

	sub.Cancel()
	sub.Cancel()

	bus.mu.RLock()
	remaining := len(bus.handlers[ColliderRegistered])
	bus.mu.RUnlock()

	if remaining != 1 {
		t.Errorf("expected 1 handler after double cancel, got %d", remaining)
	}
}

// TestCancelMultipleSubscriptions tests canceling multiple subscriptions
func TestCancelMultipleSubscriptions_DifferentTypes_OnlyTargetRemoved(t *testing.T) {
	bus := NewEventBus()

	handler1Called := false
	handler2Called := false
	handler3Called := false

	handler1 := func(e Event) { handler1Called = true }
	handler2 := func(e Event) { handler2Called = true }
	handler3 := func(e Event) { handler3Called = true }

	sub1 := bus.Subscribe(ColliderRegistered, handler1)
	_ = bus.Subscribe(ColliderRegistered, handler2)
	_ = bus.Subscribe(CollisionDetected, handler3)

	// Cancel only the first subscription
	sub1.Cancel()

	// Publish ColliderRegistered event
	registeredEvent := &BaseEvent{EventType: ColliderRegistered, Source: "test"}
	bus.Publish(registeredEvent)

	// Publish CollisionDetected event
	collisionEvent := &BaseEvent{EventType: CollisionDetected, Source: "test"}
	bus.Publish(collisionEvent)

	if handler1Called {
		t.Error("handler1 should not be called after cancellation")
	}

	if !handler2Called {
		t.Error("handler2 should be called")
	}

	if !handler3Called {
		t.Error("handler3 should be called")
	}
}
