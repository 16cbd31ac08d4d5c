// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	PlayerJoined  Type = "player_joined"
	MissileFired  Type = "missile_fired"
	FrameAdvanced Type = "frame_advanced"
	GameStarted   Type = "game_started"
	GameStopped   Type = "game_stopped"
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

// PlayerJoinedEvent is published when a player is added to the roster.
type PlayerJoinedEvent struct {
	BaseEvent
	PlayerID string
}

// MissileFiredEvent is published when a shoot command actually launches a
// missile. Cap refusals publish nothing.
type MissileFiredEvent struct {
	BaseEvent
	PlayerID string
}

// FrameAdvancedEvent is published after every completed simulation frame.
type FrameAdvancedEvent struct {
	BaseEvent
	Tick      uint64
	DeltaTime float64
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
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

// Publish sends an event to all handlers subscribed to its type.
// Handlers run synchronously on the caller's goroutine.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := b.handlers[e.GetType()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(e)
	}
}
