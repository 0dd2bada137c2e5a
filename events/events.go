package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"questbets/models"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeSubmissionRecorded EventType = "submission_recorded"
	EventTypeUserCreated        EventType = "user_created"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// SubmissionRecordedEvent represents a completed bet submission
type SubmissionRecordedEvent struct {
	UserID        string                `json:"user_id"`
	Address       string                `json:"address"`
	DiscordHandle string                `json:"discord_handle,omitempty"`
	XHandle       string                `json:"x_handle,omitempty"`
	Selections    []models.BetSelection `json:"selections"`
}

func (e SubmissionRecordedEvent) Type() EventType {
	return EventTypeSubmissionRecorded
}

// UserCreatedEvent represents a new user creation
type UserCreatedEvent struct {
	UserID  string `json:"user_id"`
	Address string `json:"address"`
}

func (e UserCreatedEvent) Type() EventType {
	return EventTypeUserCreated
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe registers a handler for an event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish dispatches an event to all registered handlers
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"event_type": event.Type(),
						"panic":      r,
					}).Error("Event handler panicked")
				}
			}()
			handler(ctx, event)
		}()
	}
}
