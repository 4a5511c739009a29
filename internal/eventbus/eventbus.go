package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"termfolio/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventScrollChanged     = domain.EventScrollChanged
	EventMenuToggled       = domain.EventMenuToggled
	EventSectionNavigated  = domain.EventSectionNavigated
	EventSubmissionChanged = domain.EventSubmissionChanged
)

// Re-export domain event types
type ScrollChangedEvent = domain.ScrollChangedEvent
type MenuToggledEvent = domain.MenuToggledEvent
type SectionNavigatedEvent = domain.SectionNavigatedEvent
type SubmissionChangedEvent = domain.SubmissionChangedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	SubscriberCount(eventType EventType) int
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run on the publisher's goroutine, in subscription order.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	logger   *zap.Logger
}

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &bus{
		handlers: make(map[EventType][]subscription),
		logger:   logger.Named("eventbus"),
	}
}

// Publish delivers an event to every current subscriber
func (b *bus) Publish(event DomainEvent) {
	// Scroll events fire on every frame, keep them out of the log
	if event.Type() != EventScrollChanged {
		b.logger.Debug("publishing event", zap.String("type", string(event.Type())))
	}

	// Copy so handlers may unsubscribe while we iterate
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.deliver(sub.handler, event)
	}
}

func (b *bus) deliver(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("type", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function; calling it more than once is harmless.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
			if len(b.handlers[eventType]) == 0 {
				delete(b.handlers, eventType)
			}
		})
	}
}

// SubscriberCount returns how many handlers are attached to an event type
func (b *bus) SubscriberCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
