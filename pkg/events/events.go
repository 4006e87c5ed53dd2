// Package events provides the in-process topic bus that binds the
// application state to its views. Dispatch is synchronous and
// depth-first: Emit returns only after every matching handler has run,
// so a caller may rely on all subscribers having observed the new state
// the moment a mutator returns.
package events

import (
	"sync"

	"github.com/nickovin/weblarek-go/pkg/failfast"
)

// Handler receives every event whose topic is covered by the
// subscription's topic or pattern.
type Handler func(topic string, payload any)

// Error represents a bus contract violation.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var errEmptyTopic = &Error{Code: "INVALID_TOPIC", Message: "topic cannot be empty"}

// ValidateTopic checks a topic name before it reaches the bus.
func ValidateTopic(topic string) error {
	if topic == "" {
		return errEmptyTopic
	}
	if len(topic) > 255 {
		return &Error{Code: "INVALID_TOPIC", Message: "topic too long (max 255 characters)"}
	}
	return nil
}

type subscription struct {
	id      uint64
	pattern Pattern
	handler Handler
	dead    bool
}

// Bus is a synchronous topic bus with exact and pattern subscriptions.
//
// Handlers run in subscription order, most recently subscribed last,
// regardless of whether they were registered on an exact topic or a
// pattern. A nested Emit from inside a handler completes fully before
// control returns to the outer dispatch.
//
// Thread-safety: mu protects the subscription list only; it is never
// held while handlers run, so handlers may freely Subscribe, Emit, or
// unsubscribe. A handler removed while the current Emit is walking its
// snapshot is skipped on a best-effort basis (an already-running
// invocation is not interrupted).
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []*subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for a topic or pattern and returns an
// unsubscribe function. Unsubscribing twice is harmless.
func (b *Bus) Subscribe(topic string, handler Handler) (unsubscribe func()) {
	failfast.Err(ValidateTopic(topic))
	failfast.NotNil(handler, "handler")

	b.mu.Lock()
	b.nextID++
	sub := &subscription{
		id:      b.nextID,
		pattern: Compile(topic),
		handler: handler,
	}
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == sub.id {
				s.dead = true
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit publishes payload to every handler whose subscription covers
// topic. The set of handlers is fixed when Emit starts: handlers
// subscribed mid-dispatch are not invoked for this emit.
func (b *Bus) Emit(topic string, payload any) error {
	if err := ValidateTopic(topic); err != nil {
		return err
	}

	b.mu.RLock()
	matched := make([]*subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.pattern.Match(topic) {
			matched = append(matched, s)
		}
	}
	b.mu.RUnlock()

	for _, s := range matched {
		b.mu.RLock()
		dead := s.dead
		b.mu.RUnlock()
		if dead {
			continue
		}
		s.handler(topic, payload)
	}
	return nil
}

// SubscriberCount reports how many live subscriptions cover topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, s := range b.subs {
		if s.pattern.Match(topic) {
			n++
		}
	}
	return n
}
