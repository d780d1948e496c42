// Package events is the in-process notification bus decoupling reservation
// state changes from metrics and logging side effects. Delivery is
// synchronous, at-most-once per transition, with no persistence and no
// cross-process reach.
package events

import (
	"sync"

	"github.com/rs/zerolog"
)

// Handler consumes one event payload. Handlers run on the emitter's
// goroutine; keep them cheap.
type Handler func(payload any)

// Bus dispatches events by name to handlers in registration order. Emit never
// propagates a handler panic back to the caller: a booking request must not
// fail because an observability hook misbehaved.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      zerolog.Logger
}

func New(log zerolog.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		log:      log.With().Str("component", "events").Logger(),
	}
}

// On registers a handler for the process lifetime. There is no
// unregistration; nothing in the booking core needs it.
func (b *Bus) On(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Emit invokes every handler registered for name, in order. A panicking
// handler is logged and skipped; the remaining handlers still run.
func (b *Bus) Emit(name string, payload any) {
	b.mu.RLock()
	hs := b.handlers[name]
	b.mu.RUnlock()

	b.log.Debug().Str("event", name).Int("handlers", len(hs)).Msg("emit")
	for _, h := range hs {
		b.invoke(name, h, payload)
	}
}

func (b *Bus) invoke(name string, h Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Str("event", name).Any("panic", r).Msg("event handler panicked")
		}
	}()
	h(payload)
}
