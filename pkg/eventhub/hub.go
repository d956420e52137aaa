// Package eventhub implements the in-process notification bus that keeps
// independent consumers of a store converged on one canonical snapshot.
// Hubs are explicitly constructed and injected; there is no package-level
// singleton. A hub lives for the whole process.
package eventhub

import (
	"context"
	"sync"

	"github.com/startrack-app/startrack/pkg/logger"
)

// Listener receives the new canonical snapshot after a mutation.
type Listener[T any] func(T)

// Hub fans a published snapshot out to every registered listener.
type Hub[T any] struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener[T]
}

// New creates an empty hub.
func New[T any]() *Hub[T] {
	return &Hub[T]{listeners: make(map[int]Listener[T])}
}

// Subscribe registers fn and returns an unsubscribe func. Listeners must
// deregister when their consumer goes away; the returned func is idempotent.
func (h *Hub[T]) Subscribe(fn Listener[T]) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.listeners[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Publish invokes every registered listener synchronously with the snapshot.
// Invocation order across listeners is unspecified. A panicking listener is
// recovered and logged so the remaining listeners still run.
func (h *Hub[T]) Publish(ctx context.Context, snapshot T) {
	h.mu.Lock()
	fns := make([]Listener[T], 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		invoke(ctx, fn, snapshot)
	}
}

// Len returns the number of registered listeners.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

func invoke[T any](ctx context.Context, fn Listener[T], snapshot T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Logger(ctx).WithField("panic", r).Error("event listener panicked")
		}
	}()
	fn(snapshot)
}
