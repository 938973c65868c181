//go:build unit

package memstore

import (
	"context"
	"sync"

	"candidate-assistance/internal/usecase/allocation"
)

// Sink records published events.
type Sink struct {
	mu     sync.Mutex
	events []allocation.Event
}

func (s *Sink) Publish(_ context.Context, events ...allocation.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

func (s *Sink) Events() []allocation.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]allocation.Event(nil), s.events...)
}

func (s *Sink) Types() []allocation.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]allocation.EventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}
