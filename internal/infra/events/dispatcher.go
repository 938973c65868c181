package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"candidate-assistance/internal/usecase/allocation"
)

const defaultHandlerTimeout = 10 * time.Second

// Handler delivers one event to a downstream system.
type Handler interface {
	Name() string
	Handle(ctx context.Context, ev allocation.Event) error
}

// Dispatcher is the outbound queue between the engine and the handlers. Publish never
// blocks: when the buffer is full the event is dropped and a warning is logged.
type Dispatcher struct {
	queue    chan allocation.Event
	handlers []Handler
	timeout  time.Duration
	logger   *slog.Logger

	mu      sync.RWMutex
	closed  bool
	started bool
	done    chan struct{}
}

func NewDispatcher(size int, logger *slog.Logger, handlers ...Handler) *Dispatcher {
	if size <= 0 {
		size = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		queue:    make(chan allocation.Event, size),
		handlers: handlers,
		timeout:  defaultHandlerTimeout,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

var _ allocation.EventSink = (*Dispatcher)(nil)

func (d *Dispatcher) Publish(ctx context.Context, events ...allocation.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, ev := range events {
		if d.closed {
			d.logger.WarnContext(ctx, "event dropped: dispatcher stopped", "type", string(ev.Type), "resource_code", ev.ResourceCode)
			continue
		}
		select {
		case d.queue <- ev:
		default:
			d.logger.WarnContext(ctx, "event dropped: queue full",
				"type", string(ev.Type),
				"resource_code", ev.ResourceCode,
				"candidate_id", ev.CandidateID.String())
		}
	}
}

// Start launches the drain loop. It is a no-op when already started.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true
	go d.run()
}

// Stop closes the queue and waits for queued events to be delivered, or for ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev allocation.Event) {
	for _, h := range d.handlers {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err := h.Handle(ctx, ev)
		cancel()
		if err != nil {
			d.logger.Error("event delivery failed",
				"handler", h.Name(),
				"type", string(ev.Type),
				"resource_code", ev.ResourceCode,
				"error", err.Error())
		}
	}
}
