package assistance

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"candidate-assistance/internal/pkg/errs"
)

const sweepTimeout = 5 * time.Minute

// Ticker is the time source driving the sweeper.
type Ticker interface {
	Channel() <-chan time.Time
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func NewTimeTicker(d time.Duration) Ticker {
	return &timeTicker{Ticker: time.NewTicker(d)}
}

func (t *timeTicker) Channel() <-chan time.Time { return t.C }

// ExpirySweeper runs ExpireOverdueResources for every registered service on each tick.
type ExpirySweeper struct {
	registry *Registry
	logger   *slog.Logger

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewExpirySweeper(registry *Registry, logger *slog.Logger) *ExpirySweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpirySweeper{registry: registry, logger: logger}
}

// SweepOnce expires overdue resources of every service. A failing service does not stop
// the others; the total expired count is returned with the joined errors.
func (s *ExpirySweeper) SweepOnce(ctx context.Context) (int, error) {
	total := 0
	var errList []error
	for _, svc := range s.registry.All() {
		n, err := svc.ExpireOverdueResources(ctx)
		if err != nil {
			s.logger.ErrorContext(ctx, "expiry sweep failed", "key", svc.Key().String(), "error", err)
			errList = append(errList, errs.Wrapf(err, "sweep %s", svc.Key()))
			continue
		}
		if n > 0 {
			s.logger.InfoContext(ctx, "resources expired", "key", svc.Key().String(), "count", n)
		}
		total += n
	}
	if len(errList) > 0 {
		return total, errs.Join(errList...)
	}
	return total, nil
}

// Start runs the sweep on every tick until Stop. Calling it twice is an error.
func (s *ExpirySweeper) Start(ctx context.Context, ticker Ticker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return errs.New("expiry sweeper started twice")
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx, ticker, s.done)
	return nil
}

func (s *ExpirySweeper) run(ctx context.Context, ticker Ticker, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Channel():
			sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
			_, _ = s.SweepOnce(sweepCtx)
			cancel()
		}
	}
}

// Stop cancels the loop and waits for an in-flight sweep to return. It is a no-op
// before Start and may be called more than once.
func (s *ExpirySweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
