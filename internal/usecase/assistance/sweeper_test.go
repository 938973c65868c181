//go:build unit

package assistance_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/usecase/assistance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTicker struct {
	ch      chan time.Time
	stopped chan struct{}
}

func newManualTicker() *manualTicker {
	return &manualTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
}

func (m *manualTicker) Channel() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()                     { close(m.stopped) }

func TestExpirySweeper_SweepOnce(t *testing.T) {
	h := newHarness(t, nil)
	registry, err := assistance.NewRegistry(h.svc, h.other)
	require.NoError(t, err)

	past := baseTime.Add(-time.Hour)
	h.store.AddResource(proctored, "P-OLD", resource.StatusAvailable, &past)
	h.store.AddResource(nonProctored, "N-OLD", resource.StatusAssigned, &past)
	h.stock(proctored, 1)

	sweeper := assistance.NewExpirySweeper(registry, nil)
	n, err := sweeper.SweepOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, h.store.CountResources(proctored, resource.StatusExpired))
	assert.Equal(t, 1, h.store.CountResources(nonProctored, resource.StatusExpired))
	assert.Equal(t, 1, h.store.CountResources(proctored, resource.StatusAvailable))

	n, err = sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "second sweep finds nothing")
}

func TestExpirySweeper_StartStop(t *testing.T) {
	h := newHarness(t, nil)
	registry, err := assistance.NewRegistry(h.svc)
	require.NoError(t, err)

	past := baseTime.Add(-time.Hour)
	h.store.AddResource(proctored, "P-OLD", resource.StatusAvailable, &past)

	sweeper := assistance.NewExpirySweeper(registry, nil)
	ticker := newManualTicker()
	require.NoError(t, sweeper.Start(context.Background(), ticker))
	assert.Error(t, sweeper.Start(context.Background(), ticker), "二重起動はエラー")

	// the unbuffered send returns once the loop has taken the tick
	ticker.ch <- baseTime
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.Stop(ctx))

	select {
	case <-ticker.stopped:
	default:
		t.Fatal("ticker was not stopped")
	}
	assert.Equal(t, 1, h.store.CountResources(proctored, resource.StatusExpired))
}

func TestExpirySweeper_ConcurrentStartStop(t *testing.T) {
	h := newHarness(t, nil)
	registry, err := assistance.NewRegistry(h.svc)
	require.NoError(t, err)

	sweeper := assistance.NewExpirySweeper(registry, nil)
	require.NoError(t, sweeper.Stop(context.Background()), "Start前のStopは何もしない")

	ticker := newManualTicker()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var wg sync.WaitGroup
	stopErrs := make([]error, 4)
	wg.Add(1 + len(stopErrs))
	go func() {
		defer wg.Done()
		assert.NoError(t, sweeper.Start(context.Background(), ticker))
	}()
	for i := range stopErrs {
		go func(i int) {
			defer wg.Done()
			stopErrs[i] = sweeper.Stop(ctx)
		}(i)
	}
	wg.Wait()

	for _, err := range stopErrs {
		assert.NoError(t, err)
	}
	require.NoError(t, sweeper.Stop(ctx), "stopping again is a no-op")
	select {
	case <-ticker.stopped:
	case <-ctx.Done():
		t.Fatal("ticker was not stopped")
	}
}
