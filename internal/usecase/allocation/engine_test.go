//go:build unit

package allocation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"candidate-assistance/internal/domain/actor"
	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/candidate"
	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/pkg/clock"
	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/allocation"
	"candidate-assistance/internal/usecase/shared"
	"candidate-assistance/tests/common/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	proctored    = resource.Key{Provider: "DUOLINGO", ServiceCode: "DUOLINGO_TEST_PROCTORED"}
	nonProctored = resource.Key{Provider: "DUOLINGO", ServiceCode: "DUOLINGO_TEST_NON_PROCTORED"}
	operator     = actor.Actor{ID: uuid.New(), Role: actor.RoleOperator}
	baseTime     = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	store  *memstore.Store
	sink   *memstore.Sink
	clock  *clock.MockClock
	engine *allocation.Engine
	alloc  allocation.ResourceAllocator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	sink := &memstore.Sink{}
	clk := clock.NewMockClock(baseTime)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		store:  store,
		sink:   sink,
		clock:  clk,
		engine: allocation.NewEngine(store, clk, sink, nil, logger),
		alloc:  allocation.NewOldestExpiryFirst(proctored, clk),
	}
}

func (f *fixture) addResources(key resource.Key, codes ...string) []uuid.UUID {
	ids := make([]uuid.UUID, len(codes))
	for i, code := range codes {
		expires := baseTime.Add(time.Duration(i+1) * 24 * time.Hour)
		ids[i] = f.store.AddResource(key, code, resource.StatusAvailable, &expires)
	}
	return ids
}

func TestEngine_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("claims one resource and writes one active row", func(t *testing.T) {
		f := newFixture(t)
		ids := f.addResources(proctored, "ACC-1", "ACC-2")
		c := f.store.AddCandidate("C-1", "c1@example.com")

		a, err := f.engine.Assign(ctx, f.alloc, c.ID(), operator)
		require.NoError(t, err)

		assert.Equal(t, resource.Code("ACC-1"), a.Resource().Code())
		assert.Equal(t, resource.StatusAssigned, a.Resource().Status())
		assert.Equal(t, operator.ID, a.ActorID())
		assert.Equal(t, resource.StatusAssigned, f.store.ResourceStatus(ids[0]))
		assert.Equal(t, resource.StatusAvailable, f.store.ResourceStatus(ids[1]))
		assert.Equal(t, 1, f.store.CountAssignments(c.ID(), proctored, assignment.StatusAssigned))
		assert.Equal(t, []allocation.EventType{allocation.EventAssigned}, f.sink.Types())
		assert.Equal(t, a.ID(), f.sink.Events()[0].AssignmentID)
	})

	t.Run("unknown candidate is not found and nothing changes", func(t *testing.T) {
		f := newFixture(t)
		f.addResources(proctored, "ACC-1")
		before := f.store.Snapshot()

		_, err := f.engine.Assign(ctx, f.alloc, uuid.New(), operator)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Empty(t, cmp.Diff(before, f.store.Snapshot()))
		assert.Empty(t, f.sink.Events())
	})

	t.Run("empty pool fails allocation", func(t *testing.T) {
		f := newFixture(t)
		f.addResources(nonProctored, "NONP-1")
		c := f.store.AddCandidate("C-1", "c1@example.com")

		_, err := f.engine.Assign(ctx, f.alloc, c.ID(), operator)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAllocationFailed))
		assert.Equal(t, 0, f.store.TotalAssignments())
	})

	t.Run("second assign for the same slot conflicts and leaves the pool alone", func(t *testing.T) {
		f := newFixture(t)
		f.addResources(proctored, "ACC-1", "ACC-2")
		c := f.store.AddCandidate("C-1", "c1@example.com")

		_, err := f.engine.Assign(ctx, f.alloc, c.ID(), operator)
		require.NoError(t, err)
		before := f.store.CountResources(proctored, resource.StatusAvailable)

		_, err = f.engine.Assign(ctx, f.alloc, c.ID(), operator)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Equal(t, before, f.store.CountResources(proctored, resource.StatusAvailable))
		assert.Equal(t, 1, f.store.CountAssignments(c.ID(), proctored, assignment.StatusAssigned))
	})

	t.Run("resources expired by time are never proposed", func(t *testing.T) {
		f := newFixture(t)
		past := baseTime.Add(-time.Hour)
		f.store.AddResource(proctored, "OLD", resource.StatusAvailable, &past)
		future := baseTime.Add(time.Hour)
		f.store.AddResource(proctored, "NEW", resource.StatusAvailable, &future)
		c := f.store.AddCandidate("C-1", "c1@example.com")

		a, err := f.engine.Assign(ctx, f.alloc, c.ID(), operator)

		require.NoError(t, err)
		assert.Equal(t, resource.Code("NEW"), a.Resource().Code())
	})

	t.Run("allocator proposing a taken resource fails the claim", func(t *testing.T) {
		f := newFixture(t)
		ids := f.addResources(proctored, "ACC-1")
		c1 := f.store.AddCandidate("C-1", "c1@example.com")
		c2 := f.store.AddCandidate("C-2", "c2@example.com")

		_, err := f.engine.Assign(ctx, f.alloc, c1.ID(), operator)
		require.NoError(t, err)

		stale := &staleAllocator{key: proctored, id: ids[0]}
		_, err = f.engine.Assign(ctx, stale, c2.ID(), operator)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAllocationFailed))
		assert.Equal(t, 0, f.store.CountAssignments(c2.ID(), proctored, assignment.StatusAssigned))
	})
}

func TestEngine_Assign_Concurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addResources(proctored, "ACC-1", "ACC-2", "ACC-3", "ACC-4")
	c := f.store.AddCandidate("C-1", "c1@example.com")

	const callers = 8
	var wg sync.WaitGroup
	results := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.engine.Assign(ctx, f.alloc, c.ID(), operator)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errs.Is(err, errs.ErrConflict) || errs.Is(err, errs.ErrAllocationFailed), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, f.store.CountAssignments(c.ID(), proctored, assignment.StatusAssigned))
	assert.Equal(t, 1, f.store.CountResources(proctored, resource.StatusAssigned))
}

func TestEngine_Reassign(t *testing.T) {
	ctx := context.Background()

	t.Run("supersedes the active row and assigns a fresh resource", func(t *testing.T) {
		f := newFixture(t)
		ids := f.addResources(proctored, "ACC-1", "ACC-2", "ACC-3")
		c := f.store.AddCandidate("C-1", "c1@example.com")

		first, err := f.engine.Assign(ctx, f.alloc, c.ID(), operator)
		require.NoError(t, err)
		availableBefore := f.store.CountResources(proctored, resource.StatusAvailable)

		f.clock.Add(time.Minute)
		second, err := f.engine.Reassign(ctx, f.alloc, "C-1", operator)
		require.NoError(t, err)

		assert.NotEqual(t, first.Resource().ID(), second.Resource().ID())
		assert.Equal(t, resource.StatusDisabled, f.store.ResourceStatus(ids[0]))
		assert.Equal(t, resource.StatusAssigned, f.store.ResourceStatus(second.Resource().ID()))
		assert.Equal(t, 1, f.store.CountAssignments(c.ID(), proctored, assignment.StatusAssigned))
		assert.Equal(t, 1, f.store.CountAssignments(c.ID(), proctored, assignment.StatusReassigned))
		assert.Equal(t, availableBefore-1, f.store.CountResources(proctored, resource.StatusAvailable))

		events := f.sink.Events()
		require.Len(t, events, 3)
		assert.Equal(t, allocation.EventReassigned, events[1].Type)
		assert.Equal(t, []uuid.UUID{first.ID()}, events[1].Superseded)
		assert.Equal(t, allocation.EventAssigned, events[2].Type)
		assert.Equal(t, second.ID(), events[2].AssignmentID)
	})

	t.Run("failed claim rolls back the superseding", func(t *testing.T) {
		f := newFixture(t)
		ids := f.addResources(proctored, "ACC-1")
		c := f.store.AddCandidate("C-1", "c1@example.com")

		_, err := f.engine.Assign(ctx, f.alloc, c.ID(), operator)
		require.NoError(t, err)
		before := f.store.Snapshot()

		_, err = f.engine.Reassign(ctx, f.alloc, "C-1", operator)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAllocationFailed))
		assert.Empty(t, cmp.Diff(before, f.store.Snapshot()))
		assert.Equal(t, resource.StatusAssigned, f.store.ResourceStatus(ids[0]))
		assert.Len(t, f.sink.Events(), 1)
	})

	t.Run("without an active row it behaves as a first assign", func(t *testing.T) {
		f := newFixture(t)
		f.addResources(proctored, "ACC-1")
		c := f.store.AddCandidate("C-1", "c1@example.com")

		a, err := f.engine.Reassign(ctx, f.alloc, "C-1", operator)

		require.NoError(t, err)
		assert.True(t, a.IsActive())
		assert.Equal(t, 0, f.store.CountAssignments(c.ID(), proctored, assignment.StatusReassigned))
	})

	t.Run("unknown candidate number", func(t *testing.T) {
		f := newFixture(t)
		f.addResources(proctored, "ACC-1")

		_, err := f.engine.Reassign(ctx, f.alloc, "missing", operator)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("other service codes of the candidate are untouched", func(t *testing.T) {
		f := newFixture(t)
		f.addResources(proctored, "ACC-1", "ACC-2")
		nonIDs := f.addResources(nonProctored, "NONP-1")
		c := f.store.AddCandidate("C-1", "c1@example.com")

		_, err := f.engine.Assign(ctx, allocation.NewOldestExpiryFirst(nonProctored, f.clock), c.ID(), operator)
		require.NoError(t, err)
		_, err = f.engine.Assign(ctx, f.alloc, c.ID(), operator)
		require.NoError(t, err)

		_, err = f.engine.Reassign(ctx, f.alloc, "C-1", operator)
		require.NoError(t, err)

		assert.Equal(t, resource.StatusAssigned, f.store.ResourceStatus(nonIDs[0]))
		assert.Equal(t, 1, f.store.CountAssignments(c.ID(), nonProctored, assignment.StatusAssigned))
	})
}

func TestEngine_InvariantAfterMixedSequence(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	codes := make([]string, 12)
	for i := range codes {
		codes[i] = "ACC-" + string(rune('A'+i))
	}
	f.addResources(proctored, codes...)
	c1 := f.store.AddCandidate("C-1", "c1@example.com")
	c2 := f.store.AddCandidate("C-2", "c2@example.com")

	steps := []func() error{
		func() error { _, err := f.engine.Assign(ctx, f.alloc, c1.ID(), operator); return err },
		func() error { _, err := f.engine.Assign(ctx, f.alloc, c1.ID(), operator); return err },
		func() error { _, err := f.engine.Reassign(ctx, f.alloc, "C-1", operator); return err },
		func() error { _, err := f.engine.Reassign(ctx, f.alloc, "C-2", operator); return err },
		func() error { _, err := f.engine.Assign(ctx, f.alloc, c2.ID(), operator); return err },
		func() error { _, err := f.engine.Reassign(ctx, f.alloc, "C-1", operator); return err },
	}
	for _, step := range steps {
		_ = step()
		for _, c := range []*candidate.Candidate{c1, c2} {
			assert.LessOrEqual(t, f.store.CountAssignments(c.ID(), proctored, assignment.StatusAssigned), 1)
		}
	}

	assert.Equal(t, 2, f.store.CountResources(proctored, resource.StatusDisabled))
	assert.Equal(t, 2, f.store.CountResources(proctored, resource.StatusAssigned))
}

func TestEngine_ExpireOverdue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	past := baseTime.Add(-time.Hour)
	future := baseTime.Add(time.Hour)
	overdueAvailable := f.store.AddResource(proctored, "A", resource.StatusAvailable, &past)
	overdueAssigned := f.store.AddResource(proctored, "B", resource.StatusAssigned, &past)
	redeemed := f.store.AddResource(proctored, "C", resource.StatusRedeemed, &past)
	fresh := f.store.AddResource(proctored, "D", resource.StatusAvailable, &future)
	noExpiry := f.store.AddResource(proctored, "E", resource.StatusAvailable, nil)
	otherService := f.store.AddResource(nonProctored, "F", resource.StatusAvailable, &past)

	expired, err := f.engine.ExpireOverdue(ctx, proctored)
	require.NoError(t, err)

	assert.Len(t, expired, 2)
	assert.Equal(t, resource.StatusExpired, f.store.ResourceStatus(overdueAvailable))
	assert.Equal(t, resource.StatusExpired, f.store.ResourceStatus(overdueAssigned))
	assert.Equal(t, resource.StatusRedeemed, f.store.ResourceStatus(redeemed))
	assert.Equal(t, resource.StatusAvailable, f.store.ResourceStatus(fresh))
	assert.Equal(t, resource.StatusAvailable, f.store.ResourceStatus(noExpiry))
	assert.Equal(t, resource.StatusAvailable, f.store.ResourceStatus(otherService))
	assert.Equal(t, []allocation.EventType{allocation.EventExpired, allocation.EventExpired}, f.sink.Types())

	again, err := f.engine.ExpireOverdue(ctx, proctored)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestEngine_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.store.AddResource(proctored, "ACC-1", resource.StatusAvailable, nil)

	require.NoError(t, f.engine.UpdateStatus(ctx, proctored, "ACC-1", resource.StatusRedeemed))
	assert.Equal(t, resource.StatusRedeemed, f.store.ResourceStatus(id))

	err := f.engine.UpdateStatus(ctx, proctored, "missing", resource.StatusRedeemed)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestEngine_StoreFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addResources(proctored, "ACC-1")
	c := f.store.AddCandidate("C-1", "c1@example.com")
	f.store.BeforeCommit = func() error { return errors.New("connection reset") }

	_, err := f.engine.Assign(ctx, f.alloc, c.ID(), operator)

	require.Error(t, err)
	assert.Equal(t, 1, f.store.CountResources(proctored, resource.StatusAvailable))
	assert.Equal(t, 0, f.store.TotalAssignments())
	assert.Empty(t, f.sink.Events())
}

// staleAllocator always proposes the same resource, as an allocator working from an
// outdated read would.
type staleAllocator struct {
	key resource.Key
	id  uuid.UUID
}

func (a *staleAllocator) Provider() resource.Provider       { return a.key.Provider }
func (a *staleAllocator) ServiceCode() resource.ServiceCode { return a.key.ServiceCode }

func (a *staleAllocator) AllocateFor(_ context.Context, _ shared.Tx, _ *candidate.Candidate) (*resource.ServiceResource, error) {
	return resource.Reconstruct(a.id, a.key.Provider, a.key.ServiceCode, "ACC-1", resource.StatusAvailable, nil, nil, baseTime), nil
}
