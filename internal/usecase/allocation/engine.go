package allocation

import (
	"context"
	"fmt"
	"log/slog"

	"candidate-assistance/internal/domain/actor"
	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/candidate"
	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra"
	"candidate-assistance/internal/pkg/clock"
	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/shared"

	"github.com/google/uuid"
)

const auditActionReassign = "ReassignResource"

// Engine is the only writer of resource status changes caused by allocation and of
// ledger rows. Each operation runs in one unit of work; events are published only
// after commit.
type Engine struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	sink    EventSink
	metrics Recorder
	logger  *slog.Logger
}

func NewEngine(uow shared.UnitOfWork, clk clock.Clock, sink EventSink, metrics Recorder, logger *slog.Logger) *Engine {
	if sink == nil {
		sink = NopSink()
	}
	if metrics == nil {
		metrics = NopRecorder()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		uow:     uow,
		clock:   clk,
		sink:    sink,
		metrics: metrics,
		logger:  logger,
	}
}

func (e *Engine) Assign(ctx context.Context, alloc ResourceAllocator, candidateID uuid.UUID, act actor.Actor) (*assignment.ServiceAssignment, error) {
	key := KeyOf(alloc)
	start := e.clock.Now()

	var created *assignment.ServiceAssignment
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cand, err := tx.Reads().CandidateByID(ctx, candidateID)
		if err != nil {
			return candidateLookupErr(err, candidateID.String())
		}

		created, err = e.assignInTx(ctx, tx, alloc, cand, act)
		return err
	})
	e.metrics.ObserveAssign(key, resultOf(err), e.clock.Now().Sub(start))
	if err != nil {
		return nil, err
	}

	e.sink.Publish(ctx, assignmentEvent(EventAssigned, created, created.AssignedAt()))
	return created, nil
}

// Reassign supersedes every ASSIGNED row of the candidate's slot and assigns a fresh
// resource, all in one transaction. A failed claim rolls back the superseding.
func (e *Engine) Reassign(ctx context.Context, alloc ResourceAllocator, candidateNumber string, act actor.Actor) (*assignment.ServiceAssignment, error) {
	key := KeyOf(alloc)

	var (
		created    *assignment.ServiceAssignment
		superseded []*assignment.ServiceAssignment
	)
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, superseded = nil, nil

		cand, err := tx.Reads().CandidateByNumber(ctx, candidateNumber)
		if err != nil {
			return candidateLookupErr(err, candidateNumber)
		}

		active, err := tx.Assignments().LockActiveForCandidate(ctx, cand.ID(), key)
		if err != nil {
			return errs.Wrap(err, "lock active assignments")
		}

		for _, prev := range active {
			ok, err := tx.Assignments().MarkReassigned(ctx, prev.ID())
			if err != nil {
				return errs.Wrap(err, "mark assignment reassigned")
			}
			if !ok {
				return errs.Mark(errs.Newf("assignment %s changed concurrently", prev.ID()), errs.ErrConflict)
			}
			if err := tx.Resources().Disable(ctx, prev.Resource().ID()); err != nil {
				return errs.Wrapf(err, "disable resource %s", prev.Resource().Code())
			}
			superseded = append(superseded, prev)
		}

		created, err = e.assignInTx(ctx, tx, alloc, cand, act)
		return err
	})
	e.metrics.ObserveReassign(key, resultOf(err))
	if err != nil {
		return nil, err
	}

	reassigned := assignmentEvent(EventReassigned, created, created.AssignedAt())
	for _, prev := range superseded {
		reassigned.Superseded = append(reassigned.Superseded, prev.ID())
	}
	e.sink.Publish(ctx, reassigned, assignmentEvent(EventAssigned, created, created.AssignedAt()))

	e.logger.InfoContext(ctx, "audit",
		"action", auditActionReassign,
		"actor_id", act.ID.String(),
		"message", reassignMessage(candidateNumber, key, superseded, created))

	return created, nil
}

// ExpireOverdue moves every resource of the slot whose expiry has passed to EXPIRED.
// REDEEMED, DISABLED and already EXPIRED resources are left alone.
func (e *Engine) ExpireOverdue(ctx context.Context, key resource.Key) ([]*resource.ServiceResource, error) {
	now := e.clock.Now()

	var expired []*resource.ServiceResource
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		expired, err = tx.Resources().ExpireOverdue(ctx, key, now)
		return err
	})
	if err != nil {
		return nil, errs.Wrapf(err, "expire overdue %s resources", key)
	}

	e.metrics.ObserveExpired(key, len(expired))
	if len(expired) > 0 {
		events := make([]Event, len(expired))
		for i, r := range expired {
			events[i] = expiredEvent(r, actor.System.ID, now)
		}
		e.sink.Publish(ctx, events...)
	}
	return expired, nil
}

func (e *Engine) assignInTx(ctx context.Context, tx shared.Tx, alloc ResourceAllocator, cand *candidate.Candidate, act actor.Actor) (*assignment.ServiceAssignment, error) {
	key := KeyOf(alloc)

	proposal, err := alloc.AllocateFor(ctx, tx, cand)
	if err != nil {
		return nil, err
	}
	if proposal == nil || proposal.Key() != key || !proposal.IsAvailable() {
		return nil, errs.Mark(errs.Newf("allocator proposed no usable %s resource", key), errs.ErrAllocationFailed)
	}

	now := e.clock.Now()
	claimed, err := tx.Resources().Claim(ctx, proposal.ID(), now)
	if err != nil {
		return nil, errs.Wrapf(err, "claim resource %s", proposal.Code())
	}
	if !claimed {
		return nil, errs.Mark(errs.Newf("resource %s was claimed concurrently", proposal.Code()), errs.ErrAllocationFailed)
	}

	held := resource.Reconstruct(
		proposal.ID(),
		proposal.Provider(),
		proposal.ServiceCode(),
		proposal.Code(),
		resource.StatusAssigned,
		proposal.ExpiresAt(),
		&now,
		proposal.CreatedAt(),
	)

	a, err := assignment.NewServiceAssignment(held, cand.ID(), act.ID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := tx.Assignments().Create(ctx, a)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(errs.Wrapf(err, "candidate %s already holds %s", cand.Number(), key), errs.ErrConflict)
		}
		return nil, errs.Wrap(err, "create assignment")
	}

	return a.WithID(id), nil
}

func candidateLookupErr(err error, ref string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrapf(err, "candidate %s", ref), errs.ErrNotFound)
	}
	return errs.Wrapf(err, "find candidate %s", ref)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errs.Is(err, errs.ErrConflict):
		return ResultConflict
	default:
		return ResultFailed
	}
}

func reassignMessage(candidateNumber string, key resource.Key, superseded []*assignment.ServiceAssignment, created *assignment.ServiceAssignment) string {
	codes := make([]string, len(superseded))
	for i, prev := range superseded {
		codes[i] = prev.Resource().Code().String()
	}
	return fmt.Sprintf("candidate %s %s: disabled %v, assigned %s",
		candidateNumber, key, codes, created.Resource().Code())
}

// UpdateStatus is the administrative status change. It bypasses the assignment state
// machine and never touches ledger rows.
func (e *Engine) UpdateStatus(ctx context.Context, key resource.Key, code resource.Code, status resource.Status) error {
	return e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, err := tx.Resources().UpdateStatus(ctx, key.Provider, code, status)
		if err != nil {
			return errs.Wrapf(err, "update status of %s", code)
		}
		if !updated {
			return errs.Mark(errs.Newf("resource %s not found for %s", code, key.Provider), errs.ErrNotFound)
		}
		return nil
	})
}
