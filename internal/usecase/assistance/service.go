package assistance

import (
	"context"
	"io"
	"log/slog"

	"candidate-assistance/internal/domain/actor"
	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/candidate"
	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra"
	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/allocation"
	"candidate-assistance/internal/usecase/shared"

	"github.com/google/uuid"
)

// Importer loads provider inventory into the resource store.
type Importer interface {
	Import(ctx context.Context, key resource.Key, r io.Reader) (*shared.ImportSummary, error)
}

// ObjectSource opens inventory files kept in object storage.
type ObjectSource interface {
	Open(ctx context.Context, objectKey string) (io.ReadCloser, error)
}

// Strategy bundles what differs between providers. Importer may be nil.
type Strategy struct {
	Provider    resource.Provider
	ServiceCode resource.ServiceCode
	Allocator   allocation.ResourceAllocator
	Importer    Importer
}

func (s Strategy) Key() resource.Key {
	return resource.Key{Provider: s.Provider, ServiceCode: s.ServiceCode}
}

// Service is the caller-facing API for one provider and service code. All mutations
// go through the engine; the service itself only reads.
type Service struct {
	strategy Strategy
	engine   *allocation.Engine
	uow      shared.UnitOfWork
	bucket   ObjectSource
	logger   *slog.Logger
}

type Option func(*Service)

func WithBucket(src ObjectSource) Option {
	return func(s *Service) { s.bucket = src }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(strategy Strategy, engine *allocation.Engine, uow shared.UnitOfWork, opts ...Option) (*Service, error) {
	if strategy.Provider == "" || strategy.ServiceCode == "" {
		return nil, errs.Mark(errs.New("strategy requires provider and service code"), errs.ErrConfiguration)
	}
	if strategy.Allocator == nil {
		return nil, errs.Mark(errs.Newf("strategy %s has no allocator", strategy.Key()), errs.ErrConfiguration)
	}
	if allocation.KeyOf(strategy.Allocator) != strategy.Key() {
		return nil, errs.Mark(errs.Newf("allocator for %s registered under %s", allocation.KeyOf(strategy.Allocator), strategy.Key()), errs.ErrConfiguration)
	}

	s := &Service{
		strategy: strategy,
		engine:   engine,
		uow:      uow,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) Key() resource.Key                { return s.strategy.Key() }
func (s *Service) Provider() resource.Provider       { return s.strategy.Provider }
func (s *Service) ServiceCode() resource.ServiceCode { return s.strategy.ServiceCode }

// AssignToCandidate fails with ErrConflict before touching the pool when the candidate
// already holds an active assignment.
func (s *Service) AssignToCandidate(ctx context.Context, candidateID uuid.UUID, act actor.Actor) (*assignment.ServiceAssignment, error) {
	existing, err := s.GetAssignmentsForCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if hasActive(existing) {
		return nil, errs.Mark(errs.Newf("candidate %s already holds %s; reassign instead", candidateID, s.Key()), errs.ErrConflict)
	}
	return s.engine.Assign(ctx, s.strategy.Allocator, candidateID, act)
}

func (s *Service) ReassignForCandidate(ctx context.Context, candidateNumber string, act actor.Actor) (*assignment.ServiceAssignment, error) {
	return s.engine.Reassign(ctx, s.strategy.Allocator, candidateNumber, act)
}

// AssignToList assigns to every list member lacking an active assignment, in list order.
// It refuses upfront, with no mutation, when the list is larger than the available pool
// or the pool is empty. Members already holding a resource are skipped, so the result
// may be shorter than the list. When a step fails the assignments made so far are
// returned with the error.
func (s *Service) AssignToList(ctx context.Context, listID uuid.UUID, act actor.Actor) ([]*assignment.ServiceAssignment, error) {
	reads := s.uow.Reads()

	if _, err := reads.SavedListByID(ctx, listID); err != nil {
		return nil, notFoundOr(err, "saved list %s", listID)
	}
	candidates, err := reads.SavedListCandidates(ctx, listID)
	if err != nil {
		return nil, errs.Wrapf(err, "resolve saved list %s", listID)
	}

	available, err := s.GetAvailableResources(ctx)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 || len(candidates) > len(available) {
		return nil, errs.Mark(
			errs.Newf("list %s has %d candidates but only %d %s resources are available", listID, len(candidates), len(available), s.Key()),
			errs.ErrInsufficientResources,
		)
	}

	created := make([]*assignment.ServiceAssignment, 0, len(candidates))
	for _, c := range candidates {
		a, err := s.assignListMember(ctx, c, act)
		if err != nil {
			return created, errs.Wrapf(err, "assign list %s member %s", listID, c.Number())
		}
		if a != nil {
			created = append(created, a)
		}
	}
	return created, nil
}

func (s *Service) assignListMember(ctx context.Context, c *candidate.Candidate, act actor.Actor) (*assignment.ServiceAssignment, error) {
	a, err := s.AssignToCandidate(ctx, c.ID(), act)
	if err != nil {
		if errs.Is(err, errs.ErrConflict) {
			s.logger.DebugContext(ctx, "skipping candidate with active assignment",
				"candidate_number", c.Number(),
				"key", s.Key().String())
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// GetAssignmentsForCandidate returns ASSIGNED and REASSIGNED rows, oldest first.
func (s *Service) GetAssignmentsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]*assignment.ServiceAssignment, error) {
	rows, err := s.uow.Reads().AssignmentsForCandidate(ctx, candidateID, s.Key())
	if err != nil {
		return nil, errs.Wrapf(err, "assignments of candidate %s", candidateID)
	}
	return rows, nil
}

func (s *Service) GetResourcesForCandidate(ctx context.Context, candidateID uuid.UUID) ([]*resource.ServiceResource, error) {
	rows, err := s.GetAssignmentsForCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	result := make([]*resource.ServiceResource, len(rows))
	for i, a := range rows {
		result[i] = a.Resource()
	}
	return result, nil
}

func (s *Service) GetAvailableResources(ctx context.Context) ([]*resource.ServiceResource, error) {
	rows, err := s.uow.Reads().AvailableResources(ctx, s.Key())
	if err != nil {
		return nil, errs.Wrapf(err, "available %s resources", s.Key())
	}
	return rows, nil
}

func (s *Service) GetResourceForResourceCode(ctx context.Context, code string) (*resource.ServiceResource, error) {
	rc, err := resource.NewCode(code)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "resource code %q", code), errs.ErrNotFound)
	}
	res, err := s.uow.Reads().ResourceByCode(ctx, s.strategy.Provider, rc)
	if err != nil {
		return nil, notFoundOr(err, "resource %s", rc)
	}
	return res, nil
}

// GetCandidateForResourceCode returns the candidate of the latest ledger row for the
// resource, or nil without error when the resource was never assigned.
func (s *Service) GetCandidateForResourceCode(ctx context.Context, code string) (*candidate.Candidate, error) {
	res, err := s.GetResourceForResourceCode(ctx, code)
	if err != nil {
		return nil, err
	}

	reads := s.uow.Reads()
	candidateID, err := reads.LatestCandidateIDForResource(ctx, res.Key(), res.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrapf(err, "latest assignment of %s", res.Code())
	}

	c, err := reads.CandidateByID(ctx, candidateID)
	if err != nil {
		return nil, notFoundOr(err, "candidate %s", candidateID)
	}
	return c, nil
}

func (s *Service) UpdateResourceStatus(ctx context.Context, code string, status resource.Status) error {
	rc, err := resource.NewCode(code)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "resource code %q", code), errs.ErrNotFound)
	}
	if !status.IsValid() {
		return errs.Mark(resource.ErrInvalidStatus, errs.ErrDomainValidation)
	}
	return s.engine.UpdateStatus(ctx, s.Key(), rc, status)
}

func (s *Service) CountAvailableForProvider(ctx context.Context) (int64, error) {
	n, err := s.uow.Reads().CountAvailableByProvider(ctx, s.strategy.Provider)
	if err != nil {
		return 0, errs.Wrapf(err, "count available %s resources", s.strategy.Provider)
	}
	return n, nil
}

func (s *Service) CountAvailableForProviderAndService(ctx context.Context) (int64, error) {
	n, err := s.uow.Reads().CountAvailable(ctx, s.Key())
	if err != nil {
		return 0, errs.Wrapf(err, "count available %s resources", s.Key())
	}
	return n, nil
}

func (s *Service) ImportInventory(ctx context.Context, r io.Reader) (*shared.ImportSummary, error) {
	if s.strategy.Importer == nil {
		return nil, errs.Mark(errs.Newf("no importer configured for %s", s.Key()), errs.ErrImportFailed)
	}
	summary, err := s.strategy.Importer.Import(ctx, s.Key(), r)
	if err != nil {
		if errs.Is(err, errs.ErrImportFailed) {
			return nil, err
		}
		return nil, errs.Wrapf(err, "import %s inventory", s.Key())
	}
	s.logger.InfoContext(ctx, "inventory imported",
		"key", s.Key().String(),
		"read", summary.Read,
		"imported", summary.Imported,
		"skipped", summary.Skipped)
	return summary, nil
}

func (s *Service) ImportInventoryFromBucket(ctx context.Context, objectKey string) (*shared.ImportSummary, error) {
	if s.bucket == nil {
		return nil, errs.Mark(errs.Newf("no inventory bucket configured for %s", s.Key()), errs.ErrImportFailed)
	}
	body, err := s.bucket.Open(ctx, objectKey)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "open inventory object %s", objectKey), errs.ErrImportFailed)
	}
	defer body.Close()

	return s.ImportInventory(ctx, body)
}

// ExpireOverdueResources runs the expiry sweep for this service and returns how many
// resources moved to EXPIRED.
func (s *Service) ExpireOverdueResources(ctx context.Context) (int, error) {
	expired, err := s.engine.ExpireOverdue(ctx, s.Key())
	if err != nil {
		return 0, err
	}
	return len(expired), nil
}

func hasActive(rows []*assignment.ServiceAssignment) bool {
	for _, a := range rows {
		if a.IsActive() {
			return true
		}
	}
	return false
}

func notFoundOr(err error, format string, args ...any) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrapf(err, format, args...), errs.ErrNotFound)
	}
	return errs.Wrapf(err, format, args...)
}
