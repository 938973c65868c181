package shared

import (
	"context"
	"time"

	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/candidate"
	"candidate-assistance/internal/domain/resource"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Single query operations outside any explicit transaction
	Reads() Reads
}

type Tx interface {
	Resources() ServiceResourceRepository
	Assignments() ServiceAssignmentRepository
	Notifications() NotificationRepository
	Reads() Reads
}

// Reads is the read side shared by use cases. Lookups of a single row return an
// infra.RepositoryError of kind NOT_FOUND when the row is absent.
type Reads interface {
	CandidateByID(ctx context.Context, id uuid.UUID) (*candidate.Candidate, error)
	CandidateByNumber(ctx context.Context, number string) (*candidate.Candidate, error)
	SavedListByID(ctx context.Context, id uuid.UUID) (*candidate.SavedList, error)
	SavedListCandidates(ctx context.Context, listID uuid.UUID) ([]*candidate.Candidate, error)

	ResourceByCode(ctx context.Context, provider resource.Provider, code resource.Code) (*resource.ServiceResource, error)
	ResourceExists(ctx context.Context, provider resource.Provider, code resource.Code) (bool, error)
	AvailableResources(ctx context.Context, key resource.Key) ([]*resource.ServiceResource, error)
	CountAvailableByProvider(ctx context.Context, provider resource.Provider) (int64, error)
	CountAvailable(ctx context.Context, key resource.Key) (int64, error)

	AssignmentsForCandidate(ctx context.Context, candidateID uuid.UUID, key resource.Key) ([]*assignment.ServiceAssignment, error)
	LatestCandidateIDForResource(ctx context.Context, key resource.Key, resourceID uuid.UUID) (uuid.UUID, error)
}

type ServiceResourceRepository interface {
	Create(ctx context.Context, res *resource.ServiceResource) (uuid.UUID, error)
	// PickAvailable locks and returns the next AVAILABLE resource not expired at now.
	PickAvailable(ctx context.Context, key resource.Key, now time.Time) (*resource.ServiceResource, error)
	// Claim moves the resource from AVAILABLE to ASSIGNED. It reports false when the
	// resource was no longer AVAILABLE.
	Claim(ctx context.Context, resourceID uuid.UUID, sentAt time.Time) (bool, error)
	Disable(ctx context.Context, resourceID uuid.UUID) error
	UpdateStatus(ctx context.Context, provider resource.Provider, code resource.Code, status resource.Status) (bool, error)
	ExpireOverdue(ctx context.Context, key resource.Key, now time.Time) ([]*resource.ServiceResource, error)
}

type ServiceAssignmentRepository interface {
	Create(ctx context.Context, a *assignment.ServiceAssignment) (uuid.UUID, error)
	// LockActiveForCandidate returns the ASSIGNED rows of a candidate's slot, locked until commit.
	LockActiveForCandidate(ctx context.Context, candidateID uuid.UUID, key resource.Key) ([]*assignment.ServiceAssignment, error)
	MarkReassigned(ctx context.Context, assignmentID uuid.UUID) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
