package assignment

import (
	"errors"
	"time"

	"candidate-assistance/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid assignment status")
	ErrMissingResource  = errors.New("assignment requires a resource")
	ErrMissingCandidate = errors.New("assignment requires a candidate")
)

type Status string

const (
	StatusAssigned   Status = "ASSIGNED"
	StatusReassigned Status = "REASSIGNED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAssigned, StatusReassigned:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// ServiceAssignment is one ledger row linking a resource to a candidate.
// Rows are never deleted; a reassign moves the active row to REASSIGNED.
type ServiceAssignment struct {
	id          uuid.UUID
	provider    resource.Provider
	serviceCode resource.ServiceCode
	resource    *resource.ServiceResource
	candidateID uuid.UUID
	actorID     uuid.UUID
	status      Status
	assignedAt  time.Time
}

func NewServiceAssignment(
	res *resource.ServiceResource,
	candidateID uuid.UUID,
	actorID uuid.UUID,
	assignedAt time.Time,
) (*ServiceAssignment, error) {
	if res == nil {
		return nil, ErrMissingResource
	}
	if candidateID == uuid.Nil {
		return nil, ErrMissingCandidate
	}

	return &ServiceAssignment{
		id:          uuid.New(),
		provider:    res.Provider(),
		serviceCode: res.ServiceCode(),
		resource:    res,
		candidateID: candidateID,
		actorID:     actorID,
		status:      StatusAssigned,
		assignedAt:  assignedAt,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	res *resource.ServiceResource,
	candidateID uuid.UUID,
	actorID uuid.UUID,
	status Status,
	assignedAt time.Time,
) *ServiceAssignment {
	return &ServiceAssignment{
		id:          id,
		provider:    res.Provider(),
		serviceCode: res.ServiceCode(),
		resource:    res,
		candidateID: candidateID,
		actorID:     actorID,
		status:      status,
		assignedAt:  assignedAt,
	}
}

func (a *ServiceAssignment) IsActive() bool {
	return a.status == StatusAssigned
}

// WithID returns a copy carrying the store-assigned id.
func (a *ServiceAssignment) WithID(id uuid.UUID) *ServiceAssignment {
	cp := *a
	cp.id = id
	return &cp
}

func (a *ServiceAssignment) ID() uuid.UUID                        { return a.id }
func (a *ServiceAssignment) Provider() resource.Provider          { return a.provider }
func (a *ServiceAssignment) ServiceCode() resource.ServiceCode    { return a.serviceCode }
func (a *ServiceAssignment) Resource() *resource.ServiceResource { return a.resource }
func (a *ServiceAssignment) CandidateID() uuid.UUID               { return a.candidateID }
func (a *ServiceAssignment) ActorID() uuid.UUID                   { return a.actorID }
func (a *ServiceAssignment) Status() Status                       { return a.status }
func (a *ServiceAssignment) AssignedAt() time.Time                { return a.assignedAt }
