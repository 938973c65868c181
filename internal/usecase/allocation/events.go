package allocation

import (
	"context"
	"time"

	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/resource"

	"github.com/google/uuid"
)

type EventType string

const (
	EventAssigned   EventType = "assigned"
	EventReassigned EventType = "reassigned"
	EventExpired    EventType = "expired"
)

// Event describes a committed change. Consumers must treat delivery as best-effort.
type Event struct {
	Type         EventType   `json:"type"`
	Provider     string      `json:"provider"`
	ServiceCode  string      `json:"serviceCode"`
	CandidateID  uuid.UUID   `json:"candidateId"`
	AssignmentID uuid.UUID   `json:"assignmentId"`
	ResourceID   uuid.UUID   `json:"resourceId"`
	ResourceCode string      `json:"resourceCode"`
	ActorID      uuid.UUID   `json:"actorId"`
	OccurredAt   time.Time   `json:"occurredAt"`
	Superseded   []uuid.UUID `json:"superseded,omitempty"`
}

// EventSink receives events after the transaction that produced them has committed.
// Publish must not block on consumers.
type EventSink interface {
	Publish(ctx context.Context, events ...Event)
}

type nopSink struct{}

func (nopSink) Publish(context.Context, ...Event) {}

func NopSink() EventSink {
	return nopSink{}
}

func assignmentEvent(t EventType, a *assignment.ServiceAssignment, at time.Time) Event {
	return Event{
		Type:         t,
		Provider:     a.Provider().String(),
		ServiceCode:  a.ServiceCode().String(),
		CandidateID:  a.CandidateID(),
		AssignmentID: a.ID(),
		ResourceID:   a.Resource().ID(),
		ResourceCode: a.Resource().Code().String(),
		ActorID:      a.ActorID(),
		OccurredAt:   at,
	}
}

func expiredEvent(r *resource.ServiceResource, actorID uuid.UUID, at time.Time) Event {
	return Event{
		Type:         EventExpired,
		Provider:     r.Provider().String(),
		ServiceCode:  r.ServiceCode().String(),
		ResourceID:   r.ID(),
		ResourceCode: r.Code().String(),
		ActorID:      actorID,
		OccurredAt:   at,
	}
}
