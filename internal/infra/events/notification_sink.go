package events

import (
	"context"
	"encoding/json"

	"candidate-assistance/internal/pkg/clock"
	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/allocation"
	"candidate-assistance/internal/usecase/shared"
)

const (
	jobKindEmail       = "email"
	jobTopicAssignment = "resource_assigned"
)

// NotificationJobSink queues an email job for every new assignment. Other event types
// are ignored.
type NotificationJobSink struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewNotificationJobSink(uow shared.UnitOfWork, clk clock.Clock) *NotificationJobSink {
	return &NotificationJobSink{uow: uow, clock: clk}
}

func (s *NotificationJobSink) Name() string { return "notification_jobs" }

func (s *NotificationJobSink) Handle(ctx context.Context, ev allocation.Event) error {
	if ev.Type != allocation.EventAssigned {
		return nil
	}

	payload, err := json.Marshal(map[string]any{
		"type":          jobTopicAssignment,
		"candidate_id":  ev.CandidateID,
		"assignment_id": ev.AssignmentID,
		"provider":      ev.Provider,
		"service_code":  ev.ServiceCode,
		"resource_code": ev.ResourceCode,
	})
	if err != nil {
		return errs.Wrap(err, "marshal notification payload")
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, jobKindEmail, jobTopicAssignment, payload, s.clock.Now())
	})
}
