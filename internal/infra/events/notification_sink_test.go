//go:build unit

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"candidate-assistance/internal/pkg/clock"
	"candidate-assistance/internal/usecase/allocation"
	"candidate-assistance/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationJobSink_Handle(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	store := memstore.New()
	sink := NewNotificationJobSink(store, clock.NewMockClock(now))
	assignmentID := uuid.New()

	require.NoError(t, sink.Handle(context.Background(), allocation.Event{
		Type:         allocation.EventAssigned,
		AssignmentID: assignmentID,
		CandidateID:  uuid.New(),
		ResourceCode: "ACC-1",
	}))
	require.NoError(t, sink.Handle(context.Background(), allocation.Event{Type: allocation.EventExpired}))
	require.NoError(t, sink.Handle(context.Background(), allocation.Event{Type: allocation.EventReassigned}))

	jobs := store.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "email", jobs[0].Kind)
	assert.Equal(t, "resource_assigned", jobs[0].Topic)
	assert.True(t, jobs[0].RunAt.Equal(now))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &payload))
	assert.Equal(t, assignmentID.String(), payload["assignment_id"])
	assert.Equal(t, "ACC-1", payload["resource_code"])
}
