//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/infra"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/internal/pkg/pgconv"
	"candidate-assistance/tests/common/builder"
	readstoremock "candidate-assistance/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServiceAssignmentReadStore_FindForCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockServiceAssignmentReadQueries(ctrl)
	candidateID := uuid.New()
	old := builder.NewServiceResourceBuilder().WithStatus("DISABLED")
	current := builder.NewServiceResourceBuilder().WithStatus("ASSIGNED")
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	row := func(b *builder.ServiceResourceBuilder, status string, at time.Time) sqlc.ListServiceAssignmentsForCandidateRow {
		return sqlc.ListServiceAssignmentsForCandidateRow{
			ID:                uuid.New(),
			Provider:          b.Provider,
			ServiceCode:       b.ServiceCode,
			ResourceID:        b.ID,
			CandidateID:       candidateID,
			ActorID:           uuid.New(),
			Status:            status,
			AssignedAt:        pgconv.TimeToPgtype(at),
			ResourceCode:      b.Code,
			ResourceStatus:    b.Status,
			ResourceExpiresAt: pgconv.TimePtrToPgtype(b.ExpiresAt),
			ResourceCreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
		}
	}

	q.EXPECT().
		ListServiceAssignmentsForCandidate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]sqlc.ListServiceAssignmentsForCandidateRow{
			row(old, "REASSIGNED", t0),
			row(current, "ASSIGNED", t0.Add(time.Hour)),
		}, nil)

	got, err := NewServiceAssignmentReadStore(q).FindForCandidate(context.Background(), mockDBTX{}, candidateID, old.Key())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, assignment.StatusReassigned, got[0].Status())
	assert.Equal(t, "DISABLED", got[0].Resource().Status().String())
	assert.True(t, got[1].IsActive())
	assert.Equal(t, current.ID, got[1].Resource().ID())
}

func TestServiceAssignmentReadStore_LatestCandidateID(t *testing.T) {
	key := builder.NewServiceResourceBuilder().Key()
	candidateID := uuid.New()

	tests := []struct {
		name     string
		mockID   uuid.UUID
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "基本成功ケース", mockID: candidateID},
		{name: "never assigned", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockServiceAssignmentReadQueries(ctrl)
			q.EXPECT().GetLatestCandidateIDForResource(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.mockID, tt.mockErr)

			got, err := NewServiceAssignmentReadStore(q).LatestCandidateID(context.Background(), mockDBTX{}, key, uuid.New())

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, candidateID, got)
		})
	}
}
