//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"candidate-assistance/internal/infra"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	repositorymock "candidate-assistance/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	runAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mockErr error
		wantErr bool
	}{
		{name: "queued"},
		{name: "database error", mockErr: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockNotificationWriteQueries(ctrl)
			q.EXPECT().
				CreateNotificationJob(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
					assert.Equal(t, "resource.assigned", arg.Kind)
					assert.Equal(t, "candidate-assistance", arg.Topic)
					assert.Equal(t, "queued", arg.Status)
					assert.True(t, arg.RunAt.Time.Equal(runAt))
					return tt.mockErr
				})

			err := NewNotificationRepository(q, mockDBTX{}).
				CreateJob(context.Background(), "resource.assigned", "candidate-assistance", []byte(`{}`), runAt)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
		})
	}
}
