//go:build unit

package readstore

import (
	"context"
	"testing"

	"candidate-assistance/internal/infra"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/tests/common/builder"
	readstoremock "candidate-assistance/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (mockDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (mockDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func TestCandidateReadStore_FindByNumber(t *testing.T) {
	stored := builder.NewCandidateBuilder().WithNumber("C-100").BuildInfra()

	tests := []struct {
		name       string
		mockReturn sqlc.Candidates
		mockErr    error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "基本成功ケース", mockReturn: stored},
		{name: "candidate not found", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockCandidateReadQueries(ctrl)
			q.EXPECT().GetCandidateByNumber(gomock.Any(), gomock.Any(), "C-100").Return(tt.mockReturn, tt.mockErr)

			got, err := NewCandidateReadStore(q).FindByNumber(context.Background(), mockDBTX{}, "C-100")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, got.ID())
			assert.Equal(t, "C-100", got.Number())
			assert.Equal(t, stored.Email, got.Email())
		})
	}
}

func TestCandidateReadStore_FindByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockCandidateReadQueries(ctrl)
	id := uuid.New()
	q.EXPECT().GetCandidateByID(gomock.Any(), gomock.Any(), id).Return(sqlc.Candidates{}, pgx.ErrNoRows)

	_, err := NewCandidateReadStore(q).FindByID(context.Background(), mockDBTX{}, id)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestCandidateReadStore_SavedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockCandidateReadQueries(ctrl)
	store := NewCandidateReadStore(q)
	listID := uuid.New()
	first := builder.NewCandidateBuilder().WithNumber("C-1").BuildInfra()
	second := builder.NewCandidateBuilder().WithNumber("C-2").BuildInfra()

	q.EXPECT().GetSavedListByID(gomock.Any(), gomock.Any(), listID).Return(sqlc.SavedLists{ID: listID, Name: "spring"}, nil)
	q.EXPECT().ListSavedListCandidates(gomock.Any(), gomock.Any(), listID).Return([]sqlc.Candidates{first, second}, nil)

	list, err := store.FindSavedList(context.Background(), mockDBTX{}, listID)
	require.NoError(t, err)
	assert.Equal(t, "spring", list.Name())

	members, err := store.FindSavedListCandidates(context.Background(), mockDBTX{}, listID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "C-1", members[0].Number())
	assert.Equal(t, "C-2", members[1].Number())

	q.EXPECT().GetSavedListByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(sqlc.SavedLists{}, pgx.ErrNoRows)
	_, err = store.FindSavedList(context.Background(), mockDBTX{}, uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
