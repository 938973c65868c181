//go:build unit

package readstore

import (
	"context"
	"testing"

	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/tests/common/builder"
	readstoremock "candidate-assistance/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServiceResourceReadStore_FindByCode(t *testing.T) {
	b := builder.NewServiceResourceBuilder().WithCode("ACC-1")

	tests := []struct {
		name     string
		row      sqlc.ServiceResources
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "基本成功ケース", row: b.BuildInfra()},
		{name: "unknown code", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockServiceResourceReadQueries(ctrl)
			q.EXPECT().
				GetServiceResourceByProviderAndCode(gomock.Any(), gomock.Any(), sqlc.GetServiceResourceByProviderAndCodeParams{
					Provider:     builder.DefaultProvider,
					ResourceCode: "ACC-1",
				}).
				Return(tt.row, tt.mockErr)

			got, err := NewServiceResourceReadStore(q).FindByCode(context.Background(), mockDBTX{}, builder.DefaultProvider, "ACC-1")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID, got.ID())
			assert.Equal(t, b.Key(), got.Key())
			assert.Equal(t, b.ExpiresAt.Unix(), got.ExpiresAt().Unix())
		})
	}
}

func TestServiceResourceReadStore_FindAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockServiceResourceReadQueries(ctrl)
	soon := builder.NewServiceResourceBuilder().WithCode("SOON")
	later := builder.NewServiceResourceBuilder().WithCode("LATER").WithoutExpiry()

	q.EXPECT().
		ListAvailableServiceResources(gomock.Any(), gomock.Any(), sqlc.ListAvailableServiceResourcesParams{
			Provider:    soon.Provider,
			ServiceCode: soon.ServiceCode,
		}).
		Return([]sqlc.ServiceResources{soon.BuildInfra(), later.BuildInfra()}, nil)

	got, err := NewServiceResourceReadStore(q).FindAvailable(context.Background(), mockDBTX{}, soon.Key())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, resource.Code("SOON"), got[0].Code())
	assert.Nil(t, got[1].ExpiresAt())
}

func TestServiceResourceReadStore_Counts(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockServiceResourceReadQueries(ctrl)
	store := NewServiceResourceReadStore(q)
	key := builder.NewServiceResourceBuilder().Key()

	q.EXPECT().CountAvailableServiceResourcesByProvider(gomock.Any(), gomock.Any(), "DUOLINGO").Return(int64(7), nil)
	q.EXPECT().CountAvailableServiceResourcesByProviderAndService(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), nil)
	q.EXPECT().ExistsServiceResourceByProviderAndCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, assert.AnError)

	n, err := store.CountAvailableByProvider(context.Background(), mockDBTX{}, key.Provider)
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)

	n, err = store.CountAvailable(context.Background(), mockDBTX{}, key)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	_, err = store.Exists(context.Background(), mockDBTX{}, key.Provider, "ACC-1")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
