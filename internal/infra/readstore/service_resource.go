package readstore

import (
	"context"

	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra"
	"candidate-assistance/internal/infra/repository/converter"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/internal/pkg/pgconv"
)

type ServiceResourceReadQueries interface {
	GetServiceResourceByProviderAndCode(ctx context.Context, db sqlc.DBTX, arg sqlc.GetServiceResourceByProviderAndCodeParams) (sqlc.ServiceResources, error)
	ExistsServiceResourceByProviderAndCode(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsServiceResourceByProviderAndCodeParams) (bool, error)
	ListAvailableServiceResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableServiceResourcesParams) ([]sqlc.ServiceResources, error)
	CountAvailableServiceResourcesByProvider(ctx context.Context, db sqlc.DBTX, provider string) (int64, error)
	CountAvailableServiceResourcesByProviderAndService(ctx context.Context, db sqlc.DBTX, arg sqlc.CountAvailableServiceResourcesByProviderAndServiceParams) (int64, error)
}

type ServiceResourceReadStore struct {
	queries ServiceResourceReadQueries
}

func NewServiceResourceReadStore(queries ServiceResourceReadQueries) *ServiceResourceReadStore {
	return &ServiceResourceReadStore{
		queries: queries,
	}
}

func (s *ServiceResourceReadStore) FindByCode(ctx context.Context, db sqlc.DBTX, provider resource.Provider, code resource.Code) (*resource.ServiceResource, error) {
	row, err := s.queries.GetServiceResourceByProviderAndCode(ctx, db, sqlc.GetServiceResourceByProviderAndCodeParams{
		Provider:     provider.String(),
		ResourceCode: code.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service resource by code", err)
	}
	return converter.ServiceResourceFromRow(row), nil
}

func (s *ServiceResourceReadStore) Exists(ctx context.Context, db sqlc.DBTX, provider resource.Provider, code resource.Code) (bool, error) {
	exists, err := s.queries.ExistsServiceResourceByProviderAndCode(ctx, db, sqlc.ExistsServiceResourceByProviderAndCodeParams{
		Provider:     provider.String(),
		ResourceCode: code.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check service resource existence", err)
	}
	return exists, nil
}

// FindAvailable returns AVAILABLE resources, earliest expiry first.
func (s *ServiceResourceReadStore) FindAvailable(ctx context.Context, db sqlc.DBTX, key resource.Key) ([]*resource.ServiceResource, error) {
	rows, err := s.queries.ListAvailableServiceResources(ctx, db, sqlc.ListAvailableServiceResourcesParams{
		Provider:    key.Provider.String(),
		ServiceCode: key.ServiceCode.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available service resources", err)
	}
	return converter.ServiceResourcesFromRows(rows), nil
}

func (s *ServiceResourceReadStore) CountAvailableByProvider(ctx context.Context, db sqlc.DBTX, provider resource.Provider) (int64, error) {
	n, err := s.queries.CountAvailableServiceResourcesByProvider(ctx, db, provider.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count available service resources", err)
	}
	return n, nil
}

func (s *ServiceResourceReadStore) CountAvailable(ctx context.Context, db sqlc.DBTX, key resource.Key) (int64, error) {
	n, err := s.queries.CountAvailableServiceResourcesByProviderAndService(ctx, db, sqlc.CountAvailableServiceResourcesByProviderAndServiceParams{
		Provider:    key.Provider.String(),
		ServiceCode: key.ServiceCode.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count available service resources", err)
	}
	return n, nil
}
