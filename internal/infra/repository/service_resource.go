package repository

import (
	"context"
	"time"

	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra"
	"candidate-assistance/internal/infra/repository/converter"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceResourceWriteQueries interface {
	CreateServiceResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceResourceParams) (uuid.UUID, error)
	PickAvailableServiceResource(ctx context.Context, db sqlc.DBTX, arg sqlc.PickAvailableServiceResourceParams) (sqlc.ServiceResources, error)
	ClaimServiceResource(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimServiceResourceParams) (int64, error)
	DisableServiceResource(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	UpdateServiceResourceStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceResourceStatusParams) (int64, error)
	ExpireServiceResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireServiceResourcesParams) ([]sqlc.ServiceResources, error)
}

type ServiceResourceRepository struct {
	queries ServiceResourceWriteQueries
	db      sqlc.DBTX
}

func NewServiceResourceRepository(queries ServiceResourceWriteQueries, db sqlc.DBTX) *ServiceResourceRepository {
	return &ServiceResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceResourceRepository) Create(ctx context.Context, res *resource.ServiceResource) (uuid.UUID, error) {
	id, err := r.queries.CreateServiceResource(ctx, r.db, converter.ServiceResourceToCreateParams(res))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service resource", err)
	}
	return id, nil
}

func (r *ServiceResourceRepository) PickAvailable(ctx context.Context, key resource.Key, now time.Time) (*resource.ServiceResource, error) {
	row, err := r.queries.PickAvailableServiceResource(ctx, r.db, sqlc.PickAvailableServiceResourceParams{
		Provider:    key.Provider.String(),
		ServiceCode: key.ServiceCode.String(),
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no available service resource", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to pick available service resource", err)
	}
	return converter.ServiceResourceFromRow(row), nil
}

func (r *ServiceResourceRepository) Claim(ctx context.Context, resourceID uuid.UUID, sentAt time.Time) (bool, error) {
	affected, err := r.queries.ClaimServiceResource(ctx, r.db, sqlc.ClaimServiceResourceParams{
		ID:     resourceID,
		SentAt: pgconv.TimeToPgtype(sentAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim service resource", err)
	}
	return affected == 1, nil
}

func (r *ServiceResourceRepository) Disable(ctx context.Context, resourceID uuid.UUID) error {
	affected, err := r.queries.DisableServiceResource(ctx, r.db, resourceID)
	if err != nil {
		return infra.WrapRepoErr("failed to disable service resource", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("service resource not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceResourceRepository) UpdateStatus(ctx context.Context, provider resource.Provider, code resource.Code, status resource.Status) (bool, error) {
	affected, err := r.queries.UpdateServiceResourceStatus(ctx, r.db, sqlc.UpdateServiceResourceStatusParams{
		Provider:     provider.String(),
		ResourceCode: code.String(),
		Status:       status.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update service resource status", err)
	}
	return affected > 0, nil
}

func (r *ServiceResourceRepository) ExpireOverdue(ctx context.Context, key resource.Key, now time.Time) ([]*resource.ServiceResource, error) {
	rows, err := r.queries.ExpireServiceResources(ctx, r.db, sqlc.ExpireServiceResourcesParams{
		Provider:    key.Provider.String(),
		ServiceCode: key.ServiceCode.String(),
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire service resources", err)
	}
	return converter.ServiceResourcesFromRows(rows), nil
}
