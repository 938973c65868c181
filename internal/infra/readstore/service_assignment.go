package readstore

import (
	"context"

	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra"
	"candidate-assistance/internal/infra/repository/converter"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceAssignmentReadQueries interface {
	ListServiceAssignmentsForCandidate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListServiceAssignmentsForCandidateParams) ([]sqlc.ListServiceAssignmentsForCandidateRow, error)
	GetLatestCandidateIDForResource(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLatestCandidateIDForResourceParams) (uuid.UUID, error)
}

type ServiceAssignmentReadStore struct {
	queries ServiceAssignmentReadQueries
}

func NewServiceAssignmentReadStore(queries ServiceAssignmentReadQueries) *ServiceAssignmentReadStore {
	return &ServiceAssignmentReadStore{
		queries: queries,
	}
}

// FindForCandidate returns every ledger row of the candidate's slot, oldest first.
func (s *ServiceAssignmentReadStore) FindForCandidate(ctx context.Context, db sqlc.DBTX, candidateID uuid.UUID, key resource.Key) ([]*assignment.ServiceAssignment, error) {
	rows, err := s.queries.ListServiceAssignmentsForCandidate(ctx, db, sqlc.ListServiceAssignmentsForCandidateParams{
		CandidateID: candidateID,
		Provider:    key.Provider.String(),
		ServiceCode: key.ServiceCode.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service assignments", err)
	}

	result := make([]*assignment.ServiceAssignment, len(rows))
	for i, row := range rows {
		result[i] = converter.ServiceAssignmentFromRow(row)
	}
	return result, nil
}

func (s *ServiceAssignmentReadStore) LatestCandidateID(ctx context.Context, db sqlc.DBTX, key resource.Key, resourceID uuid.UUID) (uuid.UUID, error) {
	id, err := s.queries.GetLatestCandidateIDForResource(ctx, db, sqlc.GetLatestCandidateIDForResourceParams{
		Provider:    key.Provider.String(),
		ServiceCode: key.ServiceCode.String(),
		ResourceID:  resourceID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("resource was never assigned", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find latest assignment for resource", err)
	}
	return id, nil
}
