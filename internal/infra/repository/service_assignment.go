package repository

import (
	"context"

	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra"
	"candidate-assistance/internal/infra/repository/converter"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ServiceAssignmentWriteQueries interface {
	CreateServiceAssignment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceAssignmentParams) (uuid.UUID, error)
	LockActiveServiceAssignmentsForCandidate(ctx context.Context, db sqlc.DBTX, arg sqlc.LockActiveServiceAssignmentsForCandidateParams) ([]sqlc.LockActiveServiceAssignmentsForCandidateRow, error)
	MarkServiceAssignmentReassigned(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ServiceAssignmentRepository struct {
	queries ServiceAssignmentWriteQueries
	db      sqlc.DBTX
}

func NewServiceAssignmentRepository(queries ServiceAssignmentWriteQueries, db sqlc.DBTX) *ServiceAssignmentRepository {
	return &ServiceAssignmentRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a ledger row. A second ASSIGNED row for the same slot or resource
// violates a partial unique index and surfaces as DUPLICATE_KEY.
func (r *ServiceAssignmentRepository) Create(ctx context.Context, a *assignment.ServiceAssignment) (uuid.UUID, error) {
	id, err := r.queries.CreateServiceAssignment(ctx, r.db, converter.ServiceAssignmentToCreateParams(a))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service assignment", err)
	}
	return id, nil
}

func (r *ServiceAssignmentRepository) LockActiveForCandidate(ctx context.Context, candidateID uuid.UUID, key resource.Key) ([]*assignment.ServiceAssignment, error) {
	rows, err := r.queries.LockActiveServiceAssignmentsForCandidate(ctx, r.db, sqlc.LockActiveServiceAssignmentsForCandidateParams{
		CandidateID: candidateID,
		Provider:    key.Provider.String(),
		ServiceCode: key.ServiceCode.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock active service assignments", err)
	}

	result := make([]*assignment.ServiceAssignment, len(rows))
	for i, row := range rows {
		result[i] = converter.ServiceAssignmentFromRow(sqlc.ListServiceAssignmentsForCandidateRow(row))
	}
	return result, nil
}

func (r *ServiceAssignmentRepository) MarkReassigned(ctx context.Context, assignmentID uuid.UUID) (bool, error) {
	affected, err := r.queries.MarkServiceAssignmentReassigned(ctx, r.db, assignmentID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark service assignment reassigned", err)
	}
	return affected == 1, nil
}
