package readstore

import (
	"context"

	"candidate-assistance/internal/domain/candidate"
	"candidate-assistance/internal/infra"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CandidateReadQueries interface {
	GetCandidateByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Candidates, error)
	GetCandidateByNumber(ctx context.Context, db sqlc.DBTX, candidateNumber string) (sqlc.Candidates, error)
	GetSavedListByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SavedLists, error)
	ListSavedListCandidates(ctx context.Context, db sqlc.DBTX, savedListID uuid.UUID) ([]sqlc.Candidates, error)
}

type CandidateReadStore struct {
	queries CandidateReadQueries
}

func NewCandidateReadStore(queries CandidateReadQueries) *CandidateReadStore {
	return &CandidateReadStore{
		queries: queries,
	}
}

func (s *CandidateReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*candidate.Candidate, error) {
	row, err := s.queries.GetCandidateByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("candidate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find candidate by ID", err)
	}
	return toCandidate(row), nil
}

func (s *CandidateReadStore) FindByNumber(ctx context.Context, db sqlc.DBTX, number string) (*candidate.Candidate, error) {
	row, err := s.queries.GetCandidateByNumber(ctx, db, number)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("candidate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find candidate by number", err)
	}
	return toCandidate(row), nil
}

func (s *CandidateReadStore) FindSavedList(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*candidate.SavedList, error) {
	row, err := s.queries.GetSavedListByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("saved list not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find saved list", err)
	}
	return candidate.ReconstructSavedList(row.ID, row.Name), nil
}

// FindSavedListCandidates returns the list members in list order.
func (s *CandidateReadStore) FindSavedListCandidates(ctx context.Context, db sqlc.DBTX, listID uuid.UUID) ([]*candidate.Candidate, error) {
	rows, err := s.queries.ListSavedListCandidates(ctx, db, listID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list saved list candidates", err)
	}

	result := make([]*candidate.Candidate, len(rows))
	for i, row := range rows {
		result[i] = toCandidate(row)
	}
	return result, nil
}

func toCandidate(row sqlc.Candidates) *candidate.Candidate {
	return candidate.Reconstruct(row.ID, row.CandidateNumber, row.Email, row.FullName)
}
