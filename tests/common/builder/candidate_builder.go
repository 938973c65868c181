//go:build unit || e2e

package builder

import (
	"time"

	"candidate-assistance/internal/domain/candidate"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CandidateBuilder struct {
	ID       uuid.UUID
	Number   string
	Email    string
	FullName string
}

func NewCandidateBuilder() *CandidateBuilder {
	id := uuid.New()
	return &CandidateBuilder{
		ID:       id,
		Number:   "C-" + id.String()[:8],
		Email:    "candidate@example.com",
		FullName: "Test Candidate",
	}
}

func (b *CandidateBuilder) With(mutate func(*CandidateBuilder)) *CandidateBuilder {
	mutate(b)
	return b
}

func (b *CandidateBuilder) BuildDomain() *candidate.Candidate {
	return candidate.Reconstruct(b.ID, b.Number, b.Email, b.FullName)
}

func (b *CandidateBuilder) BuildInfra() sqlc.Candidates {
	return sqlc.Candidates{
		ID:              b.ID,
		CandidateNumber: b.Number,
		Email:           b.Email,
		FullName:        b.FullName,
		CreatedAt:       pgconv.TimeToPgtype(time.Now()),
	}
}

func (b *CandidateBuilder) WithNumber(number string) *CandidateBuilder {
	b.Number = number
	return b
}

func (b *CandidateBuilder) WithEmail(email string) *CandidateBuilder {
	b.Email = email
	return b
}
