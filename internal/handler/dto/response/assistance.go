package response

import (
	"time"

	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/candidate"
	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type ResourceResponse struct {
	ID          string     `json:"id"`
	Provider    string     `json:"provider"`
	ServiceCode string     `json:"service_code"`
	Code        string     `json:"code"`
	Status      string     `json:"status"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromResource(r *resource.ServiceResource) *ResourceResponse {
	return &ResourceResponse{
		ID:          r.ID().String(),
		Provider:    r.Provider().String(),
		ServiceCode: r.ServiceCode().String(),
		Code:        r.Code().String(),
		Status:      r.Status().String(),
		ExpiresAt:   r.ExpiresAt(),
		SentAt:      r.SentAt(),
		CreatedAt:   r.CreatedAt(),
	}
}

func FromResources(rs []*resource.ServiceResource) []*ResourceResponse {
	res := make([]*ResourceResponse, len(rs))
	for i, r := range rs {
		res[i] = FromResource(r)
	}
	return res
}

type AssignmentResponse struct {
	ID          string            `json:"id"`
	Provider    string            `json:"provider"`
	ServiceCode string            `json:"service_code"`
	CandidateID string            `json:"candidate_id"`
	ActorID     string            `json:"actor_id"`
	Status      string            `json:"status"`
	AssignedAt  time.Time         `json:"assigned_at"`
	Resource    *ResourceResponse `json:"resource"`
}

func FromAssignment(a *assignment.ServiceAssignment) *AssignmentResponse {
	res := &AssignmentResponse{
		ID:          a.ID().String(),
		Provider:    a.Provider().String(),
		ServiceCode: a.ServiceCode().String(),
		CandidateID: a.CandidateID().String(),
		ActorID:     a.ActorID().String(),
		Status:      a.Status().String(),
		AssignedAt:  a.AssignedAt(),
	}
	if r := a.Resource(); r != nil {
		res.Resource = FromResource(r)
	}
	return res
}

func FromAssignments(as []*assignment.ServiceAssignment) []*AssignmentResponse {
	res := make([]*AssignmentResponse, len(as))
	for i, a := range as {
		res[i] = FromAssignment(a)
	}
	return res
}

type CandidateResponse struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

func FromCandidate(c *candidate.Candidate) *CandidateResponse {
	return &CandidateResponse{
		ID:       c.ID().String(),
		Number:   c.Number(),
		Email:    c.Email(),
		FullName: c.FullName(),
	}
}

type CountResponse struct {
	Provider    string `json:"provider"`
	ServiceCode string `json:"service_code,omitempty"`
	Available   int64  `json:"available"`
}

type ImportSummaryResponse struct {
	Read     int `json:"read"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func FromImportSummary(s *shared.ImportSummary) (*ImportSummaryResponse, error) {
	var res ImportSummaryResponse
	if err := copier.Copy(&res, s); err != nil {
		return nil, err
	}
	return &res, nil
}

type ExpireResponse struct {
	Expired int `json:"expired"`
}

type ServiceKeyResponse struct {
	Provider    string `json:"provider"`
	ServiceCode string `json:"service_code"`
	Key         string `json:"key"`
}
