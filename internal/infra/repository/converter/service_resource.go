package converter

import (
	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/resource"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/internal/pkg/pgconv"
)

func ServiceResourceToCreateParams(r *resource.ServiceResource) sqlc.CreateServiceResourceParams {
	return sqlc.CreateServiceResourceParams{
		Provider:     r.Provider().String(),
		ServiceCode:  r.ServiceCode().String(),
		ResourceCode: r.Code().String(),
		Status:       r.Status().String(),
		ExpiresAt:    pgconv.TimePtrToPgtype(r.ExpiresAt()),
		SentAt:       pgconv.TimePtrToPgtype(r.SentAt()),
	}
}

func ServiceResourceFromRow(row sqlc.ServiceResources) *resource.ServiceResource {
	return resource.Reconstruct(
		row.ID,
		resource.Provider(row.Provider),
		resource.ServiceCode(row.ServiceCode),
		resource.Code(row.ResourceCode),
		resource.Status(row.Status),
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.SentAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func ServiceResourcesFromRows(rows []sqlc.ServiceResources) []*resource.ServiceResource {
	result := make([]*resource.ServiceResource, len(rows))
	for i, row := range rows {
		result[i] = ServiceResourceFromRow(row)
	}
	return result
}

func ServiceAssignmentToCreateParams(a *assignment.ServiceAssignment) sqlc.CreateServiceAssignmentParams {
	return sqlc.CreateServiceAssignmentParams{
		Provider:    a.Provider().String(),
		ServiceCode: a.ServiceCode().String(),
		ResourceID:  a.Resource().ID(),
		CandidateID: a.CandidateID(),
		ActorID:     a.ActorID(),
		Status:      a.Status().String(),
		AssignedAt:  pgconv.TimeToPgtype(a.AssignedAt()),
	}
}

// ServiceAssignmentFromRow maps a ledger row joined with its resource columns.
func ServiceAssignmentFromRow(row sqlc.ListServiceAssignmentsForCandidateRow) *assignment.ServiceAssignment {
	res := resource.Reconstruct(
		row.ResourceID,
		resource.Provider(row.Provider),
		resource.ServiceCode(row.ServiceCode),
		resource.Code(row.ResourceCode),
		resource.Status(row.ResourceStatus),
		pgconv.TimePtrFromPgtype(row.ResourceExpiresAt),
		pgconv.TimePtrFromPgtype(row.ResourceSentAt),
		pgconv.TimeFromPgtype(row.ResourceCreatedAt),
	)

	return assignment.Reconstruct(
		row.ID,
		res,
		row.CandidateID,
		row.ActorID,
		assignment.Status(row.Status),
		pgconv.TimeFromPgtype(row.AssignedAt),
	)
}
