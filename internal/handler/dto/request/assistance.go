package request

import (
	"candidate-assistance/internal/domain/resource"
)

type UpdateResourceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *UpdateResourceStatusRequest) ToDomain() (resource.Status, error) {
	return resource.ParseStatus(r.Status)
}

type BucketImportRequest struct {
	Key string `json:"key" binding:"required"`
}
