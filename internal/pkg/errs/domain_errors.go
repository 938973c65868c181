package errs

import "errors"

// Sentinel errors shared by the allocation and assistance use cases.
// Callers classify contextual errors with Mark and test them with errs.Is.
var (
	ErrNotFound              = errors.New("not found")
	ErrConflict              = errors.New("conflict")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrAllocationFailed      = errors.New("allocation failed")
	ErrImportFailed          = errors.New("import failed")
	ErrConfiguration         = errors.New("configuration error")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
