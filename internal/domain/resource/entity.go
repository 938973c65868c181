package resource

import (
	"time"

	"github.com/google/uuid"
)

// ServiceResource is a single allocatable item (a coupon, a voucher) of a provider's service.
type ServiceResource struct {
	id          uuid.UUID
	provider    Provider
	serviceCode ServiceCode
	code        Code
	status      Status
	expiresAt   *time.Time
	sentAt      *time.Time
	createdAt   time.Time
}

// NewServiceResource builds a resource for import. Imported rows may carry a non-AVAILABLE status.
func NewServiceResource(
	provider Provider,
	serviceCode ServiceCode,
	code Code,
	status Status,
	expiresAt, sentAt *time.Time,
) (*ServiceResource, error) {
	if provider == "" {
		return nil, ErrEmptyProvider
	}
	if serviceCode == "" {
		return nil, ErrEmptyServiceCode
	}
	if code == "" {
		return nil, ErrEmptyCode
	}
	if status == "" {
		status = StatusAvailable
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &ServiceResource{
		id:          uuid.New(),
		provider:    provider,
		serviceCode: serviceCode,
		code:        code,
		status:      status,
		expiresAt:   expiresAt,
		sentAt:      sentAt,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	provider Provider,
	serviceCode ServiceCode,
	code Code,
	status Status,
	expiresAt, sentAt *time.Time,
	createdAt time.Time,
) *ServiceResource {
	return &ServiceResource{
		id:          id,
		provider:    provider,
		serviceCode: serviceCode,
		code:        code,
		status:      status,
		expiresAt:   expiresAt,
		sentAt:      sentAt,
		createdAt:   createdAt,
	}
}

func (r *ServiceResource) IsAvailable() bool {
	return r.status == StatusAvailable
}

// IsExpiredAt reports whether the expiry instant has passed at t. Resources without expiry never expire.
func (r *ServiceResource) IsExpiredAt(t time.Time) bool {
	return r.expiresAt != nil && r.expiresAt.Before(t)
}

// CanExpire reports whether the expiry sweep may move this resource to EXPIRED.
func (r *ServiceResource) CanExpire() bool {
	switch r.status {
	case StatusExpired, StatusRedeemed, StatusDisabled:
		return false
	default:
		return true
	}
}

func (r *ServiceResource) Key() Key {
	return Key{Provider: r.provider, ServiceCode: r.serviceCode}
}

func (r *ServiceResource) ID() uuid.UUID            { return r.id }
func (r *ServiceResource) Provider() Provider       { return r.provider }
func (r *ServiceResource) ServiceCode() ServiceCode { return r.serviceCode }
func (r *ServiceResource) Code() Code               { return r.code }
func (r *ServiceResource) Status() Status           { return r.status }
func (r *ServiceResource) ExpiresAt() *time.Time    { return r.expiresAt }
func (r *ServiceResource) SentAt() *time.Time       { return r.sentAt }
func (r *ServiceResource) CreatedAt() time.Time     { return r.createdAt }
