//go:build unit || e2e

package builder

import (
	"time"

	"candidate-assistance/internal/domain/resource"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	DefaultProvider    = "DUOLINGO"
	DefaultServiceCode = "DUOLINGO_TEST_PROCTORED"
)

type ServiceResourceBuilder struct {
	ID          uuid.UUID
	Provider    string
	ServiceCode string
	Code        string
	Status      string
	ExpiresAt   *time.Time
	SentAt      *time.Time
	CreatedAt   time.Time
}

func NewServiceResourceBuilder() *ServiceResourceBuilder {
	expires := time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second)
	return &ServiceResourceBuilder{
		ID:          uuid.New(),
		Provider:    DefaultProvider,
		ServiceCode: DefaultServiceCode,
		Code:        "ACC" + uuid.NewString()[:8],
		Status:      string(resource.StatusAvailable),
		ExpiresAt:   &expires,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func (b *ServiceResourceBuilder) With(mutate func(*ServiceResourceBuilder)) *ServiceResourceBuilder {
	mutate(b)
	return b
}

func (b *ServiceResourceBuilder) Key() resource.Key {
	return resource.Key{Provider: resource.Provider(b.Provider), ServiceCode: resource.ServiceCode(b.ServiceCode)}
}

// Build methods
func (b *ServiceResourceBuilder) BuildDomain() (*resource.ServiceResource, error) {
	provider, err := resource.NewProvider(b.Provider)
	if err != nil {
		return nil, err
	}
	serviceCode, err := resource.NewServiceCode(b.ServiceCode)
	if err != nil {
		return nil, err
	}
	code, err := resource.NewCode(b.Code)
	if err != nil {
		return nil, err
	}
	status, err := resource.ParseStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return resource.NewServiceResource(provider, serviceCode, code, status, b.ExpiresAt, b.SentAt)
}

// BuildStored returns the resource as it would be loaded from storage.
func (b *ServiceResourceBuilder) BuildStored() *resource.ServiceResource {
	return resource.Reconstruct(
		b.ID,
		resource.Provider(b.Provider),
		resource.ServiceCode(b.ServiceCode),
		resource.Code(b.Code),
		resource.Status(b.Status),
		b.ExpiresAt,
		b.SentAt,
		b.CreatedAt,
	)
}

func (b *ServiceResourceBuilder) BuildInfra() sqlc.ServiceResources {
	return sqlc.ServiceResources{
		ID:           b.ID,
		Provider:     b.Provider,
		ServiceCode:  b.ServiceCode,
		ResourceCode: b.Code,
		Status:       b.Status,
		ExpiresAt:    pgconv.TimePtrToPgtype(b.ExpiresAt),
		SentAt:       pgconv.TimePtrToPgtype(b.SentAt),
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(b.CreatedAt),
	}
}

// Fluent builder methods
func (b *ServiceResourceBuilder) WithCode(code string) *ServiceResourceBuilder {
	b.Code = code
	return b
}

func (b *ServiceResourceBuilder) WithProvider(provider string) *ServiceResourceBuilder {
	b.Provider = provider
	return b
}

func (b *ServiceResourceBuilder) WithServiceCode(serviceCode string) *ServiceResourceBuilder {
	b.ServiceCode = serviceCode
	return b
}

func (b *ServiceResourceBuilder) WithStatus(status resource.Status) *ServiceResourceBuilder {
	b.Status = string(status)
	return b
}

func (b *ServiceResourceBuilder) WithExpiresAt(t time.Time) *ServiceResourceBuilder {
	b.ExpiresAt = &t
	return b
}

func (b *ServiceResourceBuilder) WithoutExpiry() *ServiceResourceBuilder {
	b.ExpiresAt = nil
	return b
}
