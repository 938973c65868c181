package assistance

import (
	"sort"

	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/pkg/errs"
)

// Registry maps a normalised (provider, service code) pair to its service. It is built
// once at startup and never mutated.
type Registry struct {
	services map[resource.Key]*Service
	ordered  []*Service
}

func NewRegistry(services ...*Service) (*Registry, error) {
	byKey := make(map[resource.Key]*Service, len(services))
	for _, svc := range services {
		if svc == nil {
			return nil, errs.Mark(errs.New("nil service registered"), errs.ErrConfiguration)
		}
		key, err := resource.NewKey(svc.Provider().String(), svc.ServiceCode().String())
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "invalid service key"), errs.ErrConfiguration)
		}
		if _, dup := byKey[key]; dup {
			return nil, errs.Mark(errs.Newf("duplicate service registration for %s", key), errs.ErrConfiguration)
		}
		byKey[key] = svc
	}

	ordered := make([]*Service, 0, len(byKey))
	for _, svc := range byKey {
		ordered = append(ordered, svc)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Key().String() < ordered[j].Key().String()
	})

	return &Registry{services: byKey, ordered: ordered}, nil
}

// ForProviderAndServiceCode looks a service up ignoring case and surrounding whitespace.
// A miss is a configuration error, not ErrNotFound.
func (r *Registry) ForProviderAndServiceCode(provider, serviceCode string) (*Service, error) {
	key, err := resource.NewKey(provider, serviceCode)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "lookup %q/%q", provider, serviceCode), errs.ErrConfiguration)
	}
	svc, ok := r.services[key]
	if !ok {
		return nil, errs.Mark(errs.Newf("no service registered for %s", key), errs.ErrConfiguration)
	}
	return svc, nil
}

// All returns the registered services ordered by key.
func (r *Registry) All() []*Service {
	out := make([]*Service, len(r.ordered))
	copy(out, r.ordered)
	return out
}
