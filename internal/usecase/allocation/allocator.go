package allocation

import (
	"context"

	"candidate-assistance/internal/domain/candidate"
	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra"
	"candidate-assistance/internal/pkg/clock"
	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/shared"
)

// ResourceAllocator is the policy choosing which resource a candidate should receive.
// It returns a proposal only; the engine performs the claim.
type ResourceAllocator interface {
	Provider() resource.Provider
	ServiceCode() resource.ServiceCode
	AllocateFor(ctx context.Context, tx shared.Tx, c *candidate.Candidate) (*resource.ServiceResource, error)
}

func KeyOf(alloc ResourceAllocator) resource.Key {
	return resource.Key{Provider: alloc.Provider(), ServiceCode: alloc.ServiceCode()}
}

// OldestExpiryFirst proposes the AVAILABLE resource expiring soonest, then the oldest
// by creation. Resources whose expiry already passed are never proposed.
type OldestExpiryFirst struct {
	key   resource.Key
	clock clock.Clock
}

func NewOldestExpiryFirst(key resource.Key, clk clock.Clock) *OldestExpiryFirst {
	return &OldestExpiryFirst{key: key, clock: clk}
}

func (a *OldestExpiryFirst) Provider() resource.Provider       { return a.key.Provider }
func (a *OldestExpiryFirst) ServiceCode() resource.ServiceCode { return a.key.ServiceCode }

func (a *OldestExpiryFirst) AllocateFor(ctx context.Context, tx shared.Tx, c *candidate.Candidate) (*resource.ServiceResource, error) {
	res, err := tx.Resources().PickAvailable(ctx, a.key, a.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("no %s resource available for candidate %s", a.key, c.Number()), errs.ErrAllocationFailed)
		}
		return nil, errs.Wrapf(err, "allocate %s", a.key)
	}
	return res, nil
}
