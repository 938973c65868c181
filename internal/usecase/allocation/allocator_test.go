//go:build unit

package allocation_test

import (
	"context"
	"testing"
	"time"

	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/allocation"
	"candidate-assistance/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOldestExpiryFirst_AllocateFor(t *testing.T) {
	ctx := context.Background()
	at := func(d time.Duration) *time.Time {
		v := baseTime.Add(d)
		return &v
	}

	type seed struct {
		code      string
		status    resource.Status
		expiresAt *time.Time
	}
	tests := []struct {
		name    string
		seeds   []seed
		want    string
		wantErr error
	}{
		{
			name: "soonest expiry wins",
			seeds: []seed{
				{"LATE", resource.StatusAvailable, at(48 * time.Hour)},
				{"SOON", resource.StatusAvailable, at(time.Hour)},
			},
			want: "SOON",
		},
		{
			name: "resources without expiry come last",
			seeds: []seed{
				{"FOREVER", resource.StatusAvailable, nil},
				{"DATED", resource.StatusAvailable, at(72 * time.Hour)},
			},
			want: "DATED",
		},
		{
			name: "same expiry falls back to insertion order",
			seeds: []seed{
				{"FIRST", resource.StatusAvailable, nil},
				{"SECOND", resource.StatusAvailable, nil},
			},
			want: "FIRST",
		},
		{
			name: "non available and overdue are skipped",
			seeds: []seed{
				{"TAKEN", resource.StatusAssigned, at(time.Minute)},
				{"OVERDUE", resource.StatusAvailable, at(-time.Minute)},
				{"OK", resource.StatusAvailable, at(time.Hour)},
			},
			want: "OK",
		},
		{
			name: "空のプール",
			seeds: []seed{
				{"DISABLED", resource.StatusDisabled, nil},
			},
			wantErr: errs.ErrAllocationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			for _, s := range tt.seeds {
				f.store.AddResource(proctored, s.code, s.status, s.expiresAt)
			}
			f.store.AddResource(nonProctored, "OTHER", resource.StatusAvailable, at(time.Second))
			c := f.store.AddCandidate("C-1", "c1@example.com")

			var got *resource.ServiceResource
			err := f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				var err error
				got, err = f.alloc.AllocateFor(ctx, tx, c)
				return err
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, resource.Code(tt.want), got.Code())
			assert.Equal(t, proctored, allocation.KeyOf(f.alloc))
		})
	}
}
