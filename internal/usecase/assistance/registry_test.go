//go:build unit

package assistance_test

import (
	"testing"

	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/assistance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	h := newHarness(t, nil)

	t.Run("lookup ignores case and whitespace", func(t *testing.T) {
		reg, err := assistance.NewRegistry(h.svc, h.other)
		require.NoError(t, err)

		svc, err := reg.ForProviderAndServiceCode(" duolingo ", "duolingo_test_proctored")
		require.NoError(t, err)
		assert.Same(t, h.svc, svc)
	})

	t.Run("unknown pair is a configuration error", func(t *testing.T) {
		reg, err := assistance.NewRegistry(h.svc)
		require.NoError(t, err)

		_, err = reg.ForProviderAndServiceCode("DUOLINGO", "DUOLINGO_TEST_NON_PROCTORED")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConfiguration))
		assert.False(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		_, err := assistance.NewRegistry(h.svc, h.other, h.svc)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConfiguration))
	})

	t.Run("All is ordered by key", func(t *testing.T) {
		reg, err := assistance.NewRegistry(h.svc, h.other)
		require.NoError(t, err)

		all := reg.All()
		require.Len(t, all, 2)
		assert.Equal(t, "DUOLINGO::DUOLINGO_TEST_NON_PROCTORED", all[0].Key().String())
		assert.Equal(t, "DUOLINGO::DUOLINGO_TEST_PROCTORED", all[1].Key().String())
	})
}
