//go:build unit

package errs_test

import (
	"testing"

	"candidate-assistance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches sentinel and keeps message", func(t *testing.T) {
		err := errs.Mark(errs.Newf("resource %q not found", "ACC-1"), errs.ErrNotFound)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.False(t, errs.Is(err, errs.ErrConflict))
		assert.Contains(t, err.Error(), "ACC-1")
	})

	t.Run("nil error yields the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrConflict)

		assert.Same(t, errs.ErrConflict, err)
	})

	t.Run("wrapping preserves mark", func(t *testing.T) {
		err := errs.Wrapf(errs.Mark(errs.New("claim lost"), errs.ErrAllocationFailed), "assign %s", "c-1")

		assert.True(t, errs.Is(err, errs.ErrAllocationFailed))
		assert.Contains(t, err.Error(), "assign c-1")
	})
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}

func TestJoin(t *testing.T) {
	err := errs.Join(errs.Mark(errs.New("a"), errs.ErrNotFound), nil, errs.New("b"))

	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.Contains(t, err.Error(), "a")
	assert.Contains(t, err.Error(), "b")
	assert.NoError(t, errs.Join())
}
