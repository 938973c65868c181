//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"candidate-assistance/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimePtr(t *testing.T) {
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	assert.False(t, pgconv.TimePtrToPgtype(nil).Valid)

	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	got := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now))
	require.NotNil(t, got)
	assert.True(t, now.Equal(*got))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("lookup: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("other")))
}
