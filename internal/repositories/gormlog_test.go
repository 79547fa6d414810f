package repositories

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestGormLogger_SkipsNotFoundLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	db, err := Open("sqlite", filepath.Join(t.TempDir(), "log.db"), zerolog.New(&buf))
	require.NoError(t, err)
	s := NewStore(db)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()
	buf.Reset()

	_, err = s.FindUserByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindUserByID(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, buf.String())

	require.Error(t, s.db.WithContext(ctx).Exec("SELECT * FROM no_such_table").Error)
	assert.Contains(t, buf.String(), `"component":"gorm"`)
	assert.Contains(t, buf.String(), "query failed")
	assert.Contains(t, buf.String(), "no_such_table")
}

func TestGormLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormLogger(zerolog.New(&buf)).LogMode(logger.Silent)

	l.Error(context.Background(), "boom %d", 1)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, assert.AnError)
	assert.Empty(t, buf.String())
}
