package credentials

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubbub-app/hubbub-cli/internal/logging"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	return NewSQLiteStore(setupDB(t), logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestSetAndGet(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "aaa.bbb.ccc"))

	v, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "aaa.bbb.ccc", v)
}

func TestGet_EmptySlot(t *testing.T) {
	s := newStore(t)

	v, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSet_EmptyCredentialIsNoOp(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "aaa.bbb.ccc"))
	require.NoError(t, s.Set(ctx, ""))

	v, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "aaa.bbb.ccc", v, "empty Set must keep the slot unchanged")
}

func TestSet_ReplacesPreviousValue(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "old.token.sig"))
	require.NoError(t, s.Set(ctx, "new.token.sig"))

	v, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new.token.sig", v)
}

func TestClear_Idempotent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "aaa.bbb.ccc"))

	require.NoError(t, s.Clear(ctx))
	v, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, v)

	// A second clear on the empty slot is fine too.
	require.NoError(t, s.Clear(ctx))
	v, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, v)
}
