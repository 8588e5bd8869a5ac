package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubbub-app/hubbub-cli/internal/client/credentials"
	"github.com/hubbub-app/hubbub-cli/internal/logging"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "hubbub.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'credentials'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "credentials", name)
}

func TestInitDatabase_CredentialSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "hubbub.db")
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, credentials.NewSQLiteStore(db, log).Set(ctx, "aaa.bbb.ccc"))
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	v, err := credentials.NewSQLiteStore(db, log).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "aaa.bbb.ccc", v)
}
