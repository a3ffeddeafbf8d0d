package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckhand/internal/forms"
)

var _ forms.Store = (*SQLiteStore)(nil)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "fields.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, ok, err := s.Get(ctx, "checkinQuestion")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "checkinQuestion", "What brought you here?"))
	require.NoError(t, s.Set(ctx, "checkinQuestion", "What do you hope to leave with?"))

	v, ok, err := s.Get(ctx, "checkinQuestion")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "What do you hope to leave with?", v)
}

func TestSQLiteStoreDeleteAndAll(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Set(ctx, "b", "2"))
	require.NoError(t, s.Set(ctx, "c", ""))

	require.NoError(t, s.Delete(ctx, "a", "missing"))
	require.NoError(t, s.Delete(ctx))

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "2", "c": ""}, all)
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fields.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "role-facilitator", "Ana"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, path, s.Path())

	v, ok, err := s.Get(ctx, "role-facilitator")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ana", v)
}
