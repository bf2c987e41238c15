package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// exerciseStore runs the Store contract against any backend
func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	got, err := s.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, got, "absent keys read as nil")

	require.NoError(t, s.Set(ctx, "fortuneUserData", json.RawMessage(`{"birthDate":"1990-01-15"}`)))
	got, err = s.Get(ctx, "fortuneUserData")
	require.NoError(t, err)
	assert.JSONEq(t, `{"birthDate":"1990-01-15"}`, string(got))

	// replace
	require.NoError(t, s.Set(ctx, "fortuneUserData", json.RawMessage(`{"birthDate":"2015-05-05"}`)))
	got, err = s.Get(ctx, "fortuneUserData")
	require.NoError(t, err)
	assert.JSONEq(t, `{"birthDate":"2015-05-05"}`, string(got))

	assert.ErrorIs(t, s.Set(ctx, "broken", json.RawMessage(`{"birthDate":`)), ErrInvalidValue)

	// nothing is older than an hour yet
	n, err := s.Prune(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.Prune(ctx, -time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err = s.Get(ctx, "fortuneUserData")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStorage_SQLite(t *testing.T) {
	exerciseStore(t, newTestStorage(t))
}

func TestStorage_SQLitePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	s, err := NewStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", json.RawMessage(`[1,2,3]`)))
	require.NoError(t, s.Close())

	s, err = NewStorage(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(got))
}

func TestStorage_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	s, err := NewPostgresStorage(dsn)
	require.NoError(t, err)
	defer s.Close()

	// clear rows left by earlier runs
	_, err = s.Prune(context.Background(), -24*time.Hour)
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestNewStore_UnknownDriver(t *testing.T) {
	_, err := NewStore(StorageConfig{Driver: "mongo"})
	assert.Error(t, err)
}
