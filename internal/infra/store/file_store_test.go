package store

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinvoluntario/config"
)

func newTestFileStore(t *testing.T) (*fileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token")
	cfg := &config.Config{}
	cfg.Session.TokenPath = path
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := NewFileStore(cfg, logger)
	require.NoError(t, err)

	return s.(*fileStore), path
}

func TestFileStore_RoundTrip(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "abc.def.ghi"))

	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s, _ := newTestFileStore(t)

	token, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_CorruptContentReadsAsAbsent(t *testing.T) {
	s, path := newTestFileStore(t)
	require.NoError(t, os.WriteFile(path, []byte("bad\x00token\nwith lines"), 0o600))

	token, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_SaveReplacesPreviousToken(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "first"))
	require.NoError(t, s.Save(ctx, "second"))

	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}
