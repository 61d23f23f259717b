package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "token"), store.Path())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "missing file means no token")

	require.NoError(t, store.Save("abc.def.ghi"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(store.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice is fine")
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_SessionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	first, err := New(store)
	require.NoError(t, err)
	require.NoError(t, first.MarkAuthenticated("persisted"))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	second, err := New(reopened)
	require.NoError(t, err)
	assert.True(t, second.IsAuthenticated())
}
