package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Store(context.Background(), "gallery", "photo.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "gallery/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	content, err := os.ReadFile(filepath.Join(store.BaseDir(), filepath.FromSlash(path)))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))

	require.NoError(t, store.Delete(context.Background(), path))
	_, err = os.Stat(filepath.Join(store.BaseDir(), filepath.FromSlash(path)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreStripsTraversal(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStore(base)
	require.NoError(t, err)

	path, err := store.Store(context.Background(), "../../etc", "notes.txt", strings.NewReader("x"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "etc/"))
	_, err = os.Stat(filepath.Join(base, filepath.FromSlash(path)))
	require.NoError(t, err)
}

func TestLocalStoreDeleteMissingFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "gallery/gone.png"))
}
