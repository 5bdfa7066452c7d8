package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePutAndOpen(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	url, err := store.Put("instructors/photo-1.png", []byte("image-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/media/instructors/photo-1.png", url)

	path, err := store.Open("instructors/photo-1.png")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestLocalStoreRejectsEscapingKeys(t *testing.T) {
	base := t.TempDir()
	store := NewLocalStore(filepath.Join(base, "media"))
	require.NoError(t, os.MkdirAll(store.BasePath, 0o755))

	_, err := store.Put("../outside.txt", []byte("nope"), "text/plain")
	require.Error(t, err)

	_, err = store.Open("../../etc/passwd")
	require.Error(t, err)
}
