package photostore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_SaveAndRemove(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	url, err := store.Save(ctx, "job-1", "before.JPG", []byte("payload"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "file://"))
	assert.True(t, strings.HasSuffix(url, ".jpg"), "extension is kept, lowercased")

	path := strings.TrimPrefix(url, "file://")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, store.Remove(ctx, url))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFSStore_SaveGroupsByJob(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	a, err := store.Save(ctx, "job-a", "x.png", []byte("a"))
	require.NoError(t, err)
	b, err := store.Save(ctx, "job-a", "y.png", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "each save gets a unique name")
	assert.Contains(t, a, filepath.Join(dir, "job-a"))
}

func TestFSStore_RemoveRejectsOutsideURLs(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	err = store.Remove(context.Background(), "file:///etc/passwd")
	require.Error(t, err)
}

func TestFSStore_RemoveMissingIsQuiet(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(dir)
	require.NoError(t, err)

	url := "file://" + filepath.Join(dir, "job-z", "gone.png")
	assert.NoError(t, store.Remove(context.Background(), url))
}
