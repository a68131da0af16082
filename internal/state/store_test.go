package state

import (
	"os"
	"path/filepath"
	"testing"

	"dirscope/pkg/models"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("should return empty selection when store does not exist", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "nested", "selections.yaml"))

		selection, err := store.Load("/some/root")
		require.NoError(t, err)
		assert.True(t, selection.IsEmpty())
	})

	t.Run("should expose backing path without creating it", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "selections.yaml")
		store := NewFileStore(path)

		assert.Equal(t, path, store.Path())
		assert.NoFileExists(t, store.Path())
	})

	t.Run("should round-trip selections per root", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "selections.yaml"))
		first := models.Selection{Extensions: []string{".go"}, RootFolders: []string{"cmd", "internal"}}
		second := models.Selection{Ignore: []string{".git", "dot-folders"}}

		require.NoError(t, store.Save("/projects/a", first))
		require.NoError(t, store.Save("/projects/b", second))

		loaded, err := store.Load("/projects/a")
		require.NoError(t, err)
		assert.Equal(t, first, loaded)

		loaded, err = store.Load("/projects/b")
		require.NoError(t, err)
		assert.Equal(t, second, loaded)
	})

	t.Run("should resolve relative roots", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "selections.yaml"))
		cwd, err := os.Getwd()
		require.NoError(t, err)

		require.NoError(t, store.Save(".", models.Selection{Extensions: []string{".md"}}))

		loaded, err := store.Load(cwd)
		require.NoError(t, err)
		assert.Equal(t, []string{".md"}, loaded.Extensions)
	})

	t.Run("should remove entry on empty selection", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "selections.yaml")
		store := NewFileStore(path)
		require.NoError(t, store.Save("/projects/a", models.Selection{Extensions: []string{".go"}}))

		require.NoError(t, store.Save("/projects/a", models.Selection{}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "/projects/a")
	})

	t.Run("should report corrupt store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "selections.yaml")
		require.NoError(t, os.WriteFile(path, []byte("roots: [unclosed"), 0644))

		_, err := NewFileStore(path).Load("/projects/a")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse selection store")
	})

	t.Run("should refuse to save while locked", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "selections.yaml")
		holder := flock.New(path + ".lock")
		locked, err := holder.TryLock()
		require.NoError(t, err)
		require.True(t, locked)
		defer holder.Unlock()

		err = NewFileStore(path).Save("/projects/a", models.Selection{Extensions: []string{".go"}})

		assert.ErrorIs(t, err, ErrLocked)
	})

	t.Run("should not leave temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		store := NewFileStore(filepath.Join(dir, "selections.yaml"))
		require.NoError(t, store.Save("/projects/a", models.Selection{Extensions: []string{".go"}}))

		matches, err := filepath.Glob(filepath.Join(dir, ".tmp-*"))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}
