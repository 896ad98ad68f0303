package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/locdata"
	"github.com/fwojciec/locdata/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "data0", "data0.html"},
		{"spaces and slashes replaced", "my data/0", "my_data_0.html"},
		{"dashes and dots kept", "region-1.v2", "region-1.v2.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.SampleName(tt.in))
		})
	}
}

func TestStore_SaveSample(t *testing.T) {
	t.Parallel()

	t.Run("writes fragment and returns its path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		path, err := store.SaveSample(context.Background(), "data0", "<table><tr><td>Austria</td></tr></table>")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "data0.html"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<table><tr><td>Austria</td></tr></table>", string(content))
	})

	t.Run("skips rewriting an unchanged fragment", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		path, err := store.SaveSample(context.Background(), "data0", "<p>same</p>")
		require.NoError(t, err)

		before, err := os.Stat(path)
		require.NoError(t, err)

		// Filesystems with coarse mtime resolution need a beat between writes.
		time.Sleep(10 * time.Millisecond)

		_, err = store.SaveSample(context.Background(), "data0", "<p>same</p>")
		require.NoError(t, err)

		after, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime())
	})

	t.Run("overwrites a changed fragment", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		path, err := store.SaveSample(context.Background(), "data0", "<p>old</p>")
		require.NoError(t, err)

		_, err = store.SaveSample(context.Background(), "data0", "<p>new</p>")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<p>new</p>", string(content))
	})

	t.Run("requires a name and a fragment", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		_, err := store.SaveSample(context.Background(), "", "<p></p>")
		assert.Equal(t, locdata.EINVALID, locdata.ErrorCode(err))

		_, err = store.SaveSample(context.Background(), "data0", "")
		assert.Equal(t, locdata.EINVALID, locdata.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.SaveSample(ctx, "data0", "<p></p>")
		require.Error(t, err)
	})
}
