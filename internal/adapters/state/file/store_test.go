package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsIdle(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "manada.stat"))

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, state)
}

func TestLoadContents(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		want    domain.NotifyState
	}{
		{name: "empty", content: "", want: domain.StateIdle},
		{name: "notified", content: "notified", want: domain.StateNotified},
		{name: "trailing newline", content: "notified\n", want: domain.StateNotified},
		{name: "unknown", content: "garbage", want: domain.StateIdle},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "manada.stat")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			state, err := NewStore(path).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, state)
		})
	}
}

func TestSaveWritesFlagAndTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "manada.stat")
	store := NewStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.StateNotified))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "notified", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(stateFileMode), info.Mode().Perm())

	require.NoError(t, store.Save(ctx, domain.StateIdle))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)

	state, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, state)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "manada.stat"))
	require.NoError(t, store.Save(context.Background(), domain.StateNotified))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "manada.stat", entries[0].Name())
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(filepath.Join(t.TempDir(), "manada.stat"))
	require.ErrorIs(t, store.Save(ctx, domain.StateNotified), context.Canceled)
	_, err := store.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
