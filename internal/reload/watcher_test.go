package reload

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/mnint/internal/parameters"
	"github.com/at-ishikawa/mnint/internal/testutil"
)

func TestNewWatcher(t *testing.T) {
	assert.Equal(t, DefaultDebounce, NewWatcher(nil, 0).debounce)
	assert.Equal(t, time.Second, NewWatcher(nil, time.Second).debounce)
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteParameters(t, dir, testutil.ExampleParameters)
	store, err := NewStore(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	defer cancel()
	go func() {
		done <- NewWatcher(store, 20*time.Millisecond).Run(ctx)
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	// A rejected document keeps the previous config.
	testutil.WriteParameters(t, dir, testutil.ReplaceLine(t, "sub_hierarchy", "  sub_hierarchy: max"))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, parameters.SubHierarchyLowest, store.Current().Subassembly.Hierarchy)

	testutil.WriteParameters(t, dir, testutil.ReplaceLine(t, "sub_hierarchy", "  sub_hierarchy: avg"))
	assert.Eventually(t, func() bool {
		return store.Current().Subassembly.Hierarchy == parameters.SubHierarchyAverage
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}
