package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// startWatch runs Store.Watch in the background and returns a channel that
// receives one value per change notification.
func startWatch(t *testing.T, store *Store) <-chan struct{} {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	changes := make(chan struct{}, 16)
	go func() {
		_ = store.Watch(ctx, func() { changes <- struct{}{} })
	}()
	// Give the watcher a moment to register its directories.
	time.Sleep(250 * time.Millisecond)
	return changes
}

func awaitChange(t *testing.T, changes <-chan struct{}) {
	t.Helper()
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification received")
	}
}

func TestWatchInvalidatesOnFileChange(t *testing.T) {
	store, err := NewStore(writeFixture(t))
	require.NoError(t, err)

	// Prime the memo so invalidation is observable.
	_, err = store.Profile()
	require.NoError(t, err)

	changes := startWatch(t, store)

	profile := filepath.Join(store.Root(), "profile.md")
	require.NoError(t, os.WriteFile(profile, []byte("---\nname: Alex J.\ntitle: Engineer\n---\n"), 0o644))

	awaitChange(t, changes)

	updated, err := store.Profile()
	require.NoError(t, err)
	require.Equal(t, "Alex J.", updated.Name)
}

func TestWatchPicksUpDirectoriesCreatedLater(t *testing.T) {
	store, err := NewStore(writeFixture(t))
	require.NoError(t, err)

	changes := startWatch(t, store)

	// A brand-new content subdirectory, created while serving.
	dir := filepath.Join(store.Root(), "talks")
	require.NoError(t, os.Mkdir(dir, 0o755))
	// Let the watcher register the new directory before writing into it.
	time.Sleep(250 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "gophercon.md"),
		[]byte("---\ntitle: GopherCon\n---\nSlides.\n"), 0o644))

	awaitChange(t, changes)
}
