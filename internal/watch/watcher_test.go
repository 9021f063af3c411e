package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"binviz/internal/filetype"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageMatcher(t *testing.T) *filetype.Matcher {
	t.Helper()
	m, err := filetype.NewMatcher([]string{"*.{png,gif}"})
	require.NoError(t, err)
	return m
}

func TestWatcherFsnotify(t *testing.T) {
	tempDir := t.TempDir()

	w, err := New(imageMatcher(t))
	require.NoError(t, err, "New watcher creation failed")
	require.NoError(t, w.AddDirectory(tempDir))
	require.NoError(t, w.Start())
	defer w.Stop()

	assert.True(t, w.IsRunning())
	assert.Equal(t, []string{tempDir}, w.Directories())
	assert.Error(t, w.Start(), "second start must fail")

	evChan := w.Events()

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	// Non-matching names are filtered out before the channel.
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("Hi"), 0644))

	imagePath := filepath.Join(tempDir, "photo.PNG")
	require.NoError(t, os.WriteFile(imagePath, []byte{0x89, 'P', 'N', 'G'}, 0644))

	select {
	case event, ok := <-evChan:
		require.True(t, ok, "Event channel closed unexpectedly")
		assert.Equal(t, imagePath, event.Path)
		assert.True(t, event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write))
		require.NotNil(t, event.Info)
		assert.Equal(t, "photo.PNG", event.Info.Name())
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for image event")
	}

	w.Stop()
	assert.False(t, w.IsRunning())

	// Drain whatever was buffered, then expect the channel to be closed.
	timeout := time.After(time.Second)
	for {
		select {
		case ev, ok := <-evChan:
			if !ok {
				return
			}
			assert.NotEqual(t, filepath.Join(tempDir, "notes.txt"), ev.Path)
		case <-timeout:
			t.Fatal("Timeout waiting for event channel to close after stop")
		}
	}
}

func TestAddDirectoryErrors(t *testing.T) {
	w, err := New(nil)
	require.NoError(t, err)
	defer w.Stop()

	err = w.AddDirectory(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.png")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	err = w.AddDirectory(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}
