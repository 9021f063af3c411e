package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFiles creates files under dir with the given raw contents and
// returns their paths keyed by name.
func WriteFiles(t *testing.T, dir string, files map[string][]byte) map[string]string {
	t.Helper()
	paths := make(map[string]string, len(files))
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, content, 0644))
		paths[name] = path
	}
	return paths
}

// WriteDefaultFiles creates a small image-like file and a text file.
func WriteDefaultFiles(t *testing.T, dir string) map[string]string {
	t.Helper()
	return WriteFiles(t, dir, map[string][]byte{
		"bytes.png": {0, 255, 16},
		"notes.txt": []byte("Hi"),
	})
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
