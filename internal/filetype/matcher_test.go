package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher(t *testing.T) {
	m, err := NewMatcher([]string{"*.{png,jpg,jpeg}", "scan_*.tif"})
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{"cat.png", true},
		{"/home/me/Pictures/CAT.PNG", true},
		{"photo.jpeg", true},
		{"scan_001.tif", true},
		{"other.tif", false},
		{"notes.txt", false},
		{"png", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.path))
		})
	}
}

func TestMatcherEmptyAcceptsAll(t *testing.T) {
	m, err := NewMatcher(nil)
	require.NoError(t, err)
	assert.True(t, m.Match("anything.bin"))
	assert.Empty(t, m.Extensions())
}

func TestExtensions(t *testing.T) {
	m, err := NewMatcher([]string{"*.{PNG,jpg}", "*.gif", "scan_*.tif", "*.jp?"})
	require.NoError(t, err)
	assert.Equal(t, []string{".gif", ".jpg", ".png"}, m.Extensions())
	assert.Equal(t, []string{"*.{PNG,jpg}", "*.gif", "scan_*.tif", "*.jp?"}, m.Patterns())
}
