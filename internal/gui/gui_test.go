//go:build !nogui
// +build !nogui

package gui

import (
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"binviz/internal/config"
	serr "binviz/internal/errors"
	"binviz/internal/session"
	"binviz/pkg/testutils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.New()
	a := newApp(test.NewApp(), cfg, session.New(session.OptionsFromConfig(cfg)))
	require.NotNil(t, a)
	return a
}

// TestGetMainWindow tests the retrieval of the main window.
func TestGetMainWindow(t *testing.T) {
	a := newTestApp(t)

	w := a.GetMainWindow()
	require.NotNil(t, w)
	assert.Equal(t, "Binary Representation Visualizer", w.Title())
	require.NotNil(t, w.Content())
	assert.Len(t, a.tabs.Items, 3)
	assert.Equal(t, "Decimal to Binary", a.tabs.Items[0].Text)
	assert.False(t, a.errorLabel.Visible())
}

func TestDecimalTab(t *testing.T) {
	a := newTestApp(t)

	test.Type(a.decimalEntry, "5")
	test.Tap(a.decimalButton)

	assert.Equal(t, "Binary representation: 00000101", a.decimalHeading.Text)
	assert.True(t, a.decimalHeading.Visible())
	require.Len(t, a.decimalGrid.Objects, 1)
	grid := a.decimalGrid.Objects[0].(*fyne.Container)
	assert.Len(t, grid.Objects, 8)

	test.Type(a.decimalEntry, "00")
	test.Tap(a.decimalButton)
	assert.False(t, a.decimalHeading.Visible())
	assert.Empty(t, a.decimalGrid.Objects)
	assert.True(t, a.errorLabel.Visible())
	assert.Equal(t, "Error: "+serr.MsgDecimalRange, a.errorLabel.Text)

	test.Type(a.decimalEntry, "1")
	assert.False(t, a.errorLabel.Visible(), "typing clears the alert")
}

func TestTextTab(t *testing.T) {
	a := newTestApp(t)

	test.Tap(a.textButton)
	assert.Equal(t, "Error: "+serr.MsgEmptyText, a.errorLabel.Text)

	test.Type(a.textEntry, "Hi")
	test.Tap(a.textButton)
	assert.Len(t, a.textRows.Objects, 2)
	assert.Equal(t, "Full binary string:\n01001000 01101001", a.textFull.Text)
	assert.False(t, a.errorLabel.Visible())
}

func TestImageDrop(t *testing.T) {
	files := testutils.WriteDefaultFiles(t, t.TempDir())
	a := newTestApp(t)

	a.handleDrop([]fyne.URI{storage.NewFileURI(files["bytes.png"])})
	assert.Equal(t, 2, a.tabs.SelectedIndex())

	assert.Eventually(t, func() bool {
		return a.imageDump.Text == "00000000 11111111 00010000"
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, a.imageHeader.Text, "bytes.png (3 B")
	assert.Contains(t, a.imageHeader.Text, "Binary representation:")
}

func TestImageLoadFailure(t *testing.T) {
	a := newTestApp(t)

	a.loadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Eventually(t, func() bool {
		return a.errorLabel.Text == "Error: "+serr.MsgReadFile
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, a.imageDump.Text)

	a.loadImage("")
	assert.Eventually(t, func() bool {
		return a.errorLabel.Text == "Error: "+serr.MsgNoFile
	}, 2*time.Second, 10*time.Millisecond)
}

func TestParseColor(t *testing.T) {
	fallback := color.NRGBA{A: 255}
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#3B82F6", color.NRGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 255}},
		{"9", color.NRGBA{R: 255, A: 255}},
		{"16", color.NRGBA{A: 255}},
		{"231", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"232", color.NRGBA{R: 8, G: 8, B: 8, A: 255}},
		{"#zzzzzz", fallback},
		{"300", fallback},
		{"blue", fallback},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseColor(tt.in, fallback))
		})
	}
}
