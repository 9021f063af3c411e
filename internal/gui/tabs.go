//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"
	"strings"

	"binviz/internal/convert"
	"binviz/internal/filetype"
	"binviz/internal/log"
	"binviz/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

const cellSize = 32

func (a *App) createDecimalTab() fyne.CanvasObject {
	a.decimalEntry = widget.NewEntry()
	a.decimalEntry.SetPlaceHolder("Enter a decimal number (0-255)")
	a.decimalEntry.OnChanged = func(s string) {
		a.shell.EditDecimal(s)
		a.refreshError("")
	}

	convertDecimal := func() {
		_ = a.shell.ConvertDecimal()
		a.refresh()
	}
	a.decimalEntry.OnSubmitted = func(string) { convertDecimal() }
	a.decimalButton = widget.NewButton("Convert", convertDecimal)

	a.decimalHeading = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.decimalHeading.Hide()
	a.decimalGrid = container.NewVBox()

	return container.NewVBox(
		container.NewBorder(nil, nil, nil, a.decimalButton, a.decimalEntry),
		a.decimalHeading,
		a.decimalGrid,
	)
}

func (a *App) createTextTab() fyne.CanvasObject {
	a.textEntry = widget.NewMultiLineEntry()
	a.textEntry.SetPlaceHolder("Enter text to convert to binary")
	a.textEntry.SetMinRowsVisible(3)
	a.textEntry.OnChanged = func(s string) {
		a.shell.EditText(s)
		a.refreshError("")
	}

	a.textButton = widget.NewButton("Convert", func() {
		_ = a.shell.ConvertText()
		a.refresh()
	})

	a.textRows = container.NewVBox()
	a.textFull = widget.NewLabel("")
	a.textFull.Wrapping = fyne.TextWrapBreak
	a.textFull.TextStyle.Monospace = true
	a.textFull.Hide()

	return container.NewBorder(
		container.NewVBox(a.textEntry, a.textButton),
		nil, nil, nil,
		container.NewVScroll(container.NewVBox(a.textRows, a.textFull)),
	)
}

func (a *App) createImageTab() fyne.CanvasObject {
	a.imageHeader = widget.NewLabel("Choose a file or drop one onto the window.")
	a.imageDump = widget.NewLabel("")
	a.imageDump.Wrapping = fyne.TextWrapBreak
	a.imageDump.TextStyle.Monospace = true

	open := widget.NewButtonWithIcon("Choose File", theme.FolderOpenIcon(), a.showFileDialog)

	return container.NewBorder(
		container.NewVBox(open, a.imageHeader),
		nil, nil, nil,
		container.NewVScroll(a.imageDump),
	)
}

func (a *App) showFileDialog() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			a.ShowError("Could not open file", err)
			return
		}
		if r == nil {
			// Cancelled: surfaces as "No file selected."
			a.loadImage("")
			return
		}
		path := r.URI().Path()
		if cerr := r.Close(); cerr != nil {
			log.LogWithFields(log.F("file", path), log.F("error", cerr)).Debug("closing picked file")
		}
		a.loadImage(path)
	}, a.mainWindow)

	if matcher, err := filetype.NewMatcher(a.cfg.Image.Patterns); err == nil {
		if exts := matcher.Extensions(); len(exts) > 0 {
			d.SetFilter(storage.NewExtensionFileFilter(exts))
		}
	}
	d.Show()
}

// bitGrid draws one colored cell per bit with its power-of-two label below.
func (a *App) bitGrid(bits []convert.Bit) fyne.CanvasObject {
	cells := make([]fyne.CanvasObject, 0, len(bits))
	for _, b := range bits {
		fill := a.zeroColor
		if b.Set {
			fill = a.oneColor
		}
		rect := canvas.NewRectangle(fill)
		rect.SetMinSize(fyne.NewSize(cellSize, cellSize))
		rect.CornerRadius = 4

		digit := canvas.NewText(string(b.Digit()), a.digitColor)
		digit.TextStyle.Bold = true
		digit.Alignment = fyne.TextAlignCenter

		power := canvas.NewText("2"+render.Superscript(b.Power), theme.ForegroundColor())
		power.TextSize = 11
		power.Alignment = fyne.TextAlignCenter

		cells = append(cells, container.NewVBox(
			container.NewStack(rect, container.NewCenter(digit)),
			power,
		))
	}
	return container.NewHBox(cells...)
}

func (a *App) textRow(e convert.TextEntry) fyne.CanvasObject {
	label := fmt.Sprintf("%q", e.Char)
	if e.Wide() {
		label = fmt.Sprintf("%s (%d bits)", label, len(e.Binary))
	}
	return container.NewHBox(
		widget.NewLabelWithStyle(label, fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}),
		a.bitGrid(convert.Bits(e.Binary)),
	)
}

func imageHeader(p *convert.Preview) string {
	size := "size unknown"
	if p.Size >= 0 {
		size = humanize.Bytes(uint64(p.Size))
	}
	title := "Binary representation:"
	if p.Truncated {
		title = fmt.Sprintf("Binary representation (first %d characters):", len(strings.TrimSuffix(p.Dump, convert.Ellipsis)))
	}
	return fmt.Sprintf("%s (%s, %s)\n%s", p.Name, size, p.MIME, title)
}
