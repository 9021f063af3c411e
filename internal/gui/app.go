//go:build !nogui
// +build !nogui

package gui

import (
	"context"
	"fmt"
	"image/color"

	"binviz/internal/config"
	"binviz/internal/convert"
	"binviz/internal/log"
	"binviz/internal/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	shell      *session.Shell

	oneColor    color.NRGBA
	zeroColor   color.NRGBA
	digitColor  color.NRGBA
	accentColor color.NRGBA

	tabs *container.AppTabs

	decimalEntry   *widget.Entry
	decimalButton  *widget.Button
	decimalHeading *widget.Label
	decimalGrid    *fyne.Container

	textEntry  *widget.Entry
	textButton *widget.Button
	textRows   *fyne.Container
	textFull   *widget.Label

	imageHeader *widget.Label
	imageDump   *widget.Label

	errorLabel *widget.Label
}

// Create returns a new GUI instance
func (f *Factory) Create() (Interface, error) {
	return NewApp(f.config, f.shell), nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

// NewApp creates a new GUI application
func NewApp(cfg *config.Config, shell *session.Shell) *App {
	return newApp(app.NewWithID("io.github.binviz"), cfg, shell)
}

func newApp(fyneApp fyne.App, cfg *config.Config, shell *session.Shell) *App {
	a := &App{
		fyneApp:     fyneApp,
		cfg:         cfg,
		shell:       shell,
		oneColor:    parseColor(cfg.Display.OneColor, color.NRGBA{R: 59, G: 130, B: 246, A: 255}),
		zeroColor:   parseColor(cfg.Display.ZeroColor, color.NRGBA{R: 209, G: 213, B: 219, A: 255}),
		digitColor:  parseColor(cfg.Display.TextColor, color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		accentColor: parseColor(cfg.Display.Accent, color.NRGBA{R: 79, G: 79, B: 183, A: 255}),
	}

	a.mainWindow = a.fyneApp.NewWindow("Binary Representation Visualizer")
	a.mainWindow.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		a.handleDrop(uris)
	})
	a.setupMainWindow()
	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run starts the GUI application
func (a *App) Run() {
	a.mainWindow.Show()
	a.fyneApp.Run()
}

func (a *App) setupMainWindow() {
	a.mainWindow.Resize(fyne.NewSize(760, 560))

	title := canvas.NewText("Binary Representation Visualizer", a.accentColor)
	title.TextSize = 22
	title.TextStyle.Bold = true
	title.Alignment = fyne.TextAlignCenter

	a.errorLabel = widget.NewLabel("")
	a.errorLabel.Importance = widget.DangerImportance
	a.errorLabel.Wrapping = fyne.TextWrapWord
	a.errorLabel.Hide()

	a.tabs = container.NewAppTabs(
		container.NewTabItem("Decimal to Binary", a.createDecimalTab()),
		container.NewTabItem("Text to Binary", a.createTextTab()),
		container.NewTabItem("Image to Binary", a.createImageTab()),
	)
	a.tabs.SetTabLocation(container.TabLocationTop)

	content := container.NewBorder(
		container.NewVBox(title, canvas.NewLine(a.accentColor)),
		a.errorLabel,
		nil,
		nil,
		a.tabs,
	)
	a.mainWindow.SetContent(content)
}

// refresh redraws every display from the shell state.
func (a *App) refresh() {
	st := a.shell.State()

	if st.Binary != "" {
		a.decimalHeading.SetText("Binary representation: " + st.Binary)
		a.decimalHeading.Show()
	} else {
		a.decimalHeading.Hide()
	}
	a.decimalGrid.Objects = nil
	if len(st.Bits) > 0 {
		a.decimalGrid.Add(a.bitGrid(st.Bits))
	}
	a.decimalGrid.Refresh()

	a.textRows.Objects = nil
	for _, e := range st.TextEntries {
		a.textRows.Add(a.textRow(e))
	}
	a.textRows.Refresh()
	if st.TextBinary != "" {
		a.textFull.SetText("Full binary string:\n" + st.TextBinary)
		a.textFull.Show()
	} else {
		a.textFull.Hide()
	}

	switch {
	case st.ImageLoading:
		a.imageHeader.SetText("Loading...")
		a.imageDump.SetText("")
	case st.Image != nil:
		a.imageHeader.SetText(imageHeader(st.Image))
		a.imageDump.SetText(st.Image.Dump)
	default:
		a.imageHeader.SetText("Choose a file or drop one onto the window.")
		a.imageDump.SetText("")
	}

	a.refreshError(st.Err)
}

func (a *App) refreshError(msg string) {
	if msg == "" {
		a.errorLabel.SetText("")
		a.errorLabel.Hide()
		return
	}
	a.errorLabel.SetText("Error: " + msg)
	a.errorLabel.Show()
}

// loadImage reads path off the UI goroutine. A newer load supersedes this
// one, in which case the result is dropped.
func (a *App) loadImage(path string) {
	id, ctx := a.shell.BeginImageLoad(context.Background())
	opts := a.shell.Options().Preview
	a.refresh()

	go func() {
		preview, err := convert.LoadFile(ctx, path, opts)
		if a.shell.CompleteImageLoad(id, preview, err) {
			a.refresh()
		}
	}()
}

func (a *App) handleDrop(uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	if len(uris) > 1 {
		log.LogWithFields(log.F("count", len(uris))).Debug("multiple files dropped, using the first")
	}
	a.tabs.SelectIndex(2)
	a.loadImage(uris[0].Path())
}

// ShowError displays an error dialog
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	log.LogWithError(err).Warn(title)
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.mainWindow)
}

// ShowInfo displays an information dialog
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.mainWindow)
}
