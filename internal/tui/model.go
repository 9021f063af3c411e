package tui

import (
	"context"
	"os"

	"binviz/internal/config"
	"binviz/internal/convert"
	"binviz/internal/filetype"
	"binviz/internal/log"
	"binviz/internal/render"
	"binviz/internal/session"
	"binviz/internal/tui/components"
	"binviz/internal/tui/messages"
	"binviz/internal/tui/styles"
	"binviz/internal/tui/views"
	"binviz/pkg/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	shell  *session.Shell
	keys   types.KeyMap
	styles render.Styles
	theme  styles.UI

	tab         types.Tab
	decimal     textinput.Model
	text        textarea.Model
	picker      filepicker.Model
	path        textinput.Model
	editingPath bool
	dump        viewport.Model
	help        help.Model
	statusBar   *components.StatusBar

	width  int
	height int
}

// New creates the model. cfg supplies colors and the picker's extension hint.
func New(shell *session.Shell, cfg *config.Config) *Model {
	decimal := textinput.New()
	decimal.Placeholder = "Enter a decimal number (0-255)"
	decimal.CharLimit = 32
	decimal.Width = 32
	decimal.Focus()

	text := textarea.New()
	text.Placeholder = "Enter text to convert to binary"
	text.ShowLineNumbers = false
	text.SetHeight(3)

	path := textinput.New()
	path.Placeholder = "Path to a file (paste or drop it here)"
	path.Width = 60

	picker := filepicker.New()
	if wd, err := os.Getwd(); err == nil {
		picker.CurrentDirectory = wd
	}
	// The extension list only highlights likely images; other files stay selectable.
	if matcher, err := filetype.NewMatcher(cfg.Image.Patterns); err == nil {
		picker.AllowedTypes = matcher.Extensions()
	} else {
		log.LogWithFields(log.F("error", err)).Warn("ignoring invalid image patterns")
	}

	return &Model{
		shell:     shell,
		keys:      types.DefaultKeyMap(),
		styles:    render.NewStyles(cfg.Display),
		theme:     styles.NewTheme(cfg.Display),
		tab:       types.DecimalTab,
		decimal:   decimal,
		text:      text,
		picker:    picker,
		path:      path,
		dump:      viewport.New(80, 12),
		help:      help.New(),
		statusBar: components.NewStatusBar(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.picker.Init())
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case messages.ImageLoadedMsg:
		return m, m.handleImageLoaded(msg)
	}

	var cmds []tea.Cmd
	if cmd := m.statusBar.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	// The picker reads directories asynchronously and needs its messages
	// even while another tab is shown.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height

	inner := max(width-8, 20)
	m.decimal.Width = min(inner, 32)
	m.text.SetWidth(inner)
	m.path.Width = inner
	m.dump.Width = inner
	m.dump.Height = max(height/3, 5)
	m.help.Width = inner
	m.refreshDump()
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		return m, m.switchTab(m.tab.Next())
	case key.Matches(msg, m.keys.PrevTab):
		return m, m.switchTab(m.tab.Prev())
	}

	switch m.tab {
	case types.DecimalTab:
		return m, m.updateDecimal(msg)
	case types.TextTab:
		return m, m.updateText(msg)
	default:
		return m, m.updateImage(msg)
	}
}

func (m *Model) switchTab(tab types.Tab) tea.Cmd {
	m.tab = tab
	m.decimal.Blur()
	m.text.Blur()
	m.path.Blur()

	switch tab {
	case types.DecimalTab:
		return m.decimal.Focus()
	case types.TextTab:
		return m.text.Focus()
	default:
		if m.editingPath {
			return m.path.Focus()
		}
	}
	return nil
}

func (m *Model) updateDecimal(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Convert) {
		_ = m.shell.ConvertDecimal()
		return nil
	}

	before := m.decimal.Value()
	var cmd tea.Cmd
	m.decimal, cmd = m.decimal.Update(msg)
	if m.decimal.Value() != before {
		m.shell.EditDecimal(m.decimal.Value())
	}
	return cmd
}

func (m *Model) updateText(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ConvertText) {
		_ = m.shell.ConvertText()
		return nil
	}

	before := m.text.Value()
	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	if m.text.Value() != before {
		m.shell.EditText(m.text.Value())
	}
	return cmd
}

func (m *Model) updateImage(msg tea.KeyMsg) tea.Cmd {
	if m.editingPath {
		switch {
		case key.Matches(msg, m.keys.CancelPath):
			m.editingPath = false
			m.path.Blur()
			return nil
		case key.Matches(msg, m.keys.Convert):
			return m.startLoad(m.path.Value())
		}
		var cmd tea.Cmd
		m.path, cmd = m.path.Update(msg)
		return cmd
	}

	if key.Matches(msg, m.keys.EnterPath) {
		m.editingPath = true
		return m.path.Focus()
	}

	switch msg.String() {
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.dump, cmd = m.dump.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return tea.Batch(cmd, m.startLoad(path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		return tea.Batch(cmd, m.startLoad(path))
	}
	return cmd
}

// startLoad begins a load through the shell and returns the command that
// performs the read. Only the latest load's result is applied.
func (m *Model) startLoad(path string) tea.Cmd {
	id, ctx := m.shell.BeginImageLoad(context.Background())
	m.statusBar.SetText("Reading " + path)
	spin := m.statusBar.SetLoading(true)
	opts := m.shell.Options().Preview

	read := func() tea.Msg {
		p, err := convert.LoadFile(ctx, path, opts)
		return messages.ImageLoadedMsg{ID: id, Preview: p, Err: err}
	}
	return tea.Batch(read, spin)
}

func (m *Model) handleImageLoaded(msg messages.ImageLoadedMsg) tea.Cmd {
	if !m.shell.CompleteImageLoad(msg.ID, msg.Preview, msg.Err) {
		return nil
	}
	m.statusBar.SetLoading(false)
	m.statusBar.SetText("")
	m.refreshDump()
	m.dump.GotoTop()
	return nil
}

func (m *Model) refreshDump() {
	if img := m.shell.State().Image; img != nil {
		m.dump.SetContent(m.styles.Image(img, m.dump.Width))
	} else {
		m.dump.SetContent("")
	}
}

// Tab returns the active tab
func (m *Model) Tab() types.Tab {
	return m.tab
}

// State returns the shell's display state
func (m *Model) State() session.State {
	return m.shell.State()
}

func (m *Model) Styles() render.Styles {
	return m.styles
}

func (m *Model) Theme() styles.UI {
	return m.theme
}

// InputView renders the input widget of the active tab
func (m *Model) InputView() string {
	switch m.tab {
	case types.DecimalTab:
		return m.decimal.View()
	case types.TextTab:
		return m.text.View()
	default:
		if m.editingPath {
			return m.path.View()
		}
		return m.picker.View()
	}
}

func (m *Model) ImageView() string {
	return m.dump.View()
}

func (m *Model) StatusView() string {
	return m.statusBar.View()
}

func (m *Model) HelpView() string {
	return m.help.View(m.keys)
}

// EditingPath reports whether the image tab shows the path input.
func (m *Model) EditingPath() bool {
	return m.editingPath
}

// Run starts the program on the terminal.
func Run(shell *session.Shell, cfg *config.Config) error {
	p := tea.NewProgram(New(shell, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
