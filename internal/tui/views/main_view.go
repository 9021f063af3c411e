package views

import (
	"strings"

	"binviz/internal/tui/common"
	"binviz/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// RenderMainView draws the whole screen.
func RenderMainView(m common.ModelReader) string {
	ui := m.Theme()
	st := m.State()

	sections := []string{
		ui.Title.Render("Binary Representation Visualizer"),
		RenderTabs(m),
		"",
		ui.Panel.Render(m.InputView()),
	}

	if out := renderOutput(m); out != "" {
		sections = append(sections, "", out)
	}
	if alert := m.Styles().Error(st.Err); alert != "" {
		sections = append(sections, "", alert)
	}
	if status := m.StatusView(); status != "" {
		sections = append(sections, "", status)
	}
	sections = append(sections, "", ui.Help.Render(m.HelpView()))

	return ui.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// RenderTabs draws the tab row with the active tab highlighted.
func RenderTabs(m common.ModelReader) string {
	ui := m.Theme()
	tabs := make([]string, 0, len(types.Tabs))
	for _, t := range types.Tabs {
		if t == m.Tab() {
			tabs = append(tabs, ui.ActiveTab.Render(t.String()))
		} else {
			tabs = append(tabs, ui.InactiveTab.Render(t.String()))
		}
	}
	return strings.Join(tabs, " ")
}

func renderOutput(m common.ModelReader) string {
	st := m.State()
	s := m.Styles()

	switch m.Tab() {
	case types.DecimalTab:
		if st.Binary != "" {
			return s.Decimal(st.Binary)
		}
	case types.TextTab:
		if len(st.TextEntries) > 0 {
			return s.Text(st.TextEntries)
		}
	case types.ImageTab:
		if st.Image != nil {
			return m.ImageView()
		}
	}
	return ""
}
