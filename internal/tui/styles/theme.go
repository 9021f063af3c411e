package styles

import (
	"binviz/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the core UI styles
var Theme = NewTheme(config.New().Display)

// UI groups the chrome styles around the conversion output.
type UI struct {
	App         lipgloss.Style
	Title       lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Panel       lipgloss.Style
	Help        lipgloss.Style
}

// NewTheme builds the chrome styles from the display colors.
func NewTheme(d config.Display) UI {
	accent := lipgloss.Color(d.Accent)
	tab := lipgloss.NewStyle().Padding(0, 2)
	return UI{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 1).
			MarginBottom(1),
		ActiveTab: tab.
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent),
		InactiveTab: tab.
			Foreground(lipgloss.Color("#959595")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9")),
	}
}
