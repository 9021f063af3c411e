package common

import (
	"binviz/internal/render"
	"binviz/internal/session"
	"binviz/internal/tui/styles"
	"binviz/pkg/types"
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Tab() types.Tab
	State() session.State
	Styles() render.Styles
	Theme() styles.UI

	// InputView is the rendered input widget of the active tab.
	InputView() string
	// ImageView is the scrollable file dump.
	ImageView() string
	StatusView() string
	HelpView() string
}
