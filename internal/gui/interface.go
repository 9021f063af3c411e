package gui

import (
	"binviz/internal/config"
	"binviz/internal/session"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	ShowError(title string, err error)
	ShowInfo(message string)
}

// Factory creates GUI instances
type Factory struct {
	config *config.Config
	shell  *session.Shell
}

// NewFactory creates a new GUI factory
func NewFactory(cfg *config.Config, shell *session.Shell) *Factory {
	return &Factory{
		config: cfg,
		shell:  shell,
	}
}
