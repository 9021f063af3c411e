//go:build nogui
// +build nogui

package gui

import (
	"fmt"
)

// Create is a stub for builds with the GUI disabled
func (f *Factory) Create() (Interface, error) {
	return nil, fmt.Errorf("GUI not available in this build")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
