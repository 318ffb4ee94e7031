package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/upjobs/upjobs/internal/ui/layout"
)

// Screen is the contract every application screen implements.
type Screen interface {
	// Init returns the command to run when the screen first appears.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body (header and footer excluded).
	View(width, height int) string

	// Title names the screen for the header bar.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
