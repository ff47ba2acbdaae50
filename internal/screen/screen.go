package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvoyager/internal/ui/layout"
)

// Screen is one full-window view managed by the router: auth,
// dashboard, assessment, roadmap, arcade and so on.
type Screen interface {
	// Init returns the command to run when the screen is first shown.
	Init() tea.Cmd

	// Update handles a message and returns the next screen state.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body. Header and footer belong to the layout.
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints with
// its own key bindings.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
