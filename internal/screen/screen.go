package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/toyvox/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that own timers or in-flight game state.
// Close is called once when the screen leaves the stack or the app exits,
// so that late ticks cannot touch a discarded game.
type Closer interface {
	Close()
}
