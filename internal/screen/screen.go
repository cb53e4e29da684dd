package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
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

// StateObserver is implemented by screens that show part of the session
// state and want the latest copy without being rebuilt.
type StateObserver interface {
	SetState(s state.State)
}

// InputCapturer is implemented by screens that are currently editing text.
// While CapturingInput is true the app leaves plain keys to the screen.
type InputCapturer interface {
	CapturingInput() bool
}

// Unmounter is implemented by screens that report something when the
// router replaces them, such as an unfinished session.
type Unmounter interface {
	Unmount() tea.Cmd
}
