package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/state"
)

// Factory builds the screen for a target from the current state.
type Factory func(t Target, st state.State) screen.Screen

// Router holds the mounted screen and swaps it as the state changes.
type Router struct {
	build   Factory
	active  screen.Screen
	target  Target
	subject string
	mounted bool
}

// New creates a Router that builds screens with f.
func New(f Factory) *Router {
	return &Router{build: f}
}

// Sync mounts the screen for st. The screen is rebuilt when the target or
// the selected subject changed; otherwise the existing screen keeps its
// local state and receives st through SetState when it observes state.
// It returns the Unmount command of a replaced screen batched with the
// Init command of the new one.
func (r *Router) Sync(st state.State, authenticated bool) tea.Cmd {
	t := Resolve(st, authenticated)

	if r.mounted && t == r.target && st.SelectedSubjectID == r.subject {
		if obs, ok := r.active.(screen.StateObserver); ok {
			obs.SetState(st)
		}
		return nil
	}

	var leave tea.Cmd
	if u, ok := r.active.(screen.Unmounter); ok && r.mounted {
		leave = u.Unmount()
	}

	r.active = r.build(t, st)
	r.target = t
	r.subject = st.SelectedSubjectID
	r.mounted = true
	return tea.Batch(leave, r.active.Init())
}

// Active returns the mounted screen, or nil before the first Sync.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Target returns the mounted target.
func (r *Router) Target() Target {
	return r.target
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
