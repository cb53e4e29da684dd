package state

import (
	"fmt"
	"slices"
	"sync"
)

// Persister is the write side of the preferences store.
type Persister interface {
	SaveDarkMode(dark bool) error
	SaveBookmarks(ids []string) error
}

// Session owns the live State and writes preference changes through a
// Persister. Writes happen under the session lock, so the stored value always
// matches the latest in-memory toggle.
type Session struct {
	mu    sync.Mutex
	state State
	store Persister
}

// NewSession creates a session starting at initial. A nil persister keeps
// preferences in memory only.
func NewSession(initial State, store Persister) *Session {
	return &Session{state: initial, store: store}
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	snap.Bookmarks = slices.Clone(s.state.Bookmarks)
	return snap
}

func (s *Session) apply(fn func(State) State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
}

func (s *Session) SelectSubject(id string) {
	s.apply(func(st State) State { return st.SelectSubject(id) })
}

func (s *Session) PracticeSubject(id string) {
	s.apply(func(st State) State { return st.PracticeSubject(id) })
}

func (s *Session) StartChat() {
	s.apply(State.StartChat)
}

func (s *Session) StartQuiz() {
	s.apply(State.StartQuiz)
}

func (s *Session) NavigateBack() {
	s.apply(State.NavigateBack)
}

func (s *Session) Navigate(v View) {
	s.apply(func(st State) State { return st.Navigate(v) })
}

func (s *Session) SwitchAuthView(v AuthView, authenticated bool) {
	s.apply(func(st State) State { return st.SwitchAuthView(v, authenticated) })
}

// ToggleDarkMode flips the flag and persists the new value. On a write
// error the in-memory change is kept and the error is returned.
func (s *Session) ToggleDarkMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.state.ToggleDarkMode()
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveDarkMode(s.state.DarkMode); err != nil {
		return fmt.Errorf("toggle dark mode: %w", err)
	}
	return nil
}

// ToggleBookmark adds or removes id and persists the whole list. On a write
// error the in-memory change is kept and the error is returned.
func (s *Session) ToggleBookmark(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.state.ToggleBookmark(id)
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveBookmarks(slices.Clone(s.state.Bookmarks)); err != nil {
		return fmt.Errorf("toggle bookmark %q: %w", id, err)
	}
	return nil
}
