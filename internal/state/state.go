// Package state holds the session state of the dashboard and the pure
// transitions that change it.
package state

import "slices"

// View names the main view the user is on.
type View string

const (
	ViewDashboard    View = "dashboard"
	ViewChat         View = "chat"
	ViewQuiz         View = "quiz"
	ViewProfile      View = "profile"
	ViewSubjects     View = "subjects"
	ViewAnalytics    View = "analytics"
	ViewAdmin        View = "admin"
	ViewCatalog      View = "catalog"
	ViewDailyQuizzes View = "daily-quizzes"
	ViewForums       View = "forums"
)

// Views lists every known view in navigation order.
var Views = []View{
	ViewDashboard, ViewChat, ViewQuiz, ViewProfile, ViewSubjects,
	ViewAnalytics, ViewAdmin, ViewCatalog, ViewDailyQuizzes, ViewForums,
}

// Known reports whether v is one of the enumerated views.
func (v View) Known() bool {
	return slices.Contains(Views, v)
}

// AuthView selects which form is shown to an unauthenticated user.
type AuthView string

const (
	AuthLogin    AuthView = "login"
	AuthRegister AuthView = "register"
)

// State is the full session state. It is a plain value: transitions return
// a modified copy and never touch the receiver.
type State struct {
	View     View
	AuthView AuthView

	// SelectedSubjectID is empty when no subject is selected.
	SelectedSubjectID string

	DarkMode  bool
	Bookmarks []string
}

// Initial returns the state a session starts in, seeded with the persisted
// preferences.
func Initial(darkMode bool, bookmarks []string) State {
	if bookmarks == nil {
		bookmarks = []string{}
	}
	return State{
		View:      ViewDashboard,
		AuthView:  AuthLogin,
		DarkMode:  darkMode,
		Bookmarks: slices.Clone(bookmarks),
	}
}

// HasSubject reports whether a subject is currently selected.
func (s State) HasSubject() bool {
	return s.SelectedSubjectID != ""
}

// IsBookmarked reports whether id is in the bookmark set.
func (s State) IsBookmarked(id string) bool {
	return slices.Contains(s.Bookmarks, id)
}

// SelectSubject opens the chat view for subject id.
func (s State) SelectSubject(id string) State {
	s.SelectedSubjectID = id
	s.View = ViewChat
	return s
}

// PracticeSubject opens a quiz on subject id.
func (s State) PracticeSubject(id string) State {
	s.SelectedSubjectID = id
	s.View = ViewQuiz
	return s
}

// StartChat opens a general chat with no subject.
func (s State) StartChat() State {
	s.SelectedSubjectID = ""
	s.View = ViewChat
	return s
}

// StartQuiz opens a general quiz with no subject.
func (s State) StartQuiz() State {
	s.SelectedSubjectID = ""
	s.View = ViewQuiz
	return s
}

// NavigateBack returns to the dashboard and clears the selected subject.
func (s State) NavigateBack() State {
	s.View = ViewDashboard
	s.SelectedSubjectID = ""
	return s
}

// Navigate switches to v as given. Values outside the enum are accepted and
// left to rendering to resolve. The selected subject is untouched.
func (s State) Navigate(v View) State {
	s.View = v
	return s
}

// ToggleDarkMode flips the dark-mode flag.
func (s State) ToggleDarkMode() State {
	s.DarkMode = !s.DarkMode
	return s
}

// ToggleBookmark appends id when absent and removes it when present.
func (s State) ToggleBookmark(id string) State {
	if i := slices.Index(s.Bookmarks, id); i >= 0 {
		s.Bookmarks = slices.Delete(slices.Clone(s.Bookmarks), i, i+1)
		return s
	}
	s.Bookmarks = append(slices.Clone(s.Bookmarks), id)
	return s
}

// SwitchAuthView selects the login or register form. It has no effect once
// the user is authenticated.
func (s State) SwitchAuthView(v AuthView, authenticated bool) State {
	if authenticated {
		return s
	}
	s.AuthView = v
	return s
}
