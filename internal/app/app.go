// Package app is the root Bubble Tea model. It owns the session state,
// applies intents emitted by screens and mounts screens through the router.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	authsvc "github.com/abhisek/tutordesk/internal/auth"
	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/store"
	"github.com/abhisek/tutordesk/internal/tutor"
	"github.com/abhisek/tutordesk/internal/ui/layout"
	"github.com/abhisek/tutordesk/internal/ui/theme"
)

const recentSessions = 5

// Deps are the collaborators the app model drives.
type Deps struct {
	Session    *state.Session
	Auth       *authsvc.Service
	Activities store.ActivityRepo
	Tutor      *tutor.Service
	Log        *zap.Logger
	Now        func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	log    *zap.Logger
	router *router.Router
	width  int
	height int
}

// New creates the root model and mounts the first screen.
func New(deps Deps) AppModel {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Tutor == nil {
		deps.Tutor = tutor.NewService(nil, tutor.DefaultConfig(), deps.Log)
	}

	m := AppModel{deps: deps, log: deps.Log.Named("app")}
	m.router = router.New(m.build)
	theme.Apply(deps.Session.State().DarkMode)
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.sync()
}

func (m AppModel) sync() tea.Cmd {
	return m.router.Sync(m.deps.Session.State(), m.deps.Auth.IsAuthenticated())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case router.NavigateMsg, router.SelectSubjectMsg, router.PracticeSubjectMsg,
		router.StartChatMsg, router.StartQuizMsg, router.BackMsg, router.ToggleDarkModeMsg,
		router.ToggleBookmarkMsg, router.SwitchAuthViewMsg:
		m.apply(msg)
		return m, m.sync()

	case router.LogoutMsg:
		return m, authsvc.LogoutCmd(m.deps.Auth)

	case router.QuizCompletedMsg:
		m.record(store.ActivityRecord{
			Kind:      store.ActivityQuiz,
			SubjectID: msg.SubjectID,
			Minutes:   msg.Result.Minutes(),
			Score:     msg.Result.Score,
			Topics:    msg.Result.WeakTopics,
		})
		return m, nil

	case router.ChatEndedMsg:
		m.record(store.ActivityRecord{
			Kind:      store.ActivityChat,
			SubjectID: msg.SubjectID,
			Minutes:   msg.Minutes,
			Score:     -1,
			Topics:    msg.Topics,
		})
		return m, nil

	case authsvc.ChangedMsg:
		if msg.User == nil {
			m.deps.Session.NavigateBack()
			m.deps.Session.SwitchAuthView(state.AuthLogin, false)
		}
		syncCmd := m.sync()
		return m, tea.Batch(syncCmd, m.router.Update(msg))
	}

	return m, m.router.Update(msg)
}

// handleKey applies the global key bindings. It reports false for keys
// that belong to the active screen.
func (m AppModel) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	authed := m.deps.Auth.IsAuthenticated()

	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true
	case "ctrl+t":
		m.apply(router.ToggleDarkModeMsg{})
		return m.sync(), true
	case "ctrl+o":
		if !authed {
			return nil, false
		}
		return authsvc.LogoutCmd(m.deps.Auth), true
	case "esc":
		if !authed || m.capturing() {
			return nil, false
		}
		m.apply(router.BackMsg{})
		return m.sync(), true
	}

	if !authed {
		return nil, false
	}
	for _, n := range navigation {
		if msg.String() == n.key {
			m.apply(router.NavigateMsg{View: n.view})
			return m.sync(), true
		}
	}
	return nil, false
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

// apply runs one intent against the session.
func (m AppModel) apply(msg tea.Msg) {
	s := m.deps.Session
	switch msg := msg.(type) {
	case router.NavigateMsg:
		s.Navigate(msg.View)
	case router.SelectSubjectMsg:
		s.SelectSubject(msg.SubjectID)
	case router.PracticeSubjectMsg:
		s.PracticeSubject(msg.SubjectID)
	case router.StartChatMsg:
		s.StartChat()
	case router.StartQuizMsg:
		s.StartQuiz()
	case router.BackMsg:
		s.NavigateBack()
	case router.SwitchAuthViewMsg:
		s.SwitchAuthView(msg.View, m.deps.Auth.IsAuthenticated())
	case router.ToggleDarkModeMsg:
		if err := s.ToggleDarkMode(); err != nil {
			m.log.Warn("persist dark mode", zap.Error(err))
		}
		theme.Apply(s.State().DarkMode)
	case router.ToggleBookmarkMsg:
		if err := s.ToggleBookmark(msg.SubjectID); err != nil {
			m.log.Warn("persist bookmarks", zap.String("subject", msg.SubjectID), zap.Error(err))
		}
	}
}

func (m AppModel) record(a store.ActivityRecord) {
	if m.deps.Activities == nil {
		return
	}
	a.CompletedAt = m.deps.Now()
	if _, err := m.deps.Activities.Record(context.Background(), a); err != nil {
		m.log.Error("record activity", zap.String("kind", string(a.Kind)), zap.Error(err))
		return
	}
	m.log.Info("activity recorded",
		zap.String("kind", string(a.Kind)),
		zap.String("subject", a.SubjectID),
		zap.Int("minutes", a.Minutes))
	m.refreshActivity()
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame, or "" before the first window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var nav []layout.NavItem
	userName := ""
	if u := m.deps.Auth.User(); u != nil {
		nav = m.navItems()
		userName = u.Name
	}
	header := layout.RenderHeader(title, nav, userName, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Theme"})
	if m.deps.Auth.IsAuthenticated() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+O", Description: "Log out"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
