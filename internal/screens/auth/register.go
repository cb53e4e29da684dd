package auth

import (
	tea "charm.land/bubbletea/v2"

	authsvc "github.com/abhisek/tutordesk/internal/auth"
	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/ui/components"
	"github.com/abhisek/tutordesk/internal/ui/layout"
)

const (
	registerName = iota
	registerEmail
	registerPassword
)

// RegisterScreen creates a new account and signs it in.
type RegisterScreen struct {
	svc  *authsvc.Service
	form form
}

var (
	_ screen.Screen          = (*RegisterScreen)(nil)
	_ screen.InputCapturer   = (*RegisterScreen)(nil)
	_ screen.KeyHintProvider = (*RegisterScreen)(nil)
)

// NewRegister creates the registration screen.
func NewRegister(svc *authsvc.Service) *RegisterScreen {
	return &RegisterScreen{
		svc: svc,
		form: newForm(
			components.NewTextInput("Full name", "Alex Johnson", false, 80),
			components.NewTextInput("Email", "you@example.com", false, 120),
			components.NewTextInput("Password", "at least 6 characters", true, 72),
		),
	}
}

func (r *RegisterScreen) Init() tea.Cmd { return nil }

func (r *RegisterScreen) Title() string { return "Create Account" }

func (r *RegisterScreen) CapturingInput() bool { return true }

func (r *RegisterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authsvc.FailedMsg:
		r.form.busy = false
		r.form.err = failureText(msg.Err)
		return r, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+l" {
			return r, router.SwitchAuthView(state.AuthLogin)
		}
		if r.form.busy {
			return r, nil
		}
	}

	submit, cmd := r.form.update(msg)
	if !submit {
		return r, cmd
	}
	if field := r.form.missing(); field != "" {
		r.form.err = field + " is required."
		return r, nil
	}
	r.form.err = ""
	r.form.busy = true
	return r, authsvc.RegisterCmd(r.svc, authsvc.RegisterInput{
		Name:     r.form.value(registerName),
		Email:    r.form.value(registerEmail),
		Password: r.form.value(registerPassword),
	})
}

func (r *RegisterScreen) View(width, height int) string {
	return r.form.view("Create your account", "Start learning with your AI tutor", "Create Account",
		"Already registered? Press Ctrl+L to sign in.", width, height)
}

func (r *RegisterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create"},
		{Key: "Ctrl+L", Description: "Sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
