package auth

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
)

const requestTimeout = 10 * time.Second

// ChangedMsg reports a new signed-in user, or nil after logout.
type ChangedMsg struct {
	User *User
}

// PasswordChangedMsg reports a successful password change.
type PasswordChangedMsg struct{}

// FailedMsg reports a failed auth operation.
type FailedMsg struct {
	Op  string
	Err error
}

// LoginCmd signs in asynchronously.
func LoginCmd(s *Service, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		u, err := s.Login(ctx, email, password)
		if err != nil {
			return FailedMsg{Op: "login", Err: err}
		}
		return ChangedMsg{User: u}
	}
}

// RegisterCmd creates an account and signs it in asynchronously.
func RegisterCmd(s *Service, in RegisterInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		u, err := s.Register(ctx, in)
		if err != nil {
			return FailedMsg{Op: "register", Err: err}
		}
		return ChangedMsg{User: u}
	}
}

// UpdateProfileCmd saves the profile asynchronously.
func UpdateProfileCmd(s *Service, p ProfileUpdate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		u, err := s.UpdateProfile(ctx, p)
		if err != nil {
			return FailedMsg{Op: "profile", Err: err}
		}
		return ChangedMsg{User: u}
	}
}

// UpdateSettingsCmd saves the account settings asynchronously.
func UpdateSettingsCmd(s *Service, st Settings) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		u, err := s.UpdateSettings(ctx, st)
		if err != nil {
			return FailedMsg{Op: "settings", Err: err}
		}
		return ChangedMsg{User: u}
	}
}

// ChangePasswordCmd changes the password asynchronously.
func ChangePasswordCmd(s *Service, pc PasswordChange) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := s.ChangePassword(ctx, pc); err != nil {
			return FailedMsg{Op: "password", Err: err}
		}
		return PasswordChangedMsg{}
	}
}

// LogoutCmd signs out.
func LogoutCmd(s *Service) tea.Cmd {
	return func() tea.Msg {
		s.Logout()
		return ChangedMsg{}
	}
}
