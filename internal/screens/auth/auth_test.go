package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authsvc "github.com/abhisek/tutordesk/internal/auth"
	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/store"
)

var (
	enterKey = tea.KeyPressMsg{Code: tea.KeyEnter}
	tabKey   = tea.KeyPressMsg{Code: tea.KeyTab}
)

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func newTestService(t *testing.T) *authsvc.Service {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return authsvc.NewService(st.UserRepo(), authsvc.WithBcryptCost(bcrypt.MinCost))
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(context.Background(), authsvc.RegisterInput{Name: "Alex", Email: "alex@example.com", Password: "secret1"})
	require.NoError(t, err)

	l := NewLogin(svc)
	l.form.inputs[loginEmail].SetValue("alex@example.com")
	l.form.inputs[loginPassword].SetValue("secret1")

	_, cmd := l.Update(enterKey)
	require.NotNil(t, cmd)
	assert.True(t, l.form.busy)

	msg, ok := cmd().(authsvc.ChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "Alex", msg.User.Name)
	assert.True(t, svc.IsAuthenticated())
}

func TestLoginFailureShowsMessage(t *testing.T) {
	svc := newTestService(t)
	l := NewLogin(svc)
	l.form.inputs[loginEmail].SetValue("nobody@example.com")
	l.form.inputs[loginPassword].SetValue("wrong")

	_, cmd := l.Update(enterKey)
	require.NotNil(t, cmd)
	failed, ok := cmd().(authsvc.FailedMsg)
	require.True(t, ok)

	l.Update(failed)
	assert.False(t, l.form.busy)
	assert.Equal(t, "Invalid email or password.", l.form.err)
	assert.Contains(t, l.View(100, 30), "Invalid email or password.")
}

func TestLoginRequiresFields(t *testing.T) {
	l := NewLogin(newTestService(t))

	// Enter on an empty email moves to the empty password field.
	_, _ = l.Update(enterKey)
	assert.Equal(t, loginPassword, l.form.focus)

	_, cmd := l.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Equal(t, "Email is required.", l.form.err)
	assert.False(t, l.form.busy)
}

func TestTabCyclesFocus(t *testing.T) {
	l := NewLogin(newTestService(t))
	require.True(t, l.form.inputs[loginEmail].Focused())

	l.Update(tabKey)
	assert.True(t, l.form.inputs[loginPassword].Focused())
	assert.False(t, l.form.inputs[loginEmail].Focused())

	l.Update(tabKey)
	assert.Equal(t, loginEmail, l.form.focus)
}

func TestSwitchBetweenForms(t *testing.T) {
	svc := newTestService(t)

	_, cmd := NewLogin(svc).Update(ctrlKey('r'))
	require.NotNil(t, cmd)
	assert.Equal(t, router.SwitchAuthViewMsg{View: state.AuthRegister}, cmd())

	_, cmd = NewRegister(svc).Update(ctrlKey('l'))
	require.NotNil(t, cmd)
	assert.Equal(t, router.SwitchAuthViewMsg{View: state.AuthLogin}, cmd())
}

func TestRegisterFlow(t *testing.T) {
	svc := newTestService(t)
	r := NewRegister(svc)
	r.form.inputs[registerName].SetValue("Sam Lee")
	r.form.inputs[registerEmail].SetValue("sam@example.com")
	r.form.inputs[registerPassword].SetValue("123")

	_, cmd := r.Update(enterKey)
	require.NotNil(t, cmd)
	failed, ok := cmd().(authsvc.FailedMsg)
	require.True(t, ok)
	r.Update(failed)
	assert.Equal(t, "Password must be at least 6 characters.", r.form.err)

	r.form.inputs[registerPassword].SetValue("secret1")
	_, cmd = r.Update(enterKey)
	require.NotNil(t, cmd)
	changed, ok := cmd().(authsvc.ChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "sam@example.com", changed.User.Email)
}

func TestBusyFormIgnoresKeys(t *testing.T) {
	l := NewLogin(newTestService(t))
	l.form.busy = true

	_, cmd := l.Update(enterKey)
	assert.Nil(t, cmd)
	assert.True(t, l.CapturingInput())
}

func TestFailureText(t *testing.T) {
	assert.Equal(t, "An account with this email already exists.", failureText(authsvc.ErrEmailTaken))
	assert.Equal(t, "Name is required.", failureText(&authsvc.ValidationError{Field: "name", Message: "is required"}))
	assert.Equal(t, "Something went wrong. Please try again.", failureText(context.DeadlineExceeded))
}
