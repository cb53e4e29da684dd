// Package profile shows the signed-in student's details and lets them
// edit their profile, notification settings, language and password.
package profile

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	authsvc "github.com/abhisek/tutordesk/internal/auth"
	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/ui/components"
	"github.com/abhisek/tutordesk/internal/ui/layout"
	"github.com/abhisek/tutordesk/internal/ui/theme"
)

// xpPerLevel is the XP needed to advance one level.
const xpPerLevel = 500

const (
	fieldName = iota
	fieldMajor
	fieldYear
	fieldBio
	fieldLocation
)

const (
	fieldCurrent = iota
	fieldNew
	fieldConfirm
)

type form int

const (
	formNone form = iota
	formProfile
	formPassword
)

// Pending operations, named like authsvc.FailedMsg.Op.
const (
	opProfile  = "profile"
	opSettings = "settings"
	opPassword = "password"
)

// notifySwitch is one notification toggle bound to a number key.
type notifySwitch struct {
	key   string
	label string
	get   func(authsvc.Notifications) bool
	flip  func(*authsvc.Notifications)
}

var notifySwitches = []notifySwitch{
	{"1", "Email updates",
		func(n authsvc.Notifications) bool { return n.EmailUpdates },
		func(n *authsvc.Notifications) { n.EmailUpdates = !n.EmailUpdates }},
	{"2", "Study reminders",
		func(n authsvc.Notifications) bool { return n.StudyReminders },
		func(n *authsvc.Notifications) { n.StudyReminders = !n.StudyReminders }},
	{"3", "Quiz results",
		func(n authsvc.Notifications) bool { return n.QuizResults },
		func(n *authsvc.Notifications) { n.QuizResults = !n.QuizResults }},
	{"4", "Announcements",
		func(n authsvc.Notifications) bool { return n.Announcements },
		func(n *authsvc.Notifications) { n.Announcements = !n.Announcements }},
}

// ProfileScreen shows the profile and hosts the edit forms.
type ProfileScreen struct {
	svc     *authsvc.Service
	st      state.State
	form    form
	pending string
	inputs  []components.TextInput
	focus   int
	notice  string
	errText string
}

var (
	_ screen.Screen          = (*ProfileScreen)(nil)
	_ screen.StateObserver   = (*ProfileScreen)(nil)
	_ screen.InputCapturer   = (*ProfileScreen)(nil)
	_ screen.KeyHintProvider = (*ProfileScreen)(nil)
)

// New creates the profile screen.
func New(svc *authsvc.Service, st state.State) *ProfileScreen {
	return &ProfileScreen{svc: svc, st: st}
}

func (p *ProfileScreen) Init() tea.Cmd { return nil }

func (p *ProfileScreen) Title() string { return "Profile" }

func (p *ProfileScreen) SetState(st state.State) { p.st = st }

// CapturingInput is true while a form is open.
func (p *ProfileScreen) CapturingInput() bool { return p.form != formNone }

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authsvc.ChangedMsg:
		switch p.pending {
		case opProfile:
			p.form = formNone
			p.notice = "Profile saved."
		case opSettings:
			p.notice = "Settings saved."
		}
		p.pending = ""
		return p, nil
	case authsvc.PasswordChangedMsg:
		if p.pending == opPassword {
			p.pending = ""
			p.form = formNone
			p.notice = "Password changed."
		}
		return p, nil
	case authsvc.FailedMsg:
		if p.pending != "" && msg.Op == p.pending {
			p.pending = ""
			p.errText = describe(msg.Err)
		}
		return p, nil
	case tea.KeyPressMsg:
		if p.pending != "" {
			return p, nil
		}
		if p.form == formNone {
			return p, p.updateDetails(msg)
		}
		return p, p.updateForm(msg)
	}

	if p.form != formNone {
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *ProfileScreen) updateDetails(msg tea.KeyPressMsg) tea.Cmd {
	k := msg.String()
	switch k {
	case "e":
		return p.editProfile()
	case "p":
		return p.editPassword()
	case "l":
		return p.cycleLanguage()
	}
	for _, sw := range notifySwitches {
		if sw.key == k {
			return p.toggle(sw)
		}
	}
	return nil
}

func (p *ProfileScreen) editProfile() tea.Cmd {
	u := p.svc.User()
	if u == nil {
		return nil
	}
	p.inputs = []components.TextInput{
		components.NewTextInput("Name", "Full name", false, 80),
		components.NewTextInput("Major", "Computer Science", false, 80),
		components.NewTextInput("Year", "Junior", false, 20),
		components.NewTextInput("Bio", "A few words about you", false, 500),
		components.NewTextInput("Location", "City, Country", false, 80),
	}
	p.inputs[fieldName].SetValue(u.Name)
	p.inputs[fieldMajor].SetValue(u.Major)
	p.inputs[fieldYear].SetValue(u.Year)
	p.inputs[fieldBio].SetValue(u.Bio)
	p.inputs[fieldLocation].SetValue(u.Location)
	return p.open(formProfile)
}

func (p *ProfileScreen) editPassword() tea.Cmd {
	if p.svc.User() == nil {
		return nil
	}
	p.inputs = []components.TextInput{
		components.NewTextInput("Current password", "", true, 72),
		components.NewTextInput("New password", "At least 6 characters", true, 72),
		components.NewTextInput("Confirm new password", "", true, 72),
	}
	return p.open(formPassword)
}

func (p *ProfileScreen) open(f form) tea.Cmd {
	p.form = f
	p.focus = 0
	p.notice, p.errText = "", ""
	return p.inputs[0].Focus()
}

// settings returns the signed-in user's current settings.
func (p *ProfileScreen) settings() (authsvc.Settings, bool) {
	u := p.svc.User()
	if u == nil {
		return authsvc.Settings{}, false
	}
	return authsvc.Settings{Language: u.Language, Notifications: u.Notifications}, true
}

func (p *ProfileScreen) toggle(sw notifySwitch) tea.Cmd {
	s, ok := p.settings()
	if !ok {
		return nil
	}
	sw.flip(&s.Notifications)
	return p.saveSettings(s)
}

func (p *ProfileScreen) cycleLanguage() tea.Cmd {
	s, ok := p.settings()
	if !ok {
		return nil
	}
	next := 0
	for i, l := range authsvc.Languages {
		if l.Code == s.Language {
			next = (i + 1) % len(authsvc.Languages)
		}
	}
	s.Language = authsvc.Languages[next].Code
	return p.saveSettings(s)
}

func (p *ProfileScreen) saveSettings(s authsvc.Settings) tea.Cmd {
	p.pending = opSettings
	p.notice, p.errText = "", ""
	return authsvc.UpdateSettingsCmd(p.svc, s)
}

func (p *ProfileScreen) updateForm(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.form = formNone
		p.errText = ""
		return nil
	case "tab", "down":
		return p.moveFocus(1)
	case "shift+tab", "up":
		return p.moveFocus(-1)
	case "ctrl+s":
		return p.submit()
	case "enter":
		if p.focus == len(p.inputs)-1 {
			return p.submit()
		}
		return p.moveFocus(1)
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return cmd
}

func (p *ProfileScreen) moveFocus(delta int) tea.Cmd {
	p.inputs[p.focus].Blur()
	p.focus = (p.focus + delta + len(p.inputs)) % len(p.inputs)
	return p.inputs[p.focus].Focus()
}

func (p *ProfileScreen) submit() tea.Cmd {
	if p.form == formPassword {
		return p.savePassword()
	}
	return p.saveProfile()
}

func (p *ProfileScreen) saveProfile() tea.Cmd {
	if strings.TrimSpace(p.inputs[fieldName].Value()) == "" {
		p.errText = "Name is required."
		return nil
	}
	p.pending = opProfile
	p.errText = ""
	return authsvc.UpdateProfileCmd(p.svc, authsvc.ProfileUpdate{
		Name:     p.inputs[fieldName].Value(),
		Major:    p.inputs[fieldMajor].Value(),
		Year:     p.inputs[fieldYear].Value(),
		Bio:      p.inputs[fieldBio].Value(),
		Location: p.inputs[fieldLocation].Value(),
	})
}

func (p *ProfileScreen) savePassword() tea.Cmd {
	if p.inputs[fieldNew].Value() != p.inputs[fieldConfirm].Value() {
		p.errText = "Passwords do not match."
		return nil
	}
	p.pending = opPassword
	p.errText = ""
	return authsvc.ChangePasswordCmd(p.svc, authsvc.PasswordChange{
		Current: p.inputs[fieldCurrent].Value(),
		New:     p.inputs[fieldNew].Value(),
	})
}

var fieldLabels = map[string]string{
	"current": "Current password",
	"new":     "New password",
}

func describe(err error) string {
	var ve *authsvc.ValidationError
	switch {
	case errors.As(err, &ve):
		label, ok := fieldLabels[ve.Field]
		if !ok {
			label = strings.ToUpper(ve.Field[:1]) + ve.Field[1:]
		}
		return fmt.Sprintf("%s %s.", label, ve.Message)
	case errors.Is(err, authsvc.ErrWrongPassword):
		return "Current password is incorrect."
	case errors.Is(err, authsvc.ErrNotAuthenticated):
		return "Your session has ended. Please sign in again."
	default:
		return "Could not save your changes."
	}
}

func (p *ProfileScreen) View(width, height int) string {
	cw := min(components.ContentWidth(width), 100)
	u := p.svc.User()
	if u == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Not signed in."))
	}

	var body string
	switch p.form {
	case formProfile:
		body = p.renderForm("Edit profile", cw)
	case formPassword:
		body = p.renderForm("Change password", cw)
	default:
		body = p.renderDetails(u, cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

func (p *ProfileScreen) renderDetails(u *authsvc.User, width int) string {
	or := func(s, fallback string) string {
		if strings.TrimSpace(s) == "" {
			return theme.Hint.Render(fallback)
		}
		return theme.Body.Render(s)
	}

	var info strings.Builder
	name := u.Name
	if u.IsAdmin() {
		name += " " + theme.Badge.Render(" admin ")
	}
	info.WriteString(theme.Title.Render(name) + "\n")
	info.WriteString(theme.Hint.Render("@"+u.Username+" · "+u.Email) + "\n\n")
	rows := [][2]string{
		{"Major", or(u.Major, "not set")},
		{"Year", or(u.Year, "not set")},
		{"Location", or(u.Location, "not set")},
		{"Joined", theme.Body.Render(u.JoinedAt.Format("January 2006"))},
	}
	for _, r := range rows {
		info.WriteString(theme.Subtitle.Width(10).Render(r[0]) + " " + r[1] + "\n")
	}
	info.WriteString("\n" + or(u.Bio, "No bio yet. Press e to add one."))

	progress := float64(u.XP%xpPerLevel) / xpPerLevel
	stats := components.Columns(width,
		func(w int) string { return components.Metric("Level", fmt.Sprint(u.Level), w) },
		func(w int) string { return components.Metric("XP", fmt.Sprint(u.XP), w) },
		func(w int) string { return components.Metric("Bookmarks", fmt.Sprint(len(p.st.Bookmarks)), w) },
		func(w int) string {
			return components.Metric("Avg. progress",
				fmt.Sprintf("%.0f%%", catalog.AverageProgress(catalog.Subjects())), w)
		},
	)
	level := components.NewProgressBar(fmt.Sprintf("Level %d → %d", u.Level, u.Level+1), progress, true, max(width-4, 30)).View()

	parts := []string{
		components.Card("About", info.String(), width),
		stats,
		components.Card("Next level", level, width),
		components.Card("Settings", p.renderSettings(u), width),
	}
	switch {
	case p.pending != "":
		parts = append(parts, theme.Hint.Render("Saving..."))
	case p.errText != "":
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Error).Render(p.errText))
	case p.notice != "":
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).Render(p.notice))
	}
	return strings.Join(parts, "\n")
}

func (p *ProfileScreen) renderSettings(u *authsvc.User) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(16).Render("Language") + " " +
		theme.Body.Render(authsvc.LanguageName(u.Language)) + theme.Hint.Render("  (l)") + "\n\n")
	for _, sw := range notifySwitches {
		mark := "[ ]"
		if sw.get(u.Notifications) {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", theme.Body.Render(mark), theme.Body.Render(sw.label),
			theme.Hint.Render("("+sw.key+")")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *ProfileScreen) renderForm(title string, width int) string {
	var b strings.Builder
	for _, in := range p.inputs {
		b.WriteString(in.View() + "\n\n")
	}
	switch {
	case p.pending != "":
		b.WriteString(theme.Hint.Render("Saving..."))
	case p.errText != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(p.errText))
	default:
		b.WriteString(theme.Hint.Render("Ctrl+S to save · Esc to cancel"))
	}
	return components.Card(title, b.String(), width)
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.form != formNone {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+S", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "e", Description: "Edit profile"},
		{Key: "p", Description: "Password"},
		{Key: "l", Description: "Language"},
		{Key: "1-4", Description: "Notifications"},
		{Key: "Esc", Description: "Back"},
	}
}
