// Package dashboard is the signed-in landing screen: quick actions,
// learning paths, the subject list, weak areas and recent sessions.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutordesk/internal/analytics"
	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/store"
	"github.com/abhisek/tutordesk/internal/ui/components"
	"github.com/abhisek/tutordesk/internal/ui/layout"
	"github.com/abhisek/tutordesk/internal/ui/theme"
)

type focus int

const (
	focusActions focus = iota
	focusSubjects
)

var actionLabels = []string{"Start AI Tutoring", "Daily Practice"}

// Data is what the dashboard shows besides the session state.
type Data struct {
	UserName string
	Recent   []store.ActivityRecord
}

// DashboardScreen is the main screen after sign-in.
type DashboardScreen struct {
	st       state.State
	data     Data
	subjects []catalog.Subject
	menu     components.Menu
	focus    focus
	action   int
}

var (
	_ screen.Screen          = (*DashboardScreen)(nil)
	_ screen.StateObserver   = (*DashboardScreen)(nil)
	_ screen.KeyHintProvider = (*DashboardScreen)(nil)
)

// New creates the dashboard for st.
func New(st state.State, data Data) *DashboardScreen {
	d := &DashboardScreen{
		st:       st,
		data:     data,
		subjects: catalog.Subjects(),
		focus:    focusSubjects,
	}
	d.menu = components.NewMenu(d.subjectItems())
	return d
}

func (d *DashboardScreen) Init() tea.Cmd { return nil }

func (d *DashboardScreen) Title() string { return "Dashboard" }

// SetState refreshes bookmarks without moving the cursor.
func (d *DashboardScreen) SetState(st state.State) {
	d.st = st
	d.menu = d.menu.SetItems(d.subjectItems())
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "tab", "shift+tab":
		if d.focus == focusActions {
			d.focus = focusSubjects
		} else {
			d.focus = focusActions
		}
		return d, nil
	case "c":
		return d, router.StartChat()
	case "p":
		return d, router.StartQuiz()
	}

	if d.focus == focusActions {
		return d, d.updateActions(kmsg)
	}
	return d, d.updateSubjects(kmsg)
}

func (d *DashboardScreen) updateActions(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		d.action = max(d.action-1, 0)
	case "right", "l":
		d.action = min(d.action+1, len(actionLabels)-1)
	case "enter":
		if d.action == 0 {
			return router.StartChat()
		}
		return router.StartQuiz()
	}
	return nil
}

func (d *DashboardScreen) updateSubjects(msg tea.KeyPressMsg) tea.Cmd {
	i := d.menu.Current()
	switch msg.String() {
	case "enter":
		if i >= 0 {
			return router.SelectSubject(d.subjects[i].ID)
		}
	case "b":
		if i >= 0 {
			return router.ToggleBookmark(d.subjects[i].ID)
		}
	default:
		d.menu = d.menu.Update(msg)
	}
	return nil
}

func (d *DashboardScreen) subjectItems() []components.MenuItem {
	items := make([]components.MenuItem, len(d.subjects))
	for i, s := range d.subjects {
		marker := "☆"
		if d.st.IsBookmarked(s.ID) {
			marker = "★"
		}
		items[i] = components.MenuItem{
			Label:  s.Name,
			Marker: marker,
			Detail: fmt.Sprintf("%.0f%% · %s", s.Progress(), s.Difficulty),
		}
	}
	return items
}

// SetRecent replaces the recent sessions list.
func (d *DashboardScreen) SetRecent(recs []store.ActivityRecord) {
	d.data.Recent = recs
}

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompactWidth(width)

	var sections []string
	sections = append(sections, d.renderGreeting())
	sections = append(sections, d.renderActions())

	if compact {
		sections = append(sections,
			d.renderPaths(cw),
			components.Card("All Subjects", d.menu.View(d.focus == focusSubjects), cw),
		)
	} else {
		sections = append(sections, components.Columns(cw,
			d.renderPaths,
			func(w int) string {
				return components.Card("All Subjects", d.menu.View(d.focus == focusSubjects), w)
			},
		))
		if !layout.IsCompactHeight(height) {
			sections = append(sections, components.Columns(cw, renderWeakAreas, d.renderRecent))
		}
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (d *DashboardScreen) renderGreeting() string {
	name := firstName(d.data.UserName)
	if name == "" {
		name = "there"
	}
	return theme.Title.Render("Welcome back, "+name+"!") + "\n" +
		theme.Subtitle.Render("Ready to continue your learning journey?")
}

func (d *DashboardScreen) renderActions() string {
	focused := -1
	if d.focus == focusActions {
		focused = d.action
	}
	return components.ButtonRow(actionLabels, focused)
}

func (d *DashboardScreen) renderPaths(width int) string {
	paths := catalog.Bookmarked(d.st.Bookmarks)
	if len(paths) == 0 {
		return components.Card("Learning Paths",
			theme.Hint.Render("No bookmarked subjects yet. Press b on a subject to add it."), width)
	}

	barWidth := max(width-30, 6)
	var b strings.Builder
	for _, s := range paths {
		fmt.Fprintf(&b, "%s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Bold(true).Render(s.Name),
			theme.Hint.Render(catalog.CurrentTopic(s)))
		fmt.Fprintf(&b, "%s %3.0f%%\n", components.Bar(barWidth, s.Progress()/100), s.Progress())
	}
	fmt.Fprintf(&b, "\n%s", theme.Subtitle.Render(fmt.Sprintf("Average progress %.0f%%", catalog.AverageProgress(paths))))
	return components.Card("Learning Paths", b.String(), width)
}

func renderWeakAreas(width int) string {
	var b strings.Builder
	for _, w := range catalog.WeakAreas() {
		fmt.Fprintf(&b, "%s  %s\n", theme.Body.Render(w.Topic),
			lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("%d%%", w.Accuracy)))
		if len(w.Suggestions) > 0 {
			b.WriteString(theme.Hint.Render("  "+w.Suggestions[0]) + "\n")
		}
	}
	return components.Card("Areas to Improve", strings.TrimRight(b.String(), "\n"), width)
}

func (d *DashboardScreen) renderRecent(width int) string {
	if len(d.data.Recent) == 0 {
		return components.Card("Recent Sessions", theme.Hint.Render("No sessions yet."), width)
	}
	var b strings.Builder
	for _, a := range d.data.Recent {
		b.WriteString(describeActivity(a) + "\n")
	}
	return components.Card("Recent Sessions", strings.TrimRight(b.String(), "\n"), width)
}

func describeActivity(a store.ActivityRecord) string {
	subject := "General"
	if s, ok := catalog.SubjectByID(a.SubjectID); ok {
		subject = s.Name
	}
	kind := "Chat"
	if a.Kind == store.ActivityQuiz {
		kind = "Quiz"
	}
	line := fmt.Sprintf("%s · %s · %s", kind, subject, analytics.FormatMinutes(a.Minutes))
	if a.Score >= 0 {
		line += fmt.Sprintf(" · %d%%", a.Score)
	}
	return theme.Body.Render(line)
}

func firstName(full string) string {
	if f := strings.Fields(full); len(f) > 0 {
		return f[0]
	}
	return ""
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Focus"},
		{Key: "↑↓", Description: "Subjects"},
		{Key: "Enter", Description: "Open"},
		{Key: "b", Description: "Bookmark"},
		{Key: "c/p", Description: "Chat/Practice"},
	}
}
