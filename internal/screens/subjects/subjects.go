// Package subjects is the subject browser: search, filter, bookmarks and
// course details.
package subjects

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/ui/components"
	"github.com/abhisek/tutordesk/internal/ui/layout"
	"github.com/abhisek/tutordesk/internal/ui/theme"
)

// Filter narrows the subject list by enrollment.
type Filter int

const (
	FilterAll Filter = iota
	FilterEnrolled
	FilterAvailable // not enrolled yet
)

func (f Filter) String() string {
	switch f {
	case FilterEnrolled:
		return "Enrolled"
	case FilterAvailable:
		return "Available"
	default:
		return "All"
	}
}

// SubjectsScreen lists subjects with a detail pane for the highlighted one.
type SubjectsScreen struct {
	st        state.State
	search    components.TextInput
	searching bool
	filter    Filter
	visible   []catalog.Subject
	menu      components.Menu
}

var (
	_ screen.Screen          = (*SubjectsScreen)(nil)
	_ screen.StateObserver   = (*SubjectsScreen)(nil)
	_ screen.InputCapturer   = (*SubjectsScreen)(nil)
	_ screen.KeyHintProvider = (*SubjectsScreen)(nil)
)

// New creates the subject browser.
func New(st state.State) *SubjectsScreen {
	s := &SubjectsScreen{
		st:     st,
		search: components.NewTextInput("", "Search subjects...", false, 60),
	}
	s.refresh()
	return s
}

func (s *SubjectsScreen) Init() tea.Cmd { return nil }

func (s *SubjectsScreen) Title() string { return "Subjects" }

func (s *SubjectsScreen) SetState(st state.State) {
	s.st = st
	s.refresh()
}

// CapturingInput is true while the search box has focus.
func (s *SubjectsScreen) CapturingInput() bool { return s.searching }

// refresh recomputes the visible list, keeping the cursor on the same
// subject when it is still shown.
func (s *SubjectsScreen) refresh() {
	prev := ""
	if i := s.menu.Current(); i >= 0 && i < len(s.visible) {
		prev = s.visible[i].ID
	}

	enrolled := make(map[string]bool)
	for _, c := range catalog.FilterCourses("", catalog.FilterEnrolled) {
		enrolled[c.SubjectID] = true
	}

	s.visible = s.visible[:0]
	for _, subj := range catalog.Search(s.search.Value()) {
		if s.filter == FilterEnrolled && !enrolled[subj.ID] ||
			s.filter == FilterAvailable && enrolled[subj.ID] {
			continue
		}
		s.visible = append(s.visible, subj)
	}

	items := make([]components.MenuItem, len(s.visible))
	for i, subj := range s.visible {
		marker := "☆"
		if s.st.IsBookmarked(subj.ID) {
			marker = "★"
		}
		items[i] = components.MenuItem{
			Label:  subj.Name,
			Marker: marker,
			Detail: fmt.Sprintf("%.0f%%", subj.Progress()),
		}
	}
	s.menu = s.menu.SetItems(items)
	for i, subj := range s.visible {
		if subj.ID == prev {
			s.menu.Selected = i
		}
	}
}

func (s *SubjectsScreen) current() (catalog.Subject, bool) {
	i := s.menu.Current()
	if i < 0 {
		return catalog.Subject{}, false
	}
	return s.visible[i], true
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.searching {
		return s, s.updateSearch(msg)
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "/":
		s.searching = true
		return s, s.search.Focus()
	case "f":
		s.filter = (s.filter + 1) % 3
		s.refresh()
		return s, nil
	}

	subj, ok := s.current()
	switch kmsg.String() {
	case "enter":
		if ok {
			return s, router.SelectSubject(subj.ID)
		}
	case "q":
		if ok {
			return s, router.PracticeSubject(subj.ID)
		}
	case "b":
		if ok {
			return s, router.ToggleBookmark(subj.ID)
		}
	default:
		s.menu = s.menu.Update(kmsg)
	}
	return s, nil
}

func (s *SubjectsScreen) updateSearch(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.search.Reset()
			fallthrough
		case "enter":
			s.searching = false
			s.search.Blur()
			s.refresh()
			return nil
		}
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.refresh()
	return cmd
}

func (s *SubjectsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	filters := make([]string, 3)
	for f := FilterAll; f <= FilterAvailable; f++ {
		label := " " + f.String() + " "
		if f == s.filter {
			filters[f] = theme.ButtonActive.Render(label)
		} else {
			filters[f] = theme.ButtonInactive.Render(label)
		}
	}
	top := s.search.View() + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, filters...)

	list := func(w int) string {
		if len(s.visible) == 0 {
			return components.Card("Subjects", theme.Hint.Render("No subjects match."), w)
		}
		return components.Card(fmt.Sprintf("Subjects (%d)", len(s.visible)), s.menu.View(!s.searching), w)
	}
	detail := func(w int) string {
		subj, ok := s.current()
		if !ok {
			return ""
		}
		return renderDetail(subj, w)
	}

	var body string
	if layout.IsCompactWidth(width) {
		body = list(cw) + "\n" + detail(cw)
	} else {
		body = components.Columns(cw, list, detail)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, top+"\n\n"+body)
}

func renderDetail(subj catalog.Subject, width int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Render(subj.Description) + "\n\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d of %d topics · %s", subj.CompletedTopics, subj.TotalTopics, subj.Difficulty)) + "\n")
	b.WriteString(components.Bar(max(width-10, 10), subj.Progress()/100) + "\n")
	b.WriteString(theme.Hint.Render("Up next: "+catalog.CurrentTopic(subj)) + "\n")

	if c, ok := catalog.CourseByID(subj.ID); ok {
		b.WriteString("\n" + renderCourse(c))
	}
	return components.Card(subj.Name, b.String(), width)
}

func renderCourse(c catalog.Course) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(c.Code+" · "+c.Name) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%s, %s", c.Instructor.Name, c.Instructor.Title)) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s %s · %s", strings.Join(c.Schedule.Days, "/"), c.Schedule.Time, c.Schedule.Location)) + "\n")

	seats := fmt.Sprintf("%d/%d seats", c.Enrolled, c.Capacity)
	if c.Full() {
		seats += " (full)"
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s · %d credits · %s", statusLabel(c.Status), c.Credits, seats)) + "\n")
	if c.Status == catalog.Enrolled {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Current grade %.1f%%", c.Grade)) + "\n")
	}
	if n := c.UnreadAnnouncements(); n > 0 {
		b.WriteString(theme.Badge.Render(fmt.Sprintf(" %d new announcement(s) ", n)) + "\n")
	}

	if len(c.Assignments) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("Assignments") + "\n")
		for _, a := range c.Assignments {
			line := fmt.Sprintf("• %s · due %s", a.Title, a.Due.Format("Jan 2"))
			if a.Grade != nil {
				line += fmt.Sprintf(" · %d/%d", *a.Grade, a.MaxPoints)
			} else {
				line += " · " + string(a.Status)
			}
			b.WriteString(theme.Body.Render(line) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func statusLabel(s catalog.EnrollmentStatus) string {
	switch s {
	case catalog.Enrolled:
		return "Enrolled"
	case catalog.Waitlist:
		return "Waitlisted"
	case catalog.Closed:
		return "Closed"
	default:
		return "Open for enrollment"
	}
}

func (s *SubjectsScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}, {Key: "Esc", Description: "Clear"}}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "f", Description: "Filter"},
		{Key: "Enter", Description: "Tutor"},
		{Key: "q", Description: "Quiz"},
		{Key: "b", Description: "Bookmark"},
	}
}
