package subjects

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/state"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func typeText(s *SubjectsScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func names(s *SubjectsScreen) []string {
	var out []string
	for _, subj := range s.visible {
		out = append(out, subj.Name)
	}
	return out
}

func TestListsAllSubjects(t *testing.T) {
	s := New(state.Initial(false, nil))
	assert.Len(t, s.visible, 6)
	assert.Contains(t, s.View(120, 40), "Mathematics")
}

func TestSearchFiltersByName(t *testing.T) {
	s := New(state.Initial(false, nil))

	s.Update(key("/"))
	require.True(t, s.CapturingInput())
	typeText(s, "bio")
	assert.Equal(t, []string{"Biology"}, names(s))

	s.Update(key("enter"))
	assert.False(t, s.CapturingInput())
	assert.Equal(t, []string{"Biology"}, names(s))

	s.Update(key("/"))
	s.Update(key("esc"))
	assert.Len(t, s.visible, 6)
}

func TestFilterCycles(t *testing.T) {
	s := New(state.Initial(false, nil))

	s.Update(key("f"))
	assert.Equal(t, FilterEnrolled, s.filter)
	assert.Equal(t, []string{"Mathematics", "Physics", "Chemistry"}, names(s))

	s.Update(key("f"))
	assert.Equal(t, FilterAvailable, s.filter)
	assert.Equal(t, []string{"Biology", "History", "Literature"}, names(s))

	s.Update(key("f"))
	assert.Equal(t, FilterAll, s.filter)
}

func TestEnterAndBookmark(t *testing.T) {
	s := New(state.Initial(false, nil))
	s.Update(key("down"))

	_, cmd := s.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, router.SelectSubjectMsg{SubjectID: "physics"}, cmd())

	_, cmd = s.Update(key("b"))
	require.NotNil(t, cmd)
	assert.Equal(t, router.ToggleBookmarkMsg{SubjectID: "physics"}, cmd())

	_, cmd = s.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, router.PracticeSubjectMsg{SubjectID: "physics"}, cmd())
}

func TestSetStateKeepsCursor(t *testing.T) {
	s := New(state.Initial(false, nil))
	s.Update(key("down"))
	s.Update(key("down"))

	s.SetState(state.Initial(false, []string{"chemistry"}))
	subj, ok := s.current()
	require.True(t, ok)
	assert.Equal(t, "chemistry", subj.ID)
	assert.Equal(t, "★", s.menu.Items[2].Marker)
}

func TestEmptyFilterShowsMessage(t *testing.T) {
	s := New(state.Initial(false, nil))
	s.Update(key("f"))
	s.Update(key("/"))
	typeText(s, "bio")
	s.Update(key("enter"))
	assert.Empty(t, s.visible)
	assert.Contains(t, s.View(120, 40), "No subjects match.")

	_, cmd := s.Update(key("enter"))
	assert.Nil(t, cmd)
}

func TestCourseDetail(t *testing.T) {
	s := New(state.Initial(false, nil))
	view := s.View(140, 60)
	assert.Contains(t, view, "MATH 301")
	assert.Contains(t, view, "Dr. Sarah Chen")
}
