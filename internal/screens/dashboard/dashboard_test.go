package dashboard

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/store"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func press(t *testing.T, d *DashboardScreen, k string) tea.Msg {
	t.Helper()
	_, cmd := d.Update(key(k))
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestEnterSelectsHighlightedSubject(t *testing.T) {
	d := New(state.Initial(false, nil), Data{})

	assert.Equal(t, router.SelectSubjectMsg{SubjectID: "math"}, press(t, d, "enter"))

	press(t, d, "down")
	assert.Equal(t, router.SelectSubjectMsg{SubjectID: "physics"}, press(t, d, "enter"))
}

func TestBookmarkKeyEmitsToggle(t *testing.T) {
	d := New(state.Initial(false, nil), Data{})
	press(t, d, "down")

	assert.Equal(t, router.ToggleBookmarkMsg{SubjectID: "physics"}, press(t, d, "b"))
}

func TestQuickActions(t *testing.T) {
	d := New(state.Initial(false, nil), Data{})

	assert.Equal(t, router.StartChatMsg{}, press(t, d, "c"))
	assert.Equal(t, router.StartQuizMsg{}, press(t, d, "p"))

	press(t, d, "tab")
	assert.Equal(t, router.StartChatMsg{}, press(t, d, "enter"))
	press(t, d, "right")
	assert.Equal(t, router.StartQuizMsg{}, press(t, d, "enter"))
}

func TestSetStateShowsLearningPaths(t *testing.T) {
	d := New(state.Initial(false, nil), Data{UserName: "Alex Johnson"})

	view := d.View(120, 40)
	assert.Contains(t, view, "Welcome back, Alex!")
	assert.Contains(t, view, "No bookmarked subjects yet")

	d.SetState(state.Initial(false, []string{"physics"}))
	view = d.View(120, 40)
	assert.NotContains(t, view, "No bookmarked subjects yet")
	assert.Contains(t, view, "Energy")
	require.Equal(t, "★", d.menu.Items[1].Marker)
	assert.Equal(t, "☆", d.menu.Items[0].Marker)
}

func TestRecentSessions(t *testing.T) {
	d := New(state.Initial(false, nil), Data{Recent: []store.ActivityRecord{
		{Kind: store.ActivityQuiz, SubjectID: "math", Minutes: 12, Score: 80, CompletedAt: time.Now()},
		{Kind: store.ActivityChat, SubjectID: "gone", Minutes: 5, Score: -1, CompletedAt: time.Now()},
	}})

	assert.Contains(t, describeActivity(d.data.Recent[0]), "Quiz · Mathematics · 12m · 80%")
	assert.Contains(t, describeActivity(d.data.Recent[1]), "Chat · General · 5m")
	assert.NotContains(t, describeActivity(d.data.Recent[1]), "%")
}

func TestShortTerminalHidesWeakAreas(t *testing.T) {
	d := New(state.Initial(false, nil), Data{})
	topic := catalog.WeakAreas()[0].Topic

	assert.Contains(t, d.View(120, 40), topic)
	assert.NotContains(t, d.View(120, 24), topic)
}
