package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/state"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	target  Target
	initRan bool
	seen    []state.State
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.target.String() }
func (s *stubScreen) Title() string                           { return s.target.String() }
func (s *stubScreen) SetState(st state.State)                 { s.seen = append(s.seen, st) }

func newTestRouter() (*Router, *int) {
	builds := 0
	r := New(func(t Target, _ state.State) screen.Screen {
		builds++
		return &stubScreen{target: t}
	})
	return r, &builds
}

func TestResolveAuthGate(t *testing.T) {
	for _, v := range state.Views {
		st := state.Initial(false, nil).Navigate(v)
		if got := Resolve(st, false); got != TargetLogin {
			t.Errorf("unauthenticated %s resolved to %s, want login", v, got)
		}
		st = st.SwitchAuthView(state.AuthRegister, false)
		if got := Resolve(st, false); got != TargetRegister {
			t.Errorf("unauthenticated %s resolved to %s, want register", v, got)
		}
	}
}

func TestResolveViews(t *testing.T) {
	tests := []struct {
		view state.View
		want Target
	}{
		{state.ViewDashboard, TargetDashboard},
		{state.ViewChat, TargetChat},
		{state.ViewQuiz, TargetQuiz},
		{state.ViewProfile, TargetProfile},
		{state.ViewSubjects, TargetSubjects},
		{state.ViewAnalytics, TargetAnalytics},
		{state.ViewAdmin, TargetDashboard},
		{state.ViewCatalog, TargetDashboard},
		{state.ViewDailyQuizzes, TargetDashboard},
		{state.ViewForums, TargetDashboard},
		{state.View("nonexistent"), TargetDashboard},
		{state.View(""), TargetDashboard},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			st := state.Initial(false, nil).Navigate(tt.view)
			if got := Resolve(st, true); got != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.view, got, tt.want)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	st := state.Initial(true, []string{"math"}).SelectSubject("math")
	first := Resolve(st, true)
	for i := 0; i < 10; i++ {
		if Resolve(st, true) != first {
			t.Fatal("Resolve returned different targets for the same input")
		}
	}
}

func TestSyncBuildsOnFirstCall(t *testing.T) {
	r, builds := newTestRouter()
	r.Sync(state.Initial(false, nil), true)

	if *builds != 1 {
		t.Fatalf("builds = %d, want 1", *builds)
	}
	if r.Target() != TargetDashboard {
		t.Errorf("target = %s, want dashboard", r.Target())
	}
	if !r.Active().(*stubScreen).initRan {
		t.Error("expected Init() to run on new screen")
	}
}

func TestSyncKeepsScreenWhenTargetUnchanged(t *testing.T) {
	r, builds := newTestRouter()
	st := state.Initial(false, nil)
	r.Sync(st, true)
	first := r.Active()

	st = st.ToggleDarkMode().ToggleBookmark("math")
	r.Sync(st, true)

	if *builds != 1 {
		t.Errorf("builds = %d, want 1", *builds)
	}
	if r.Active() != first {
		t.Error("screen was replaced")
	}
	seen := first.(*stubScreen).seen
	if len(seen) != 1 || !seen[0].DarkMode || !seen[0].IsBookmarked("math") {
		t.Errorf("screen did not receive the new state: %+v", seen)
	}
}

func TestSyncRebuildsOnSubjectChange(t *testing.T) {
	r, builds := newTestRouter()
	st := state.Initial(false, nil).SelectSubject("math")
	r.Sync(st, true)
	r.Sync(st.SelectSubject("physics"), true)

	if *builds != 2 {
		t.Errorf("builds = %d, want 2", *builds)
	}
	if r.Target() != TargetChat {
		t.Errorf("target = %s, want chat", r.Target())
	}
}

func TestSyncRebuildsOnAuthChange(t *testing.T) {
	r, builds := newTestRouter()
	st := state.Initial(false, nil)
	r.Sync(st, false)
	if r.Target() != TargetLogin {
		t.Fatalf("target = %s, want login", r.Target())
	}

	r.Sync(st, true)
	if *builds != 2 || r.Target() != TargetDashboard {
		t.Errorf("builds = %d target = %s", *builds, r.Target())
	}
}

func TestViewWithoutScreen(t *testing.T) {
	r, _ := newTestRouter()
	if r.View(80, 24) != "" {
		t.Error("expected empty view before first sync")
	}
	if r.Update(nil) != nil {
		t.Error("expected nil command before first sync")
	}
}

type leavingScreen struct {
	stubScreen
	left int
}

type leftMsg struct{}

func (s *leavingScreen) Unmount() tea.Cmd {
	s.left++
	return func() tea.Msg { return leftMsg{} }
}

func TestSyncUnmountsReplacedScreen(t *testing.T) {
	var first *leavingScreen
	r := New(func(t Target, _ state.State) screen.Screen {
		if first == nil {
			first = &leavingScreen{stubScreen: stubScreen{target: t}}
			return first
		}
		return &stubScreen{target: t}
	})

	st := state.Initial(false, nil).StartChat()
	r.Sync(st, true)
	if cmd := r.Sync(st.ToggleDarkMode(), true); cmd != nil {
		t.Error("unchanged target should not return a command")
	}
	if first.left != 0 {
		t.Fatal("screen unmounted without being replaced")
	}

	cmd := r.Sync(st.NavigateBack(), true)
	if first.left != 1 {
		t.Fatalf("left = %d, want 1", first.left)
	}
	if cmd == nil {
		t.Fatal("expected the unmount command")
	}
	if _, ok := cmd().(leftMsg); !ok {
		t.Error("expected leftMsg from the batched command")
	}
}
