package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitial(t *testing.T) {
	s := Initial(true, nil)
	assert.Equal(t, ViewDashboard, s.View)
	assert.Equal(t, AuthLogin, s.AuthView)
	assert.False(t, s.HasSubject())
	assert.True(t, s.DarkMode)
	assert.NotNil(t, s.Bookmarks)
	assert.Empty(t, s.Bookmarks)
}

func TestSelectSubjectThenBack(t *testing.T) {
	s := Initial(false, nil).SelectSubject("math")
	assert.Equal(t, ViewChat, s.View)
	assert.Equal(t, "math", s.SelectedSubjectID)

	s = s.NavigateBack()
	assert.Equal(t, ViewDashboard, s.View)
	assert.False(t, s.HasSubject())
}

func TestPracticeSubjectOpensQuiz(t *testing.T) {
	s := Initial(false, nil).PracticeSubject("chemistry")
	assert.Equal(t, ViewQuiz, s.View)
	assert.Equal(t, "chemistry", s.SelectedSubjectID)
}

func TestStartChatAndQuizClearSubject(t *testing.T) {
	s := Initial(false, nil).SelectSubject("physics").StartQuiz()
	assert.Equal(t, ViewQuiz, s.View)
	assert.False(t, s.HasSubject())

	s = s.SelectSubject("physics").StartChat()
	assert.Equal(t, ViewChat, s.View)
	assert.False(t, s.HasSubject())
}

func TestNavigateAcceptsAnyView(t *testing.T) {
	s := Initial(false, nil).SelectSubject("math").Navigate("nonexistent")
	assert.Equal(t, View("nonexistent"), s.View)
	assert.False(t, s.View.Known())
	assert.Equal(t, "math", s.SelectedSubjectID, "navigate leaves the subject alone")

	assert.True(t, ViewForums.Known())
}

func TestToggleDarkModeParity(t *testing.T) {
	for n := 0; n <= 5; n++ {
		s := Initial(false, nil)
		for i := 0; i < n; i++ {
			s = s.ToggleDarkMode()
		}
		assert.Equal(t, n%2 == 1, s.DarkMode, "after %d toggles", n)
	}
}

func TestToggleBookmarkIsInvolution(t *testing.T) {
	base := Initial(false, []string{"math", "history"})

	once := base.ToggleBookmark("physics")
	assert.Equal(t, []string{"math", "history", "physics"}, once.Bookmarks)
	assert.True(t, once.IsBookmarked("physics"))

	twice := once.ToggleBookmark("physics")
	assert.Equal(t, base.Bookmarks, twice.Bookmarks)

	removed := base.ToggleBookmark("math")
	assert.Equal(t, []string{"history"}, removed.Bookmarks)
	assert.Equal(t, []string{"math", "history"}, base.Bookmarks, "original value must not change")
}

func TestSwitchAuthViewOnlyWhileLoggedOut(t *testing.T) {
	s := Initial(false, nil)
	assert.Equal(t, AuthRegister, s.SwitchAuthView(AuthRegister, false).AuthView)
	assert.Equal(t, AuthLogin, s.SwitchAuthView(AuthRegister, true).AuthView)
}
