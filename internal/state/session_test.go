package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPersister struct {
	dark      []bool
	bookmarks [][]string
	err       error
}

func (p *recordingPersister) SaveDarkMode(dark bool) error {
	p.dark = append(p.dark, dark)
	return p.err
}

func (p *recordingPersister) SaveBookmarks(ids []string) error {
	p.bookmarks = append(p.bookmarks, ids)
	return p.err
}

func TestSessionPersistsPreferenceChanges(t *testing.T) {
	p := &recordingPersister{}
	s := NewSession(Initial(false, nil), p)

	require.NoError(t, s.ToggleDarkMode())
	require.NoError(t, s.ToggleBookmark("math"))
	require.NoError(t, s.ToggleBookmark("physics"))
	require.NoError(t, s.ToggleBookmark("math"))

	assert.Equal(t, []bool{true}, p.dark)
	require.Len(t, p.bookmarks, 3)
	assert.Equal(t, []string{"physics"}, p.bookmarks[2])
	assert.Equal(t, []string{"physics"}, s.State().Bookmarks)
}

func TestSessionNavigationDoesNotPersist(t *testing.T) {
	p := &recordingPersister{}
	s := NewSession(Initial(false, nil), p)

	s.SelectSubject("math")
	s.NavigateBack()
	s.StartQuiz()
	s.Navigate(ViewProfile)
	s.SwitchAuthView(AuthRegister, false)

	assert.Empty(t, p.dark)
	assert.Empty(t, p.bookmarks)
	assert.Equal(t, ViewProfile, s.State().View)
	assert.Equal(t, AuthRegister, s.State().AuthView)
}

func TestSessionKeepsChangeWhenWriteFails(t *testing.T) {
	p := &recordingPersister{err: errors.New("disk full")}
	s := NewSession(Initial(false, nil), p)

	err := s.ToggleDarkMode()
	require.Error(t, err)
	assert.True(t, s.State().DarkMode)

	err = s.ToggleBookmark("math")
	require.Error(t, err)
	assert.Equal(t, []string{"math"}, s.State().Bookmarks)
}

func TestSessionWithoutPersister(t *testing.T) {
	s := NewSession(Initial(false, nil), nil)
	assert.NoError(t, s.ToggleDarkMode())
	assert.NoError(t, s.ToggleBookmark("math"))
}

func TestSessionSnapshotIsIsolated(t *testing.T) {
	s := NewSession(Initial(false, []string{"math"}), nil)
	snap := s.State()
	snap.Bookmarks[0] = "changed"
	assert.Equal(t, []string{"math"}, s.State().Bookmarks)
}
