package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutordesk/internal/catalog"
)

func testQuestions() []catalog.Question {
	return []catalog.Question{
		{ID: "1", Options: []string{"a", "b"}, Correct: 0, Topic: "Algebra"},
		{ID: "2", Options: []string{"a", "b"}, Correct: 1, Topic: "Geometry"},
		{ID: "3", Options: []string{"a", "b"}, Correct: 1, Topic: "Geometry"},
		{ID: "4", Options: []string{"a", "b"}, Correct: 0, Topic: "Calculus"},
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestNewRequiresQuestions(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestFullRun(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC)}
	s, err := New(testQuestions(), WithClock(clock.now))
	require.NoError(t, err)

	choices := []int{0, 0, 0, 0} // right, wrong, wrong, right
	for i, c := range choices {
		pos, total := s.Position()
		assert.Equal(t, i+1, pos)
		assert.Equal(t, 4, total)

		_, err := s.Answer(c)
		require.NoError(t, err)
		require.NoError(t, s.Next())
	}
	require.True(t, s.Done())

	clock.t = clock.t.Add(90 * time.Second)
	r := s.Result()
	assert.Equal(t, 2, r.Correct)
	assert.Equal(t, 4, r.Total)
	assert.Equal(t, 50, r.Score)
	assert.Equal(t, []string{"Geometry"}, r.WeakTopics)
	assert.Equal(t, 2, r.Minutes())
}

func TestAnswerErrors(t *testing.T) {
	s, err := New(testQuestions()[:1])
	require.NoError(t, err)

	assert.ErrorIs(t, s.Next(), ErrNotAnswered)
	_, err = s.Answer(5)
	assert.ErrorIs(t, err, ErrBadOption)

	a, err := s.Answer(0)
	require.NoError(t, err)
	assert.True(t, a.Correct)

	_, err = s.Answer(1)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	require.NoError(t, s.Next())
	_, err = s.Answer(0)
	assert.ErrorIs(t, err, ErrFinished)
	assert.ErrorIs(t, s.Next(), ErrFinished)
}

func TestPartialResultCountsUnanswered(t *testing.T) {
	s, err := New(testQuestions())
	require.NoError(t, err)
	_, err = s.Answer(0)
	require.NoError(t, err)

	r := s.Result()
	assert.Equal(t, 1, r.Correct)
	assert.Equal(t, 25, r.Score)
	assert.Equal(t, 1, r.Minutes())
}
