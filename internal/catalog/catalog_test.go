package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectsAreSixAndKnown(t *testing.T) {
	all := Subjects()
	require.Len(t, all, 6)
	for _, s := range all {
		assert.True(t, Known(s.ID), s.ID)
	}
	assert.False(t, Known("astrology"))
}

func TestSubjectsReturnsCopy(t *testing.T) {
	all := Subjects()
	all[0].Name = "changed"
	s, ok := SubjectByID(all[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Mathematics", s.Name)
}

func TestBookmarkedKeepsCatalogOrder(t *testing.T) {
	got := Bookmarked([]string{"history", "math", "stale"})
	require.Len(t, got, 2)
	assert.Equal(t, "math", got[0].ID)
	assert.Equal(t, "history", got[1].ID)
	assert.Empty(t, Bookmarked(nil))
}

func TestAverageProgress(t *testing.T) {
	assert.Zero(t, AverageProgress(nil))

	math, _ := SubjectByID("math")       // 18/24 = 75%
	biology, _ := SubjectByID("biology") // 20/22
	want := (75.0 + 20.0/22.0*100) / 2
	assert.InDelta(t, want, AverageProgress([]Subject{math, biology}), 1e-9)
}

func TestCurrentTopic(t *testing.T) {
	math, _ := SubjectByID("math")
	assert.Equal(t, "Exponentials", CurrentTopic(math))

	math.CompletedTopics = 100
	assert.Equal(t, "Polar Coordinates", CurrentTopic(math), "clamps to last topic")

	assert.Equal(t, "General Topics", CurrentTopic(Subject{ID: "unknown"}))
}

func TestSearch(t *testing.T) {
	got := Search("  CHEM ")
	require.Len(t, got, 1)
	assert.Equal(t, "chemistry", got[0].ID)
	assert.Len(t, Search(""), 6)
	assert.Empty(t, Search("zzz"))
}

func TestQuestions(t *testing.T) {
	math := Questions("math")
	assert.Len(t, math, 3)
	for _, q := range math {
		assert.Equal(t, "math", q.SubjectID)
		assert.Less(t, q.Correct, len(q.Options))
	}
	assert.Len(t, Questions(""), len(questions))
	assert.Empty(t, Questions("astrology"))
}

func TestCourses(t *testing.T) {
	c, ok := CourseByID("physics")
	require.True(t, ok)
	assert.Equal(t, "PHYS 401", c.Code)
	assert.True(t, c.Full())

	math, _ := CourseByID("math")
	assert.Equal(t, 1, math.UnreadAnnouncements())

	_, ok = CourseByID("history")
	assert.False(t, ok)

	assert.Len(t, FilterCourses("", FilterAll), 3)
	assert.Len(t, FilterCourses("", FilterEnrolled), 3)
	assert.Empty(t, FilterCourses("", FilterAvailable))
	assert.Len(t, FilterCourses("chem", FilterAll), 1)
	assert.Len(t, FilterCourses("301", FilterAll), 1)
}
