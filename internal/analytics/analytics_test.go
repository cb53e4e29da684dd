package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/store"
)

func at(day, hour int) time.Time {
	return time.Date(2024, 12, day, hour, 0, 0, 0, time.UTC)
}

func TestFormatMinutes(t *testing.T) {
	tests := map[int]string{
		0:   "0m",
		45:  "45m",
		60:  "1h 0m",
		145: "2h 25m",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatMinutes(in), "FormatMinutes(%d)", in)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, at(15, 12), nil)
	assert.Zero(t, s.TodayMinutes)
	assert.Zero(t, s.Streak)
	assert.Zero(t, s.AverageScore)
	require.Len(t, s.Week, 7)
	assert.Equal(t, "Mon", s.Week[0].Label)
	assert.Equal(t, "Sun", s.Week[6].Label)
}

func TestSummarize(t *testing.T) {
	now := at(15, 20)
	activities := []store.ActivityRecord{
		{Kind: store.ActivityQuiz, Minutes: 25, Score: 85, CompletedAt: at(15, 10)},
		{Kind: store.ActivityChat, Minutes: 18, Score: -1, CompletedAt: at(15, 9)},
		{Kind: store.ActivityQuiz, Minutes: 22, Score: 78, CompletedAt: at(14, 16)},
		{Kind: store.ActivityQuiz, Minutes: 30, Score: 60, CompletedAt: at(13, 16)},
		{Kind: store.ActivityQuiz, Minutes: 40, Score: 90, CompletedAt: at(1, 16)},
	}
	subjects := catalog.Subjects()

	s := Summarize(activities, now, subjects)
	assert.Equal(t, 43, s.TodayMinutes)
	assert.Equal(t, 135, s.TotalMinutes)
	assert.Equal(t, 3, s.Streak)
	assert.Equal(t, 95, s.WeekMinutes)
	assert.Equal(t, 5, s.Sessions)
	assert.Equal(t, (85+78+60+90)/4, s.AverageScore)
	assert.Equal(t, 6, s.AllSubjects)
	assert.Zero(t, s.FinishedSubjects)
	assert.Equal(t, 43, s.Week[6].Minutes)
	assert.Equal(t, 22, s.Week[5].Minutes)
	assert.Equal(t, 43, s.BusiestDay())
	assert.Equal(t, 95/7, s.DailyAverage())
}

func TestStreakEndingYesterday(t *testing.T) {
	activities := []store.ActivityRecord{
		{Minutes: 10, Score: -1, CompletedAt: at(14, 10)},
		{Minutes: 10, Score: -1, CompletedAt: at(13, 10)},
	}
	assert.Equal(t, 2, Summarize(activities, at(15, 8), nil).Streak)
	assert.Zero(t, Summarize(activities, at(16, 8), nil).Streak)
}

func TestFinishedSubjects(t *testing.T) {
	subjects := []catalog.Subject{
		{ID: "a", TotalTopics: 10, CompletedTopics: 10},
		{ID: "b", TotalTopics: 10, CompletedTopics: 3},
	}
	s := Summarize(nil, at(15, 8), subjects)
	assert.Equal(t, 2, s.AllSubjects)
	assert.Equal(t, 1, s.FinishedSubjects)
}
