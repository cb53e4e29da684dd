// Package analytics turns recorded study activity into dashboard metrics.
package analytics

import (
	"fmt"
	"time"

	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/store"
)

// Day is one bar of the weekly chart.
type Day struct {
	Date    time.Time
	Label   string // Mon..Sun
	Minutes int
}

// Summary holds the study metrics shown on the analytics screen.
type Summary struct {
	TodayMinutes     int
	TotalMinutes     int
	Streak           int
	Week             []Day // last 7 days, oldest first
	WeekMinutes      int
	Sessions         int
	AverageScore     int // over scored sessions, 0 when none
	AllSubjects      int
	FinishedSubjects int
}

// DailyAverage returns the mean minutes per day over the week.
func (s Summary) DailyAverage() int {
	return s.WeekMinutes / 7
}

// BusiestDay returns the most studied minutes in the week.
func (s Summary) BusiestDay() int {
	m := 0
	for _, d := range s.Week {
		m = max(m, d.Minutes)
	}
	return m
}

// Summarize computes a Summary as of now. Days are calendar days in now's
// location.
func Summarize(activities []store.ActivityRecord, now time.Time, subjects []catalog.Subject) Summary {
	today := startOfDay(now)
	weekStart := today.AddDate(0, 0, -6)

	s := Summary{
		Week:        make([]Day, 7),
		AllSubjects: len(subjects),
	}
	for i := range s.Week {
		d := weekStart.AddDate(0, 0, i)
		s.Week[i] = Day{Date: d, Label: d.Weekday().String()[:3]}
	}

	active := make(map[time.Time]bool)
	var scoreSum, scored int
	for _, a := range activities {
		day := startOfDay(a.CompletedAt.In(now.Location()))
		active[day] = true

		s.Sessions++
		s.TotalMinutes += a.Minutes
		if a.Score >= 0 {
			scoreSum += a.Score
			scored++
		}
		if day.Equal(today) {
			s.TodayMinutes += a.Minutes
		}
		if !day.Before(weekStart) && !day.After(today) {
			idx := daysBetween(weekStart, day)
			s.Week[idx].Minutes += a.Minutes
			s.WeekMinutes += a.Minutes
		}
	}
	if scored > 0 {
		s.AverageScore = scoreSum / scored
	}

	s.Streak = streak(active, today)

	for _, sub := range subjects {
		if sub.Finished() {
			s.FinishedSubjects++
		}
	}
	return s
}

// streak counts consecutive active days ending today, or ending yesterday
// when nothing has been done yet today.
func streak(active map[time.Time]bool, today time.Time) int {
	day := today
	if !active[day] {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for active[day] {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	n := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// FormatMinutes renders minutes as "2h 25m", or "45m" below one hour.
func FormatMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}
