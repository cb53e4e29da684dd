// Package analytics is the study statistics screen.
package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	stats "github.com/abhisek/tutordesk/internal/analytics"
	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/store"
	"github.com/abhisek/tutordesk/internal/ui/components"
	"github.com/abhisek/tutordesk/internal/ui/layout"
	"github.com/abhisek/tutordesk/internal/ui/theme"
)

const chartHeight = 8

// AnalyticsScreen shows time studied, streaks and per-subject totals.
type AnalyticsScreen struct {
	summary   stats.Summary
	bySubject []subjectTime
}

type subjectTime struct {
	Name    string
	Minutes int
}

var _ screen.Screen = (*AnalyticsScreen)(nil)

// New builds the screen from every recorded activity as of now.
func New(activities []store.ActivityRecord, now time.Time) *AnalyticsScreen {
	a := &AnalyticsScreen{}
	a.SetActivities(activities, now)
	return a
}

// SetActivities recomputes the summary from activities as of now.
func (a *AnalyticsScreen) SetActivities(activities []store.ActivityRecord, now time.Time) {
	a.summary = stats.Summarize(activities, now, catalog.Subjects())
	a.bySubject = totalsBySubject(activities)
}

func totalsBySubject(activities []store.ActivityRecord) []subjectTime {
	totals := make(map[string]int)
	for _, a := range activities {
		name := "General"
		if s, ok := catalog.SubjectByID(a.SubjectID); ok {
			name = s.Name
		}
		totals[name] += a.Minutes
	}
	out := make([]subjectTime, 0, len(totals))
	for name, m := range totals {
		out = append(out, subjectTime{Name: name, Minutes: m})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (a *AnalyticsScreen) Init() tea.Cmd { return nil }

func (a *AnalyticsScreen) Title() string { return "Analytics" }

func (a *AnalyticsScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return a, nil }

func (a *AnalyticsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s := a.summary

	avgScore := "—"
	if s.AverageScore > 0 {
		avgScore = fmt.Sprintf("%d%%", s.AverageScore)
	}
	metrics := components.Columns(cw,
		func(w int) string { return components.Metric("Today", stats.FormatMinutes(s.TodayMinutes), w) },
		func(w int) string { return components.Metric("This week", stats.FormatMinutes(s.WeekMinutes), w) },
		func(w int) string { return components.Metric("Streak", fmt.Sprintf("%d days", s.Streak), w) },
		func(w int) string { return components.Metric("Avg. score", avgScore, w) },
	)

	chart := components.Card("Last 7 days", renderChart(s.Week)+"\n"+
		theme.Hint.Render(fmt.Sprintf("Daily average %s · busiest day %s",
			stats.FormatMinutes(s.DailyAverage()), stats.FormatMinutes(s.BusiestDay()))), cw)

	totals := components.Columns(cw, a.renderSubjects, func(w int) string {
		body := fmt.Sprintf("%d sessions · %s total\n%d of %d subjects finished",
			s.Sessions, stats.FormatMinutes(s.TotalMinutes), s.FinishedSubjects, s.AllSubjects)
		return components.Card("Overall", theme.Body.Render(body), w)
	})

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Join([]string{metrics, chart, totals}, "\n"))
}

// renderChart draws one vertical bar per day scaled to the busiest day.
func renderChart(days []stats.Day) string {
	peak := 0
	for _, d := range days {
		peak = max(peak, d.Minutes)
	}

	filled := lipgloss.NewStyle().Foreground(theme.Primary)
	var rows []string
	for level := chartHeight; level >= 1; level-- {
		var row strings.Builder
		for _, d := range days {
			h := 0
			if peak > 0 {
				h = (d.Minutes*chartHeight + peak - 1) / peak
			}
			if h >= level {
				row.WriteString(filled.Render(" ███ "))
			} else {
				row.WriteString("     ")
			}
		}
		rows = append(rows, row.String())
	}

	var labels strings.Builder
	for _, d := range days {
		labels.WriteString(theme.Hint.Render(fmt.Sprintf(" %-4s", d.Label)))
	}
	rows = append(rows, labels.String())
	return strings.Join(rows, "\n")
}

func (a *AnalyticsScreen) renderSubjects(width int) string {
	if len(a.bySubject) == 0 {
		return components.Card("By subject", theme.Hint.Render("No study sessions recorded yet."), width)
	}
	peak := a.bySubject[0].Minutes
	barWidth := max(width-30, 6)

	var b strings.Builder
	for _, st := range a.bySubject {
		pct := 0.0
		if peak > 0 {
			pct = float64(st.Minutes) / float64(peak)
		}
		fmt.Fprintf(&b, "%-12s %s %s\n", st.Name, components.Bar(barWidth, pct), stats.FormatMinutes(st.Minutes))
	}
	return components.Card("By subject", strings.TrimRight(b.String(), "\n"), width)
}

func (a *AnalyticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}, {Key: "F1", Description: "Dashboard"}}
}
