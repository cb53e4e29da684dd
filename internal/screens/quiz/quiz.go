// Package quiz is the practice quiz screen.
package quiz

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutordesk/internal/catalog"
	quizsvc "github.com/abhisek/tutordesk/internal/quiz"
	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/ui/components"
	"github.com/abhisek/tutordesk/internal/ui/layout"
	"github.com/abhisek/tutordesk/internal/ui/theme"
)

// QuizScreen runs a quiz over one subject's questions, or over every
// question for the daily practice mix.
type QuizScreen struct {
	subjectID string
	opts      []quizsvc.Option
	session   *quizsvc.Session
	choice    components.MultiChoice
	last      quizsvc.Answer
	reported  bool
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.Unmounter       = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
)

// New creates a quiz for subjectID ("" for the daily mix).
func New(subjectID string, opts ...quizsvc.Option) *QuizScreen {
	q := &QuizScreen{subjectID: subjectID, opts: opts}
	q.start()
	return q
}

func (q *QuizScreen) start() {
	q.reported = false
	q.session = nil
	sess, err := quizsvc.New(catalog.Questions(q.subjectID), q.opts...)
	if err == nil {
		q.session = sess
		q.loadQuestion()
	}
}

func (q *QuizScreen) Init() tea.Cmd { return nil }

func (q *QuizScreen) Title() string {
	if s, ok := catalog.SubjectByID(q.subjectID); ok {
		return s.Name + " Quiz"
	}
	return "Daily Practice"
}

func (q *QuizScreen) loadQuestion() {
	cur := q.session.Current()
	q.choice = components.NewMultiChoice(cur.Prompt, cur.Options, cur.Correct)
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || q.session == nil {
		return q, nil
	}

	if q.session.Done() {
		switch kmsg.String() {
		case "enter":
			return q, router.Back()
		case "r":
			q.start()
		}
		return q, nil
	}

	if q.session.Answered() {
		if kmsg.String() == "enter" || kmsg.String() == "n" {
			return q, q.next()
		}
		return q, nil
	}

	var chosen int
	q.choice, chosen = q.choice.Update(kmsg)
	if chosen < 0 {
		return q, nil
	}
	a, err := q.session.Answer(chosen)
	if err != nil {
		return q, nil
	}
	q.last = a
	q.choice = q.choice.Reveal(chosen)
	return q, nil
}

func (q *QuizScreen) next() tea.Cmd {
	if err := q.session.Next(); err != nil {
		return nil
	}
	if !q.session.Done() {
		q.loadQuestion()
		return nil
	}
	return q.report()
}

func (q *QuizScreen) report() tea.Cmd {
	if q.reported {
		return nil
	}
	q.reported = true
	return router.Emit(router.QuizCompletedMsg{SubjectID: q.subjectID, Result: q.session.Result()})
}

// Unmount reports an abandoned quiz once at least one question was
// answered.
func (q *QuizScreen) Unmount() tea.Cmd {
	if q.session == nil || q.reported {
		return nil
	}
	i, _ := q.session.Position()
	if i == 1 && !q.session.Answered() {
		return nil
	}
	return q.report()
}

func (q *QuizScreen) View(width, height int) string {
	cw := min(components.ContentWidth(width), 90)

	var body string
	switch {
	case q.session == nil:
		body = components.Card("No questions",
			theme.Hint.Render("There are no practice questions for this subject yet."), cw)
	case q.session.Done():
		body = q.renderResult(cw)
	default:
		body = q.renderQuestion(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

func (q *QuizScreen) renderQuestion(width int) string {
	cur := q.session.Current()
	i, n := q.session.Position()

	var b strings.Builder
	meta := fmt.Sprintf("Question %d of %d · %s · %s", i, n, cur.Topic, cur.Difficulty)
	if cur.TimeLimit > 0 {
		meta += fmt.Sprintf(" · %s", cur.TimeLimit.Round(time.Second))
	}
	b.WriteString(theme.Subtitle.Render(meta))
	b.WriteString("\n")
	b.WriteString(components.Bar(max(width-6, 10), float64(i-1)/float64(n)))
	b.WriteString("\n\n")
	b.WriteString(q.choice.View())

	if q.session.Answered() {
		b.WriteString("\n")
		if q.last.Correct {
			b.WriteString(theme.Correct.Render("✓ Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("✗ Not quite."))
		}
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(width - 6).Render(cur.Explanation))
	}
	return components.Card(q.Title(), b.String(), width)
}

func (q *QuizScreen) renderResult(width int) string {
	r := q.session.Result()

	scoreStyle := theme.Correct
	if r.Score < 60 {
		scoreStyle = theme.Incorrect
	}

	var b strings.Builder
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d%%", r.Score)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d of %d correct in %d min", r.Correct, r.Total, r.Minutes())))
	if len(r.WeakTopics) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("Review next"))
		for _, t := range r.WeakTopics {
			b.WriteString("\n  • " + t)
		}
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Enter: back to dashboard · r: retake"))
	return components.Card("Quiz complete", b.String(), width)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.session != nil && q.session.Answered() {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓/a-d", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}
