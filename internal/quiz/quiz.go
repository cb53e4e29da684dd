// Package quiz runs a multiple-choice quiz over catalog questions and
// scores the result.
package quiz

import (
	"errors"
	"time"

	"github.com/abhisek/tutordesk/internal/catalog"
)

var (
	ErrNoQuestions     = errors.New("quiz: no questions")
	ErrAlreadyAnswered = errors.New("quiz: question already answered")
	ErrNotAnswered     = errors.New("quiz: question not answered yet")
	ErrFinished        = errors.New("quiz: already finished")
	ErrBadOption       = errors.New("quiz: option out of range")
)

// Answer is the outcome of answering one question.
type Answer struct {
	QuestionID string
	Chosen     int
	Correct    bool
}

// Result summarizes a finished or abandoned quiz.
type Result struct {
	Score      int // percentage 0..100
	Correct    int
	Total      int
	WeakTopics []string
	Duration   time.Duration
}

// Minutes returns the duration rounded up to whole minutes, at least 1.
func (r Result) Minutes() int {
	m := int((r.Duration + time.Minute - 1) / time.Minute)
	return max(m, 1)
}

// Session steps through a fixed list of questions.
type Session struct {
	questions []catalog.Question
	answers   []Answer
	index     int
	answered  bool
	started   time.Time
	now       func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New starts a quiz over questions.
func New(questions []catalog.Question, opts ...Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	s := &Session{
		questions: append([]catalog.Question(nil), questions...),
		now:       time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.started = s.now()
	return s, nil
}

// Current returns the question being asked. It is only meaningful while
// Done is false.
func (s *Session) Current() catalog.Question {
	if s.Done() {
		return catalog.Question{}
	}
	return s.questions[s.index]
}

// Position returns the 1-based index of the current question and the total.
func (s *Session) Position() (int, int) {
	return min(s.index+1, len(s.questions)), len(s.questions)
}

// Answered reports whether the current question has been answered.
func (s *Session) Answered() bool {
	return s.answered
}

// Answer records option as the answer to the current question.
func (s *Session) Answer(option int) (Answer, error) {
	if s.Done() {
		return Answer{}, ErrFinished
	}
	if s.answered {
		return Answer{}, ErrAlreadyAnswered
	}
	q := s.questions[s.index]
	if option < 0 || option >= len(q.Options) {
		return Answer{}, ErrBadOption
	}

	a := Answer{QuestionID: q.ID, Chosen: option, Correct: option == q.Correct}
	s.answers = append(s.answers, a)
	s.answered = true
	return a, nil
}

// Next moves past an answered question.
func (s *Session) Next() error {
	if s.Done() {
		return ErrFinished
	}
	if !s.answered {
		return ErrNotAnswered
	}
	s.index++
	s.answered = false
	return nil
}

// Done reports whether every question has been answered and passed.
func (s *Session) Done() bool {
	return s.index >= len(s.questions)
}

// Result scores the answers given so far. Unanswered questions count
// toward the total.
func (s *Session) Result() Result {
	r := Result{
		Total:    len(s.questions),
		Duration: s.now().Sub(s.started),
	}

	seen := make(map[string]bool)
	for i, a := range s.answers {
		if a.Correct {
			r.Correct++
			continue
		}
		topic := s.questions[i].Topic
		if topic != "" && !seen[topic] {
			seen[topic] = true
			r.WeakTopics = append(r.WeakTopics, topic)
		}
	}
	if r.Total > 0 {
		r.Score = r.Correct * 100 / r.Total
	}
	return r
}
