package tutor

import (
	"time"

	"github.com/abhisek/tutordesk/internal/catalog"
)

// Speaker identifies who said a turn.
type Speaker string

const (
	Student Speaker = "student"
	Tutor   Speaker = "tutor"
)

// Turn is one message in a chat.
type Turn struct {
	Speaker Speaker
	Text    string
	At      time.Time
}

// Conversation is the chat so far. Subject is nil for a general session.
type Conversation struct {
	Subject *catalog.Subject
	Turns   []Turn
}

// NewConversation starts an empty conversation about the subject with the
// given id. Unknown or empty ids start a general conversation.
func NewConversation(subjectID string) Conversation {
	if s, ok := catalog.SubjectByID(subjectID); ok {
		return Conversation{Subject: &s}
	}
	return Conversation{}
}

// SubjectID returns the subject id or "" for a general conversation.
func (c Conversation) SubjectID() string {
	if c.Subject == nil {
		return ""
	}
	return c.Subject.ID
}

// Add returns a copy of c with the turn appended.
func (c Conversation) Add(t Turn) Conversation {
	turns := make([]Turn, len(c.Turns), len(c.Turns)+1)
	copy(turns, c.Turns)
	c.Turns = append(turns, t)
	return c
}

// Answer is the tutor's reply to one question.
type Answer struct {
	Text   string
	Topics []string
	// Offline is set when the answer is canned guidance rather than a
	// model reply.
	Offline bool
}
