// Package chat is the AI tutoring screen.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/llm"
	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/tutor"
	"github.com/abhisek/tutordesk/internal/ui/components"
	"github.com/abhisek/tutordesk/internal/ui/layout"
	"github.com/abhisek/tutordesk/internal/ui/theme"
)

const replyTimeout = 45 * time.Second

var nextID atomic.Int64

// ReplyMsg carries the tutor's answer to the chat that asked.
type ReplyMsg struct {
	chatID int64
	Answer tutor.Answer
	Err    error
}

// ChatScreen is a conversation with the tutor about one subject, or a
// general conversation when no subject is selected.
type ChatScreen struct {
	id      int64
	svc     *tutor.Service
	conv    tutor.Conversation
	answers []tutor.Answer
	input   components.TextInput
	spinner spinner.Model
	log     viewport.Model
	follow  bool
	pending bool
	errText string
	started time.Time
	now     func() time.Time
}

var (
	_ screen.Screen          = (*ChatScreen)(nil)
	_ screen.InputCapturer   = (*ChatScreen)(nil)
	_ screen.Unmounter       = (*ChatScreen)(nil)
	_ screen.KeyHintProvider = (*ChatScreen)(nil)
)

// Option configures a ChatScreen.
type Option func(*ChatScreen)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *ChatScreen) { c.now = now }
}

// New creates a chat about subjectID ("" for a general chat).
func New(subjectID string, svc *tutor.Service, opts ...Option) *ChatScreen {
	c := &ChatScreen{
		id:      nextID.Add(1),
		svc:     svc,
		conv:    tutor.NewConversation(subjectID),
		input:   components.NewTextInput("", "Ask your tutor anything...", false, 500),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		log:     viewport.New(),
		follow:  true,
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	c.started = c.now()
	return c
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Focus()
}

func (c *ChatScreen) Title() string {
	if c.conv.Subject != nil {
		return c.conv.Subject.Name + " Tutor"
	}
	return "AI Tutor"
}

// CapturingInput is true while a draft is typed, so Esc clears it rather
// than leaving the chat.
func (c *ChatScreen) CapturingInput() bool {
	return strings.TrimSpace(c.input.Value()) != ""
}

// Unmount reports the session if the tutor answered at least once.
func (c *ChatScreen) Unmount() tea.Cmd {
	if len(c.answers) == 0 {
		return nil
	}
	minutes := int((c.now().Sub(c.started) + time.Minute - 1) / time.Minute)
	return router.Emit(router.ChatEndedMsg{
		SubjectID: c.conv.SubjectID(),
		Minutes:   max(minutes, 1),
		Topics:    tutor.Topics(c.answers),
	})
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ReplyMsg:
		if msg.chatID != c.id {
			return c, nil
		}
		return c, c.handleReply(msg)

	case spinner.TickMsg:
		if !c.pending {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return c, c.send()
		case "esc":
			c.input.Reset()
			return c, nil
		case "pgup":
			c.log.PageUp()
			c.follow = false
			return c, nil
		case "pgdown":
			c.log.PageDown()
			c.follow = c.log.AtBottom()
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) send() tea.Cmd {
	question := strings.TrimSpace(c.input.Value())
	if question == "" || c.pending {
		return nil
	}

	history := c.conv
	c.conv = c.conv.Add(tutor.Turn{Speaker: tutor.Student, Text: question, At: c.now()})
	c.input.Reset()
	c.follow = true
	c.pending = true
	c.errText = ""

	return tea.Batch(c.ask(history, question), c.spinner.Tick)
}

func (c *ChatScreen) ask(history tutor.Conversation, question string) tea.Cmd {
	svc, id := c.svc, c.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		a, err := svc.Reply(ctx, history, question)
		return ReplyMsg{chatID: id, Answer: a, Err: err}
	}
}

func (c *ChatScreen) handleReply(msg ReplyMsg) tea.Cmd {
	c.pending = false
	if msg.Err != nil {
		if errors.Is(msg.Err, tutor.ErrEmptyQuestion) {
			return nil
		}
		c.errText = llm.Describe(msg.Err)
		return nil
	}

	c.conv = c.conv.Add(tutor.Turn{Speaker: tutor.Tutor, Text: msg.Answer.Text, At: c.now()})
	c.follow = true
	if !msg.Answer.Offline {
		c.answers = append(c.answers, msg.Answer)
	}
	return nil
}

func (c *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	header := c.renderHeader()
	c.input.Model.SetWidth(max(cw-4, 10))
	inputBox := theme.Card.Width(cw).Render(c.input.View())

	status := ""
	switch {
	case c.pending:
		status = c.spinner.View() + " " + theme.Hint.Render("Tutor is thinking...")
	case c.errText != "":
		status = lipgloss.NewStyle().Foreground(theme.Error).Render(c.errText)
	}

	used := lipgloss.Height(header) + lipgloss.Height(inputBox) + 2
	if status != "" {
		used += lipgloss.Height(status)
	}
	c.log.SetWidth(cw)
	c.log.SetHeight(max(height-used, 3))
	c.log.SetContent(c.renderTurns(cw))
	if c.follow {
		c.log.GotoBottom()
	}

	parts := []string{header, c.log.View()}
	if status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, inputBox)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "\n"))
}

func (c *ChatScreen) renderHeader() string {
	var title, detail string
	if s := c.conv.Subject; s != nil {
		title = s.Name
		detail = "Current topic: " + catalog.CurrentTopic(*s)
	} else {
		title = "General tutoring"
		detail = "Ask about any subject"
	}

	badge := theme.Badge.Render(" offline ")
	if c.svc.Available() {
		badge = theme.Badge.Render(" " + c.svc.Model() + " ")
	}
	return theme.Title.Render(title) + "  " + badge + "\n" + theme.Hint.Render(detail)
}

func (c *ChatScreen) renderTurns(width int) string {
	if len(c.conv.Turns) == 0 {
		greeting := "Hi! I'm your AI tutor. What would you like to work on today?"
		if c.conv.Subject != nil {
			greeting = "Hi! Let's study " + c.conv.Subject.Name + ". What would you like to work on?"
		}
		return bubble(tutor.Tutor, greeting, width)
	}

	blocks := make([]string, len(c.conv.Turns))
	for i, t := range c.conv.Turns {
		blocks[i] = bubble(t.Speaker, t.Text, width)
	}
	return strings.Join(blocks, "\n")
}

func bubble(who tutor.Speaker, text string, width int) string {
	w := max(width*3/4, 20)
	if who == tutor.Student {
		box := lipgloss.NewStyle().
			Foreground(theme.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1).
			Width(w).
			Render(text)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Padding(0, 1).
		Width(w).
		Render(text)
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Clear / Back"},
	}
}
