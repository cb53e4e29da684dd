package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutordesk/internal/quiz"
	"github.com/abhisek/tutordesk/internal/state"
)

// Intents emitted by screens. Only the app model applies them to the
// session.
type (
	NavigateMsg        struct{ View state.View }
	SelectSubjectMsg   struct{ SubjectID string }
	PracticeSubjectMsg struct{ SubjectID string }
	StartChatMsg       struct{}
	StartQuizMsg       struct{}
	BackMsg            struct{}
	ToggleDarkModeMsg  struct{}
	ToggleBookmarkMsg  struct{ SubjectID string }
	SwitchAuthViewMsg  struct{ View state.AuthView }
	LogoutMsg          struct{}

	// QuizCompletedMsg reports a finished quiz so it can be recorded.
	QuizCompletedMsg struct {
		SubjectID string
		Result    quiz.Result
	}

	// ChatEndedMsg reports a chat session that produced at least one reply.
	ChatEndedMsg struct {
		SubjectID string
		Minutes   int
		Topics    []string
	}
)

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Navigate returns a command emitting NavigateMsg.
func Navigate(v state.View) tea.Cmd { return emit(NavigateMsg{View: v}) }

// SelectSubject returns a command emitting SelectSubjectMsg.
func SelectSubject(id string) tea.Cmd { return emit(SelectSubjectMsg{SubjectID: id}) }

// PracticeSubject returns a command emitting PracticeSubjectMsg.
func PracticeSubject(id string) tea.Cmd { return emit(PracticeSubjectMsg{SubjectID: id}) }

// StartChat returns a command emitting StartChatMsg.
func StartChat() tea.Cmd { return emit(StartChatMsg{}) }

// StartQuiz returns a command emitting StartQuizMsg.
func StartQuiz() tea.Cmd { return emit(StartQuizMsg{}) }

// Back returns a command emitting BackMsg.
func Back() tea.Cmd { return emit(BackMsg{}) }

// ToggleBookmark returns a command emitting ToggleBookmarkMsg.
func ToggleBookmark(id string) tea.Cmd { return emit(ToggleBookmarkMsg{SubjectID: id}) }

// SwitchAuthView returns a command emitting SwitchAuthViewMsg.
func SwitchAuthView(v state.AuthView) tea.Cmd { return emit(SwitchAuthViewMsg{View: v}) }

// Emit wraps any intent in a command.
func Emit(msg tea.Msg) tea.Cmd { return emit(msg) }
