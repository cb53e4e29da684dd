package router

import "github.com/abhisek/tutordesk/internal/state"

// Target identifies which screen is mounted for a state.
type Target int

const (
	TargetLogin Target = iota
	TargetRegister
	TargetDashboard
	TargetChat
	TargetQuiz
	TargetProfile
	TargetSubjects
	TargetAnalytics
)

var targetNames = map[Target]string{
	TargetLogin:     "login",
	TargetRegister:  "register",
	TargetDashboard: "dashboard",
	TargetChat:      "chat",
	TargetQuiz:      "quiz",
	TargetProfile:   "profile",
	TargetSubjects:  "subjects",
	TargetAnalytics: "analytics",
}

func (t Target) String() string {
	if n, ok := targetNames[t]; ok {
		return n
	}
	return "unknown"
}

// Resolve decides which screen renders for st. Unauthenticated users always
// get the login or register form regardless of the requested view. Views
// without a screen of their own fall back to the dashboard.
func Resolve(st state.State, authenticated bool) Target {
	if !authenticated {
		if st.AuthView == state.AuthRegister {
			return TargetRegister
		}
		return TargetLogin
	}

	switch st.View {
	case state.ViewChat:
		return TargetChat
	case state.ViewQuiz:
		return TargetQuiz
	case state.ViewProfile:
		return TargetProfile
	case state.ViewSubjects:
		return TargetSubjects
	case state.ViewAnalytics:
		return TargetAnalytics
	case state.ViewDashboard:
		return TargetDashboard
	case state.ViewAdmin, state.ViewCatalog, state.ViewDailyQuizzes, state.ViewForums:
		return TargetDashboard
	default:
		return TargetDashboard
	}
}
