package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/screens/analytics"
	"github.com/abhisek/tutordesk/internal/screens/auth"
	"github.com/abhisek/tutordesk/internal/screens/chat"
	"github.com/abhisek/tutordesk/internal/screens/dashboard"
	"github.com/abhisek/tutordesk/internal/screens/profile"
	"github.com/abhisek/tutordesk/internal/screens/quiz"
	"github.com/abhisek/tutordesk/internal/screens/subjects"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/store"
)

// build is the router factory: it creates the screen for a target.
func (m AppModel) build(t router.Target, st state.State) screen.Screen {
	switch t {
	case router.TargetLogin:
		return auth.NewLogin(m.deps.Auth)
	case router.TargetRegister:
		return auth.NewRegister(m.deps.Auth)
	case router.TargetChat:
		return chat.New(st.SelectedSubjectID, m.deps.Tutor, chat.WithClock(m.deps.Now))
	case router.TargetQuiz:
		return quiz.New(st.SelectedSubjectID)
	case router.TargetProfile:
		return profile.New(m.deps.Auth, st)
	case router.TargetSubjects:
		return subjects.New(st)
	case router.TargetAnalytics:
		return analytics.New(m.activities(), m.deps.Now())
	default:
		data := dashboard.Data{Recent: m.recent()}
		if u := m.deps.Auth.User(); u != nil {
			data.UserName = u.Name
		}
		return dashboard.New(st, data)
	}
}

func (m AppModel) recent() []store.ActivityRecord {
	if m.deps.Activities == nil {
		return nil
	}
	recs, err := m.deps.Activities.Recent(context.Background(), recentSessions)
	if err != nil {
		m.log.Error("load recent activity", zap.Error(err))
	}
	return recs
}

func (m AppModel) activities() []store.ActivityRecord {
	if m.deps.Activities == nil {
		return nil
	}
	recs, err := m.deps.Activities.All(context.Background())
	if err != nil {
		m.log.Error("load activity", zap.Error(err))
	}
	return recs
}

// refreshActivity reloads activity shown by the mounted screen. Reports from
// an unmounted screen arrive after its successor was built.
func (m AppModel) refreshActivity() {
	switch s := m.router.Active().(type) {
	case *dashboard.DashboardScreen:
		s.SetRecent(m.recent())
	case *analytics.AnalyticsScreen:
		s.SetActivities(m.activities(), m.deps.Now())
	}
}
