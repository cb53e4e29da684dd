package app

import (
	"strings"

	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/ui/layout"
)

type navEntry struct {
	key    string
	label  string
	view   state.View
	target router.Target
}

// navigation maps the function keys to views, in navbar order.
var navigation = []navEntry{
	{key: "f1", label: "Dashboard", view: state.ViewDashboard, target: router.TargetDashboard},
	{key: "f2", label: "Subjects", view: state.ViewSubjects, target: router.TargetSubjects},
	{key: "f3", label: "Analytics", view: state.ViewAnalytics, target: router.TargetAnalytics},
	{key: "f4", label: "Profile", view: state.ViewProfile, target: router.TargetProfile},
	{key: "f5", label: "Tutor", view: state.ViewChat, target: router.TargetChat},
	{key: "f6", label: "Practice", view: state.ViewQuiz, target: router.TargetQuiz},
}

func (m AppModel) navItems() []layout.NavItem {
	items := make([]layout.NavItem, len(navigation))
	for i, n := range navigation {
		items[i] = layout.NavItem{
			Key:    strings.ToUpper(n.key),
			Label:  n.label,
			Active: m.router.Target() == n.target,
		}
	}
	return items
}
