// Package catalog is the read-only subject, course and question data the
// dashboard shows.
package catalog

import (
	"slices"
	"strings"
)

// Difficulty grades a subject or course.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Subject is a studyable subject with the student's progress through it.
type Subject struct {
	ID              string
	Name            string
	Description     string
	Color           string
	TotalTopics     int
	CompletedTopics int
	Difficulty      Difficulty
}

// Progress returns completion as a percentage in [0, 100].
func (s Subject) Progress() float64 {
	if s.TotalTopics <= 0 {
		return 0
	}
	return float64(s.CompletedTopics) / float64(s.TotalTopics) * 100
}

// Finished reports whether every topic is completed.
func (s Subject) Finished() bool {
	return s.TotalTopics > 0 && s.CompletedTopics >= s.TotalTopics
}

var subjects = []Subject{
	{ID: "math", Name: "Mathematics", Description: "Algebra, Calculus, Geometry, and Statistics", Color: "#3B82F6", TotalTopics: 24, CompletedTopics: 18, Difficulty: Intermediate},
	{ID: "physics", Name: "Physics", Description: "Mechanics, Thermodynamics, Electromagnetism", Color: "#A855F7", TotalTopics: 20, CompletedTopics: 12, Difficulty: Advanced},
	{ID: "chemistry", Name: "Chemistry", Description: "Organic, Inorganic, and Physical Chemistry", Color: "#22C55E", TotalTopics: 18, CompletedTopics: 15, Difficulty: Intermediate},
	{ID: "biology", Name: "Biology", Description: "Cell Biology, Genetics, Ecology, and Evolution", Color: "#10B981", TotalTopics: 22, CompletedTopics: 20, Difficulty: Beginner},
	{ID: "history", Name: "History", Description: "World History, Ancient Civilizations, Modern Era", Color: "#F59E0B", TotalTopics: 16, CompletedTopics: 10, Difficulty: Beginner},
	{ID: "literature", Name: "Literature", Description: "Classic Literature, Poetry, Writing Techniques", Color: "#F43F5E", TotalTopics: 14, CompletedTopics: 8, Difficulty: Intermediate},
}

// Subjects returns every subject in catalog order.
func Subjects() []Subject {
	return slices.Clone(subjects)
}

// SubjectByID returns the subject with id.
func SubjectByID(id string) (Subject, bool) {
	for _, s := range subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// Known reports whether id names a catalog subject.
func Known(id string) bool {
	_, ok := SubjectByID(id)
	return ok
}

// Bookmarked returns the subjects whose ids are in ids, in catalog order.
// Unknown ids are skipped.
func Bookmarked(ids []string) []Subject {
	var out []Subject
	for _, s := range subjects {
		if slices.Contains(ids, s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// AverageProgress returns the mean completion percentage of list, or 0 for
// an empty list.
func AverageProgress(list []Subject) float64 {
	if len(list) == 0 {
		return 0
	}
	var sum float64
	for _, s := range list {
		sum += s.Progress()
	}
	return sum / float64(len(list))
}

// Search returns subjects whose name contains term, ignoring case. An empty
// term matches everything.
func Search(term string) []Subject {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return Subjects()
	}
	var out []Subject
	for _, s := range subjects {
		if strings.Contains(strings.ToLower(s.Name), term) {
			out = append(out, s)
		}
	}
	return out
}
