package catalog

import (
	"strings"
	"time"
)

// Question is a multiple-choice quiz question.
type Question struct {
	ID          string
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
	SubjectID   string
	Topic       string
	Difficulty  string // easy, medium, hard
	TimeLimit   time.Duration
}

var questions = []Question{
	{ID: "math-1", Prompt: "What is the derivative of x²?", Options: []string{"x", "2x", "x²", "2x²"}, Correct: 1,
		Explanation: "The derivative of x² is 2x using the power rule: d/dx(xⁿ) = nxⁿ⁻¹", SubjectID: "math", Topic: "Calculus", Difficulty: "medium", TimeLimit: 60 * time.Second},
	{ID: "math-2", Prompt: "Solve for x: 2x + 5 = 13", Options: []string{"3", "4", "5", "6"}, Correct: 1,
		Explanation: "2x + 5 = 13, so 2x = 8, therefore x = 4", SubjectID: "math", Topic: "Algebra", Difficulty: "easy", TimeLimit: 45 * time.Second},
	{ID: "math-3", Prompt: "What is the area of a circle with radius 5?", Options: []string{"25π", "10π", "5π", "50π"}, Correct: 0,
		Explanation: "Area = πr² = π(5)² = 25π", SubjectID: "math", Topic: "Geometry", Difficulty: "medium", TimeLimit: 60 * time.Second},
	{ID: "physics-1", Prompt: "What is the SI unit of force?", Options: []string{"Joule", "Watt", "Newton", "Pascal"}, Correct: 2,
		Explanation: "Force is measured in newtons: 1 N = 1 kg·m/s²", SubjectID: "physics", Topic: "Mechanics", Difficulty: "easy", TimeLimit: 30 * time.Second},
	{ID: "physics-2", Prompt: "Which law relates a changing magnetic flux to induced EMF?", Options: []string{"Ohm's law", "Faraday's law", "Coulomb's law", "Hooke's law"}, Correct: 1,
		Explanation: "Faraday's law states that the induced EMF equals the negative rate of change of magnetic flux", SubjectID: "physics", Topic: "Electromagnetism", Difficulty: "medium", TimeLimit: 60 * time.Second},
	{ID: "chemistry-1", Prompt: "What is the pH of a neutral solution at 25°C?", Options: []string{"0", "7", "10", "14"}, Correct: 1,
		Explanation: "At 25°C pure water has [H⁺] = 10⁻⁷ M, so pH = 7", SubjectID: "chemistry", Topic: "Acids and Bases", Difficulty: "easy", TimeLimit: 30 * time.Second},
	{ID: "chemistry-2", Prompt: "Which functional group defines an alcohol?", Options: []string{"-COOH", "-OH", "-CHO", "-NH₂"}, Correct: 1,
		Explanation: "Alcohols carry a hydroxyl (-OH) group bonded to a saturated carbon", SubjectID: "chemistry", Topic: "Organic Reactions", Difficulty: "easy", TimeLimit: 45 * time.Second},
	{ID: "biology-1", Prompt: "Which organelle produces most of a cell's ATP?", Options: []string{"Nucleus", "Ribosome", "Mitochondrion", "Golgi apparatus"}, Correct: 2,
		Explanation: "Mitochondria generate ATP through cellular respiration", SubjectID: "biology", Topic: "Cell Biology", Difficulty: "easy", TimeLimit: 30 * time.Second},
	{ID: "history-1", Prompt: "In which year did World War II end?", Options: []string{"1918", "1939", "1945", "1950"}, Correct: 2,
		Explanation: "The war ended in 1945 with the surrender of Germany in May and Japan in September", SubjectID: "history", Topic: "World Wars", Difficulty: "easy", TimeLimit: 30 * time.Second},
	{ID: "literature-1", Prompt: "Who wrote \"Hamlet\"?", Options: []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Homer"}, Correct: 1,
		Explanation: "Hamlet is a tragedy written by William Shakespeare around 1600", SubjectID: "literature", Topic: "Shakespeare", Difficulty: "easy", TimeLimit: 30 * time.Second},
}

// Questions returns the questions for a subject, or every question when
// subjectID is empty.
func Questions(subjectID string) []Question {
	var out []Question
	for _, q := range questions {
		if subjectID == "" || q.SubjectID == subjectID {
			out = append(out, q)
		}
	}
	return out
}

// WeakArea is a topic where the student's accuracy is low.
type WeakArea struct {
	Topic       string
	SubjectID   string
	Accuracy    int
	Attempted   int
	LastAttempt time.Time
	Suggestions []string
}

var weakAreas = []WeakArea{
	{Topic: "Calculus - Integration", SubjectID: "math", Accuracy: 65, Attempted: 23, LastAttempt: date(2024, 12, 15),
		Suggestions: []string{"Practice more integration by parts problems", "Review fundamental integration rules", "Work on trigonometric integrals"}},
	{Topic: "Organic Chemistry - Reactions", SubjectID: "chemistry", Accuracy: 58, Attempted: 31, LastAttempt: date(2024, 12, 14),
		Suggestions: []string{"Study reaction mechanisms step by step", "Practice naming organic compounds", "Review functional group properties"}},
	{Topic: "Physics - Electromagnetism", SubjectID: "physics", Accuracy: 72, Attempted: 18, LastAttempt: date(2024, 12, 13),
		Suggestions: []string{"Work on Faraday's law applications", "Practice magnetic field calculations", "Review Maxwell's equations"}},
}

// WeakAreas returns the tracked weak areas.
func WeakAreas() []WeakArea {
	return append([]WeakArea(nil), weakAreas...)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(sub)))
}
