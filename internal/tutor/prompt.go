package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/llm"
)

const generalSystemPrompt = `You are a patient, encouraging tutor for university students. Answer questions across subjects clearly, check understanding, and suggest a next step when useful.`

const instructions = `
Instructions:
- Explain in plain text without Markdown headings. Use ASCII for math, e.g. x^2, sqrt(x), a/b.
- Prefer a short worked example over a long explanation.
- If the question is vague, answer the most likely reading and ask one clarifying question.
- List the topics your reply covered using the names a syllabus would use.`

func buildSystemPrompt(subject *catalog.Subject) string {
	var b strings.Builder
	b.WriteString(generalSystemPrompt)
	b.WriteString("\n")

	if subject != nil {
		fmt.Fprintf(&b, "\nSubject: %s (%s)\n", subject.Name, subject.Difficulty)
		fmt.Fprintf(&b, "Description: %s\n", subject.Description)
		fmt.Fprintf(&b, "Progress: %d of %d topics completed\n", subject.CompletedTopics, subject.TotalTopics)
		fmt.Fprintf(&b, "Current topic: %s\n", catalog.CurrentTopic(*subject))
		b.WriteString("Keep the discussion anchored to this subject unless the student changes it.\n")
	}

	b.WriteString(instructions)
	return b.String()
}

// buildMessages returns the last n turns followed by the new question.
func buildMessages(turns []Turn, question string, n int) []llm.Message {
	if n >= 0 && len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	msgs := make([]llm.Message, 0, len(turns)+1)
	for _, t := range turns {
		role := llm.RoleUser
		if t.Speaker == Tutor {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	return append(msgs, llm.Message{Role: llm.RoleUser, Content: question})
}
