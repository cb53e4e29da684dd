package tutor

import "github.com/abhisek/tutordesk/internal/llm"

// ReplySchema defines the JSON schema for a tutor chat reply.
var ReplySchema = &llm.Schema{
	Name:        "tutor-reply",
	Description: "A tutor's reply to a student's question with the topics it covered",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "The answer to the student, in plain text (2-8 sentences)",
			},
			"topics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "0-3 short topic names the reply covered, e.g. \"Derivatives\"",
			},
		},
		"required":             []any{"reply", "topics"},
		"additionalProperties": false,
	},
}
