package arcade

import "github.com/abhisek/eduvoyager/internal/llm"

// RoundSchema defines the JSON schema for an arcade round.
var RoundSchema = &llm.Schema{
	Name:        "arcade-round",
	Description: "A set of multiple-choice revision questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "string"},
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctAnswerIndex": map[string]any{"type": "integer"},
						"explanation":        map[string]any{"type": "string"},
						"difficulty":         map[string]any{"type": "string"},
					},
					"required":             []any{"question", "options", "correctAnswerIndex", "explanation", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
