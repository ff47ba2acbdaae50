package assessment

import "github.com/abhisek/eduvoyager/internal/llm"

// QuestionsSchema defines the JSON schema for questionnaire generation.
// The array is wrapped in an object because several providers require an
// object at the schema root.
var QuestionsSchema = &llm.Schema{
	Name:        "assessment-questions",
	Description: "Adaptive multiple-choice questions placing a learner within a domain",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"allowMultiple": map[string]any{
							"type":        "boolean",
							"description": "Whether the learner may pick several options",
						},
					},
					"required":             []any{"question", "options", "allowMultiple"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
