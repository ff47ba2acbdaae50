package dailyplan

import "github.com/abhisek/eduvoyager/internal/llm"

// PlanSchema defines the JSON schema for a daily task plan.
var PlanSchema = &llm.Schema{
	Name:        "daily-plan",
	Description: "Bite-sized study tasks for the current learning step",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tasks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
					},
					"required":             []any{"text"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"tasks"},
		"additionalProperties": false,
	},
}
