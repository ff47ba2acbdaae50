package jobs

import "github.com/abhisek/eduvoyager/internal/llm"

// JobsSchema defines the JSON schema for a batch of job recommendations.
var JobsSchema = &llm.Schema{
	Name:        "job-recommendations",
	Description: "Job postings matched to the learner's profile",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"jobs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string"},
						"title":       map[string]any{"type": "string"},
						"company":     map[string]any{"type": "string"},
						"location":    map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"Full-time", "Part-time", "Internship", "Remote"},
						},
						"salaryRange": map[string]any{"type": "string"},
						"platform": map[string]any{
							"type": "string",
							"enum": []any{"LinkedIn", "Indeed", "Glassdoor", "Naukri"},
						},
						"url":        map[string]any{"type": "string"},
						"matchScore": map[string]any{"type": "integer"},
						"skills": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"title", "company", "location", "type", "salaryRange", "platform", "url", "matchScore", "skills"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"jobs"},
		"additionalProperties": false,
	},
}
