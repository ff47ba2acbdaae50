package roadmapgen

import "github.com/abhisek/eduvoyager/internal/llm"

// resourceSchema is shared by steps and soft skills.
var resourceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{"type": "string"},
		"url":   map[string]any{"type": "string"},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"video", "article", "course", "book"},
		},
		"isPaid": map[string]any{"type": "boolean"},
		"priority": map[string]any{
			"type": "string",
			"enum": []any{"high", "medium", "low"},
		},
	},
	"required":             []any{"title", "url", "type", "isPaid", "priority"},
	"additionalProperties": false,
}

// RoadmapSchema defines the JSON schema for roadmap generation. Step ids
// and the completed flag are accepted but not trusted; normalization
// rewrites them.
var RoadmapSchema = &llm.Schema{
	Name:        "learning-roadmap",
	Description: "A step-by-step learning roadmap targeting an NSQF level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"domain":      map[string]any{"type": "string"},
			"targetNsqfLevel": map[string]any{
				"type":        "integer",
				"description": "NSQF placement from 1 (beginner) to 10 (expert)",
			},
			"learningObjectives": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"softSkills": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"resources": map[string]any{
							"type":  "array",
							"items": resourceSchema,
						},
					},
					"required":             []any{"name", "description", "resources"},
					"additionalProperties": false,
				},
			},
			"decisionPrompts": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":             map[string]any{"type": "string"},
						"title":          map[string]any{"type": "string"},
						"description":    map[string]any{"type": "string"},
						"nsqfLevel":      map[string]any{"type": "integer"},
						"estimatedHours": map[string]any{"type": "integer"},
						"completed":      map[string]any{"type": "boolean"},
						"resources": map[string]any{
							"type":  "array",
							"items": resourceSchema,
						},
					},
					"required":             []any{"id", "title", "description", "nsqfLevel", "estimatedHours", "resources"},
					"additionalProperties": false,
				},
			},
		},
		"required": []any{
			"title", "description", "domain", "targetNsqfLevel",
			"learningObjectives", "softSkills", "decisionPrompts", "steps",
		},
		"additionalProperties": false,
	},
}
