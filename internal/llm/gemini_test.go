package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash-exp", "gemini-2.0-flash-exp"}, // exact IDs pass through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":        map[string]any{"type": "string"},
			"nsqfLevel":    map[string]any{"type": "integer"},
			"resourceType": map[string]any{"type": "string", "enum": []any{"video", "article", "course"}},
			"nsqfLevels": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"title", "nsqfLevel"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING for title, got %s", schema.Properties["title"].Type)
	}
	if schema.Properties["nsqfLevel"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for nsqfLevel, got %s", schema.Properties["nsqfLevel"].Type)
	}
	if len(schema.Properties["resourceType"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["resourceType"].Enum))
	}
	if schema.Properties["nsqfLevels"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for nsqfLevels, got %s", schema.Properties["nsqfLevels"].Type)
	}
	if schema.Properties["nsqfLevels"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for nsqfLevels items, got %s", schema.Properties["nsqfLevels"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
