package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the app talks to for AI content:
// assessment questions, roadmaps, quiz rounds, job matches, daily plans.
type Provider interface {
	// Generate runs one completion. When req.Schema is set the provider
	// uses its native structured-output mechanism and Content holds the
	// validated JSON object.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a provider-neutral prompt.
type Request struct {
	// System sets the model's role, usually the career-mentor persona.
	System string

	// Messages is the turn history. Most calls here are single-turn
	// with one user message; the adaptive assessment threads prior
	// answers through as extra turns.
	Messages []Message

	// Schema, when set, constrains the output to the given JSON Schema.
	// When nil, Content comes back as raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0..1.0. Zero value means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape a call expects back.
type Schema struct {
	// Name doubles as the tool name on Anthropic and the schema name on
	// OpenAI. Kebab-case, e.g. "learning-roadmap".
	Name string

	// Description guides the model toward the intended content.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is a provider-neutral completion.
type Response struct {
	// Content is the generated JSON when a schema was requested,
	// otherwise the raw text wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason is normalized across providers to one of
	// "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token counts for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
