package llm

// ModelCost holds per-million-token pricing for one model, used by
// `eduvoyager llm stats` to estimate spend from logged usage.
type ModelCost struct {
	InputPerMTok  float64 // USD per 1M input tokens
	OutputPerMTok float64 // USD per 1M output tokens
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
// Unknown models show up in the stats output without a cost column
// rather than with a guessed one.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the models the provider configs can select, the
// alias targets, and the IDs those APIs report back in responses.
// Prices from the providers' published rate cards, checked 2026-08-12.
var modelCosts = map[string]ModelCost{
	// Anthropic: claude-haiku and claude-sonnet aliases plus the dated
	// IDs the API echoes.
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-0":          {3, 15},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-3-5-haiku-20241022":  {0.8, 4},
	"claude-3-5-haiku-latest":    {0.8, 4},

	// OpenAI: the gpt-4o family from the alias table plus common
	// overrides, with the dated snapshot IDs responses carry.
	"gpt-4o":            {2.5, 10},
	"gpt-4o-2024-08-06": {2.5, 10},
	"gpt-4o-2024-11-20": {2.5, 10},
	"gpt-4o-mini":       {0.15, 0.6},
	"gpt-4.1":           {2, 8},
	"gpt-4.1-mini":      {0.4, 1.6},
	"gpt-4.1-nano":      {0.1, 0.4},

	// Google: the gemini-flash alias targets and their dated variants.
	"gemini-flash-latest":      {0.3, 2.5},
	"gemini-flash-lite-latest": {0.1, 0.4},
	"gemini-2.5-flash":         {0.3, 2.5},
	"gemini-2.5-flash-lite":    {0.1, 0.4},
	"gemini-2.0-flash":         {0.1, 0.4},
	"gemini-2.0-flash-lite":    {0.075, 0.3},
	"gemini-2.0-flash-exp":     {0.1, 0.4},
	"gemini-1.5-flash":         {0.075, 0.3},
	"gemini-2.5-pro":           {1.25, 10},

	// OpenRouter reports vendor-prefixed IDs for its default route.
	"google/gemini-2.0-flash-exp": {0.1, 0.4},
	"google/gemini-2.5-flash":     {0.3, 2.5},
}
