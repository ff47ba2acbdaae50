package roadmapgen

// Config holds roadmap generation settings. Roadmaps are the largest
// structured output in the app, so the token budget is generous.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for roadmap generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.6,
	}
}
