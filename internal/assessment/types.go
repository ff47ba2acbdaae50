package assessment

// Question is one adaptive questionnaire item. Multi-select questions
// collect a comma-joined answer; single-select exactly one option.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	AllowMultiple bool     `json:"allowMultiple"`
}

// Answer pairs a questionnaire item with the learner's response, as fed
// back into roadmap generation.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
