package roadmap

import "encoding/json"

// Medium classifies how a learning resource is consumed.
type Medium string

const (
	MediumVideo   Medium = "video"
	MediumArticle Medium = "article"
	MediumCourse  Medium = "course"
	MediumBook    Medium = "book"
)

// Priority ranks a resource within a step.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Resource is a single learning resource attached to a step or soft skill.
// Immutable once attached.
type Resource struct {
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Type     Medium   `json:"type"`
	IsPaid   bool     `json:"isPaid"`
	Priority Priority `json:"priority"`
}

// SoftSkill is a behavioral skill the oracle deems critical for the
// learner's target role, with curated resources.
type SoftSkill struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Resources   []Resource `json:"resources"`
}

// UnmarshalJSON accepts both the structured format and the legacy format
// where a soft skill was a bare string. Older persisted records and
// occasional oracle responses still use the latter.
func (s *SoftSkill) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Name = name
		s.Description = ""
		s.Resources = nil
		return nil
	}

	type alias SoftSkill
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = SoftSkill(a)
	return nil
}

// Step is one milestone in a roadmap. Completed is the only field that
// mutates after creation.
type Step struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	NSQFLevel      int        `json:"nsqfLevel"`
	EstimatedHours int        `json:"estimatedHours"`
	Resources      []Resource `json:"resources"`
	Completed      bool       `json:"completed"`
}

// Roadmap is a generated learning plan targeting an NSQF level.
// Exactly one roadmap is active per learner; superseded roadmaps move to
// the history stack rather than being deleted.
type Roadmap struct {
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Domain             string      `json:"domain"`
	TargetNSQFLevel    int         `json:"targetNsqfLevel"`
	LearningObjectives []string    `json:"learningObjectives"`
	SoftSkills         []SoftSkill `json:"softSkills"`
	DecisionPrompts    []string    `json:"decisionPrompts"`
	Steps              []Step      `json:"steps"`
}

// FindStep returns the step with the given id, or nil if absent.
func (r *Roadmap) FindStep(id string) *Step {
	for i := range r.Steps {
		if r.Steps[i].ID == id {
			return &r.Steps[i]
		}
	}
	return nil
}

// NextIncompleteStep returns the first step not yet completed, or nil when
// every step is done.
func (r *Roadmap) NextIncompleteStep() *Step {
	for i := range r.Steps {
		if !r.Steps[i].Completed {
			return &r.Steps[i]
		}
	}
	return nil
}

// CompletedCount returns how many steps are marked complete.
func (r *Roadmap) CompletedCount() int {
	n := 0
	for _, s := range r.Steps {
		if s.Completed {
			n++
		}
	}
	return n
}

// SkillTitles returns the step titles, used as the skill list for job
// matching prompts.
func (r *Roadmap) SkillTitles() []string {
	titles := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		titles[i] = s.Title
	}
	return titles
}
