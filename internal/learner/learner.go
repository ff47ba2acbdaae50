package learner

// EducationStage places a learner in the career-exploration taxonomy.
type EducationStage string

const (
	StageDiscovery   EducationStage = "discovery"   // exploring what exists
	StageDirection   EducationStage = "direction"   // narrowing to a field
	StageCommitment  EducationStage = "commitment"  // committed to a path
	StageProgression EducationStage = "progression" // advancing within it
)

// Profile is a learner's identity and demographic context. It is captured
// at registration and used only as prompt context for roadmap generation.
type Profile struct {
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Designation    string         `json:"designation"`
	EducationStage EducationStage `json:"educationStage"`
	Age            int            `json:"age"`
	Email          string         `json:"email"`
}

// DisplayName returns "First L." for leaderboard-style display.
func (p Profile) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName[:1] + "."
}

// Stats is a learner's gamification record. It is mutated only through
// the badge evaluator's update path, never field-by-field from the UI.
type Stats struct {
	XP               int      `json:"xp"`
	Streak           int      `json:"streak"`
	CompletedModules int      `json:"completedModules"`
	CurrentNSQFLevel int      `json:"currentNsqfLevel"`
	Badges           []string `json:"badges"`
}

// HasBadge reports whether the badge id is already unlocked.
func (s Stats) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b == id {
			return true
		}
	}
	return false
}
