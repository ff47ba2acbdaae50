package jobs

// Type classifies a job posting's engagement model.
type Type string

const (
	TypeFullTime   Type = "Full-time"
	TypePartTime   Type = "Part-time"
	TypeInternship Type = "Internship"
	TypeRemote     Type = "Remote"
)

// Platform names the job board a posting links to.
type Platform string

const (
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformIndeed    Platform = "Indeed"
	PlatformGlassdoor Platform = "Glassdoor"
	PlatformNaukri    Platform = "Naukri"
)

// Job is one recommended posting matched to the learner's profile.
type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Type        Type     `json:"type"`
	SalaryRange string   `json:"salaryRange"`
	Platform    Platform `json:"platform"`
	URL         string   `json:"url"`
	MatchScore  int      `json:"matchScore"`
	Skills      []string `json:"skills"`
}
