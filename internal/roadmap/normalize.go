package roadmap

import (
	"fmt"

	"github.com/google/uuid"
)

// Normalize repairs a freshly generated roadmap in place. The oracle
// schema marks most fields required, but step ids and the completed flag
// are backfilled here rather than trusted:
//   - missing step ids become "step-N" (first generation) or
//     "step-N-<uuid8>" when fresh is false (follow-up levels, where ids
//     must not collide with a prior roadmap's)
//   - Completed is forced to false on every step
//   - Domain falls back to the given default when the oracle omits it
//   - an empty soft-skill list gets the stock placement pair
func Normalize(r *Roadmap, defaultDomain string, fresh bool) {
	for i := range r.Steps {
		if r.Steps[i].ID == "" {
			if fresh {
				r.Steps[i].ID = fmt.Sprintf("step-%d", i)
			} else {
				r.Steps[i].ID = fmt.Sprintf("step-%d-%s", i, uuid.NewString()[:8])
			}
		}
		r.Steps[i].Completed = false
	}

	if r.Domain == "" {
		r.Domain = defaultDomain
	}

	if len(r.SoftSkills) == 0 {
		r.SoftSkills = fallbackSoftSkills()
	}
}

// fallbackSoftSkills is the stock pair injected when the oracle returns no
// soft skills. Matches the recruitment-focused defaults of the web client.
func fallbackSoftSkills() []SoftSkill {
	return []SoftSkill{
		{
			Name:        "Professional Communication",
			Description: "Essential for placement: articulating ideas clearly in interviews and team settings.",
			Resources: []Resource{
				{
					Title:    "Communication for Professionals (Free)",
					URL:      "https://www.youtube.com/results?search_query=professional+communication+skills",
					Type:     MediumVideo,
					IsPaid:   false,
					Priority: PriorityHigh,
				},
				{
					Title:    "Mastering Communication (Paid)",
					URL:      "https://www.udemy.com/topic/communication-skills/",
					Type:     MediumCourse,
					IsPaid:   true,
					Priority: PriorityMedium,
				},
			},
		},
		{
			Name:        "Leadership & Ownership",
			Description: "Taking initiative and guiding others, a key trait recruiters look for.",
			Resources: []Resource{
				{
					Title:    "Leadership Fundamentals (Free)",
					URL:      "https://www.youtube.com/results?search_query=leadership+skills+for+beginners",
					Type:     MediumVideo,
					IsPaid:   false,
					Priority: PriorityHigh,
				},
				{
					Title:    "Leadership: Practical Skills (Paid)",
					URL:      "https://www.coursera.org/courses?query=leadership",
					Type:     MediumCourse,
					IsPaid:   true,
					Priority: PriorityMedium,
				},
			},
		},
	}
}
