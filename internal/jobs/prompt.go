package jobs

import (
	"fmt"
	"strings"
)

const jobsSystemPrompt = `You are EduVoyager's career advisor. You recommend realistic job postings matched to a learner's target role and current skills.`

func buildJobsUserMessage(designation string, skills []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Generate 5 realistic job recommendations for a person aiming to be a %q.\n", designation))
	if len(skills) > 0 {
		b.WriteString(fmt.Sprintf("Their current skills include: %s.\n", strings.Join(skills, ", ")))
	}
	b.WriteString("Include a mix of roles (entry level, internships).\n")
	b.WriteString("For the url field, provide a realistic search URL for the platform (e.g. a LinkedIn or Indeed job search URL for the role title), not a link to a specific posting.\n")
	b.WriteString("The matchScore should be between 70 and 99 based on how well the role fits the skills.")
	return b.String()
}
