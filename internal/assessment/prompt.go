package assessment

import (
	"fmt"
	"strings"
)

const assessmentSystemPrompt = `You are EduVoyager, an expert career counselor. You design short adaptive questionnaires that place a learner before generating their personalized learning roadmap.`

func buildAssessmentUserMessage(designation, domain string, age int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Context: A user (Designation: %s, Age: %d) wants to pursue a goal/domain in: %q.\n\n", designation, age, domain))
	b.WriteString("Task: Generate 5 specific multiple-choice assessment questions.\n\n")
	b.WriteString(`CRITICAL REQUIREMENT:
- Questions about "Learning Style", "Interests", or "Tools used" MUST allow multiple selections. Set 'allowMultiple' to true for these.
- Questions about "Skill Level" or "Experience" should be single selection. Set 'allowMultiple' to false.

Topics to cover:
`)
	b.WriteString(fmt.Sprintf("1. Current skill level in %q (Single Select).\n", domain))
	b.WriteString(fmt.Sprintf("2. Specific interests within %q (Multi Select).\n", domain))
	b.WriteString(`3. Learning preferences (e.g. Video, Reading, Projects) (Multi Select).
4. Tools/Technologies already known (Multi Select).
5. Time availability (Single Select).`)

	return b.String()
}
