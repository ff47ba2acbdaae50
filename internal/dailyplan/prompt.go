package dailyplan

import (
	"fmt"
	"strings"
)

const dailyPlanSystemPrompt = `You are EduVoyager's study coach. You break a learning step into small concrete tasks a learner can finish in one sitting.`

func buildPlanUserMessage(stepTitle, stepDescription string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("The learner is currently working on the learning step %q.\n", stepTitle))
	if stepDescription != "" {
		b.WriteString(fmt.Sprintf("Step description: %s\n", stepDescription))
	}
	b.WriteString("Generate 3 bite-sized, actionable micro-tasks for today (each 15-30 mins).\n")
	b.WriteString(`Examples: "Watch the first video of the course", "Write a summary of chapter 1", "Solve 5 practice problems".`)
	return b.String()
}
