package arcade

import (
	"fmt"
	"strings"
)

const arcadeSystemPrompt = `You are EduVoyager's quiz master. You write short, fair multiple-choice revision questions with clear explanations.`

func buildRoundUserMessage(topic string, difficulty Difficulty) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Generate 5 %s difficulty aptitude or technical questions related to: %s.\n", difficulty, topic))
	b.WriteString("These are for revision purposes.\n")
	b.WriteString("Include an explanation for the correct answer.")
	return b.String()
}
