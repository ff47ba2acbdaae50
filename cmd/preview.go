package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvoyager/internal/arcade"
	"github.com/abhisek/eduvoyager/internal/llm"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated quiz questions for a topic (no database)",
	Long: `Generate and interactively answer arcade questions for a topic.

This is a stateless developer tool — no database, no accounts, no XP.
Useful for evaluating question quality across topics and difficulties.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic to quiz on (required)")
	previewCmd.Flags().String("difficulty", "easy", "Difficulty: easy, medium or hard")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	diffVal, _ := cmd.Flags().GetString("difficulty")

	var difficulty arcade.Difficulty
	switch strings.ToLower(diffVal) {
	case "easy":
		difficulty = arcade.DifficultyEasy
	case "medium":
		difficulty = arcade.DifficultyMedium
	case "hard":
		difficulty = arcade.DifficultyHard
	default:
		return fmt.Errorf("invalid difficulty %q: must be easy, medium or hard", diffVal)
	}

	// No EventRepo: nothing to log a request against without a database.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	svc := arcade.NewService(provider, arcade.DefaultConfig())
	questions := svc.Round(ctx, topic, difficulty)
	if len(questions) == 0 {
		return fmt.Errorf("no questions generated for %q", topic)
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Topic: %s (%s)\n\n", topic, difficulty)

	var correct int
	for i, q := range questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(questions))
		fmt.Println(q.Question)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		var chosen int
		if _, err := fmt.Sscanf(answer, "%d", &chosen); err == nil && chosen-1 == q.CorrectAnswerIndex {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %d) %s\n",
				q.CorrectAnswerIndex+1, q.Options[q.CorrectAnswerIndex])
		}

		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(questions))
	return nil
}
