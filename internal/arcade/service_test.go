package arcade

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/eduvoyager/internal/llm"
)

func TestRound(t *testing.T) {
	content := `{"questions":[
		{"id":"ai-id","question":"What is a slice?","options":["a","b","c","d"],"correctAnswerIndex":1,"explanation":"e","difficulty":"medium"},
		{"question":"What is a map?","options":["a","b"],"correctAnswerIndex":0,"explanation":"e","difficulty":"medium"}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	svc := NewService(mock, DefaultConfig())

	qs := svc.Round(context.Background(), "Go Basics", DifficultyMedium)

	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}
	// Oracle ids are replaced, not trusted.
	if !strings.HasPrefix(qs[0].ID, "q-0-") || qs[0].ID == "ai-id" {
		t.Errorf("id = %q, want locally generated", qs[0].ID)
	}
	if qs[0].CorrectAnswerIndex != 1 {
		t.Errorf("correct index = %d, want 1", qs[0].CorrectAnswerIndex)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Go Basics") || !strings.Contains(msg, "medium") {
		t.Errorf("prompt = %q", msg)
	}
}

func TestRoundEmptyOnError(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	qs := svc.Round(context.Background(), "Go Basics", DifficultyHard)
	if len(qs) != 0 {
		t.Fatalf("questions = %d, want empty round on failure", len(qs))
	}
}

func TestRoundEmptyOnMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`garbage`)})
	svc := NewService(mock, DefaultConfig())

	if qs := svc.Round(context.Background(), "t", DifficultyEasy); len(qs) != 0 {
		t.Fatalf("questions = %d, want empty", len(qs))
	}
}
