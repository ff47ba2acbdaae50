package assessment

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/eduvoyager/internal/llm"
)

func TestQuestionsFromOracle(t *testing.T) {
	content := `{"questions":[
		{"question":"How experienced are you with Go?","options":["New","Some","Expert"],"allowMultiple":false},
		{"question":"Which areas interest you?","options":["Web","CLI","Infra"],"allowMultiple":true}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	svc := NewService(mock, DefaultConfig())

	qs := svc.Questions(context.Background(), "Student", "Go Programming", 20)

	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}
	if qs[0].AllowMultiple {
		t.Error("skill-level question should be single select")
	}
	if !qs[1].AllowMultiple {
		t.Error("interests question should be multi select")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestQuestionsFallbackOnError(t *testing.T) {
	// Empty mock queue -> provider unavailable.
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	qs := svc.Questions(context.Background(), "Student", "Data Science", 20)

	if len(qs) != 5 {
		t.Fatalf("fallback questions = %d, want 5", len(qs))
	}
	if qs[0].Question != "What is your current experience with Data Science?" {
		t.Errorf("first fallback = %q", qs[0].Question)
	}
	// Exactly one multi-select in the static set.
	var multi int
	for _, q := range qs {
		if q.AllowMultiple {
			multi++
		}
	}
	if multi != 1 {
		t.Errorf("multi-select count = %d, want 1", multi)
	}
}

func TestQuestionsFallbackOnMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)})
	svc := NewService(mock, DefaultConfig())

	qs := svc.Questions(context.Background(), "Student", "UX Design", 20)

	if len(qs) != 5 {
		t.Fatalf("empty oracle output should fall back, got %d questions", len(qs))
	}
}

func TestQuestionsPromptMentionsDomain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[{"question":"q","options":["a"],"allowMultiple":false}]}`)})
	svc := NewService(mock, DefaultConfig())

	svc.Questions(context.Background(), "Analyst", "Cloud Computing", 25)

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "assessment-questions" {
		t.Error("expected structured output schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Cloud Computing", "Analyst", "Age: 25"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
