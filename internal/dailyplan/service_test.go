package dailyplan

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/eduvoyager/internal/llm"
)

func TestPlan(t *testing.T) {
	content := `{"tasks":[{"text":"Watch the intro video"},{"text":"Summarize chapter 1"},{"text":"Solve 5 exercises"}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	svc := NewService(mock, DefaultConfig())

	tasks := svc.Plan(context.Background(), "SQL Joins", "Inner and outer joins")

	if len(tasks) != 3 {
		t.Fatalf("tasks = %d, want 3", len(tasks))
	}
	for i, task := range tasks {
		if !strings.HasPrefix(task.ID, "daily-task-") {
			t.Errorf("task %d id = %q", i, task.ID)
		}
		if task.IsCompleted {
			t.Errorf("task %d starts completed", i)
		}
		if task.Type != "core" {
			t.Errorf("task %d type = %q, want core", i, task.Type)
		}
	}
	if tasks[0].Text != "Watch the intro video" {
		t.Errorf("text = %q", tasks[0].Text)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "SQL Joins") || !strings.Contains(msg, "Inner and outer joins") {
		t.Errorf("prompt = %q", msg)
	}
}

func TestPlanFallbackOnError(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	tasks := svc.Plan(context.Background(), "SQL Joins", "")

	if len(tasks) != 3 {
		t.Fatalf("tasks = %d, want 3", len(tasks))
	}
	if tasks[0].Text != "Review resources for SQL Joins" {
		t.Errorf("text = %q", tasks[0].Text)
	}
	if tasks[1].Text != "Practice key concepts for 20 mins" {
		t.Errorf("text = %q", tasks[1].Text)
	}
	if tasks[2].Text != "Take notes on the main topic" {
		t.Errorf("text = %q", tasks[2].Text)
	}
}

func TestPlanFallbackOnEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"tasks":[]}`)})
	svc := NewService(mock, DefaultConfig())

	tasks := svc.Plan(context.Background(), "SQL Joins", "")
	if len(tasks) != 3 || !strings.Contains(tasks[0].Text, "SQL Joins") {
		t.Fatalf("got %+v, want fallback", tasks)
	}
}
