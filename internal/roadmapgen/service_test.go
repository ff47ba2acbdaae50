package roadmapgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/eduvoyager/internal/assessment"
	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/llm"
	"github.com/abhisek/eduvoyager/internal/roadmap"
)

const roadmapJSON = `{
	"title": "Web Development Path",
	"description": "From basics to deployable apps",
	"domain": "Web Development",
	"targetNsqfLevel": 6,
	"learningObjectives": ["Build pages", "Style them", "Ship them"],
	"softSkills": [
		{"name": "Effective Communication", "description": "d", "resources": []}
	],
	"decisionPrompts": ["Do you prefer frontend or backend?"],
	"steps": [
		{"id": "", "title": "HTML", "description": "d", "nsqfLevel": 2, "estimatedHours": 10, "resources": [], "completed": true},
		{"id": "custom", "title": "CSS", "description": "d", "nsqfLevel": 2, "estimatedHours": 12, "resources": []}
	]
}`

func testProfile() learner.Profile {
	return learner.Profile{
		FirstName:   "Asha",
		Designation: "Student",
		Email:       "asha@example.com",
	}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(roadmapJSON)})
	svc := NewService(mock, DefaultConfig())

	answers := []assessment.Answer{{Question: "Experience?", Answer: "Basic Knowledge"}}
	rm, err := svc.Generate(context.Background(), testProfile(), "Web Development", answers)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if rm.TargetNSQFLevel != 6 {
		t.Errorf("target = %d, want 6", rm.TargetNSQFLevel)
	}
	// Normalization: blank id backfilled, oracle "completed" ignored.
	if rm.Steps[0].ID != "step-0" {
		t.Errorf("step id = %q, want step-0", rm.Steps[0].ID)
	}
	if rm.Steps[0].Completed {
		t.Error("generated steps must start incomplete")
	}
	if rm.Steps[1].ID != "custom" {
		t.Errorf("step id = %q, want custom preserved", rm.Steps[1].ID)
	}

	// The prompt carries the answers and the profile.
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Basic Knowledge") {
		t.Error("prompt missing assessment answers")
	}
	if !strings.Contains(msg, "asha@example.com") {
		t.Error("prompt missing profile")
	}
}

func TestGenerateErrorPropagates(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	_, err := svc.Generate(context.Background(), testProfile(), "Web Development", nil)
	if err == nil {
		t.Fatal("expected error from unavailable provider")
	}
}

func TestGenerateMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), testProfile(), "d", nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNextLevel(t *testing.T) {
	next := strings.Replace(roadmapJSON, `"targetNsqfLevel": 6`, `"targetNsqfLevel": 7`, 1)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(next)})
	svc := NewService(mock, DefaultConfig())

	rm, err := svc.NextLevel(context.Background(), currentRoadmap(6), "React")
	if err != nil {
		t.Fatalf("next level: %v", err)
	}

	// Follow-up ids carry a suffix so they cannot collide.
	if !strings.HasPrefix(rm.Steps[0].ID, "step-0-") {
		t.Errorf("next-level id = %q, want suffixed", rm.Steps[0].ID)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "NSQF Level 7") {
		t.Error("prompt should target level 7")
	}
	if !strings.Contains(msg, "React") {
		t.Error("prompt missing next focus")
	}
}

func TestNextLevelCapsAtTen(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(roadmapJSON)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.NextLevel(context.Background(), currentRoadmap(10), "Mastery"); err != nil {
		t.Fatalf("next level: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "NSQF Level 10") {
		t.Error("level must cap at 10")
	}
	if strings.Contains(msg, "NSQF Level 11") {
		t.Error("level must not exceed 10")
	}
}

func currentRoadmap(target int) *roadmap.Roadmap {
	return &roadmap.Roadmap{
		Title:           "Current Path",
		Domain:          "Web Development",
		TargetNSQFLevel: target,
	}
}
