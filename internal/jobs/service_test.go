package jobs

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/eduvoyager/internal/llm"
)

func TestRecommend(t *testing.T) {
	content := `{"jobs":[
		{"title":"Data Analyst","company":"Acme","location":"Bengaluru","type":"Full-time","salaryRange":"8-12 LPA","platform":"Naukri","url":"https://www.naukri.com/data-analyst-jobs","matchScore":88,"skills":["SQL","Python"]},
		{"title":"Analytics Intern","company":"Beta","location":"Remote","type":"Internship","salaryRange":"Stipend","platform":"LinkedIn","url":"https://www.linkedin.com/jobs/search/?keywords=Analytics+Intern","matchScore":79,"skills":["Excel"]}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	svc := NewService(mock, DefaultConfig())

	got := svc.Recommend(context.Background(), "Data Analyst", []string{"SQL", "Python"})

	if len(got) != 2 {
		t.Fatalf("jobs = %d, want 2", len(got))
	}
	if !strings.HasPrefix(got[0].ID, "job-0-") {
		t.Errorf("id = %q, want locally generated", got[0].ID)
	}
	if got[0].Platform != PlatformNaukri || got[1].Type != TypeInternship {
		t.Errorf("enums = %q, %q", got[0].Platform, got[1].Type)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Data Analyst") || !strings.Contains(msg, "SQL, Python") {
		t.Errorf("prompt = %q", msg)
	}
}

func TestRecommendFallbackOnError(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	got := svc.Recommend(context.Background(), "Data Analyst", nil)

	if len(got) != 1 {
		t.Fatalf("jobs = %d, want single fallback", len(got))
	}
	j := got[0]
	if j.Title != "Junior Developer" || j.Company != "Tech Solutions Inc." {
		t.Errorf("fallback = %+v", j)
	}
	if j.URL != "https://www.linkedin.com/jobs/search/?keywords=Junior+Developer" {
		t.Errorf("url = %q", j.URL)
	}
	if j.MatchScore != 95 {
		t.Errorf("matchScore = %d, want 95", j.MatchScore)
	}
}

func TestRecommendFallbackOnEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"jobs":[]}`)})
	svc := NewService(mock, DefaultConfig())

	got := svc.Recommend(context.Background(), "Data Analyst", nil)
	if len(got) != 1 || got[0].Title != "Junior Developer" {
		t.Fatalf("got %+v, want fallback", got)
	}
}
