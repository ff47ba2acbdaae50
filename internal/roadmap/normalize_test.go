package roadmap

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeBackfillsStepIDs(t *testing.T) {
	r := &Roadmap{
		Domain: "Web Development",
		Steps: []Step{
			{Title: "HTML Basics"},
			{ID: "custom", Title: "CSS"},
			{Title: "JavaScript"},
		},
	}

	Normalize(r, "Web Development", true)

	if r.Steps[0].ID != "step-0" {
		t.Errorf("step 0 id = %q, want step-0", r.Steps[0].ID)
	}
	if r.Steps[1].ID != "custom" {
		t.Errorf("step 1 id = %q, want custom (preserved)", r.Steps[1].ID)
	}
	if r.Steps[2].ID != "step-2" {
		t.Errorf("step 2 id = %q, want step-2", r.Steps[2].ID)
	}
}

func TestNormalizeNextLevelIDsDoNotCollide(t *testing.T) {
	r := &Roadmap{Steps: []Step{{Title: "Advanced Topic"}}}

	Normalize(r, "d", false)

	if !strings.HasPrefix(r.Steps[0].ID, "step-0-") {
		t.Errorf("next-level id = %q, want step-0-<suffix>", r.Steps[0].ID)
	}
	if r.Steps[0].ID == "step-0" {
		t.Error("next-level id must carry a unique suffix")
	}
}

func TestNormalizeForcesIncomplete(t *testing.T) {
	r := &Roadmap{Steps: []Step{{ID: "s1", Completed: true}}}

	Normalize(r, "d", true)

	if r.Steps[0].Completed {
		t.Error("freshly generated steps must start incomplete")
	}
}

func TestNormalizeDefaultsDomain(t *testing.T) {
	r := &Roadmap{}
	Normalize(r, "Data Science", true)
	if r.Domain != "Data Science" {
		t.Errorf("domain = %q, want Data Science", r.Domain)
	}

	r2 := &Roadmap{Domain: "Cloud"}
	Normalize(r2, "Data Science", true)
	if r2.Domain != "Cloud" {
		t.Errorf("domain = %q, want Cloud (preserved)", r2.Domain)
	}
}

func TestNormalizeInjectsSoftSkillFallback(t *testing.T) {
	r := &Roadmap{}
	Normalize(r, "d", true)

	if len(r.SoftSkills) != 2 {
		t.Fatalf("soft skills = %d, want 2 fallback entries", len(r.SoftSkills))
	}
	if r.SoftSkills[0].Name != "Professional Communication" {
		t.Errorf("first fallback = %q", r.SoftSkills[0].Name)
	}
	for _, ss := range r.SoftSkills {
		var free, paid int
		for _, res := range ss.Resources {
			if res.IsPaid {
				paid++
			} else {
				free++
			}
		}
		if free == 0 || paid == 0 {
			t.Errorf("fallback skill %q should mix free and paid resources", ss.Name)
		}
	}
}

func TestSoftSkillLegacyStringFormat(t *testing.T) {
	// Older records stored softSkills as a bare string array.
	raw := `{"title":"t","targetNsqfLevel":3,"softSkills":["Communication","Teamwork"]}`

	var r Roadmap
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal legacy format: %v", err)
	}

	if len(r.SoftSkills) != 2 {
		t.Fatalf("soft skills = %d, want 2", len(r.SoftSkills))
	}
	if r.SoftSkills[0].Name != "Communication" {
		t.Errorf("name = %q, want Communication", r.SoftSkills[0].Name)
	}
	if r.SoftSkills[1].Resources != nil {
		t.Error("legacy entries carry no resources")
	}
}

func TestFindStep(t *testing.T) {
	r := &Roadmap{Steps: []Step{{ID: "a"}, {ID: "b"}}}

	if s := r.FindStep("b"); s == nil || s.ID != "b" {
		t.Error("expected to find step b")
	}
	if s := r.FindStep("missing"); s != nil {
		t.Error("expected nil for unknown step id")
	}
}

func TestNextIncompleteStep(t *testing.T) {
	r := &Roadmap{Steps: []Step{
		{ID: "a", Completed: true},
		{ID: "b"},
		{ID: "c"},
	}}

	if s := r.NextIncompleteStep(); s == nil || s.ID != "b" {
		t.Error("expected first incomplete step b")
	}

	r.Steps[1].Completed = true
	r.Steps[2].Completed = true
	if s := r.NextIncompleteStep(); s != nil {
		t.Error("expected nil when all steps complete")
	}
}
