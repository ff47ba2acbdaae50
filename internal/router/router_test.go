package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvoyager/internal/screen"
)

type fakeScreen struct {
	title   string
	initRan bool
}

func newFakeScreen(title string) *fakeScreen {
	return &fakeScreen{title: title}
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *fakeScreen) View(int, int) string                    { return s.title }
func (s *fakeScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	r := New(newFakeScreen("dashboard"))

	roadmap := newFakeScreen("roadmap")
	r.Push(roadmap)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "roadmap" {
		t.Errorf("expected active 'roadmap', got %q", r.Active().Title())
	}
	if !roadmap.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(newFakeScreen("dashboard"))
	r.Push(newFakeScreen("arcade"))
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "dashboard" {
		t.Errorf("expected active 'dashboard', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(newFakeScreen("dashboard"))

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(newFakeScreen("auth"))

	dash := newFakeScreen("dashboard")
	r.Replace(dash)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "dashboard" {
		t.Errorf("expected active 'dashboard', got %q", r.Active().Title())
	}
	if !dash.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(newFakeScreen("assessment"))

	rm := newFakeScreen("roadmap")
	r.Update(ReplaceScreenMsg{Screen: rm})

	if r.Active().Title() != "roadmap" {
		t.Errorf("expected active 'roadmap', got %q", r.Active().Title())
	}
	if !rm.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(newFakeScreen("dashboard"))
	r.Push(newFakeScreen("assessment"))

	rm := newFakeScreen("roadmap")
	r.Replace(rm)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "roadmap" {
		t.Errorf("expected active 'roadmap', got %q", r.Active().Title())
	}
}
