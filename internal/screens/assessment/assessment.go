package assessment

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	assess "github.com/abhisek/eduvoyager/internal/assessment"
	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/roadmapgen"
	"github.com/abhisek/eduvoyager/internal/screen"
	"github.com/abhisek/eduvoyager/internal/ui/components"
	"github.com/abhisek/eduvoyager/internal/ui/layout"
	"github.com/abhisek/eduvoyager/internal/ui/theme"
)

// CompletedMsg is emitted when the questionnaire has produced a roadmap
// and it has been installed on the session.
type CompletedMsg struct{}

type questionsReadyMsg struct {
	Questions []assess.Question
}

type roadmapReadyMsg struct {
	Err error
}

type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type phase int

const (
	phaseDomain phase = iota
	phaseLoadingQuestions
	phaseQuestionnaire
	phaseGenerating
	phaseError
)

// AssessmentScreen runs the adaptive questionnaire and hands the answers
// to roadmap generation.
type AssessmentScreen struct {
	sess      *progress.Session
	questions *assess.Service
	roadmaps  *roadmapgen.Service

	phase       phase
	domainInput components.TextInput
	domain      string

	items     []assess.Question
	index     int
	cursor    int
	checklist components.Checklist
	answers   []assess.Answer

	spinnerFrame int
	errMsg       string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen for the signed-in session.
func New(sess *progress.Session, questions *assess.Service, roadmaps *roadmapgen.Service) *AssessmentScreen {
	return &AssessmentScreen{
		sess:        sess,
		questions:   questions,
		roadmaps:    roadmaps,
		domainInput: components.NewTextInput("e.g. Data Science, Carpentry, UX Design", false, 64),
	}
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return tea.Batch(s.domainInput.Init(), s.spinnerTick())
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseDomain:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseQuestionnaire:
		if s.current().AllowMultiple {
			return []layout.KeyHint{
				{Key: "Space", Description: "Toggle"},
				{Key: "Enter", Description: "Submit"},
				{Key: "↑↓", Description: "Navigate"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Select"},
			{Key: "↑↓", Description: "Navigate"},
		}
	case phaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return nil
}

func (s *AssessmentScreen) current() assess.Question {
	if s.index < len(s.items) {
		return s.items[s.index]
	}
	return assess.Question{}
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		s.spinnerFrame++
		return s, s.spinnerTick()

	case questionsReadyMsg:
		s.items = msg.Questions
		s.phase = phaseQuestionnaire
		s.index = 0
		s.prepareQuestion()
		return s, nil

	case roadmapReadyMsg:
		if msg.Err != nil {
			s.phase = phaseError
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return CompletedMsg{} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseDomain {
		var cmd tea.Cmd
		s.domainInput, cmd = s.domainInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseDomain:
		if msg.String() == "enter" {
			domain := strings.TrimSpace(s.domainInput.Value())
			if domain == "" {
				return s, nil
			}
			s.domain = domain
			s.phase = phaseLoadingQuestions
			return s, s.loadQuestions()
		}
		var cmd tea.Cmd
		s.domainInput, cmd = s.domainInput.Update(msg)
		return s, cmd

	case phaseQuestionnaire:
		q := s.current()
		if q.AllowMultiple {
			var cmd tea.Cmd
			s.checklist, cmd = s.checklist.Update(msg)
			if s.checklist.Submitted {
				s.recordAnswer(strings.Join(s.checklist.Selections(), ", "))
				return s, nil
			}
			return s, cmd
		}

		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(q.Options)-1 {
				s.cursor++
			}
		case "enter":
			s.recordAnswer(q.Options[s.cursor])
		}
		return s, nil

	case phaseError:
		if msg.String() == "r" {
			s.phase = phaseGenerating
			s.errMsg = ""
			return s, s.generateRoadmap()
		}
	}
	return s, nil
}

func (s *AssessmentScreen) prepareQuestion() {
	s.cursor = 0
	q := s.current()
	if q.AllowMultiple {
		s.checklist = components.NewChecklist(q.Question, q.Options)
	}
}

func (s *AssessmentScreen) recordAnswer(answer string) {
	s.answers = append(s.answers, assess.Answer{
		Question: s.current().Question,
		Answer:   answer,
	})

	if s.index+1 < len(s.items) {
		s.index++
		s.prepareQuestion()
		return
	}
	s.phase = phaseGenerating
}

// loadQuestions runs the questionnaire oracle. It never fails: the
// service falls back to a static question set.
func (s *AssessmentScreen) loadQuestions() tea.Cmd {
	return func() tea.Msg {
		qs := s.questions.Questions(context.Background(),
			s.sess.Profile.Designation, s.domain, s.sess.Profile.Age)
		return questionsReadyMsg{Questions: qs}
	}
}

// generateRoadmap runs roadmap generation and installs the result on the
// session. Unlike the questionnaire there is no fallback here.
func (s *AssessmentScreen) generateRoadmap() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		rm, err := s.roadmaps.Generate(ctx, s.sess.Profile, s.domain, s.answers)
		if err != nil {
			return roadmapReadyMsg{Err: err}
		}
		if err := s.sess.CompleteAssessment(ctx, rm); err != nil {
			return roadmapReadyMsg{Err: err}
		}
		return roadmapReadyMsg{}
	}
}

func (s *AssessmentScreen) spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *AssessmentScreen) View(width, height int) string {
	switch s.phase {
	case phaseDomain:
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("What do you want to master?") + "\n\n")
		b.WriteString(s.domainInput.View() + "\n\n")
		b.WriteString(theme.Hint.Render("A few quick questions follow, then we chart your roadmap."))
		card := theme.Card.Width(min(width-4, 60)).Render(b.String())
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)

	case phaseLoadingQuestions:
		return s.renderSpinner(width, height, "Preparing your questions...")

	case phaseQuestionnaire:
		return s.renderQuestion(width, height)

	case phaseGenerating:
		return s.renderSpinner(width, height,
			fmt.Sprintf("Charting your %s roadmap...", s.domain))

	case phaseError:
		content := lipgloss.NewStyle().Foreground(theme.Error).
			Render("Roadmap generation failed:\n"+s.errMsg) +
			"\n\n" + theme.Hint.Render("press r to retry")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	return ""
}

func (s *AssessmentScreen) renderSpinner(width, height int, label string) string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	content := lipgloss.NewStyle().Foreground(theme.Primary).Render(frame) + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AssessmentScreen) renderQuestion(width, height int) string {
	q := s.current()

	progressLine := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.index+1, len(s.items)))

	var body string
	if q.AllowMultiple {
		body = s.checklist.View()
	} else {
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(q.Question) + "\n\n")
		for i, opt := range q.Options {
			prefix := "  "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == s.cursor {
				prefix = "▸ "
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
			b.WriteString(style.Render(prefix+opt) + "\n")
		}
		body = b.String()
	}

	card := theme.Card.Width(min(width-4, 64)).Render(progressLine + "\n\n" + body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
