package arcade

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	arcadegen "github.com/abhisek/eduvoyager/internal/arcade"
	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/router"
	"github.com/abhisek/eduvoyager/internal/screen"
	"github.com/abhisek/eduvoyager/internal/ui/components"
	"github.com/abhisek/eduvoyager/internal/ui/layout"
	"github.com/abhisek/eduvoyager/internal/ui/theme"
)

type roundReadyMsg struct {
	Questions []arcadegen.Question
}

type resultSavedMsg struct {
	Result *progress.GainResult
	Err    error
}

type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type phase int

const (
	phaseDifficulty phase = iota
	phaseLoading
	phasePlaying
	phaseFeedback
	phaseEmpty
	phaseDone
)

var difficulties = []arcadegen.Difficulty{
	arcadegen.DifficultyEasy,
	arcadegen.DifficultyMedium,
	arcadegen.DifficultyHard,
}

// ArcadeScreen runs a revision quiz round on the learner's current topic.
type ArcadeScreen struct {
	sess    *progress.Session
	service *arcadegen.Service

	phase      phase
	diffCursor int
	difficulty arcadegen.Difficulty
	topic      string

	questions []arcadegen.Question
	index     int
	choice    components.MultiChoice
	score     int

	result       *progress.GainResult
	saveErr      error
	spinnerFrame int
}

var _ screen.Screen = (*ArcadeScreen)(nil)
var _ screen.KeyHintProvider = (*ArcadeScreen)(nil)

// New creates an ArcadeScreen for the signed-in session.
func New(sess *progress.Session, service *arcadegen.Service) *ArcadeScreen {
	topic := sess.Profile.Designation
	if rm := sess.Roadmap; rm != nil {
		if step := rm.NextIncompleteStep(); step != nil {
			topic = step.Title
		} else {
			topic = rm.Domain
		}
	}
	return &ArcadeScreen{sess: sess, service: service, topic: topic}
}

func (s *ArcadeScreen) Init() tea.Cmd {
	return s.spinnerTick()
}

func (s *ArcadeScreen) Title() string {
	return "Arcade"
}

func (s *ArcadeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseDifficulty:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Difficulty"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phasePlaying:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseEmpty, phaseDone:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *ArcadeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		s.spinnerFrame++
		return s, s.spinnerTick()

	case roundReadyMsg:
		if len(msg.Questions) == 0 {
			s.phase = phaseEmpty
			return s, nil
		}
		s.questions = msg.Questions
		s.index = 0
		s.score = 0
		s.loadQuestion()
		s.phase = phasePlaying
		return s, nil

	case resultSavedMsg:
		s.result = msg.Result
		s.saveErr = msg.Err
		s.phase = phaseDone
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ArcadeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseDifficulty:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.diffCursor > 0 {
				s.diffCursor--
			}
		case "down", "j":
			if s.diffCursor < len(difficulties)-1 {
				s.diffCursor++
			}
		case "enter":
			s.difficulty = difficulties[s.diffCursor]
			s.phase = phaseLoading
			return s, s.loadRound()
		}
		return s, nil

	case phasePlaying:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			if s.choice.IsCorrect() {
				s.score++
			}
			s.phase = phaseFeedback
		}
		return s, cmd

	case phaseFeedback:
		if s.index+1 < len(s.questions) {
			s.index++
			s.loadQuestion()
			s.phase = phasePlaying
			return s, nil
		}
		// Round over: convert the score into XP.
		s.phase = phaseLoading
		return s, s.saveResult()

	case phaseEmpty, phaseDone:
		if msg.String() == "esc" || msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ArcadeScreen) loadQuestion() {
	q := s.questions[s.index]
	s.choice = components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswerIndex)
}

func (s *ArcadeScreen) loadRound() tea.Cmd {
	return func() tea.Msg {
		qs := s.service.Round(context.Background(), s.topic, s.difficulty)
		return roundReadyMsg{Questions: qs}
	}
}

func (s *ArcadeScreen) saveResult() tea.Cmd {
	return func() tea.Msg {
		res, err := s.sess.RecordGameResult(context.Background(), string(s.difficulty), s.score)
		return resultSavedMsg{Result: res, Err: err}
	}
}

func (s *ArcadeScreen) spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *ArcadeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var content string
	switch s.phase {
	case phaseDifficulty:
		content = s.renderDifficultyPicker(cw)
	case phaseLoading:
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		content = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(frame) + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading...")
	case phasePlaying, phaseFeedback:
		content = s.renderQuestion(cw)
	case phaseEmpty:
		content = components.ArcadeCard(
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No questions available right now.\nTry again later."), cw)
	case phaseDone:
		content = s.renderResult(cw)
	}

	return components.CabinetFrame(content, width, height)
}

func (s *ArcadeScreen) renderDifficultyPicker(cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render("◆ REVISION ARCADE ◆") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Topic: "+s.topic) + "\n\n")

	for i, d := range difficulties {
		b.WriteString(components.ArcadeButton(strings.ToUpper(string(d)), i == s.diffCursor, cw-8) + "\n")
	}
	return b.String()
}

func (s *ArcadeScreen) renderQuestion(cw int) string {
	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d / %d   score %d", s.index+1, len(s.questions), s.score))

	body := s.choice.View()

	if s.phase == phaseFeedback {
		q := s.questions[s.index]
		verdict := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Not quite.")
		if s.choice.IsCorrect() {
			verdict = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!")
		}
		body += "\n" + verdict + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw-8).Render(q.Explanation)
	}

	return counter + "\n\n" + components.ArcadeCard(body, cw)
}

func (s *ArcadeScreen) renderResult(cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render("ROUND COMPLETE") + "\n\n")
	b.WriteString(fmt.Sprintf("Score: %d / %d\n", s.score, len(s.questions)))

	if s.saveErr != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render("Could not save the result: "+s.saveErr.Error()) + "\n")
	} else if s.result != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("+%d XP", s.result.XPGained)) + "\n")
		b.WriteString(fmt.Sprintf("Streak: %d days\n", s.result.Stats.Streak))
		for _, badge := range s.result.Unlocked {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).
				Render("Badge unlocked: "+badge.Name+"!") + "\n")
		}
	}

	return components.ArcadeCard(b.String(), cw)
}
