package daily

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvoyager/internal/dailyplan"
	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/router"
	"github.com/abhisek/eduvoyager/internal/screen"
	"github.com/abhisek/eduvoyager/internal/ui/layout"
	"github.com/abhisek/eduvoyager/internal/ui/theme"
)

type planReadyMsg struct {
	Tasks []dailyplan.Task
}

type xpAwardedMsg struct {
	Result *progress.GainResult
	Err    error
}

type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// DailyScreen shows today's micro-tasks for the current roadmap step.
// Tasks are ephemeral: a fresh plan is generated each visit, completing
// one awards XP immediately, and finishing all of them earns a bonus.
type DailyScreen struct {
	sess    *progress.Session
	service *dailyplan.Service

	stepTitle string
	tasks     []dailyplan.Task
	cursor    int
	awarded   map[string]bool
	bonusPaid bool

	loaded       bool
	notice       string
	errMsg       string
	spinnerFrame int
}

var _ screen.Screen = (*DailyScreen)(nil)
var _ screen.KeyHintProvider = (*DailyScreen)(nil)

// New creates a DailyScreen for the signed-in session.
func New(sess *progress.Session, service *dailyplan.Service) *DailyScreen {
	return &DailyScreen{
		sess:    sess,
		service: service,
		awarded: make(map[string]bool),
	}
}

func (s *DailyScreen) Init() tea.Cmd {
	rm := s.sess.Roadmap
	if rm == nil {
		s.loaded = true
		return nil
	}
	step := rm.NextIncompleteStep()
	if step == nil {
		s.loaded = true
		return nil
	}
	s.stepTitle = step.Title
	desc := step.Description

	return tea.Batch(s.spinnerTick(), func() tea.Msg {
		tasks := s.service.Plan(context.Background(), s.stepTitle, desc)
		return planReadyMsg{Tasks: tasks}
	})
}

func (s *DailyScreen) Title() string {
	return "Daily Plan"
}

func (s *DailyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Done / undo"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DailyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		s.spinnerFrame++
		if !s.loaded {
			return s, s.spinnerTick()
		}
		return s, nil

	case planReadyMsg:
		s.tasks = msg.Tasks
		s.loaded = true
		return s, nil

	case xpAwardedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.notice = fmt.Sprintf("+%d XP", msg.Result.XPGained)
		for _, b := range msg.Result.Unlocked {
			s.notice += "  •  Badge unlocked: " + b.Name + "!"
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *DailyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.tasks)-1 {
			s.cursor++
		}
	case " ", "enter":
		if len(s.tasks) == 0 {
			return s, nil
		}
		return s, s.toggleTask()
	}
	return s, nil
}

// toggleTask flips the task. XP is granted once per task per visit; undoing
// a task never claws XP back.
func (s *DailyScreen) toggleTask() tea.Cmd {
	task := &s.tasks[s.cursor]
	task.IsCompleted = !task.IsCompleted

	if !task.IsCompleted || s.awarded[task.ID] {
		return nil
	}
	s.awarded[task.ID] = true

	amount := progress.DailyTaskXP
	if s.allDone() && !s.bonusPaid {
		s.bonusPaid = true
		amount += progress.DayCompleteBonus
	}

	return func() tea.Msg {
		res, err := s.sess.AwardXP(context.Background(), amount)
		return xpAwardedMsg{Result: res, Err: err}
	}
}

func (s *DailyScreen) allDone() bool {
	for _, t := range s.tasks {
		if !t.IsCompleted {
			return false
		}
	}
	return len(s.tasks) > 0
}

func (s *DailyScreen) View(width, height int) string {
	if !s.loaded {
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		content := lipgloss.NewStyle().Foreground(theme.Primary).Render(frame) + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Planning your day...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	if len(s.tasks) == 0 {
		msg := "No roadmap yet. Complete the assessment first."
		if s.sess.Roadmap != nil {
			msg = "Every step is complete. Time to level up!"
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(msg))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Today's focus: "+s.stepTitle) + "\n\n")

	for i, task := range s.tasks {
		box := "[ ]"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if task.IsCompleted {
			box = "[x]"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
			if !task.IsCompleted {
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s %s", prefix, box, task.Text)) + "\n")
	}

	if s.allDone() {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render("Day complete! See you tomorrow."))
	}
	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	} else if s.notice != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Success).Render(s.notice))
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *DailyScreen) spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
