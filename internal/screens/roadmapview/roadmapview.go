package roadmapview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/roadmap"
	"github.com/abhisek/eduvoyager/internal/roadmapgen"
	"github.com/abhisek/eduvoyager/internal/router"
	"github.com/abhisek/eduvoyager/internal/screen"
	"github.com/abhisek/eduvoyager/internal/ui/components"
	"github.com/abhisek/eduvoyager/internal/ui/layout"
	"github.com/abhisek/eduvoyager/internal/ui/theme"
)

type toggleDoneMsg struct {
	Result *progress.StepToggle
	Err    error
}

type advanceDoneMsg struct {
	Err error
}

type retreatDoneMsg struct {
	Moved bool
	Err   error
}

type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// RoadmapScreen shows the active roadmap: steps with completion toggles,
// level advance and retreat, and the soft-skill track.
type RoadmapScreen struct {
	sess     *progress.Session
	roadmaps *roadmapgen.Service

	cursor       int
	choosing     bool // picking a focus for the next level
	focusCursor  int
	busy         bool
	busyLabel    string
	spinnerFrame int
	notice       string
	errMsg       string
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates a RoadmapScreen over the session's active roadmap.
func New(sess *progress.Session, roadmaps *roadmapgen.Service) *RoadmapScreen {
	return &RoadmapScreen{sess: sess, roadmaps: roadmaps}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return s.spinnerTick()
}

func (s *RoadmapScreen) Title() string {
	return "Roadmap"
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	if s.choosing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Choose focus"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle step"},
		{Key: "A", Description: "Level up"},
		{Key: "R", Description: "Level back"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		s.spinnerFrame++
		return s, s.spinnerTick()

	case toggleDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if msg.Result != nil {
			s.notice = toggleNotice(msg.Result)
		}
		return s, nil

	case advanceDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.cursor = 0
		s.notice = fmt.Sprintf("Welcome to NSQF level %d!", s.sess.Stats.CurrentNSQFLevel)
		return s, nil

	case retreatDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if !msg.Moved {
			s.notice = "Already at your first roadmap."
			return s, nil
		}
		s.cursor = 0
		s.notice = fmt.Sprintf("Back to NSQF level %d.", s.sess.Stats.CurrentNSQFLevel)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *RoadmapScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	rm := s.sess.Roadmap
	if rm == nil {
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.choosing {
		prompts := s.focusOptions()
		switch msg.String() {
		case "esc":
			s.choosing = false
		case "up", "k":
			if s.focusCursor > 0 {
				s.focusCursor--
			}
		case "down", "j":
			if s.focusCursor < len(prompts)-1 {
				s.focusCursor++
			}
		case "enter":
			s.choosing = false
			s.busy = true
			s.busyLabel = "Charting the next level..."
			return s, s.advance(prompts[s.focusCursor])
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(rm.Steps)-1 {
			s.cursor++
		}
	case " ", "enter":
		if len(rm.Steps) == 0 {
			return s, nil
		}
		s.busy = true
		s.busyLabel = "Saving..."
		s.errMsg = ""
		stepID := rm.Steps[s.cursor].ID
		return s, func() tea.Msg {
			res, err := s.sess.ToggleStep(context.Background(), stepID)
			return toggleDoneMsg{Result: res, Err: err}
		}
	case "a":
		s.choosing = true
		s.focusCursor = 0
	case "r":
		s.busy = true
		s.busyLabel = "Restoring previous roadmap..."
		return s, func() tea.Msg {
			moved, err := s.sess.RetreatLevel(context.Background())
			return retreatDoneMsg{Moved: moved, Err: err}
		}
	}
	return s, nil
}

// focusOptions are the directions offered for the next level: the
// roadmap's decision prompts, or the domain itself when the oracle gave
// none.
func (s *RoadmapScreen) focusOptions() []string {
	rm := s.sess.Roadmap
	if len(rm.DecisionPrompts) > 0 {
		return rm.DecisionPrompts
	}
	return []string{"Continue with " + rm.Domain}
}

func (s *RoadmapScreen) advance(focus string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		next, err := s.roadmaps.NextLevel(ctx, s.sess.Roadmap, focus)
		if err != nil {
			return advanceDoneMsg{Err: err}
		}
		if err := s.sess.AdvanceLevel(ctx, next); err != nil {
			return advanceDoneMsg{Err: err}
		}
		return advanceDoneMsg{}
	}
}

func (s *RoadmapScreen) spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func toggleNotice(res *progress.StepToggle) string {
	if !res.CompletedNow {
		return fmt.Sprintf("Unchecked %q.", res.Step.Title)
	}
	notice := fmt.Sprintf("+%d XP", res.XPGained)
	for _, b := range res.Unlocked {
		notice += fmt.Sprintf("  •  Badge unlocked: %s!", b.Name)
	}
	return notice
}

func (s *RoadmapScreen) View(width, height int) string {
	rm := s.sess.Roadmap
	if rm == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No roadmap yet. Complete the assessment first."))
	}

	if s.busy {
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		content := lipgloss.NewStyle().Foreground(theme.Primary).Render(frame) + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.busyLabel)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	if s.choosing {
		return s.renderFocusChooser(width, height)
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(rm.Title)
	sub := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  •  target NSQF %d", rm.Domain, rm.TargetNSQFLevel))
	b.WriteString(title + "\n" + sub + "\n\n")

	var percent float64
	if len(rm.Steps) > 0 {
		percent = float64(rm.CompletedCount()) / float64(len(rm.Steps))
	}
	bar := components.NewProgressBar("Progress", percent, true, min(width-8, 56))
	b.WriteString(bar.View() + "\n\n")

	for i, step := range rm.Steps {
		b.WriteString(s.renderStep(i, step, width))
	}

	if len(rm.SoftSkills) > 0 {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("Soft skills") + "\n")
		for _, sk := range rm.SoftSkills {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  ◦ "+sk.Name) + "\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	} else if s.notice != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Success).Render(s.notice))
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (s *RoadmapScreen) renderStep(i int, step roadmap.Step, width int) string {
	mark := "○"
	markStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if step.Completed {
		mark = "●"
		markStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	prefix := "  "
	lineStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.cursor {
		prefix = "▸ "
		lineStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	line := prefix + markStyle.Render(mark) + " " +
		lineStyle.Render(fmt.Sprintf("%s  (%dh)", step.Title, step.EstimatedHours)) + "\n"

	// Expand the selected step with its description and top resources.
	if i != s.cursor {
		return line
	}

	detail := lipgloss.NewStyle().Foreground(theme.TextDim).
		Width(min(width-12, 70)).Render(step.Description)
	out := line + indent(detail, 6) + "\n"

	for _, r := range step.Resources {
		paid := ""
		if r.IsPaid {
			paid = " (paid)"
		}
		res := fmt.Sprintf("↳ %s [%s]%s  %s", r.Title, r.Type, paid, r.URL)
		out += indent(lipgloss.NewStyle().Foreground(theme.Secondary).Render(res), 6) + "\n"
	}
	return out
}

func (s *RoadmapScreen) renderFocusChooser(width, height int) string {
	prompts := s.focusOptions()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Where next?") + "\n\n")
	for i, p := range prompts {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.focusCursor {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(prefix+p) + "\n")
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
