package standings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvoyager/internal/leaderboard"
	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/router"
	"github.com/abhisek/eduvoyager/internal/screen"
	"github.com/abhisek/eduvoyager/internal/ui/layout"
	"github.com/abhisek/eduvoyager/internal/ui/theme"
)

// StandingsScreen shows the learner ranked against their peer cohort.
type StandingsScreen struct {
	entries []leaderboard.Entry
}

var _ screen.Screen = (*StandingsScreen)(nil)
var _ screen.KeyHintProvider = (*StandingsScreen)(nil)

// New creates a StandingsScreen with a board computed at open time.
func New(sess *progress.Session, board leaderboard.Provider) *StandingsScreen {
	return &StandingsScreen{
		entries: board.Rank(sess.Profile, sess.Stats),
	}
}

func (s *StandingsScreen) Init() tea.Cmd {
	return nil
}

func (s *StandingsScreen) Title() string {
	return "Leaderboard"
}

func (s *StandingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StandingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StandingsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Weekly Standings") + "\n\n")

	for _, e := range s.entries {
		medal := "  "
		switch e.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		line := fmt.Sprintf("%s #%d  %-16s %-22s %6d XP", medal, e.Rank, e.Name, e.Title, e.XP)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if e.IsUser {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
			line += "  ← you"
		}
		b.WriteString(style.Render(line) + "\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
