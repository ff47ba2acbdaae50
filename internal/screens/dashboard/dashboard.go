package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	arcadegen "github.com/abhisek/eduvoyager/internal/arcade"
	"github.com/abhisek/eduvoyager/internal/badges"
	"github.com/abhisek/eduvoyager/internal/dailyplan"
	jobsgen "github.com/abhisek/eduvoyager/internal/jobs"
	"github.com/abhisek/eduvoyager/internal/leaderboard"
	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/roadmapgen"
	"github.com/abhisek/eduvoyager/internal/router"
	"github.com/abhisek/eduvoyager/internal/screen"
	arcadescreen "github.com/abhisek/eduvoyager/internal/screens/arcade"
	"github.com/abhisek/eduvoyager/internal/screens/daily"
	"github.com/abhisek/eduvoyager/internal/screens/jobboard"
	"github.com/abhisek/eduvoyager/internal/screens/roadmapview"
	"github.com/abhisek/eduvoyager/internal/screens/standings"
	"github.com/abhisek/eduvoyager/internal/ui/components"
	"github.com/abhisek/eduvoyager/internal/ui/theme"
)

// SignedOutMsg is emitted when the learner chooses to log out. The app
// model clears the persisted session and returns to the auth screen.
type SignedOutMsg struct{}

// RetakeMsg is emitted when the learner starts a new voyage: a fresh
// assessment that archives the current roadmap.
type RetakeMsg struct{}

// Deps bundles everything the dashboard and its sub-screens need.
type Deps struct {
	Session  *progress.Session
	Roadmaps *roadmapgen.Service
	Arcade   *arcadegen.Service
	Jobs     *jobsgen.Service
	Daily    *dailyplan.Service
	Board    leaderboard.Provider
}

// DashboardScreen is the signed-in hub: stats, badges and navigation.
type DashboardScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard for a signed-in session.
func New(deps Deps) *DashboardScreen {
	sess := deps.Session

	items := []components.MenuItem{
		{Label: "VIEW ROADMAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roadmapview.New(sess, deps.Roadmaps)}
			}
		}},
		{Label: "DAILY PLAN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: daily.New(sess, deps.Daily)}
			}
		}},
		{Label: "ARCADE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: arcadescreen.New(sess, deps.Arcade)}
			}
		}},
		{Label: "JOB BOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: jobboard.New(sess, deps.Jobs)}
			}
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: standings.New(sess, deps.Board)}
			}
		}},
		{Label: "NEW VOYAGE", Action: func() tea.Cmd {
			return func() tea.Msg { return RetakeMsg{} }
		}},
		{Label: "LOG OUT", Action: func() tea.Cmd {
			return func() tea.Msg { return SignedOutMsg{} }
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &DashboardScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	sess := d.deps.Session

	var sections []string

	greeting := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("Ahoy, %s!", sess.Profile.FirstName))
	sections = append(sections, greeting)

	if rm := sess.Roadmap; rm != nil {
		voyage := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s  •  %d of %d steps", rm.Title, rm.CompletedCount(), len(rm.Steps)))
		sections = append(sections, voyage)
	}

	sections = append(sections, d.renderStats())

	if row := d.renderBadges(); row != "" {
		sections = append(sections, row)
	}

	sections = append(sections, d.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (d *DashboardScreen) renderStats() string {
	stats := d.deps.Session.Stats

	cell := func(label string, value string) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + " " +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	}

	row := strings.Join([]string{
		cell("XP", fmt.Sprintf("%d", stats.XP)),
		cell("Streak", fmt.Sprintf("%d", stats.Streak)),
		cell("Modules", fmt.Sprintf("%d", stats.CompletedModules)),
		cell("NSQF", fmt.Sprintf("%d", stats.CurrentNSQFLevel)),
	}, "    ")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(row)
}

func (d *DashboardScreen) renderBadges() string {
	held := d.deps.Session.Stats.Badges
	if len(held) == 0 {
		return theme.Hint.Render("No badges yet. Complete your first step!")
	}

	var parts []string
	for _, id := range held {
		b := badges.Lookup(id)
		if b == nil {
			continue
		}
		parts = append(parts, iconGlyph(b.Icon)+" "+b.Name)
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).
		Render(strings.Join(parts, "   "))
}

// iconGlyph maps the closed icon set to terminal glyphs.
func iconGlyph(icon badges.Icon) string {
	switch icon {
	case badges.IconFootprints:
		return "👣"
	case badges.IconFlame:
		return "🔥"
	case badges.IconTarget:
		return "🎯"
	case badges.IconGradCap:
		return "🎓"
	case badges.IconBook:
		return "📖"
	case badges.IconCrown:
		return "👑"
	default:
		return "★"
	}
}
