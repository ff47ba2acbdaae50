package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	arcadegen "github.com/abhisek/eduvoyager/internal/arcade"
	assess "github.com/abhisek/eduvoyager/internal/assessment"
	"github.com/abhisek/eduvoyager/internal/dailyplan"
	jobsgen "github.com/abhisek/eduvoyager/internal/jobs"
	"github.com/abhisek/eduvoyager/internal/leaderboard"
	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/roadmapgen"
	"github.com/abhisek/eduvoyager/internal/router"
	"github.com/abhisek/eduvoyager/internal/screen"
	assessscreen "github.com/abhisek/eduvoyager/internal/screens/assessment"
	"github.com/abhisek/eduvoyager/internal/screens/auth"
	"github.com/abhisek/eduvoyager/internal/screens/dashboard"
	"github.com/abhisek/eduvoyager/internal/screens/welcome"
	"github.com/abhisek/eduvoyager/internal/ui/layout"
)

// Deps bundles the services the TUI runs on.
type Deps struct {
	Manager    *progress.Manager
	Assessment *assess.Service
	Roadmaps   *roadmapgen.Service
	Arcade     *arcadegen.Service
	Jobs       *jobsgen.Service
	Daily      *dailyplan.Service
	Board      leaderboard.Provider

	// Resumed is the session restored from a previous run, nil when
	// nobody is signed in.
	Resumed *progress.Session
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	sess   *progress.Session
	width  int
	height int
}

// newAppModel creates the root model. The splash screen leads to the auth
// form, or straight to the signed-in flow when a session was resumed.
func newAppModel(deps Deps) AppModel {
	m := AppModel{deps: deps, sess: deps.Resumed}

	next := func() screen.Screen { return m.afterSignIn(deps.Resumed) }
	if deps.Resumed == nil {
		next = func() screen.Screen { return auth.New(deps.Manager) }
	}

	m.router = router.New(welcome.New(next))
	return m
}

// afterSignIn picks the first signed-in screen: learners without a roadmap
// go through the assessment, everyone else lands on the dashboard.
func (m AppModel) afterSignIn(sess *progress.Session) screen.Screen {
	if sess.Roadmap == nil {
		return assessscreen.New(sess, m.deps.Assessment, m.deps.Roadmaps)
	}
	return m.dashboard(sess)
}

func (m AppModel) dashboard(sess *progress.Session) screen.Screen {
	return dashboard.New(dashboard.Deps{
		Session:  sess,
		Roadmaps: m.deps.Roadmaps,
		Arcade:   m.deps.Arcade,
		Jobs:     m.deps.Jobs,
		Daily:    m.deps.Daily,
		Board:    m.deps.Board,
	})
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case auth.SignedInMsg:
		m.sess = msg.Session
		return m, m.router.Replace(m.afterSignIn(msg.Session))

	case assessscreen.CompletedMsg:
		return m, m.router.Replace(m.dashboard(m.sess))

	case dashboard.RetakeMsg:
		return m, m.router.Replace(
			assessscreen.New(m.sess, m.deps.Assessment, m.deps.Roadmaps))

	case dashboard.SignedOutMsg:
		if err := m.deps.Manager.Logout(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: logout: %v\n", err)
		}
		m.sess = nil
		return m, m.router.Replace(auth.New(m.deps.Manager))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// Welcome and auth render without the chrome.
	if title == "" {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	var xp, streak, level int
	if m.sess != nil {
		xp = m.sess.Stats.XP
		streak = m.sess.Stats.Streak
		level = m.sess.Stats.CurrentNSQFLevel
	}
	header := layout.RenderHeader(title, xp, streak, level, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
