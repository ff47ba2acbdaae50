package auth

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/screen"
	"github.com/abhisek/eduvoyager/internal/ui/components"
	"github.com/abhisek/eduvoyager/internal/ui/layout"
	"github.com/abhisek/eduvoyager/internal/ui/theme"
)

// SignedInMsg is emitted when login or registration succeeds. The app
// model routes it to the assessment or dashboard flow.
type SignedInMsg struct {
	Session *progress.Session
}

type authDoneMsg struct {
	Session *progress.Session
	Err     error
}

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

// Field order within each mode.
const (
	loginEmail = iota
	loginPassword
	loginFieldCount
)

const (
	regFirstName = iota
	regLastName
	regAge
	regDesignation
	regEmail
	regPassword
	regFieldCount
)

// AuthScreen is the login / registration form.
type AuthScreen struct {
	manager *progress.Manager

	mode       mode
	focus      int
	inputs     []components.TextInput
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates an AuthScreen in login mode.
func New(manager *progress.Manager) *AuthScreen {
	s := &AuthScreen{manager: manager}
	s.buildInputs()
	return s
}

func (s *AuthScreen) buildInputs() {
	if s.mode == modeLogin {
		s.inputs = []components.TextInput{
			components.NewTextInput("you@example.com", false, 64),
			components.NewPasswordInput("password", 64),
		}
	} else {
		s.inputs = []components.TextInput{
			components.NewTextInput("First name", false, 32),
			components.NewTextInput("Last name", false, 32),
			components.NewTextInput("Age", true, 3),
			components.NewTextInput("Dream role, e.g. Data Scientist", false, 64),
			components.NewTextInput("you@example.com", false, 64),
			components.NewPasswordInput("password", 64),
		}
	}
	s.focus = 0
	s.focusCurrent()
}

func (s *AuthScreen) focusCurrent() {
	for i := range s.inputs {
		if i == s.focus {
			s.inputs[i].Model.Focus()
		} else {
			s.inputs[i].Model.Blur()
		}
	}
}

func (s *AuthScreen) fieldCount() int {
	if s.mode == modeLogin {
		return loginFieldCount
	}
	return regFieldCount
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.inputs[0].Init()
}

func (s *AuthScreen) Title() string {
	if s.mode == modeLogin {
		return "Sign In"
	}
	return "Create Account"
}

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch mode"},
		{Key: "↑↓", Description: "Fields"},
		{Key: "Enter", Description: "Next / Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		s.submitting = false
		if msg.Err != nil {
			s.errMsg = friendlyError(msg.Err)
			return s, nil
		}
		return s, func() tea.Msg {
			return SignedInMsg{Session: msg.Session}
		}

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "tab":
			if s.mode == modeLogin {
				s.mode = modeRegister
			} else {
				s.mode = modeLogin
			}
			s.errMsg = ""
			s.buildInputs()
			return s, s.inputs[0].Init()
		case "up", "shift+tab":
			if s.focus > 0 {
				s.focus--
				s.focusCurrent()
			}
			return s, nil
		case "down":
			if s.focus < s.fieldCount()-1 {
				s.focus++
				s.focusCurrent()
			}
			return s, nil
		case "enter":
			if s.focus < s.fieldCount()-1 {
				s.focus++
				s.focusCurrent()
				return s, nil
			}
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AuthScreen) submit() (screen.Screen, tea.Cmd) {
	if s.mode == modeLogin {
		email := strings.TrimSpace(s.inputs[loginEmail].Value())
		password := s.inputs[loginPassword].Value()
		if email == "" || password == "" {
			s.errMsg = "Email and password are required."
			return s, nil
		}
		s.submitting = true
		s.errMsg = ""
		return s, func() tea.Msg {
			sess, err := s.manager.Login(context.Background(), email, password)
			return authDoneMsg{Session: sess, Err: err}
		}
	}

	profile := learner.Profile{
		FirstName:   strings.TrimSpace(s.inputs[regFirstName].Value()),
		LastName:    strings.TrimSpace(s.inputs[regLastName].Value()),
		Designation: strings.TrimSpace(s.inputs[regDesignation].Value()),
		Email:       strings.TrimSpace(s.inputs[regEmail].Value()),
	}
	if age, err := s.inputs[regAge].NumericValue(); err == nil {
		profile.Age = age
	}
	profile.EducationStage = stageForAge(profile.Age)
	password := s.inputs[regPassword].Value()

	if profile.FirstName == "" || profile.Email == "" || password == "" {
		s.errMsg = "Name, email and password are required."
		return s, nil
	}

	s.submitting = true
	s.errMsg = ""
	return s, func() tea.Msg {
		sess, err := s.manager.Register(context.Background(), profile, password)
		return authDoneMsg{Session: sess, Err: err}
	}
}

func (s *AuthScreen) View(width, height int) string {
	labels := s.labels()

	var b strings.Builder
	for i, input := range s.inputs {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(labels[i])
		if i == s.focus {
			label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(labels[i])
		}
		b.WriteString(label + "\n" + input.View() + "\n\n")
	}

	if s.submitting {
		b.WriteString(theme.Hint.Render("Signing in..."))
	} else if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	} else if s.mode == modeLogin {
		b.WriteString(theme.Hint.Render("No account yet? Press Tab to register."))
	} else {
		b.WriteString(theme.Hint.Render("Already aboard? Press Tab to sign in."))
	}

	card := theme.Card.Width(min(width-4, 56)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *AuthScreen) labels() []string {
	if s.mode == modeLogin {
		return []string{"Email", "Password"}
	}
	return []string{"First name", "Last name", "Age", "Dream role", "Email", "Password"}
}

// stageForAge places a learner in the career-exploration taxonomy by age.
func stageForAge(age int) learner.EducationStage {
	switch {
	case age > 0 && age < 15:
		return learner.StageDiscovery
	case age < 18:
		return learner.StageDirection
	case age < 22:
		return learner.StageCommitment
	default:
		return learner.StageProgression
	}
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, progress.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, progress.ErrEmailTaken):
		return "That email already has an account. Press Tab to sign in."
	default:
		return "Something went wrong: " + err.Error()
	}
}
