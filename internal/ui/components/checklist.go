package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvoyager/internal/ui/theme"
)

// Checklist is a multi-select option list. Space toggles the cursor's
// option, enter submits the checked set.
type Checklist struct {
	Question  string
	Options   []string
	Cursor    int
	Checked   map[int]bool
	Submitted bool
}

// NewChecklist creates a checklist with nothing checked.
func NewChecklist(question string, options []string) Checklist {
	return Checklist{
		Question: question,
		Options:  options,
		Checked:  make(map[int]bool),
	}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation, toggling, and submission.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case " ":
		c.Checked[c.Cursor] = !c.Checked[c.Cursor]
	case "enter":
		if len(c.Selections()) > 0 {
			c.Submitted = true
		}
	}

	return c, nil
}

// View renders the checklist.
func (c Checklist) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(c.Question) + "\n\n"

	for i, opt := range c.Options {
		box := "[ ]"
		if c.Checked[i] {
			box = "[x]"
		}
		prefix := "  "
		if i == c.Cursor && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, box, opt)

		switch {
		case c.Checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == c.Cursor && !c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Selections returns the checked option texts in display order.
func (c Checklist) Selections() []string {
	var out []string
	for i, opt := range c.Options {
		if c.Checked[i] {
			out = append(out, opt)
		}
	}
	return out
}
