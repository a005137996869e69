// Package authform implements the two-mode login/register form. Field
// values survive a mode switch; only visibility of the name field and
// the target endpoint change.
package authform

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mode selects which authentication flow the form drives.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// String returns the human-readable mode name.
func (m Mode) String() string {
	if m == ModeRegister {
		return "Register"
	}
	return "Login"
}

const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldCount
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Faint(true)
	hintStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Fields is the collected form data.
type Fields struct {
	Name     string
	Email    string
	Password string
}

// Model holds the form state.
type Model struct {
	mode    Mode
	inputs  [fieldCount]textinput.Model
	focus   int
	pending bool
}

// New constructs a login-mode form with the email field focused.
func New() Model {
	var m Model

	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 255

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 255

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 72

	m.inputs[fieldName] = name
	m.inputs[fieldEmail] = email
	m.inputs[fieldPassword] = password

	m.mode = ModeLogin
	m.focus = fieldEmail
	m.inputs[fieldEmail].Focus()
	return m
}

// Mode returns the active mode.
func (m Model) Mode() Mode {
	return m.mode
}

// SetMode switches between login and register. Entered values are kept.
func (m Model) SetMode(mode Mode) Model {
	if m.mode == mode {
		return m
	}
	m.mode = mode
	// The name field disappears in login mode; move focus off of it.
	if mode == ModeLogin && m.focus == fieldName {
		m = m.setFocus(fieldEmail)
	}
	return m
}

// ToggleMode flips between the two modes.
func (m Model) ToggleMode() Model {
	if m.mode == ModeLogin {
		return m.SetMode(ModeRegister)
	}
	return m.SetMode(ModeLogin)
}

// Fields returns the current trimmed field values. The password is not
// trimmed.
func (m Model) Fields() Fields {
	return Fields{
		Name:     strings.TrimSpace(m.inputs[fieldName].Value()),
		Email:    strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Password: m.inputs[fieldPassword].Value(),
	}
}

// ValidateRequired reports the first missing required field for the
// active mode.
func (m Model) ValidateRequired() error {
	f := m.Fields()
	if m.mode == ModeRegister && f.Name == "" {
		return errors.New("name is required")
	}
	if f.Email == "" {
		return errors.New("email is required")
	}
	if f.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// Pending reports whether a submission is outstanding.
func (m Model) Pending() bool {
	return m.pending
}

// SetPending marks a submission in flight; input keeps working but the
// caller must not start a second submission while this is set.
func (m Model) SetPending(pending bool) Model {
	m.pending = pending
	return m
}

// Reset clears all field values and returns focus to the email field.
func (m Model) Reset() Model {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	return m.setFocus(fieldEmail)
}

// Update handles focus cycling and routes all other keys to the focused
// input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.setFocus(m.nextField(1)), nil
		case "shift+tab", "up":
			return m.setFocus(m.nextField(-1)), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View renders the form for the active mode.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.mode.String()))
	b.WriteString("\n\n")

	if m.mode == ModeRegister {
		b.WriteString(labelStyle.Render("Name"))
		b.WriteString("\n")
		b.WriteString(m.inputs[fieldName].View())
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldEmail].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("\n\n")

	if m.pending {
		b.WriteString(hintStyle.Render("Submitting..."))
	} else {
		b.WriteString(hintStyle.Render("enter submit · ctrl+t switch mode · esc close"))
	}
	return b.String()
}

// nextField returns the next focusable field in the given direction,
// skipping the name field in login mode.
func (m Model) nextField(dir int) int {
	next := m.focus
	for {
		next = (next + dir + fieldCount) % fieldCount
		if next == fieldName && m.mode == ModeLogin {
			continue
		}
		return next
	}
}

func (m Model) setFocus(field int) Model {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = field
	m.inputs[field].Focus()
	return m
}
