// Package console implements the terminal client: a rotating partner
// display, the login/register dialog, and the session state that ties
// them together.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xgencloud/xgen-site/internal/apiclient"
	"github.com/xgencloud/xgen-site/internal/console/authform"
	"github.com/xgencloud/xgen-site/internal/console/carousel"
)

// Authenticator is the API surface the session controller submits to.
type Authenticator interface {
	Login(ctx context.Context, email, password string) apiclient.Outcome
	Register(ctx context.Context, name, email, password string) apiclient.Outcome
}

// authResultMsg carries the outcome of a finished submission.
type authResultMsg struct {
	outcome apiclient.Outcome
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	sectionStyle = lipgloss.NewStyle().Faint(true)
	dialogStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2)
)

// Options configures the console model.
type Options struct {
	Client           Authenticator
	Items            []carousel.Item
	CarouselInterval time.Duration
	RequestTimeout   time.Duration
}

// Model is the root bubbletea model. It owns the session user, the
// dialog visibility flag, and the two child components.
type Model struct {
	display carousel.Model
	form    authform.Model

	client  Authenticator
	timeout time.Duration

	dialogOpen bool
	user       *apiclient.UserRecord
	token      string
	notice     string

	startCmd tea.Cmd
	quitting bool
}

// New validates the configuration and builds the model.
func New(opts Options) (Model, error) {
	display, err := carousel.New(opts.Items, opts.CarouselInterval)
	if err != nil {
		return Model{}, err
	}
	// Start here rather than in Init: Init cannot persist model state,
	// and the rotation must already be running when its first tick lands.
	display, startCmd := display.Start()
	return Model{
		display:  display,
		form:     authform.New(),
		client:   opts.Client,
		timeout:  opts.RequestTimeout,
		startCmd: startCmd,
	}, nil
}

// User returns the authenticated user, or nil when logged out.
func (m Model) User() *apiclient.UserRecord {
	return m.user
}

// Token returns the bearer token for the current session.
func (m Model) Token() string {
	return m.token
}

// DialogOpen reports whether the auth dialog is visible.
func (m Model) DialogOpen() bool {
	return m.dialogOpen
}

// Notice returns the last user-facing notification.
func (m Model) Notice() string {
	return m.notice
}

// Init returns the first rotation tick.
func (m Model) Init() tea.Cmd {
	return m.startCmd
}

// Update is the single event loop: timer ticks, key presses, and
// submission results arrive here one at a time.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case authResultMsg:
		return m.handleAuthResult(msg.outcome)
	}

	var cmd tea.Cmd
	m.display, cmd = m.display.Update(msg)
	return m, cmd
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialogOpen {
		return m.handleDialogKey(key)
	}

	switch key.String() {
	case "ctrl+c", "q":
		m.quitting = true
		m.display = m.display.Stop()
		return m, tea.Quit
	case "l":
		if m.user == nil {
			m.dialogOpen = true
			m.notice = ""
		}
		return m, nil
	case "o":
		if m.user != nil {
			return m.logout()
		}
		return m, nil
	}

	// Digits jump straight to a carousel entry. An out-of-range digit
	// is rejected and reported without touching the index.
	if n, err := strconv.Atoi(key.String()); err == nil {
		display, selErr := m.display.Select(n - 1)
		if selErr != nil {
			m.notice = selErr.Error()
			return m, nil
		}
		m.display = display
		return m, nil
	}
	return m, nil
}

func (m Model) handleDialogKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		m.quitting = true
		m.display = m.display.Stop()
		return m, tea.Quit
	case "esc":
		if !m.form.Pending() {
			m.dialogOpen = false
		}
		return m, nil
	case "ctrl+t":
		m.form = m.form.ToggleMode()
		return m, nil
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(key)
	return m, cmd
}

// submit starts a submission unless one is already outstanding.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.form.Pending() {
		return m, nil
	}
	if err := m.form.ValidateRequired(); err != nil {
		m.notice = err.Error()
		return m, nil
	}

	fields := m.form.Fields()
	mode := m.form.Mode()
	m.form = m.form.SetPending(true)
	m.notice = ""

	client := m.client
	timeout := m.timeout
	return m, func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		var outcome apiclient.Outcome
		if mode == authform.ModeRegister {
			outcome = client.Register(ctx, fields.Name, fields.Email, fields.Password)
		} else {
			outcome = client.Login(ctx, fields.Email, fields.Password)
		}
		return authResultMsg{outcome: outcome}
	}
}

// handleAuthResult surfaces every outcome exactly once and updates the
// session on success. The dialog stays open on every failure.
func (m Model) handleAuthResult(outcome apiclient.Outcome) (tea.Model, tea.Cmd) {
	m.form = m.form.SetPending(false)

	switch o := outcome.(type) {
	case apiclient.Authenticated:
		user := o.User
		m.user = &user
		m.token = o.Token
		m.dialogOpen = false
		m.form = m.form.Reset()
		m.notice = fmt.Sprintf("Welcome, %s!", user.Name)
	case apiclient.Rejected:
		m.notice = o.Detail
	case apiclient.TimedOut:
		m.notice = "The request timed out. Please try again."
	case apiclient.ConnectionFailed:
		m.notice = "Could not reach the server. Please try again."
	}
	return m, nil
}

// logout clears the session locally. No server call is made; the token
// simply stops being used.
func (m Model) logout() (tea.Model, tea.Cmd) {
	m.user = nil
	m.token = ""
	m.notice = "Logged out."
	return m, nil
}

// View renders the page: header, partner display, and the dialog when
// open.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Xgen Cloud"))
	b.WriteString("  ")
	if m.user != nil {
		b.WriteString(fmt.Sprintf("Welcome, %s  (o logout · q quit)", m.user.Name))
	} else {
		b.WriteString("(l login · q quit)")
	}
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Our Partners"))
	b.WriteString("\n")
	b.WriteString(m.display.View())
	b.WriteString("\n")

	if m.dialogOpen {
		b.WriteString("\n")
		b.WriteString(dialogStyle.Render(m.form.View()))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	return b.String()
}
