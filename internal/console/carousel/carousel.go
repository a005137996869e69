// Package carousel implements an auto-advancing display that cycles
// through a fixed list of items, with manual selection that does not
// disturb the automatic cadence.
package carousel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one rotating content entry.
type Item struct {
	Name        string
	Description string
}

// tickMsg drives the automatic advance. The generation stamp lets Stop
// invalidate ticks that were scheduled before it was called: a stale
// tick is discarded without mutating state or rescheduling.
type tickMsg struct {
	generation int
}

var (
	activeDotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	inactiveDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	nameStyle        = lipgloss.NewStyle().Bold(true)
	descriptionStyle = lipgloss.NewStyle().Faint(true)
)

// Model holds the rotation state. The zero value is not usable; construct
// with New.
type Model struct {
	items      []Item
	index      int
	interval   time.Duration
	running    bool
	generation int
}

// New validates the configuration and returns a stopped Model.
func New(items []Item, interval time.Duration) (Model, error) {
	if len(items) == 0 {
		return Model{}, errors.New("carousel requires at least one item")
	}
	if interval <= 0 {
		return Model{}, errors.New("carousel interval must be positive")
	}
	return Model{items: items, interval: interval}, nil
}

// Start resets to the first item and schedules the recurring advance.
// Calling Start while already running is a no-op so a second timer is
// never scheduled.
func (m Model) Start() (Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	m.running = true
	m.index = 0
	m.generation++
	return m, m.scheduleTick()
}

// Stop cancels the rotation. Any tick already in flight carries the old
// generation and is discarded when it arrives. Idempotent.
func (m Model) Stop() Model {
	if !m.running {
		return m
	}
	m.running = false
	m.generation++
	return m
}

// Select jumps directly to the given index. The pending tick keeps its
// schedule, so the next automatic advance happens at the original time,
// from the newly selected index.
func (m Model) Select(index int) (Model, error) {
	if index < 0 || index >= len(m.items) {
		return m, fmt.Errorf("carousel index %d out of range [0,%d)", index, len(m.items))
	}
	m.index = index
	return m, nil
}

// Update advances the rotation on tick messages. All other messages are
// ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(tickMsg)
	if !ok {
		return m, nil
	}
	if !m.running || tick.generation != m.generation {
		return m, nil
	}
	m.index = (m.index + 1) % len(m.items)
	return m, m.scheduleTick()
}

// CurrentItem returns the item at the current index.
func (m Model) CurrentItem() Item {
	return m.items[m.index]
}

// Index returns the current index.
func (m Model) Index() int {
	return m.index
}

// Running reports whether the automatic advance is scheduled.
func (m Model) Running() bool {
	return m.running
}

// View renders the current item with indicator dots underneath.
func (m Model) View() string {
	var b strings.Builder
	item := m.CurrentItem()
	b.WriteString(nameStyle.Render(item.Name))
	b.WriteString("\n")
	b.WriteString(descriptionStyle.Render(item.Description))
	b.WriteString("\n")
	for i := range m.items {
		if i == m.index {
			b.WriteString(activeDotStyle.Render("●"))
		} else {
			b.WriteString(inactiveDotStyle.Render("○"))
		}
		if i < len(m.items)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m Model) scheduleTick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}
