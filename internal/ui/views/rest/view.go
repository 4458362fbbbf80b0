package rest

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/ui/nav"
	"cruxlog/internal/ui/theme"
)

const adjustStep = 15 * time.Second

// ExpiredMsg is emitted once when the countdown reaches zero.
type ExpiredMsg struct{}

type tickMsg struct{ gen int }

// Model counts down the rest period between attempts. The root model decides
// what happens on expiry.
type Model struct {
	total     time.Duration
	remaining time.Duration
	running   bool
	paused    bool
	gen       int
	bar       progress.Model
	width     int
	height    int
}

func New() Model {
	return Model{bar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())}
}

// Start begins a countdown of d. A non-positive d expires on the first tick.
func (m *Model) Start(d time.Duration) tea.Cmd {
	m.total = d
	m.remaining = d
	m.paused = false
	return m.run()
}

// Resume continues a countdown paused by a trip to the summary. It returns
// nil when there is nothing to resume.
func (m *Model) Resume() tea.Cmd {
	if !m.paused {
		return nil
	}
	m.paused = false
	return m.run()
}

// Stop drops any paused countdown.
func (m *Model) Stop() {
	m.running = false
	m.paused = false
}

func (m *Model) run() tea.Cmd {
	m.running = true
	m.gen++
	return tick(m.gen)
}

func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) Remaining() time.Duration { return m.remaining }

func (m Model) Running() bool { return m.running }

func (m Model) Paused() bool { return m.paused }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(msg.Width-8, 48)

	case tickMsg:
		if msg.gen != m.gen || !m.running {
			return m, nil
		}
		m.remaining -= time.Second
		if m.remaining <= 0 {
			m.remaining = 0
			m.running = false
			return m, func() tea.Msg { return ExpiredMsg{} }
		}
		return m, tick(m.gen)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.running = false
			return m, nav.Go(sessiondto.ScreenSessionAttempt)
		case "+", "=":
			m.remaining += adjustStep
			m.total = max(m.total, m.remaining)
		case "-":
			m.remaining = max(m.remaining-adjustStep, 0)
		case "s":
			m.running = false
			m.paused = m.remaining > 0
			return m, nav.Go(sessiondto.ScreenSessionSummary)
		}
	}
	return m, nil
}

func (m Model) fraction() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.remaining) / float64(m.total)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Rest") + "\n\n")
	sb.WriteString(theme.Hot.Render(formatClock(m.remaining)) + "\n\n")
	sb.WriteString(m.bar.ViewAs(m.fraction()) + "\n\n")
	sb.WriteString(theme.Muted.Render("enter next attempt  +/- 15s  s summary"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Card.Render(sb.String()))
}

func formatClock(d time.Duration) string {
	d = max(d, 0)
	mins := int(d / time.Minute)
	secs := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%02d:%02d", mins, secs)
}
