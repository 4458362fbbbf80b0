package attempt

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/ui/nav"
	"cruxlog/internal/ui/theme"
)

// DraftMsg carries what this screen knows about the attempt: which clip was
// climbed and when it started.
type DraftMsg struct {
	Draft sessiondto.AttemptDraft
}

type tickMsg struct {
	gen int
	at  time.Time
}

// Model shows the clip being climbed and an elapsed-time clock.
type Model struct {
	clip    string
	number  int
	started time.Time
	now     time.Time
	gen     int
	width   int
	height  int
}

func New() Model { return Model{} }

// Start resets the clock for attempt number n and begins ticking. Ticks from
// earlier starts are ignored.
func (m *Model) Start(clip string, n int, now time.Time) tea.Cmd {
	m.clip = clip
	m.number = n
	m.started = now
	m.now = now
	m.gen++
	return tick(m.gen)
}

func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg{gen: gen, at: t} })
}

func (m Model) Elapsed() time.Duration {
	return m.now.Sub(m.started).Truncate(time.Second)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.now = msg.at
		return m, tick(m.gen)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			clip := m.clip
			started := m.started
			return m, func() tea.Msg {
				return DraftMsg{Draft: sessiondto.AttemptDraft{Clip: &clip, Time: &started}}
			}
		case "s":
			return m, nav.Go(sessiondto.ScreenSessionSummary)
		case "esc":
			return m, nav.Go(sessiondto.ScreenSessionPre)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Attempt #%d", m.number)) + "\n\n")
	sb.WriteString(theme.Muted.Render("clip  ") + m.clip + "\n\n")
	sb.WriteString(theme.Hot.Render(formatClock(m.Elapsed())) + "\n\n")
	sb.WriteString(theme.Muted.Render("enter done  s summary  esc back"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Card.Render(sb.String()))
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d / time.Minute)
	secs := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%02d:%02d", mins, secs)
}
