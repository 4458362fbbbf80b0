package summary

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/ui/components"
	"cruxlog/internal/ui/nav"
	"cruxlog/internal/ui/theme"
)

// FinishMsg asks the root model to close the session.
type FinishMsg struct{}

type Model struct {
	session    sessiondto.SessionOutput
	hasSession bool
	report     string
	viewport   viewport.Model
	renderer   components.Report
	width      int
	height     int
}

func New() Model {
	return Model{viewport: viewport.New(0, 0), renderer: components.NewReport()}
}

// SetSession shows session and its rendered report. With no running session
// the screen only offers to go home.
func (m *Model) SetSession(session sessiondto.SessionOutput, ok bool, report string) {
	m.session = session
	m.hasSession = ok
	m.report = report
	m.refresh()
}

func (m *Model) refresh() {
	if !m.hasSession {
		m.viewport.SetContent(theme.Muted.Render("No session running."))
		return
	}
	m.viewport.SetContent(m.renderer.Render(m.report))
	m.viewport.GotoTop()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-lipgloss.Height(m.tiles())-2, 1)
		m.renderer.SetWidth(msg.Width - 2)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, func() tea.Msg { return FinishMsg{} }
		case "a":
			return m, nav.Go(sessiondto.ScreenSessionAttempt)
		case "esc":
			return m, nav.Go(sessiondto.ScreenSessionRest)
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) tiles() string {
	s := m.session
	if !m.hasSession {
		return theme.Title.Render("Summary")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Stat("attempts", fmt.Sprintf("%d", s.TotalAttempts)),
		theme.Stat("sends", fmt.Sprintf("%d", s.Sends)),
		theme.Stat("send rate", fmt.Sprintf("%.0f%%", s.SendRate)),
		theme.Stat("best HP", fmt.Sprintf("%g", s.BestHP)),
		theme.Stat("avg RPE", fmt.Sprintf("%.1f", s.AvgRPE)),
	)
}

func (m Model) View() string {
	footer := theme.Muted.Render("enter finish session  a another attempt  esc back to rest  ↑/↓ scroll")
	return lipgloss.JoinVertical(lipgloss.Left, m.tiles(), m.viewport.View(), footer)
}
