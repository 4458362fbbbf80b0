package history

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/ui/components"
	"cruxlog/internal/ui/nav"
	"cruxlog/internal/ui/theme"
)

// OpenMsg asks the root model for the report of a finished session.
type OpenMsg struct{ SessionID string }

type sessionItem struct {
	session sessiondto.SessionOutput
}

func (i sessionItem) Title() string {
	s := i.session
	return fmt.Sprintf("%s  %s %s", s.StartedAt.Local().Format("Mon 02 Jan 15:04"), s.Config.Level, s.Config.Type)
}

func (i sessionItem) Description() string {
	s := i.session
	return fmt.Sprintf("%d attempts · %d sends · %.0f%% · best %g · rpe %.1f",
		s.TotalAttempts, s.Sends, s.SendRate, s.BestHP, s.AvgRPE)
}

func (i sessionItem) FilterValue() string {
	return i.session.Config.Level + " " + i.session.Config.Type + " " + i.session.Config.Goal
}

type Model struct {
	list     list.Model
	detail   viewport.Model
	renderer components.Report
	showing  bool
	width    int
	height   int
}

func New() Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "History"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("session", "sessions")

	return Model{list: l, detail: viewport.New(0, 0), renderer: components.NewReport()}
}

// SetSessions replaces the list, newest first.
func (m *Model) SetSessions(sessions []sessiondto.SessionOutput) tea.Cmd {
	items := make([]list.Item, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		items = append(items, sessionItem{session: sessions[i]})
	}
	m.showing = false
	return m.list.SetItems(items)
}

// SetDetail shows a rendered report over the list.
func (m *Model) SetDetail(report string, err error) {
	if err != nil {
		m.detail.SetContent(theme.Fall.Render("Error: " + err.Error()))
	} else {
		m.detail.SetContent(m.renderer.Render(report))
	}
	m.detail.GotoTop()
	m.showing = true
}

// Filtering reports whether the list filter has focus; global keys yield.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		m.detail.Width = msg.Width
		m.detail.Height = max(msg.Height-1, 1)
		m.renderer.SetWidth(msg.Width - 2)
		return m, nil

	case tea.KeyMsg:
		if m.showing {
			if msg.String() == "esc" || msg.String() == "backspace" {
				m.showing = false
				return m, nil
			}
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		if !m.Filtering() {
			switch msg.String() {
			case "enter":
				if item, ok := m.list.SelectedItem().(sessionItem); ok {
					id := item.session.ID
					return m, func() tea.Msg { return OpenMsg{SessionID: id} }
				}
				return m, nil
			case "esc":
				if m.list.FilterState() == list.Unfiltered {
					return m, nav.Go(sessiondto.ScreenHome)
				}
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.showing {
		return lipgloss.JoinVertical(lipgloss.Left, m.detail.View(), theme.Muted.Render("esc back to list"))
	}
	if len(m.list.Items()) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("No finished sessions yet. esc home"))
	}
	return m.list.View()
}
