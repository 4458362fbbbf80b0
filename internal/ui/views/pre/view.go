package pre

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/ui/nav"
	"cruxlog/internal/ui/theme"
)

// Model recaps the session config before the first attempt.
type Model struct {
	cfg     sessiondto.SessionConfig
	started bool
	width   int
	height  int
}

func New() Model { return Model{} }

func (m *Model) SetConfig(cfg sessiondto.SessionConfig, started bool) {
	m.cfg = cfg
	m.started = started
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, nav.Go(sessiondto.ScreenSessionAttempt)
		case "esc":
			return m, nav.Go(sessiondto.ScreenHome)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Ready to climb") + "\n\n")
	row := func(label, value string) {
		sb.WriteString(theme.Muted.Render(label) + value + "\n")
	}
	row("session  ", m.cfg.Type)
	row("goal     ", m.cfg.Goal)
	row("level    ", m.cfg.Level)
	row("clip     ", m.cfg.SelectedClip)
	if m.cfg.AudioEnabled {
		row("audio    ", "on")
	} else {
		row("audio    ", "off")
	}
	if m.cfg.LowSleep || m.cfg.Discomfort {
		sb.WriteString("\n" + theme.Warn.Render("Take it easy today:"))
		if m.cfg.LowSleep {
			sb.WriteString(theme.Warn.Render(" low sleep"))
		}
		if m.cfg.Discomfort {
			sb.WriteString(theme.Warn.Render(" discomfort"))
		}
		sb.WriteString("\n")
	}
	if !m.started {
		sb.WriteString("\n" + theme.Fall.Render("No session running; attempts will not be recorded.") + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter first attempt  esc home"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Card.Render(sb.String()))
}
