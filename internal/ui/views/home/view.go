package home

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/ui/nav"
	"cruxlog/internal/ui/theme"
)

// StartMsg is emitted when the user confirms the session form.
type StartMsg struct {
	Config sessiondto.SessionConfig
}

// Choices are the values the form cycles through.
type Choices struct {
	Goals  []string
	Levels []string
	Clips  []string
}

type field int

const (
	fieldType field = iota
	fieldGoal
	fieldLevel
	fieldLowSleep
	fieldDiscomfort
	fieldClip
	fieldAudio
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Session", "Goal", "Level", "Low sleep", "Discomfort", "Clip", "Audio cues",
}

var sessionTypes = []string{"training", "competition"}

type Model struct {
	choices Choices
	cfg     sessiondto.SessionConfig
	cursor  field
	width   int
	height  int
}

func New(choices Choices, cfg sessiondto.SessionConfig) Model {
	m := Model{choices: choices}
	m.Reset(cfg)
	return m
}

// Reset seeds the form from cfg. Values missing from a choice list are
// added so the form never loses the controller's config.
func (m *Model) Reset(cfg sessiondto.SessionConfig) {
	m.cfg = cfg
	m.choices.Goals = ensure(m.choices.Goals, cfg.Goal)
	m.choices.Levels = ensure(m.choices.Levels, cfg.Level)
	m.choices.Clips = ensure(m.choices.Clips, cfg.SelectedClip)
	m.cursor = fieldType
}

// Config returns the session config currently shown in the form.
func (m Model) Config() sessiondto.SessionConfig { return m.cfg }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor = (m.cursor + fieldCount - 1) % fieldCount
		case "down", "j", "tab":
			m.cursor = (m.cursor + 1) % fieldCount
		case "right", "l", " ":
			m.cycle(1)
		case "left":
			m.cycle(-1)
		case "enter":
			cfg := m.cfg
			return m, func() tea.Msg { return StartMsg{Config: cfg} }
		case "h":
			return m, nav.Go(sessiondto.ScreenHistory)
		case ",":
			return m, nav.Go(sessiondto.ScreenSettings)
		}
	}
	return m, nil
}

func (m *Model) cycle(step int) {
	switch m.cursor {
	case fieldType:
		m.cfg.Type = next(sessionTypes, m.cfg.Type, step)
	case fieldGoal:
		m.cfg.Goal = next(m.choices.Goals, m.cfg.Goal, step)
	case fieldLevel:
		m.cfg.Level = next(m.choices.Levels, m.cfg.Level, step)
	case fieldLowSleep:
		m.cfg.LowSleep = !m.cfg.LowSleep
	case fieldDiscomfort:
		m.cfg.Discomfort = !m.cfg.Discomfort
	case fieldClip:
		m.cfg.SelectedClip = next(m.choices.Clips, m.cfg.SelectedClip, step)
	case fieldAudio:
		m.cfg.AudioEnabled = !m.cfg.AudioEnabled
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("New session") + "\n\n")
	for f := field(0); f < fieldCount; f++ {
		marker := "  "
		label := theme.Muted.Render(fmt.Sprintf("%-11s", fieldLabels[f]))
		value := m.value(f)
		if f == m.cursor {
			marker = theme.Selected.Render("› ")
			value = theme.Selected.Render("‹ " + value + " ›")
		}
		sb.WriteString(marker + label + "  " + value + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("↑/↓ field  ←/→ change  enter start  h history  , settings"))
	card := theme.Card.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) value(f field) string {
	switch f {
	case fieldType:
		return m.cfg.Type
	case fieldGoal:
		return m.cfg.Goal
	case fieldLevel:
		return m.cfg.Level
	case fieldLowSleep:
		return yesNo(m.cfg.LowSleep)
	case fieldDiscomfort:
		return yesNo(m.cfg.Discomfort)
	case fieldClip:
		return m.cfg.SelectedClip
	case fieldAudio:
		return onOff(m.cfg.AudioEnabled)
	}
	return ""
}

func next(values []string, current string, step int) string {
	if len(values) == 0 {
		return current
	}
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(values)) % len(values)
	return values[idx]
}

func ensure(values []string, v string) []string {
	if v == "" {
		return values
	}
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	out := make([]string, 0, len(values)+1)
	out = append(out, values...)
	return append(out, v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
