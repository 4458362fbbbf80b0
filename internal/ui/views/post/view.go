package post

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/ui/nav"
	"cruxlog/internal/ui/theme"
)

// SaveMsg carries the fields collected after an attempt. The root model
// overlays them on the stored draft and confirms it.
type SaveMsg struct {
	Fields sessiondto.AttemptDraft
}

type focus int

const (
	focusResult focus = iota
	focusHighPoint
	focusRPE
	focusNotes
	focusCount
)

type Model struct {
	success   bool
	highPoint textinput.Model
	rpe       textinput.Model
	notes     textinput.Model
	focus     focus
	clip      string
	err       string
	width     int
	height    int
}

func New() Model {
	hp := textinput.New()
	hp.Placeholder = "e.g. 12"
	hp.CharLimit = 8

	rpe := textinput.New()
	rpe.Placeholder = "1-10"
	rpe.CharLimit = 4

	notes := textinput.New()
	notes.Placeholder = "optional"
	notes.CharLimit = 200

	return Model{highPoint: hp, rpe: rpe, notes: notes}
}

// Reset clears the form for a new attempt described by draft.
func (m *Model) Reset(draft sessiondto.AttemptDraft) tea.Cmd {
	m.success = false
	m.highPoint.SetValue("")
	m.rpe.SetValue("")
	m.notes.SetValue("")
	m.clip = ""
	if draft.Clip != nil {
		m.clip = *draft.Clip
	}
	m.err = ""
	return m.setFocus(focusResult)
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.err = ""
		return
	}
	m.err = err.Error()
}

// Typing reports whether a text field has focus, so global keys must yield.
func (m Model) Typing() bool { return m.focus != focusResult }

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.highPoint.Blur()
	m.rpe.Blur()
	m.notes.Blur()
	switch f {
	case focusHighPoint:
		return m.highPoint.Focus()
	case focusRPE:
		return m.rpe.Focus()
	case focusNotes:
		return m.notes.Focus()
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "enter":
			fields, err := m.fields()
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg { return SaveMsg{Fields: fields} }
		case "esc":
			return m, nav.Go(sessiondto.ScreenSessionAttempt)
		}
		if m.focus == focusResult {
			switch msg.String() {
			case " ", "left", "right":
				m.success = !m.success
			case "y", "s":
				m.success = true
			case "n", "f":
				m.success = false
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusHighPoint:
		m.highPoint, cmd = m.highPoint.Update(msg)
	case focusRPE:
		m.rpe, cmd = m.rpe.Update(msg)
	case focusNotes:
		m.notes, cmd = m.notes.Update(msg)
	}
	return m, cmd
}

// fields parses the form. Numbers are required but not range-checked.
func (m Model) fields() (sessiondto.AttemptDraft, error) {
	hp, err := parseNumber("high point", m.highPoint.Value())
	if err != nil {
		return sessiondto.AttemptDraft{}, err
	}
	rpe, err := parseNumber("rpe", m.rpe.Value())
	if err != nil {
		return sessiondto.AttemptDraft{}, err
	}
	success := m.success
	out := sessiondto.AttemptDraft{Success: &success, HighPoint: &hp, RPE: &rpe}
	if notes := strings.TrimSpace(m.notes.Value()); notes != "" {
		out.Notes = &notes
	}
	return out, nil
}

func parseNumber(name, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("How did it go?") + "\n")
	if m.clip != "" {
		sb.WriteString(theme.Muted.Render(m.clip) + "\n")
	}
	sb.WriteString("\n")

	result := theme.Fall.Render("fall")
	if m.success {
		result = theme.Send.Render("send")
	}
	sb.WriteString(m.marker(focusResult) + theme.Muted.Render("result      ") + result + "\n")
	sb.WriteString(m.marker(focusHighPoint) + theme.Muted.Render("high point  ") + m.highPoint.View() + "\n")
	sb.WriteString(m.marker(focusRPE) + theme.Muted.Render("rpe         ") + m.rpe.View() + "\n")
	sb.WriteString(m.marker(focusNotes) + theme.Muted.Render("notes       ") + m.notes.View() + "\n")
	if m.err != "" {
		sb.WriteString("\n" + theme.Fall.Render(m.err) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("tab field  space send/fall  enter save & rest  esc back"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Card.Render(sb.String()))
}

func (m Model) marker(f focus) string {
	if m.focus == f {
		return theme.Selected.Render("› ")
	}
	return "  "
}
