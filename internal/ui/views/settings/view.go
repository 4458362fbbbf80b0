package settings

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/ui/nav"
	"cruxlog/internal/ui/theme"
)

const restStep = 15 * time.Second

// RestMsg asks the controller to use D as the rest-timer duration.
type RestMsg struct{ D time.Duration }

type Model struct {
	rest       time.Duration
	configFile string
	logFile    string
	width      int
	height     int
}

func New(configFile, logFile string) Model {
	return Model{configFile: configFile, logFile: logFile}
}

func (m *Model) SetRestTimer(d time.Duration) { m.rest = d }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "+", "=":
			return m, restCmd(m.rest + restStep)
		case "left", "-":
			if m.rest-restStep >= restStep {
				return m, restCmd(m.rest - restStep)
			}
		case "esc", "enter":
			return m, nav.Go(sessiondto.ScreenHome)
		}
	}
	return m, nil
}

func restCmd(d time.Duration) tea.Cmd {
	return func() tea.Msg { return RestMsg{D: d} }
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Settings") + "\n\n")
	sb.WriteString(theme.Selected.Render("› ") + theme.Muted.Render("rest timer  ") + theme.Selected.Render("‹ "+m.rest.String()+" ›") + "\n\n")
	sb.WriteString(theme.Muted.Render("config  ") + orDefault(m.configFile, "built-in defaults") + "\n")
	sb.WriteString(theme.Muted.Render("log     ") + orDefault(m.logFile, "disabled") + "\n\n")
	sb.WriteString(theme.Muted.Render("←/→ adjust rest  esc home"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Card.Render(sb.String()))
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
