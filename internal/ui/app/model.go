package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/ui/components"
	"cruxlog/internal/ui/nav"
	"cruxlog/internal/ui/theme"
	attemptview "cruxlog/internal/ui/views/attempt"
	historyview "cruxlog/internal/ui/views/history"
	homeview "cruxlog/internal/ui/views/home"
	postview "cruxlog/internal/ui/views/post"
	preview "cruxlog/internal/ui/views/pre"
	restview "cruxlog/internal/ui/views/rest"
	settingsview "cruxlog/internal/ui/views/settings"
	summaryview "cruxlog/internal/ui/views/summary"
)

// ─── port ────────────────────────────────────────────────────────────────────

// SessionPort is the controller surface the UI drives. Calls happen only
// inside Update, never from a tea.Cmd goroutine.
type SessionPort interface {
	Navigate(screen string) error
	Start(config sessiondto.SessionConfig) (sessiondto.SessionOutput, error)
	Finish()
	SetDraft(draft sessiondto.AttemptDraft)
	Confirm(fields sessiondto.AttemptDraft) (sessiondto.AttemptOutput, error)
	SetRestTimer(d time.Duration)
	State() sessiondto.StateOutput
	Summary(sessionID string) (sessiondto.SummaryOutput, error)
}

type Choices = homeview.Choices

var screenTitles = map[string]string{
	sessiondto.ScreenHome:           "Home",
	sessiondto.ScreenSessionPre:     "Session",
	sessiondto.ScreenSessionAttempt: "Attempt",
	sessiondto.ScreenSessionPost:    "Log attempt",
	sessiondto.ScreenSessionRest:    "Rest",
	sessiondto.ScreenSessionSummary: "Summary",
	sessiondto.ScreenHistory:        "History",
	sessiondto.ScreenSettings:       "Settings",
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Back    key.Binding
	Summary key.Binding
	History key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit (home)")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm / next")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Summary: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summary (attempt, rest)")),
		History: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history (home)")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Back},
		{k.Summary, k.History},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. The controller's active screen decides
// which view renders; views only emit messages that this model turns into
// controller calls.
type Model struct {
	session SessionPort

	home     homeview.Model
	pre      preview.Model
	attempt  attemptview.Model
	post     postview.Model
	rest     restview.Model
	summary  summaryview.Model
	history  historyview.Model
	settings settingsview.Model

	// screen mirrors the controller's screen as of the last sync.
	screen   string
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	now      func() time.Time
	initCmd  tea.Cmd
	bellOut  io.Writer
	width    int
	height   int
}

func NewModel(session SessionPort, choices Choices, configFile, logFile string) Model {
	state := session.State()
	m := Model{
		session:  session,
		home:     homeview.New(choices, state.Config),
		pre:      preview.New(),
		attempt:  attemptview.New(),
		post:     postview.New(),
		rest:     restview.New(),
		summary:  summaryview.New(),
		history:  historyview.New(),
		settings: settingsview.New(configFile, logFile),
		keys:     defaultKeys(),
		help:     help.New(),
		palette:  components.NewPalette(),
		status:   "ready",
		now:      time.Now,
	}
	m.settings.SetRestTimer(state.RestTimer)
	m, cmd := m.sync()
	m.initCmd = cmd
	return m
}

// SetBellOutput sets where the rest bell is written. It should be the same
// writer the program renders to.
func (m *Model) SetBellOutput(w io.Writer) { m.bellOut = w }

func (m Model) Init() tea.Cmd { return m.initCmd }

// Screen returns the screen currently rendered.
func (m Model) Screen() string { return m.screen }

func (m Model) Status() string { return m.status }

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var pcmd tea.Cmd
		m.palette, pcmd = m.palette.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, pcmd
		}
		// Timers, resizes and view results keep flowing under the overlay.
		next, cmd := m.handle(msg)
		return next, tea.Batch(pcmd, cmd)
	}
	return m.handle(msg)
}

func (m Model) handle(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 72))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case nav.GoMsg:
		if err := m.session.Navigate(msg.Screen); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m.sync()

	case homeview.StartMsg:
		out, err := m.session.Start(msg.Config)
		if err != nil {
			m.status = "start failed: " + err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("session started: %s %s", out.Config.Level, out.Config.Type)
		return m.refresh()

	case attemptview.DraftMsg:
		m.session.SetDraft(msg.Draft)
		return m.navigate(sessiondto.ScreenSessionPost)

	case postview.SaveMsg:
		saved, err := m.session.Confirm(msg.Fields)
		if err != nil {
			m.post.SetError(err)
			return m, nil
		}
		result := "fall"
		if saved.Success {
			result = "send"
		}
		m.status = fmt.Sprintf("attempt saved: %s, high point %g, rpe %g", result, saved.HighPoint, saved.RPE)
		return m.navigate(sessiondto.ScreenSessionRest)

	case restview.ExpiredMsg:
		state := m.session.State()
		next, cmd := m.navigate(sessiondto.ScreenSessionAttempt)
		if state.HasCurrent && state.Current.Config.AudioEnabled {
			return next, tea.Batch(cmd, m.ring())
		}
		return next, cmd

	case summaryview.FinishMsg:
		m.session.Finish()
		m.status = "session finished"
		return m.refresh()

	case historyview.OpenMsg:
		out, err := m.session.Summary(msg.SessionID)
		m.history.SetDetail(out.Markdown, err)
		return m, nil

	case settingsview.RestMsg:
		m.session.SetRestTimer(msg.D)
		m.settings.SetRestTimer(m.session.State().RestTimer)
		m.status = "rest timer: " + msg.D.String()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.typing() {
			switch msg.String() {
			case "q":
				if m.screen == sessiondto.ScreenHome {
					return m, tea.Quit
				}
			case "?":
				m.showHelp = true
				return m, nil
			case ":":
				return m, m.palette.Open()
			}
		}
	}

	return m.updateActive(msg)
}

// updateActive forwards msg to the view for the current screen only.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case sessiondto.ScreenHome:
		m.home, cmd = m.home.Update(msg)
	case sessiondto.ScreenSessionPre:
		m.pre, cmd = m.pre.Update(msg)
	case sessiondto.ScreenSessionAttempt:
		m.attempt, cmd = m.attempt.Update(msg)
	case sessiondto.ScreenSessionPost:
		m.post, cmd = m.post.Update(msg)
	case sessiondto.ScreenSessionRest:
		m.rest, cmd = m.rest.Update(msg)
	case sessiondto.ScreenSessionSummary:
		m.summary, cmd = m.summary.Update(msg)
	case sessiondto.ScreenHistory:
		m.history, cmd = m.history.Update(msg)
	case sessiondto.ScreenSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

func (m Model) navigate(screen string) (tea.Model, tea.Cmd) {
	if err := m.session.Navigate(screen); err != nil {
		m.status = err.Error()
		return m, nil
	}
	return m.sync()
}

// refresh re-prepares the active view even when the screen is unchanged.
func (m Model) refresh() (Model, tea.Cmd) {
	m.screen = ""
	return m.sync()
}

// sync reads the controller state and, when the screen changed, prepares the
// view about to be shown.
func (m Model) sync() (Model, tea.Cmd) {
	state := m.session.State()
	if state.Screen == m.screen {
		return m, nil
	}
	prev := m.screen
	m.screen = state.Screen

	switch state.Screen {
	case sessiondto.ScreenHome:
		m.home.Reset(state.Config)
	case sessiondto.ScreenSessionPre:
		m.pre.SetConfig(state.Config, state.HasCurrent)
	case sessiondto.ScreenSessionAttempt:
		m.rest.Stop()
		return m, m.attempt.Start(state.Config.SelectedClip, state.Current.TotalAttempts+1, m.now())
	case sessiondto.ScreenSessionPost:
		return m, m.post.Reset(state.Draft)
	case sessiondto.ScreenSessionRest:
		if prev == sessiondto.ScreenSessionSummary && m.rest.Paused() {
			return m, m.rest.Resume()
		}
		return m, m.rest.Start(state.RestTimer)
	case sessiondto.ScreenSessionSummary:
		report := ""
		if state.HasCurrent {
			out, err := m.session.Summary(state.Current.ID)
			if err != nil {
				m.status = "summary: " + err.Error()
			}
			report = out.Markdown
		}
		m.summary.SetSession(state.Current, state.HasCurrent, report)
	case sessiondto.ScreenHistory:
		return m, m.history.SetSessions(state.History)
	case sessiondto.ScreenSettings:
		m.settings.SetRestTimer(state.RestTimer)
	}
	return m, nil
}

// typing reports whether the active view owns free-text input.
func (m Model) typing() bool {
	switch m.screen {
	case sessiondto.ScreenSessionPost:
		return m.post.Typing()
	case sessiondto.ScreenHistory:
		return m.history.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: max(m.height-4, 1)}
	m.home, _ = m.home.Update(sz)
	m.pre, _ = m.pre.Update(sz)
	m.attempt, _ = m.attempt.Update(sz)
	m.post, _ = m.post.Update(sz)
	m.rest, _ = m.rest.Update(sz)
	m.summary, _ = m.summary.Update(sz)
	m.history, _ = m.history.Update(sz)
	m.settings, _ = m.settings.Update(sz)
}

// ring writes the terminal bell through the program's output. Without an
// output set it does nothing.
func (m Model) ring() tea.Cmd {
	out := m.bellOut
	if out == nil {
		return nil
	}
	return func() tea.Msg {
		_, _ = io.WriteString(out, "\a")
		return nil
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) activeView() string {
	switch m.screen {
	case sessiondto.ScreenHome:
		return m.home.View()
	case sessiondto.ScreenSessionPre:
		return m.pre.View()
	case sessiondto.ScreenSessionAttempt:
		return m.attempt.View()
	case sessiondto.ScreenSessionPost:
		return m.post.View()
	case sessiondto.ScreenSessionRest:
		return m.rest.View()
	case sessiondto.ScreenSessionSummary:
		return m.summary.View()
	case sessiondto.ScreenHistory:
		return m.history.View()
	case sessiondto.ScreenSettings:
		return m.settings.View()
	}
	return ""
}

func (m Model) renderHeader() string {
	title := screenTitles[m.screen]
	bar := theme.Title.Render("cruxlog") + theme.Muted.Render("  │  ") + theme.Hot.Render(title)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if state := m.session.State(); state.HasCurrent {
		c := state.Current
		left = theme.Hot.Render(fmt.Sprintf("● %s %d/%d", c.Config.Level, c.Sends, c.TotalAttempts)) + "  " + left
	}
	right := theme.Muted.Render("?:help  :::command  ctrl+c:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}
