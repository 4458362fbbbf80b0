// Package nav carries screen requests from leaf views to the root model,
// which forwards them to the session controller.
package nav

import tea "github.com/charmbracelet/bubbletea"

// GoMsg asks the controller to make Screen the active screen.
type GoMsg struct{ Screen string }

func Go(screen string) tea.Cmd {
	return func() tea.Msg { return GoMsg{Screen: screen} }
}
