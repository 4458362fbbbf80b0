package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// executePalette runs one command typed into the palette.
func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		m.status = "ready"
		return m, nil
	}

	switch fields[0] {
	case "go":
		if len(fields) != 2 {
			m.status = "usage: go <screen>"
			return m, nil
		}
		return m.navigate(fields[1])

	case "start":
		out, err := m.session.Start(m.session.State().Config)
		if err != nil {
			m.status = "start failed: " + err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("session started: %s %s", out.Config.Level, out.Config.Type)
		return m.refresh()

	case "finish":
		m.session.Finish()
		m.status = "session finished"
		return m.refresh()

	case "rest":
		if len(fields) != 2 {
			m.status = "usage: rest <duration>"
			return m, nil
		}
		d, err := time.ParseDuration(fields[1])
		if err != nil {
			m.status = "rest: " + err.Error()
			return m, nil
		}
		m.session.SetRestTimer(d)
		m.settings.SetRestTimer(d)
		m.status = "rest timer: " + d.String()
		return m, nil
	}

	m.status = fmt.Sprintf("unknown command %q", fields[0])
	return m, nil
}
