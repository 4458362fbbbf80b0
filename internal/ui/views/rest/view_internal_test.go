package rest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/ui/nav"
)

func TestCountdownExpires(t *testing.T) {
	t.Parallel()
	m := New()
	if cmd := m.Start(2 * time.Second); cmd == nil {
		t.Fatalf("start should schedule a tick")
	}

	m, cmd := m.Update(tickMsg{gen: m.gen})
	if m.Remaining() != time.Second || cmd == nil {
		t.Fatalf("after first tick remaining=%s cmd=%v", m.Remaining(), cmd)
	}
	m, cmd = m.Update(tickMsg{gen: m.gen})
	if m.Running() || m.Remaining() != 0 {
		t.Fatalf("countdown should stop at zero")
	}
	if _, ok := cmd().(ExpiredMsg); !ok {
		t.Fatalf("expected expiry message")
	}

	m, cmd = m.Update(tickMsg{gen: m.gen})
	if cmd != nil {
		t.Fatalf("stopped countdown must ignore ticks")
	}
}

func TestRestartIgnoresStaleTicks(t *testing.T) {
	t.Parallel()
	m := New()
	m.Start(time.Minute)
	stale := m.gen
	m.Start(30 * time.Second)

	m, cmd := m.Update(tickMsg{gen: stale})
	if cmd != nil || m.Remaining() != 30*time.Second {
		t.Fatalf("stale tick changed state: %s", m.Remaining())
	}
}

func TestAdjustAndKeys(t *testing.T) {
	t.Parallel()
	m := New()
	m.Start(10 * time.Second)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	if m.Remaining() != 25*time.Second {
		t.Fatalf("remaining = %s", m.Remaining())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	if m.Remaining() != 0 {
		t.Fatalf("remaining should clamp at zero, got %s", m.Remaining())
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, ok := cmd().(nav.GoMsg); !ok || got.Screen != sessiondto.ScreenSessionAttempt {
		t.Fatalf("enter: %+v", cmd())
	}
	if m.Running() {
		t.Fatalf("leaving the screen should stop the countdown")
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{90 * time.Second, "01:30"},
		{3 * time.Minute, "03:00"},
		{61*time.Minute + time.Second, "61:01"},
	} {
		if got := formatClock(tc.d); got != tc.want {
			t.Fatalf("formatClock(%s) = %s, want %s", tc.d, got, tc.want)
		}
	}
}

func TestSummaryPausesAndResume(t *testing.T) {
	t.Parallel()
	m := New()
	m.Start(time.Minute)
	m, _ = m.Update(tickMsg{gen: m.gen})
	before := m.gen

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if got, ok := cmd().(nav.GoMsg); !ok || got.Screen != sessiondto.ScreenSessionSummary {
		t.Fatalf("s: %+v", cmd())
	}
	if m.Running() || !m.Paused() {
		t.Fatalf("summary should pause the countdown")
	}
	if m, cmd = m.Update(tickMsg{gen: before}); cmd != nil {
		t.Fatalf("paused countdown must ignore ticks")
	}

	if cmd := m.Resume(); cmd == nil {
		t.Fatalf("resume should schedule a tick")
	}
	if !m.Running() || m.Paused() || m.Remaining() != 59*time.Second {
		t.Fatalf("resume should keep the remaining time, got %s", m.Remaining())
	}
	if m.gen == before {
		t.Fatalf("resume must start a new tick generation")
	}
	if cmd := m.Resume(); cmd != nil {
		t.Fatalf("nothing left to resume")
	}

	m.Stop()
	if m.Running() || m.Resume() != nil {
		t.Fatalf("stop should drop the countdown")
	}
}
