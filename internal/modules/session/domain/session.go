package domain

import (
	"fmt"
	"time"
)

const SchemaVersion = 1

const DefaultRestTimer = 3 * time.Minute

type SessionType string

const (
	SessionTypeTraining    SessionType = "training"
	SessionTypeCompetition SessionType = "competition"
)

func (t SessionType) Validate() error {
	switch t {
	case SessionTypeTraining, SessionTypeCompetition:
		return nil
	default:
		return fmt.Errorf("unsupported session type %q", string(t))
	}
}

// SessionConfig is the set of parameters chosen before a session starts.
type SessionConfig struct {
	Type         SessionType
	Goal         string
	Level        string
	LowSleep     bool
	Discomfort   bool
	SelectedClip string
	AudioEnabled bool
}

func DefaultConfig() SessionConfig {
	return SessionConfig{
		Type:         SessionTypeTraining,
		Goal:         "technique",
		Level:        "V4",
		SelectedClip: "Overhang Problem #1",
		AudioEnabled: true,
	}
}

type Attempt struct {
	ID        string
	Time      time.Time
	Clip      string
	Success   bool
	HighPoint float64
	RPE       float64
	Rest      time.Duration
	Notes     string
}

// SessionData is a started session plus aggregates derived from its attempts.
type SessionData struct {
	ID            string
	StartedAt     time.Time
	Config        SessionConfig
	Attempts      []Attempt
	TotalAttempts int
	Sends         int
	SendRate      float64
	BestHP        float64
	AvgRPE        float64
}

func NewSessionData(id string, startedAt time.Time, cfg SessionConfig) SessionData {
	return SessionData{
		ID:        id,
		StartedAt: startedAt,
		Config:    cfg,
		Attempts:  []Attempt{},
	}
}

// Record returns a copy of s with the attempt appended and every aggregate
// recomputed. The receiver's attempt slice is never shared with the result.
func (s SessionData) Record(attempt Attempt) SessionData {
	attempts := make([]Attempt, len(s.Attempts), len(s.Attempts)+1)
	copy(attempts, s.Attempts)
	attempts = append(attempts, attempt)

	next := s
	next.Attempts = attempts
	next.TotalAttempts = len(attempts)
	next.Sends = 0
	var rpeSum float64
	for _, a := range attempts {
		if a.Success {
			next.Sends++
		}
		rpeSum += a.RPE
	}
	next.BestHP = max(s.BestHP, attempt.HighPoint)
	next.SendRate = float64(next.Sends) / float64(next.TotalAttempts) * 100
	next.AvgRPE = rpeSum / float64(next.TotalAttempts)
	return next
}

// Clone returns a deep copy safe to hand to renderers.
func (s SessionData) Clone() SessionData {
	out := s
	out.Attempts = make([]Attempt, len(s.Attempts))
	copy(out.Attempts, s.Attempts)
	return out
}
