package clock

import "time"

// Clock abstracts time so session timestamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Stepped returns Start, then advances by Step on every call.
type Stepped struct {
	Start time.Time
	Step  time.Duration
	calls int
}

func (s *Stepped) Now() time.Time {
	t := s.Start.Add(time.Duration(s.calls) * s.Step)
	s.calls++
	return t
}
