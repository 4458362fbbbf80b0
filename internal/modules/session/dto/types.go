package dto

import "time"

type SessionConfig struct {
	Type         string `yaml:"type"`
	Goal         string `yaml:"goal"`
	Level        string `yaml:"level"`
	LowSleep     bool   `yaml:"low_sleep"`
	Discomfort   bool   `yaml:"discomfort"`
	SelectedClip string `yaml:"clip"`
	AudioEnabled bool   `yaml:"audio"`
}

type AttemptInput struct {
	ID        string        `yaml:"id"`
	Time      time.Time     `yaml:"time"`
	Clip      string        `yaml:"clip"`
	Success   bool          `yaml:"success"`
	HighPoint float64       `yaml:"high_point"`
	RPE       float64       `yaml:"rpe"`
	Rest      time.Duration `yaml:"rest"`
	Notes     string        `yaml:"notes"`
}

// AttemptDraft carries only the fields a screen has filled in so far.
type AttemptDraft struct {
	Clip      *string
	Time      *time.Time
	Success   *bool
	HighPoint *float64
	RPE       *float64
	Rest      *time.Duration
	Notes     *string
}

type AttemptOutput struct {
	ID        string
	Time      time.Time
	Clip      string
	Success   bool
	HighPoint float64
	RPE       float64
	Rest      time.Duration
	Notes     string
}

type SessionOutput struct {
	ID            string
	StartedAt     time.Time
	Config        SessionConfig
	Attempts      []AttemptOutput
	TotalAttempts int
	Sends         int
	SendRate      float64
	BestHP        float64
	AvgRPE        float64
}

type StateOutput struct {
	Screen     string
	Config     SessionConfig
	Current    SessionOutput
	HasCurrent bool
	Draft      AttemptDraft
	RestTimer  time.Duration
	History    []SessionOutput
}

type SummaryOutput struct {
	SessionID string
	Name      string
	Markdown  string
}

// Screen names accepted by NavigateTo.
const (
	ScreenHome           = "home"
	ScreenSessionPre     = "session-pre"
	ScreenSessionAttempt = "session-attempt"
	ScreenSessionPost    = "session-post"
	ScreenSessionRest    = "session-rest"
	ScreenSessionSummary = "session-summary"
	ScreenHistory        = "history"
	ScreenSettings       = "settings"
)
