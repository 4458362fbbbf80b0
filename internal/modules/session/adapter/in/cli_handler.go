package in

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	sessiondto "cruxlog/internal/modules/session/dto"
	sessionin "cruxlog/internal/modules/session/port/in"
)

// Script replays whole sessions through the controller without a terminal.
type Script struct {
	Rest     time.Duration   `yaml:"rest"`
	Sessions []ScriptSession `yaml:"sessions"`
}

type ScriptSession struct {
	Config   sessiondto.SessionConfig `yaml:"config"`
	Attempts []ScriptAttempt          `yaml:"attempts"`
	// Finish defaults to true; an unfinished session is replaced by the next.
	Finish *bool `yaml:"finish"`
}

type ScriptAttempt struct {
	Clip      *string        `yaml:"clip"`
	Success   *bool          `yaml:"success"`
	HighPoint *float64       `yaml:"high_point"`
	RPE       *float64       `yaml:"rpe"`
	Rest      *time.Duration `yaml:"rest"`
	Notes     *string        `yaml:"notes"`
}

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func DecodeScript(r io.Reader) (Script, error) {
	var script Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		if err == io.EOF {
			return Script{}, fmt.Errorf("script is empty")
		}
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	return script, nil
}

// Run drives each scripted session through the same screen sequence the TUI
// uses and returns the summary of every session left in history or current.
func (h CLIHandler) Run(script Script) ([]sessiondto.SummaryOutput, error) {
	if script.Rest > 0 {
		h.usecase.SetRestTimer(script.Rest)
	}
	for n, s := range script.Sessions {
		if err := h.usecase.ValidateConfig(s.Config); err != nil {
			return nil, fmt.Errorf("session %d: %w", n+1, err)
		}
		h.usecase.StartSession(s.Config)
		for k, a := range s.Attempts {
			if err := h.recordAttempt(a); err != nil {
				return nil, fmt.Errorf("session %d attempt %d: %w", n+1, k+1, err)
			}
		}
		if err := h.usecase.NavigateTo(sessiondto.ScreenSessionSummary); err != nil {
			return nil, err
		}
		if s.Finish == nil || *s.Finish {
			h.usecase.FinishSession()
		}
	}

	state := h.usecase.State()
	ids := make([]string, 0, len(state.History)+1)
	for _, s := range state.History {
		ids = append(ids, s.ID)
	}
	if state.HasCurrent {
		ids = append(ids, state.Current.ID)
	}
	out := make([]sessiondto.SummaryOutput, 0, len(ids))
	for _, id := range ids {
		summary, err := h.usecase.Summary(id)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

func (h CLIHandler) recordAttempt(a ScriptAttempt) error {
	if err := h.usecase.NavigateTo(sessiondto.ScreenSessionAttempt); err != nil {
		return err
	}
	h.usecase.SetDraft(sessiondto.AttemptDraft{Clip: a.Clip})
	if err := h.usecase.NavigateTo(sessiondto.ScreenSessionPost); err != nil {
		return err
	}
	if _, err := h.usecase.ConfirmDraft(sessiondto.AttemptDraft{
		Success:   a.Success,
		HighPoint: a.HighPoint,
		RPE:       a.RPE,
		Rest:      a.Rest,
		Notes:     a.Notes,
	}); err != nil {
		return err
	}
	return h.usecase.NavigateTo(sessiondto.ScreenSessionRest)
}

func (h CLIHandler) State() sessiondto.StateOutput { return h.usecase.State() }
