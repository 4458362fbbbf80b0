package usecase

import (
	"cruxlog/internal/modules/session/domain"
	sessiondto "cruxlog/internal/modules/session/dto"
)

func configFromDTO(c sessiondto.SessionConfig) domain.SessionConfig {
	return domain.SessionConfig{
		Type:         domain.SessionType(c.Type),
		Goal:         c.Goal,
		Level:        c.Level,
		LowSleep:     c.LowSleep,
		Discomfort:   c.Discomfort,
		SelectedClip: c.SelectedClip,
		AudioEnabled: c.AudioEnabled,
	}
}

func configToDTO(c domain.SessionConfig) sessiondto.SessionConfig {
	return sessiondto.SessionConfig{
		Type:         string(c.Type),
		Goal:         c.Goal,
		Level:        c.Level,
		LowSleep:     c.LowSleep,
		Discomfort:   c.Discomfort,
		SelectedClip: c.SelectedClip,
		AudioEnabled: c.AudioEnabled,
	}
}

func attemptFromDTO(a sessiondto.AttemptInput) domain.Attempt {
	return domain.Attempt{
		ID:        a.ID,
		Time:      a.Time,
		Clip:      a.Clip,
		Success:   a.Success,
		HighPoint: a.HighPoint,
		RPE:       a.RPE,
		Rest:      a.Rest,
		Notes:     a.Notes,
	}
}

func attemptToDTO(a domain.Attempt) sessiondto.AttemptOutput {
	return sessiondto.AttemptOutput{
		ID:        a.ID,
		Time:      a.Time,
		Clip:      a.Clip,
		Success:   a.Success,
		HighPoint: a.HighPoint,
		RPE:       a.RPE,
		Rest:      a.Rest,
		Notes:     a.Notes,
	}
}

func sessionToDTO(s domain.SessionData) sessiondto.SessionOutput {
	attempts := make([]sessiondto.AttemptOutput, 0, len(s.Attempts))
	for _, a := range s.Attempts {
		attempts = append(attempts, attemptToDTO(a))
	}
	return sessiondto.SessionOutput{
		ID:            s.ID,
		StartedAt:     s.StartedAt,
		Config:        configToDTO(s.Config),
		Attempts:      attempts,
		TotalAttempts: s.TotalAttempts,
		Sends:         s.Sends,
		SendRate:      s.SendRate,
		BestHP:        s.BestHP,
		AvgRPE:        s.AvgRPE,
	}
}

// Drafts cross the boundary by value so callers cannot mutate stored fields.
func draftFromDTO(d sessiondto.AttemptDraft) domain.AttemptDraft {
	return domain.AttemptDraft{
		Time:      clone(d.Time),
		Clip:      clone(d.Clip),
		Success:   clone(d.Success),
		HighPoint: clone(d.HighPoint),
		RPE:       clone(d.RPE),
		Rest:      clone(d.Rest),
		Notes:     clone(d.Notes),
	}
}

func draftToDTO(d domain.AttemptDraft) sessiondto.AttemptDraft {
	return sessiondto.AttemptDraft{
		Time:      clone(d.Time),
		Clip:      clone(d.Clip),
		Success:   clone(d.Success),
		HighPoint: clone(d.HighPoint),
		RPE:       clone(d.RPE),
		Rest:      clone(d.Rest),
		Notes:     clone(d.Notes),
	}
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
