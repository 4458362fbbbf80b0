package service

import (
	"time"

	"cruxlog/internal/modules/session/domain"
	"cruxlog/internal/platform/clock"
	"cruxlog/internal/platform/id"
)

type SessionService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSessionService(clock clock.Clock, idGen id.Generator) *SessionService {
	return &SessionService{clock: clock, idGen: idGen}
}

// Start builds an empty session stamped with a fresh id and the current time.
func (s *SessionService) Start(cfg domain.SessionConfig) domain.SessionData {
	return domain.NewSessionData(s.idGen.New(), s.clock.Now(), cfg)
}

// Finalize converts a draft, filling id and time from the service and clip
// and rest from the running session.
func (s *SessionService) Finalize(draft domain.AttemptDraft, cfg domain.SessionConfig, rest time.Duration) (domain.Attempt, error) {
	if err := draft.Validate(); err != nil {
		return domain.Attempt{}, err
	}
	defaults := domain.AttemptDefaults{ID: s.idGen.New(), Clip: cfg.SelectedClip, Rest: rest}
	if draft.Time == nil {
		defaults.Time = s.clock.Now()
	}
	return draft.Finalize(defaults)
}
