package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"cruxlog/internal/modules/session/domain"
	sessiondto "cruxlog/internal/modules/session/dto"
	sessionin "cruxlog/internal/modules/session/port/in"
	sessionout "cruxlog/internal/modules/session/port/out"
	"cruxlog/internal/modules/session/service"
	apperrors "cruxlog/internal/platform/errors"
)

// Interactor is the session controller. It owns the active screen, the
// session config, the current session, the attempt draft, the rest timer and
// the finished-session history. Callers must invoke it from a single
// goroutine; it holds no locks.
type Interactor struct {
	svc      *service.SessionService
	history  sessionout.HistoryStore
	renderer sessionout.SummaryRenderer
	logger   *slog.Logger

	screen    domain.Screen
	config    domain.SessionConfig
	current   *domain.SessionData
	draft     domain.AttemptDraft
	restTimer time.Duration
}

type Option func(*Interactor)

// WithConfig sets the config shown before the first session starts.
func WithConfig(cfg domain.SessionConfig) Option {
	return func(i *Interactor) { i.config = cfg }
}

func WithRestTimer(d time.Duration) Option {
	return func(i *Interactor) { i.restTimer = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(i *Interactor) {
		if logger != nil {
			i.logger = logger
		}
	}
}

func NewInteractor(svc *service.SessionService, history sessionout.HistoryStore, renderer sessionout.SummaryRenderer, opts ...Option) sessionin.Usecase {
	i := &Interactor{
		svc:       svc,
		history:   history,
		renderer:  renderer,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		screen:    domain.ScreenHome,
		config:    domain.DefaultConfig(),
		restTimer: domain.DefaultRestTimer,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Interactor) NavigateTo(name string) error {
	screen, ok := domain.ParseScreen(name)
	if !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownScreen, name)
	}
	i.navigate(screen)
	return nil
}

func (i *Interactor) navigate(screen domain.Screen) {
	i.logger.Debug("navigate", "from", i.screen.String(), "to", screen.String())
	i.screen = screen
}

func (i *Interactor) StartSession(config sessiondto.SessionConfig) sessiondto.SessionOutput {
	cfg := configFromDTO(config)
	session := i.svc.Start(cfg)
	i.current = &session
	i.config = cfg
	i.logger.Info("session started", "session_id", session.ID, "type", string(cfg.Type), "level", cfg.Level)
	i.navigate(domain.ScreenSessionPre)
	return sessionToDTO(session)
}

func (i *Interactor) AddAttempt(attempt sessiondto.AttemptInput) {
	i.record(attemptFromDTO(attempt))
}

func (i *Interactor) record(attempt domain.Attempt) {
	if i.current == nil {
		i.logger.Debug("attempt ignored without session", "attempt_id", attempt.ID)
		return
	}
	next := i.current.Record(attempt)
	i.current = &next
	i.logger.Info("attempt recorded",
		"session_id", next.ID,
		"attempt_id", attempt.ID,
		"success", attempt.Success,
		"total", next.TotalAttempts,
		"send_rate", next.SendRate,
	)
}

func (i *Interactor) FinishSession() {
	if i.current != nil {
		i.history.Append(*i.current)
		i.logger.Info("session finished", "session_id", i.current.ID, "attempts", i.current.TotalAttempts)
		i.current = nil
	}
	i.navigate(domain.ScreenHome)
}

// ValidateConfig checks a config at a boundary. StartSession itself accepts
// any config.
func (i *Interactor) ValidateConfig(config sessiondto.SessionConfig) error {
	if err := configFromDTO(config).Type.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return nil
}

func (i *Interactor) SetDraft(draft sessiondto.AttemptDraft) {
	i.draft = draftFromDTO(draft)
}

func (i *Interactor) ConfirmDraft(fields sessiondto.AttemptDraft) (sessiondto.AttemptOutput, error) {
	if i.current == nil {
		return sessiondto.AttemptOutput{}, apperrors.ErrNoActiveSession
	}
	merged := i.draft.Overlay(draftFromDTO(fields))
	attempt, err := i.svc.Finalize(merged, i.current.Config, i.restTimer)
	if err != nil {
		return sessiondto.AttemptOutput{}, err
	}
	i.record(attempt)
	i.draft = domain.AttemptDraft{}
	return attemptToDTO(attempt), nil
}

func (i *Interactor) SetRestTimer(d time.Duration) {
	i.logger.Debug("rest timer changed", "from", i.restTimer, "to", d)
	i.restTimer = d
}

func (i *Interactor) State() sessiondto.StateOutput {
	finished := i.history.List()
	out := sessiondto.StateOutput{
		Screen:    i.screen.String(),
		Config:    configToDTO(i.config),
		Draft:     draftToDTO(i.draft),
		RestTimer: i.restTimer,
		History:   make([]sessiondto.SessionOutput, 0, len(finished)),
	}
	if i.current != nil {
		out.Current = sessionToDTO(*i.current)
		out.HasCurrent = true
	}
	for _, s := range finished {
		out.History = append(out.History, sessionToDTO(s))
	}
	return out
}

// Summary renders the current session when sessionID is empty or matches it,
// otherwise a finished session from history.
func (i *Interactor) Summary(sessionID string) (sessiondto.SummaryOutput, error) {
	var session domain.SessionData
	switch {
	case i.current != nil && (sessionID == "" || sessionID == i.current.ID):
		session = i.current.Clone()
	case sessionID == "":
		return sessiondto.SummaryOutput{}, apperrors.ErrNoActiveSession
	default:
		found, ok := i.history.Find(sessionID)
		if !ok {
			return sessiondto.SummaryOutput{}, fmt.Errorf("session %q: %w", sessionID, apperrors.ErrNotFound)
		}
		session = found
	}
	name, markdown, err := i.renderer.Render(session)
	if err != nil {
		return sessiondto.SummaryOutput{}, fmt.Errorf("render summary: %w", err)
	}
	return sessiondto.SummaryOutput{SessionID: session.ID, Name: name, Markdown: markdown}, nil
}
