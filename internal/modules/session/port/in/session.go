package in

import (
	"time"

	"cruxlog/internal/modules/session/dto"
)

// Usecase is the session controller surface consumed by the TUI and CLI.
type Usecase interface {
	NavigateTo(screen string) error
	StartSession(config dto.SessionConfig) dto.SessionOutput
	AddAttempt(attempt dto.AttemptInput)
	FinishSession()
	ValidateConfig(config dto.SessionConfig) error
	SetDraft(draft dto.AttemptDraft)
	ConfirmDraft(fields dto.AttemptDraft) (dto.AttemptOutput, error)
	SetRestTimer(d time.Duration)
	State() dto.StateOutput
	Summary(sessionID string) (dto.SummaryOutput, error)
}
