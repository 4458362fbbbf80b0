package in

import (
	"time"

	sessiondto "cruxlog/internal/modules/session/dto"
	sessionin "cruxlog/internal/modules/session/port/in"
)

// TUIHandler exposes the controller to Bubble Tea models. Every call must
// come from the program's update loop.
type TUIHandler struct {
	usecase sessionin.Usecase
}

func NewTUIHandler(usecase sessionin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Navigate(screen string) error { return h.usecase.NavigateTo(screen) }

func (h TUIHandler) Start(config sessiondto.SessionConfig) (sessiondto.SessionOutput, error) {
	if err := h.usecase.ValidateConfig(config); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return h.usecase.StartSession(config), nil
}

func (h TUIHandler) Finish() { h.usecase.FinishSession() }

func (h TUIHandler) SetDraft(draft sessiondto.AttemptDraft) { h.usecase.SetDraft(draft) }

func (h TUIHandler) Confirm(fields sessiondto.AttemptDraft) (sessiondto.AttemptOutput, error) {
	return h.usecase.ConfirmDraft(fields)
}

func (h TUIHandler) SetRestTimer(d time.Duration) { h.usecase.SetRestTimer(d) }

func (h TUIHandler) State() sessiondto.StateOutput { return h.usecase.State() }

func (h TUIHandler) Summary(sessionID string) (sessiondto.SummaryOutput, error) {
	return h.usecase.Summary(sessionID)
}
