package usecase_test

import (
	"errors"
	"time"

	sessionout "cruxlog/internal/modules/session/adapter/out"
	"cruxlog/internal/modules/session/domain"
	sessionin "cruxlog/internal/modules/session/port/in"
	"cruxlog/internal/modules/session/service"
	"cruxlog/internal/modules/session/usecase"
	"cruxlog/internal/platform/clock"
	"cruxlog/internal/platform/id"
)

var t0 = time.Date(2026, 2, 25, 18, 0, 0, 0, time.UTC)

func newUsecase(opts ...usecase.Option) sessionin.Usecase {
	svc := service.NewSessionService(&clock.Stepped{Start: t0, Step: time.Minute}, &id.Sequence{Prefix: "id"})
	return usecase.NewInteractor(svc, sessionout.NewMemoryHistoryStore(), sessionout.NewMarkdownSummaryRenderer(), opts...)
}

type failingRenderer struct{}

func (failingRenderer) Render(domain.SessionData) (string, string, error) {
	return "", "", errors.New("boom")
}

func ptr[T any](v T) *T { return &v }
