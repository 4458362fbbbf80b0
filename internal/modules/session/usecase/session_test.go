package usecase_test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	sessionout "cruxlog/internal/modules/session/adapter/out"
	"cruxlog/internal/modules/session/domain"
	sessiondto "cruxlog/internal/modules/session/dto"
	"cruxlog/internal/modules/session/service"
	"cruxlog/internal/modules/session/usecase"
	"cruxlog/internal/platform/clock"
	apperrors "cruxlog/internal/platform/errors"
	"cruxlog/internal/platform/id"
)

var v4Training = sessiondto.SessionConfig{
	Type:         "training",
	Goal:         "technique",
	Level:        "V4",
	SelectedClip: "Overhang Problem #1",
	AudioEnabled: true,
}

func TestInitialState(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	state := uc.State()
	if state.Screen != sessiondto.ScreenHome {
		t.Fatalf("initial screen = %s", state.Screen)
	}
	if state.HasCurrent {
		t.Fatalf("no session expected before start")
	}
	if state.RestTimer != 3*time.Minute {
		t.Fatalf("rest timer = %s, want 3m", state.RestTimer)
	}
	if state.Config != v4Training {
		t.Fatalf("unexpected default config: %+v", state.Config)
	}
	if len(state.History) != 0 {
		t.Fatalf("history should start empty")
	}
}

func TestStartSessionReplacesConfigAndNavigates(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	cfg := sessiondto.SessionConfig{Type: "competition", Goal: "power", Level: "V7", LowSleep: true, SelectedClip: "Dyno Box"}
	out := uc.StartSession(cfg)

	if out.ID != "id-1" || !out.StartedAt.Equal(t0) {
		t.Fatalf("unexpected id/time: %s %s", out.ID, out.StartedAt)
	}
	if out.Config != cfg {
		t.Fatalf("config = %+v, want %+v", out.Config, cfg)
	}
	if out.TotalAttempts != 0 || out.Sends != 0 || out.SendRate != 0 || out.BestHP != 0 || out.AvgRPE != 0 || len(out.Attempts) != 0 {
		t.Fatalf("expected zero aggregates: %+v", out)
	}
	state := uc.State()
	if state.Screen != sessiondto.ScreenSessionPre || state.Config != cfg || !state.HasCurrent {
		t.Fatalf("unexpected state after start: %+v", state)
	}
}

func TestStartSessionTwiceDiscardsUnfinished(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	first := uc.StartSession(v4Training)
	second := uc.StartSession(v4Training)
	if first.ID == second.ID {
		t.Fatalf("session ids must be unique")
	}
	state := uc.State()
	if state.Current.ID != second.ID || len(state.History) != 0 {
		t.Fatalf("unfinished session should be replaced, not archived: %+v", state)
	}
}

func TestAddAttemptWithoutSessionIsNoop(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	uc.StartSession(v4Training)
	uc.AddAttempt(sessiondto.AttemptInput{ID: "a0", Success: true, HighPoint: 3, RPE: 4})
	uc.FinishSession()
	uc.SetRestTimer(75 * time.Second)
	uc.SetDraft(sessiondto.AttemptDraft{Clip: ptr("Crimp Ladder"), Notes: ptr("warm up")})
	if err := uc.NavigateTo(sessiondto.ScreenSettings); err != nil {
		t.Fatalf("navigate: %v", err)
	}

	before := uc.State()
	uc.AddAttempt(sessiondto.AttemptInput{ID: "a", Success: true, HighPoint: 5, RPE: 6})
	if after := uc.State(); !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestAggregatesAfterEachAttempt(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	uc.StartSession(v4Training)
	for i, step := range []struct {
		in       sessiondto.AttemptInput
		total    int
		sends    int
		sendRate float64
		bestHP   float64
		avgRPE   float64
	}{
		{in: sessiondto.AttemptInput{Success: true, HighPoint: 5, RPE: 7}, total: 1, sends: 1, sendRate: 100, bestHP: 5, avgRPE: 7},
		{in: sessiondto.AttemptInput{Success: false, HighPoint: 8, RPE: 9}, total: 2, sends: 1, sendRate: 50, bestHP: 8, avgRPE: 8},
		{in: sessiondto.AttemptInput{Success: true, HighPoint: 6, RPE: 5}, total: 3, sends: 2, sendRate: 200.0 / 3, bestHP: 8, avgRPE: 7},
	} {
		uc.AddAttempt(step.in)
		c := uc.State().Current
		if c.TotalAttempts != step.total || c.Sends != step.sends || c.BestHP != step.bestHP {
			t.Fatalf("after attempt %d: %+v", i+1, c)
		}
		if math.Abs(c.SendRate-step.sendRate) > 1e-9 || math.Abs(c.AvgRPE-step.avgRPE) > 1e-9 {
			t.Fatalf("after attempt %d: send rate %v avg rpe %v", i+1, c.SendRate, c.AvgRPE)
		}
	}
}

func TestTwoAttemptScenario(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	uc.StartSession(v4Training)
	if err := uc.NavigateTo(sessiondto.ScreenSessionAttempt); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	uc.AddAttempt(sessiondto.AttemptInput{ID: "a1", Success: true, HighPoint: 8, RPE: 7})
	uc.AddAttempt(sessiondto.AttemptInput{ID: "a2", Success: false, HighPoint: 6, RPE: 9})

	state := uc.State()
	if state.Screen != sessiondto.ScreenSessionAttempt {
		t.Fatalf("AddAttempt must not navigate, screen=%s", state.Screen)
	}
	c := state.Current
	if c.TotalAttempts != 2 || c.Sends != 1 || c.SendRate != 50 || c.BestHP != 8 || c.AvgRPE != 8 {
		t.Fatalf("unexpected aggregates: %+v", c)
	}
}

func TestFinishSessionArchivesOnceAndGoesHome(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	s1 := uc.StartSession(v4Training)
	uc.AddAttempt(sessiondto.AttemptInput{Success: true, HighPoint: 4, RPE: 5})
	uc.FinishSession()
	s2 := uc.StartSession(v4Training)
	_ = uc.NavigateTo(sessiondto.ScreenSettings)
	uc.FinishSession()
	uc.FinishSession()

	state := uc.State()
	if state.Screen != sessiondto.ScreenHome || state.HasCurrent {
		t.Fatalf("expected home with no session: %+v", state)
	}
	if len(state.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(state.History))
	}
	if state.History[0].ID != s1.ID || state.History[1].ID != s2.ID {
		t.Fatalf("history order wrong: %s, %s", state.History[0].ID, state.History[1].ID)
	}
	if state.History[0].TotalAttempts != 1 {
		t.Fatalf("archived aggregates lost: %+v", state.History[0])
	}
}

func TestNavigateToAnyScreen(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	for _, s := range domain.Screens() {
		if err := uc.NavigateTo(s.String()); err != nil {
			t.Fatalf("navigate %s: %v", s, err)
		}
		if got := uc.State().Screen; got != s.String() {
			t.Fatalf("screen = %s, want %s", got, s)
		}
	}
	if err := uc.NavigateTo("session-warmup"); !errors.Is(err, apperrors.ErrUnknownScreen) {
		t.Fatalf("expected unknown screen, got %v", err)
	}
	if got := uc.State().Screen; got != sessiondto.ScreenSettings {
		t.Fatalf("failed navigation changed screen to %s", got)
	}
}

func TestConfirmDraftFillsDefaults(t *testing.T) {
	t.Parallel()
	uc := newUsecase(usecase.WithRestTimer(90 * time.Second))
	uc.StartSession(v4Training)
	uc.SetDraft(sessiondto.AttemptDraft{Time: ptr(t0.Add(10 * time.Minute))})

	out, err := uc.ConfirmDraft(sessiondto.AttemptDraft{Success: ptr(true), HighPoint: ptr(9.0), RPE: ptr(8.0), Notes: ptr("flash")})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if out.ID != "id-2" || out.Clip != "Overhang Problem #1" || out.Rest != 90*time.Second || !out.Time.Equal(t0.Add(10*time.Minute)) {
		t.Fatalf("defaults not applied: %+v", out)
	}
	state := uc.State()
	if state.Current.TotalAttempts != 1 || state.Current.BestHP != 9 {
		t.Fatalf("attempt not recorded: %+v", state.Current)
	}
	if state.Draft.Time != nil || state.Draft.Clip != nil {
		t.Fatalf("draft should be cleared: %+v", state.Draft)
	}
}

func TestConfirmDraftMissingFieldsLeavesState(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	uc.StartSession(v4Training)
	uc.SetDraft(sessiondto.AttemptDraft{Clip: ptr("Crimp Ladder")})

	_, err := uc.ConfirmDraft(sessiondto.AttemptDraft{Success: ptr(false)})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	state := uc.State()
	if state.Current.TotalAttempts != 0 {
		t.Fatalf("attempt recorded despite error")
	}
	if state.Draft.Clip == nil || *state.Draft.Clip != "Crimp Ladder" {
		t.Fatalf("draft should survive a failed confirm: %+v", state.Draft)
	}

	out, err := uc.ConfirmDraft(sessiondto.AttemptDraft{Success: ptr(false), HighPoint: ptr(2.0), RPE: ptr(4.0)})
	if err != nil {
		t.Fatalf("second confirm: %v", err)
	}
	if out.ID != "id-2" {
		t.Fatalf("failed confirm consumed an id: %s", out.ID)
	}
}

func TestConfirmDraftWithoutSession(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	uc.SetDraft(sessiondto.AttemptDraft{Clip: ptr("Slab Traverse")})
	_, err := uc.ConfirmDraft(sessiondto.AttemptDraft{Success: ptr(true), HighPoint: ptr(1.0), RPE: ptr(1.0)})
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected no active session, got %v", err)
	}
	if uc.State().Draft.Clip == nil {
		t.Fatalf("draft cleared without a session")
	}
}

func TestDraftIsNotAliased(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	clip := "Dyno Box"
	uc.SetDraft(sessiondto.AttemptDraft{Clip: &clip})
	clip = "changed"
	got := uc.State().Draft
	if *got.Clip != "Dyno Box" {
		t.Fatalf("stored draft aliases caller memory: %s", *got.Clip)
	}
	*got.Clip = "mutated"
	if *uc.State().Draft.Clip != "Dyno Box" {
		t.Fatalf("state snapshot aliases stored draft")
	}
}

func TestSetRestTimer(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	uc.SetRestTimer(45 * time.Second)
	if got := uc.State().RestTimer; got != 45*time.Second {
		t.Fatalf("rest timer = %s", got)
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	if err := uc.ValidateConfig(v4Training); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	bad := v4Training
	bad.Type = "sport"
	if err := uc.ValidateConfig(bad); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSummaryLookup(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	if _, err := uc.Summary(""); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected no active session, got %v", err)
	}
	first := uc.StartSession(v4Training)
	uc.FinishSession()
	current := uc.StartSession(v4Training)

	out, err := uc.Summary("")
	if err != nil || out.SessionID != current.ID {
		t.Fatalf("current summary: %+v %v", out, err)
	}
	out, err = uc.Summary(first.ID)
	if err != nil || out.SessionID != first.ID {
		t.Fatalf("history summary: %+v %v", out, err)
	}
	if out.Name != "2026-02-25-v4-training" {
		t.Fatalf("unexpected name %s", out.Name)
	}
	if !strings.HasPrefix(out.Markdown, "---\n") {
		t.Fatalf("summary should carry frontmatter")
	}
	if _, err := uc.Summary("missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSummaryRenderError(t *testing.T) {
	t.Parallel()
	svc := service.NewSessionService(clock.SystemClock{}, id.UUID{})
	uc := usecase.NewInteractor(svc, sessionout.NewMemoryHistoryStore(), failingRenderer{})
	uc.StartSession(v4Training)
	if _, err := uc.Summary(""); err == nil || !strings.Contains(err.Error(), "render summary") {
		t.Fatalf("expected render error, got %v", err)
	}
}

func TestWithConfigSeedsInitialConfig(t *testing.T) {
	t.Parallel()
	cfg := domain.DefaultConfig()
	cfg.Level = "V2"
	uc := newUsecase(usecase.WithConfig(cfg), usecase.WithLogger(nil))
	if got := uc.State().Config.Level; got != "V2" {
		t.Fatalf("level = %s", got)
	}
}

func TestDTOScreenNamesMatchDomain(t *testing.T) {
	t.Parallel()
	names := []string{
		sessiondto.ScreenHome,
		sessiondto.ScreenSessionPre,
		sessiondto.ScreenSessionAttempt,
		sessiondto.ScreenSessionPost,
		sessiondto.ScreenSessionRest,
		sessiondto.ScreenSessionSummary,
		sessiondto.ScreenHistory,
		sessiondto.ScreenSettings,
	}
	screens := domain.Screens()
	if len(names) != len(screens) {
		t.Fatalf("dto lists %d screens, domain %d", len(names), len(screens))
	}
	for i, s := range screens {
		if names[i] != s.String() {
			t.Fatalf("screen %d: dto %q, domain %q", i, names[i], s)
		}
	}
}
