package domain_test

import (
	"errors"
	"testing"
	"time"

	"cruxlog/internal/modules/session/domain"
	apperrors "cruxlog/internal/platform/errors"
)

var start = time.Date(2026, 2, 25, 18, 0, 0, 0, time.UTC)

func TestNewSessionDataStartsEmpty(t *testing.T) {
	t.Parallel()
	s := domain.NewSessionData("s-1", start, domain.DefaultConfig())
	if s.TotalAttempts != 0 || s.Sends != 0 || s.SendRate != 0 || s.BestHP != 0 || s.AvgRPE != 0 {
		t.Fatalf("expected zero aggregates, got %+v", s)
	}
	if s.Attempts == nil || len(s.Attempts) != 0 {
		t.Fatalf("expected empty non-nil attempts, got %#v", s.Attempts)
	}
}

func TestRecordComputesAggregates(t *testing.T) {
	t.Parallel()
	cfg := domain.DefaultConfig()
	s := domain.NewSessionData("s-1", start, cfg)
	s = s.Record(domain.Attempt{ID: "a1", Success: true, HighPoint: 8, RPE: 7})
	s = s.Record(domain.Attempt{ID: "a2", Success: false, HighPoint: 6, RPE: 9})

	if s.TotalAttempts != 2 || s.Sends != 1 {
		t.Fatalf("unexpected counts: total=%d sends=%d", s.TotalAttempts, s.Sends)
	}
	if s.SendRate != 50 {
		t.Fatalf("send rate = %v, want 50", s.SendRate)
	}
	if s.BestHP != 8 {
		t.Fatalf("best hp = %v, want 8", s.BestHP)
	}
	if s.AvgRPE != 8 {
		t.Fatalf("avg rpe = %v, want 8", s.AvgRPE)
	}
	if s.Attempts[0].ID != "a1" || s.Attempts[1].ID != "a2" {
		t.Fatalf("attempt order not preserved: %+v", s.Attempts)
	}
}

func TestRecordDoesNotAliasPreviousValue(t *testing.T) {
	t.Parallel()
	base := domain.NewSessionData("s-1", start, domain.DefaultConfig())
	base = base.Record(domain.Attempt{ID: "a1", HighPoint: 3, RPE: 5})

	left := base.Record(domain.Attempt{ID: "left", HighPoint: 4, RPE: 5})
	right := base.Record(domain.Attempt{ID: "right", HighPoint: 2, RPE: 5})

	if len(base.Attempts) != 1 {
		t.Fatalf("base mutated: %+v", base.Attempts)
	}
	if left.Attempts[1].ID != "left" || right.Attempts[1].ID != "right" {
		t.Fatalf("results share storage: left=%+v right=%+v", left.Attempts, right.Attempts)
	}
	if right.BestHP != 3 {
		t.Fatalf("best hp must never decrease, got %v", right.BestHP)
	}
}

func TestRecordNegativeHighPointKeepsFloor(t *testing.T) {
	t.Parallel()
	s := domain.NewSessionData("s-1", start, domain.DefaultConfig())
	s = s.Record(domain.Attempt{HighPoint: -2, RPE: 4})
	if s.BestHP != 0 {
		t.Fatalf("best hp = %v, want 0", s.BestHP)
	}
	if s.SendRate != 0 || s.AvgRPE != 4 {
		t.Fatalf("unexpected aggregates: %+v", s)
	}
}

func TestCloneCopiesAttempts(t *testing.T) {
	t.Parallel()
	s := domain.NewSessionData("s-1", start, domain.DefaultConfig()).Record(domain.Attempt{ID: "a1"})
	c := s.Clone()
	c.Attempts[0].ID = "changed"
	if s.Attempts[0].ID != "a1" {
		t.Fatalf("clone aliases attempts")
	}
}

func TestSessionTypeValidate(t *testing.T) {
	t.Parallel()
	for _, typ := range []domain.SessionType{domain.SessionTypeTraining, domain.SessionTypeCompetition} {
		if err := typ.Validate(); err != nil {
			t.Fatalf("%s should be valid: %v", typ, err)
		}
	}
	if err := domain.SessionType("bouldering").Validate(); err == nil {
		t.Fatalf("expected unknown type to fail")
	}
}

func TestScreenParseRoundTrip(t *testing.T) {
	t.Parallel()
	screens := domain.Screens()
	if len(screens) != 8 {
		t.Fatalf("expected 8 screens, got %d", len(screens))
	}
	for _, s := range screens {
		parsed, ok := domain.ParseScreen(s.String())
		if !ok || parsed != s {
			t.Fatalf("round trip failed for %s", s)
		}
	}
	if _, ok := domain.ParseScreen("session-warmup"); ok {
		t.Fatalf("unknown screen should not parse")
	}
	if domain.Screen(42).Valid() {
		t.Fatalf("out of range screen reported valid")
	}
	if got := domain.Screen(42).String(); got != "screen(42)" {
		t.Fatalf("unexpected string for invalid screen: %s", got)
	}
}

func TestDraftOverlayAndFinalize(t *testing.T) {
	t.Parallel()
	clip := "Slab Traverse"
	at := start.Add(5 * time.Minute)
	base := domain.AttemptDraft{Clip: &clip, Time: &at}
	if base.Empty() {
		t.Fatalf("draft with fields reported empty")
	}

	success := true
	hp, rpe := 7.5, 6.0
	notes := "heel hook"
	merged := base.Overlay(domain.AttemptDraft{Success: &success, HighPoint: &hp, RPE: &rpe, Notes: &notes})

	a, err := merged.Finalize(domain.AttemptDefaults{ID: "a-1", Time: start, Clip: "Dyno Box", Rest: time.Minute})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if a.ID != "a-1" || !a.Time.Equal(at) || a.Clip != clip || a.Rest != time.Minute {
		t.Fatalf("defaults applied wrongly: %+v", a)
	}
	if !a.Success || a.HighPoint != 7.5 || a.RPE != 6 || a.Notes != "heel hook" {
		t.Fatalf("draft fields lost: %+v", a)
	}
}

func TestDraftFinalizeRequiresFields(t *testing.T) {
	t.Parallel()
	if !(domain.AttemptDraft{}).Empty() {
		t.Fatalf("zero draft should be empty")
	}
	hp := 3.0
	_, err := domain.AttemptDraft{HighPoint: &hp}.Finalize(domain.AttemptDefaults{})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if got := err.Error(); got != "invalid input: attempt draft missing success, rpe" {
		t.Fatalf("unexpected message: %s", got)
	}
}
