package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "cruxlog/internal/platform/errors"
)

// AttemptDraft is an attempt under construction. Every field is optional
// until the draft is finalized.
type AttemptDraft struct {
	Time      *time.Time
	Clip      *string
	Success   *bool
	HighPoint *float64
	RPE       *float64
	Rest      *time.Duration
	Notes     *string
}

func (d AttemptDraft) Empty() bool {
	return d.Time == nil && d.Clip == nil && d.Success == nil &&
		d.HighPoint == nil && d.RPE == nil && d.Rest == nil && d.Notes == nil
}

// Overlay returns d with every field set in other copied over.
func (d AttemptDraft) Overlay(other AttemptDraft) AttemptDraft {
	if other.Time != nil {
		d.Time = other.Time
	}
	if other.Clip != nil {
		d.Clip = other.Clip
	}
	if other.Success != nil {
		d.Success = other.Success
	}
	if other.HighPoint != nil {
		d.HighPoint = other.HighPoint
	}
	if other.RPE != nil {
		d.RPE = other.RPE
	}
	if other.Rest != nil {
		d.Rest = other.Rest
	}
	if other.Notes != nil {
		d.Notes = other.Notes
	}
	return d
}

// AttemptDefaults fills draft fields the user never supplied. The id always
// comes from here.
type AttemptDefaults struct {
	ID   string
	Time time.Time
	Clip string
	Rest time.Duration
}

// Validate reports the required fields still missing. Success, high point
// and RPE have no sensible default.
func (d AttemptDraft) Validate() error {
	var missing []string
	if d.Success == nil {
		missing = append(missing, "success")
	}
	if d.HighPoint == nil {
		missing = append(missing, "high point")
	}
	if d.RPE == nil {
		missing = append(missing, "rpe")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: attempt draft missing %s", apperrors.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// Finalize converts the draft into an Attempt.
func (d AttemptDraft) Finalize(defaults AttemptDefaults) (Attempt, error) {
	if err := d.Validate(); err != nil {
		return Attempt{}, err
	}
	a := Attempt{
		ID:        defaults.ID,
		Time:      defaults.Time,
		Clip:      defaults.Clip,
		Success:   *d.Success,
		HighPoint: *d.HighPoint,
		RPE:       *d.RPE,
		Rest:      defaults.Rest,
	}
	if d.Time != nil {
		a.Time = *d.Time
	}
	if d.Clip != nil {
		a.Clip = *d.Clip
	}
	if d.Rest != nil {
		a.Rest = *d.Rest
	}
	if d.Notes != nil {
		a.Notes = *d.Notes
	}
	return a, nil
}
