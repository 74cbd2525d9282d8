package domain

import (
	"fmt"
	"time"
)

// WorkSession is one calendar day's work record: clock-in, up to two timed
// breaks (breakfast, snack) and clock-out. Totals are computed once, at
// finalization, and stay nil before then.
type WorkSession struct {
	ID        string
	Date      string // YYYY-MM-DD, local wall clock
	StartTime time.Time

	BreakfastStart *time.Time
	BreakfastEnd   *time.Time
	SnackStart     *time.Time
	SnackEnd       *time.Time

	EndTime *time.Time
	Status  SessionStatus

	TotalWorkMinutes  *int
	TotalBreakMinutes *int
	ActualWorkMinutes *int
}

// NewWorkSession creates an open session clocked in at now.
func NewWorkSession(id string, now time.Time) *WorkSession {
	return &WorkSession{
		ID:        id,
		Date:      DateOf(now),
		StartTime: now,
		Status:    StatusWorking,
	}
}

// Open reports whether the session has no recorded end time.
func (s *WorkSession) Open() bool {
	return s.EndTime == nil
}

// StartBreakfast begins the breakfast break.
func (s *WorkSession) StartBreakfast(now time.Time) error {
	if s.EndTime != nil {
		return fmt.Errorf("session already finished: %w", ErrConflict)
	}
	if s.Status != StatusWorking {
		return fmt.Errorf("must be working to start a break: %w", ErrIllegalState)
	}
	if s.BreakfastStart != nil {
		return fmt.Errorf("breakfast break already started: %w", ErrConflict)
	}
	s.BreakfastStart = &now
	s.Status = StatusBreakfast
	return nil
}

// EndBreakfast closes the breakfast break. It deliberately checks only the
// break fields, not Status: a break left open by a manual correction can
// still be closed. Status is rewritten to keep it consistent.
func (s *WorkSession) EndBreakfast(now time.Time) error {
	if s.BreakfastStart == nil {
		return fmt.Errorf("breakfast break not started: %w", ErrIllegalState)
	}
	if s.BreakfastEnd != nil {
		return fmt.Errorf("breakfast break already ended: %w", ErrConflict)
	}
	s.BreakfastEnd = &now
	s.Status = StatusWorking
	return nil
}

// StartSnack begins the snack break.
func (s *WorkSession) StartSnack(now time.Time) error {
	if s.EndTime != nil {
		return fmt.Errorf("session already finished: %w", ErrConflict)
	}
	if s.Status != StatusWorking {
		return fmt.Errorf("must be working to start a break: %w", ErrIllegalState)
	}
	if s.SnackStart != nil {
		return fmt.Errorf("snack break already started: %w", ErrConflict)
	}
	s.SnackStart = &now
	s.Status = StatusSnack
	return nil
}

// EndSnack closes the snack break. Same field-only precondition as
// EndBreakfast.
func (s *WorkSession) EndSnack(now time.Time) error {
	if s.SnackStart == nil {
		return fmt.Errorf("snack break not started: %w", ErrIllegalState)
	}
	if s.SnackEnd != nil {
		return fmt.Errorf("snack break already ended: %w", ErrConflict)
	}
	s.SnackEnd = &now
	s.Status = StatusWorking
	return nil
}

// Finish clocks the session out at now and fixes the three totals.
func (s *WorkSession) Finish(now time.Time) error {
	if s.EndTime != nil {
		return fmt.Errorf("session already finished: %w", ErrConflict)
	}
	total, brk, actual := s.TotalsAt(now)
	s.EndTime = &now
	s.Status = StatusFinished
	s.TotalWorkMinutes = &total
	s.TotalBreakMinutes = &brk
	s.ActualWorkMinutes = &actual
	return nil
}

// DerivedStatus computes the status implied by the break and end fields,
// ignoring the stored Status. The stored field can drift (EndBreakfast and
// EndSnack do not require a matching Status); display paths that want
// strict consistency use this instead.
func (s *WorkSession) DerivedStatus() SessionStatus {
	switch {
	case s.EndTime != nil:
		return StatusFinished
	case s.BreakfastStart != nil && s.BreakfastEnd == nil:
		return StatusBreakfast
	case s.SnackStart != nil && s.SnackEnd == nil:
		return StatusSnack
	default:
		return StatusWorking
	}
}
