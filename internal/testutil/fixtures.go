package testutil

import (
	"time"

	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/google/uuid"
)

// SessionOption customizes a test work session.
type SessionOption func(*domain.WorkSession)

// WithStart moves the session's clock-in to the given instant (and its date
// with it).
func WithStart(t time.Time) SessionOption {
	return func(s *domain.WorkSession) {
		s.StartTime = t
		s.Date = domain.DateOf(t)
	}
}

// WithBreakfast records a completed breakfast break.
func WithBreakfast(start, end time.Time) SessionOption {
	return func(s *domain.WorkSession) {
		s.BreakfastStart = &start
		s.BreakfastEnd = &end
	}
}

// WithSnack records a completed snack break.
func WithSnack(start, end time.Time) SessionOption {
	return func(s *domain.WorkSession) {
		s.SnackStart = &start
		s.SnackEnd = &end
	}
}

// NewOpenSession builds an open session started at the given instant.
func NewOpenSession(start time.Time, opts ...SessionOption) *domain.WorkSession {
	s := domain.NewWorkSession(uuid.New().String(), start)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFinishedSession builds a session started and finished at the given
// instants, with totals computed the same way the lifecycle does.
func NewFinishedSession(start, end time.Time, opts ...SessionOption) *domain.WorkSession {
	s := domain.NewWorkSession(uuid.New().String(), start)
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Finish(end); err != nil {
		panic(err) // fixtures are always open before Finish
	}
	return s
}
