package service

import (
	"context"

	"github.com/alexanderramin/jornada/internal/domain"
)

// ClockService owns the work-session lifecycle: one transition per method,
// each executed as a single read-validate-write transaction. Methods return
// the session as stored after the transition.
type ClockService interface {
	// Start opens today's session. Fails with domain.ErrConflict while any
	// session, on any date, is still open.
	Start(ctx context.Context) (*domain.WorkSession, error)
	StartBreakfast(ctx context.Context, id string) (*domain.WorkSession, error)
	EndBreakfast(ctx context.Context, id string) (*domain.WorkSession, error)
	StartSnack(ctx context.Context, id string) (*domain.WorkSession, error)
	EndSnack(ctx context.Context, id string) (*domain.WorkSession, error)
	End(ctx context.Context, id string) (*domain.WorkSession, error)
	// Today returns the most recently started session of the current
	// calendar date, or nil when none exists.
	Today(ctx context.Context) (*domain.WorkSession, error)
}

// HistoryService reads finalized and open sessions for display.
type HistoryService interface {
	List(ctx context.Context) ([]*domain.WorkSession, error)
	ListRange(ctx context.Context, r domain.HistoryRange) ([]*domain.WorkSession, error)
	// ListBetween filters by explicit YYYY-MM-DD dates, both inclusive.
	ListBetween(ctx context.Context, startDate, endDate string) ([]*domain.WorkSession, error)
}

// RetentionService deletes sessions older than the rolling cutoff.
type RetentionService interface {
	// Sweep removes sessions dated on or before today minus three years
	// and returns the count plus the cutoff used.
	Sweep(ctx context.Context) (int64, string, error)
}
