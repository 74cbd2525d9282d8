package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/jornada/internal/domain"
)

// ErrNotFound is returned when a query matches no session.
var ErrNotFound = errors.New("not found")

// SessionRepo is the store boundary for work sessions. Listing methods
// return sessions ordered by date descending, then start time descending.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.WorkSession) error
	Update(ctx context.Context, s *domain.WorkSession) error
	GetByID(ctx context.Context, id string) (*domain.WorkSession, error)
	// GetForDate returns the most recent session (by start time) on the
	// given calendar date.
	GetForDate(ctx context.Context, date string) (*domain.WorkSession, error)
	// GetOpen returns the single session with no end time, if any.
	GetOpen(ctx context.Context) (*domain.WorkSession, error)
	List(ctx context.Context) ([]*domain.WorkSession, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.WorkSession, error)
	// DeleteOlderThan removes sessions dated on or before cutoffDate and
	// reports how many were deleted.
	DeleteOlderThan(ctx context.Context, cutoffDate string) (int64, error)
}
