package service

import (
	"context"
	"time"

	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/alexanderramin/jornada/internal/repository"
)

type historyService struct {
	sessions repository.SessionRepo
	now      func() time.Time
}

// NewHistoryService creates the read-only history service.
func NewHistoryService(sessions repository.SessionRepo) HistoryService {
	return &historyService{sessions: sessions, now: time.Now}
}

func (s *historyService) List(ctx context.Context) ([]*domain.WorkSession, error) {
	return s.sessions.List(ctx)
}

func (s *historyService) ListRange(ctx context.Context, r domain.HistoryRange) ([]*domain.WorkSession, error) {
	startDate, endDate := domain.RangeBounds(r, s.now())
	return s.sessions.ListByDateRange(ctx, startDate, endDate)
}

func (s *historyService) ListBetween(ctx context.Context, startDate, endDate string) ([]*domain.WorkSession, error) {
	return s.sessions.ListByDateRange(ctx, startDate, endDate)
}
