package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/jornada/internal/db"
	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/alexanderramin/jornada/internal/repository"
	"github.com/google/uuid"
)

type clockService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	now      func() time.Time
}

// NewClockService creates the lifecycle service. Reads go through the given
// repo; every transition runs inside its own transaction so the store
// serializes conflicting writes.
func NewClockService(sessions repository.SessionRepo, uow db.UnitOfWork) ClockService {
	return &clockService{sessions: sessions, uow: uow, now: time.Now}
}

func (s *clockService) Start(ctx context.Context) (*domain.WorkSession, error) {
	sess := domain.NewWorkSession(uuid.New().String(), s.now())

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		// Friendly precondition check; the partial unique index on open
		// rows is what actually closes the race between two starts.
		open, err := txSessions.GetOpen(ctx)
		if err == nil {
			return fmt.Errorf("session %s from %s is still open: %w", open.ID, open.Date, domain.ErrConflict)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		return txSessions.Create(ctx, sess)
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *clockService) StartBreakfast(ctx context.Context, id string) (*domain.WorkSession, error) {
	return s.transition(ctx, id, (*domain.WorkSession).StartBreakfast)
}

func (s *clockService) EndBreakfast(ctx context.Context, id string) (*domain.WorkSession, error) {
	return s.transition(ctx, id, (*domain.WorkSession).EndBreakfast)
}

func (s *clockService) StartSnack(ctx context.Context, id string) (*domain.WorkSession, error) {
	return s.transition(ctx, id, (*domain.WorkSession).StartSnack)
}

func (s *clockService) EndSnack(ctx context.Context, id string) (*domain.WorkSession, error) {
	return s.transition(ctx, id, (*domain.WorkSession).EndSnack)
}

func (s *clockService) End(ctx context.Context, id string) (*domain.WorkSession, error) {
	return s.transition(ctx, id, (*domain.WorkSession).Finish)
}

func (s *clockService) Today(ctx context.Context) (*domain.WorkSession, error) {
	sess, err := s.sessions.GetForDate(ctx, domain.DateOf(s.now()))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// transition loads the session, applies one lifecycle step and persists the
// result, all within a single transaction.
func (s *clockService) transition(ctx context.Context, id string, apply func(*domain.WorkSession, time.Time) error) (*domain.WorkSession, error) {
	var out *domain.WorkSession

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		sess, err := txSessions.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(sess, s.now()); err != nil {
			return err
		}
		if err := txSessions.Update(ctx, sess); err != nil {
			return err
		}
		out = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
