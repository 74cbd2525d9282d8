package service

import (
	"context"
	"time"

	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/alexanderramin/jornada/internal/log"
	"github.com/alexanderramin/jornada/internal/repository"
)

type retentionService struct {
	sessions repository.SessionRepo
	now      func() time.Time
}

// NewRetentionService creates the retention sweeper.
func NewRetentionService(sessions repository.SessionRepo) RetentionService {
	return &retentionService{sessions: sessions, now: time.Now}
}

func (s *retentionService) Sweep(ctx context.Context) (int64, string, error) {
	cutoff := domain.RetentionCutoff(s.now())
	deleted, err := s.sessions.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, cutoff, err
	}
	return deleted, cutoff, nil
}

// RunRetentionLoop sweeps once immediately and then every interval until
// the context is cancelled. Sweep failures are logged and swallowed: losing
// a cleanup pass never takes the host process down.
func RunRetentionLoop(ctx context.Context, retention RetentionService, interval time.Duration) {
	logger := log.WithComponent("retention")

	sweep := func() {
		deleted, cutoff, err := retention.Sweep(ctx)
		if err != nil {
			logger.Error().Err(err).Str("cutoff", cutoff).Msg("retention sweep failed")
			return
		}
		logger.Info().Int64("deleted", deleted).Str("cutoff", cutoff).Msg("retention sweep completed")
	}

	sweep()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
