package sweeper

import (
	"context"
	"time"

	"github.com/example/branch-scheduler/internal/branches"
	"go.uber.org/zap"
)

// Sweeper polls for abandoned schedule drafts and discards them. A draft left
// untouched longer than TTL belongs to a settings session that was never
// published or closed cleanly.
type Sweeper struct {
	Repo     branches.Repository
	TTL      time.Duration
	Interval time.Duration
	Log      *zap.Logger
}

func (s *Sweeper) Run(ctx context.Context) error {
	t := time.NewTicker(s.Interval)
	defer t.Stop()

	// kick immediately
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.TTL)
	ids, err := s.Repo.StaleDrafts(ctx, cutoff)
	if err != nil {
		s.Log.Warn("stale draft query failed", zap.Error(err))
		return
	}
	for _, id := range ids {
		if err := s.Repo.DiscardDraft(ctx, id); err != nil {
			s.Log.Warn("discard failed", zap.String("branch", id.String()), zap.Error(err))
			continue
		}
		s.Log.Info("stale draft discarded", zap.String("branch", id.String()))
	}
}
