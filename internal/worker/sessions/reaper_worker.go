// Package sessions holds the background worker that reaps idle map
// sessions so their highlight timers cannot outlive an abandoned view.
package sessions

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nuibaden/tourism-service/internal/usecase"
	"github.com/nuibaden/tourism-service/internal/worker"
)

// ReaperWorker periodically closes sessions idle longer than the TTL.
type ReaperWorker struct {
	*worker.BaseWorker
	manager  *usecase.MapSessionManager
	interval time.Duration
	ttl      time.Duration
}

// NewReaperWorker creates a new ReaperWorker.
func NewReaperWorker(
	manager *usecase.MapSessionManager,
	interval time.Duration,
	ttl time.Duration,
	logger *zap.Logger,
) *ReaperWorker {
	return &ReaperWorker{
		BaseWorker: worker.NewBaseWorker("session-reaper", logger),
		manager:    manager,
		interval:   interval,
		ttl:        ttl,
	}
}

// Start runs the sweep loop until the context is cancelled or Stop is called.
func (w *ReaperWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Logger().Info("Session reaper started",
		zap.Duration("interval", w.interval),
		zap.Duration("ttl", w.ttl),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.StopChan():
			return nil
		case <-ticker.C:
			closed := w.manager.SweepIdle(time.Now().Add(-w.ttl))
			if closed > 0 {
				w.Logger().Info("Closed idle map sessions",
					zap.Int("count", closed),
					zap.Int("remaining", w.manager.Count()),
				)
			}
		}
	}
}
