package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/store"
)

var refreshMu sync.Mutex

// RunRefreshOnce refreshes every storefront collection once and returns
// the first fetch error so on-demand callers can report it; the store
// keeps whatever it already had for the collections that failed.
// A concurrent call waits its turn so a stale snapshot never lands on top
// of a newer one.
func RunRefreshOnce(ctx context.Context, entities *store.EntityStore, logger *zap.Logger) error {
	refreshMu.Lock()
	defer refreshMu.Unlock()

	start := time.Now()
	if err := entities.RefreshAll(ctx); err != nil {
		logger.Warn("Store refresh completed with errors", zap.Error(err))
		return err
	}
	logger.Info("Store refresh completed", zap.Duration("took", time.Since(start)))
	return nil
}

// RunRefreshLoop refreshes on startup, then every interval until the
// context is cancelled. Failures are already logged per collection, so
// the loop just carries on and retries next tick.
func RunRefreshLoop(ctx context.Context, entities *store.EntityStore, interval time.Duration, logger *zap.Logger) {
	_ = RunRefreshOnce(ctx, entities, logger)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = RunRefreshOnce(ctx, entities, logger)
		}
	}
}
