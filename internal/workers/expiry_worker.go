package workers

import (
	"context"
	"time"

	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/logging"
)

// ExpiryWorker sweeps empty legs whose availability window has passed.
type ExpiryWorker struct {
	legs     *repositories.EmptyLegRepository
	interval time.Duration
}

func NewExpiryWorker(legs *repositories.EmptyLegRepository, interval time.Duration) *ExpiryWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ExpiryWorker{legs: legs, interval: interval}
}

// Start runs the sweep on a ticker until the context is cancelled.
func (w *ExpiryWorker) Start(ctx context.Context) {
	logging.Info("Empty leg expiry worker started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Empty leg expiry worker shutting down")
			return
		case <-ticker.C:
			expired, err := w.legs.ExpireOlderThan(ctx, time.Now().UTC())
			if err != nil {
				logging.Error("Empty leg expiry sweep failed", "error", err.Error())
				continue
			}
			if expired > 0 {
				logging.Info("Expired empty legs", "count", expired)
			}
		}
	}
}
