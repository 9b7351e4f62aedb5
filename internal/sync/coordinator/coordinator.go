// Package coordinator schedules periodic sync runs in daemon mode.
package coordinator

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/ctmis/ctgov-sync/internal/logger"
	pkgsync "github.com/ctmis/ctgov-sync/internal/sync"
)

// defaultSyncInterval is used when no interval is configured. The registry
// publishes updates daily, so syncing more often rarely finds new data.
const defaultSyncInterval = 24 * time.Hour

// Coordinator manages background sync scheduling and execution
type Coordinator interface {
	// Start runs an immediate sync and then syncs on a jittered interval.
	// Blocks until the context is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully stops the coordinator
	Stop() error
}

// defaultCoordinator is the default implementation of Coordinator
type defaultCoordinator struct {
	manager  pkgsync.Manager
	interval time.Duration

	// Lifecycle management
	cancelFunc context.CancelFunc
	done       chan struct{}
}

// New creates a new coordinator. A non-positive interval falls back to the
// default daily schedule.
func New(manager pkgsync.Manager, interval time.Duration) Coordinator {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &defaultCoordinator{
		manager:  manager,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// jitteredInterval applies a random offset of up to ±10% to the interval so
// multiple instances don't hit the registry at the same moment.
func jitteredInterval(interval time.Duration) time.Duration {
	jitter := interval / 10
	if jitter <= 0 {
		return interval
	}
	//nolint:gosec // G404: Non-cryptographic randomness is sufficient for scheduling jitter
	offset := time.Duration(rand.Int64N(int64(2*jitter))) - jitter
	return interval + offset
}

// Start begins background sync coordination
func (c *defaultCoordinator) Start(ctx context.Context) error {
	logger.Infof("Starting sync coordinator with interval %s", c.interval)

	coordCtx, cancel := context.WithCancel(ctx)
	c.cancelFunc = cancel
	defer func() {
		close(c.done)
		logger.Info("Sync coordinator shut down")
	}()

	ticker := time.NewTicker(jitteredInterval(c.interval))
	defer ticker.Stop()

	// Run an initial sync immediately rather than waiting a full interval.
	c.runSync(coordCtx)

	for {
		select {
		case <-ticker.C:
			c.runSync(coordCtx)

			// Recalculate jitter for the next iteration
			ticker.Reset(jitteredInterval(c.interval))
		case <-coordCtx.Done():
			logger.Info("Sync coordinator stopping")
			return nil
		}
	}
}

// Stop gracefully stops the coordinator
func (c *defaultCoordinator) Stop() error {
	if c.cancelFunc != nil {
		logger.Info("Stopping sync coordinator")
		c.cancelFunc()
		// Wait for the loop to finish
		<-c.done
	}
	return nil
}

// runSync executes one sync run. Run failures are logged and do not stop the
// schedule; the next tick tries again.
func (c *defaultCoordinator) runSync(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if _, syncErr := c.manager.PerformSync(ctx); syncErr != nil {
		logger.Errorf("Scheduled sync run failed: %v", syncErr)
	}
}
