package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pkgsync "github.com/ctmis/ctgov-sync/internal/sync"
	syncmocks "github.com/ctmis/ctgov-sync/internal/sync/mocks"
)

func TestCoordinatorRunsOnInterval(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	manager := syncmocks.NewMockManager(ctrl)

	// Initial run plus at least one tick.
	manager.EXPECT().
		PerformSync(gomock.Any()).
		Return(&pkgsync.Result{}, nil).
		MinTimes(2)

	c := New(manager, 20*time.Millisecond)

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Start(context.Background())
	}()

	time.Sleep(150 * time.Millisecond)
	require.NoError(t, c.Stop())

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("coordinator did not stop")
	}
}

func TestCoordinatorKeepsRunningAfterFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	manager := syncmocks.NewMockManager(ctrl)

	// A failed run must not stop the schedule.
	manager.EXPECT().
		PerformSync(gomock.Any()).
		Return(nil, &pkgsync.Error{Message: "fetch failed", Stage: pkgsync.StageFetch}).
		MinTimes(2)

	c := New(manager, 20*time.Millisecond)

	go func() {
		_ = c.Start(context.Background())
	}()

	time.Sleep(150 * time.Millisecond)
	require.NoError(t, c.Stop())
}

func TestCoordinatorStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	manager := syncmocks.NewMockManager(ctrl)

	manager.EXPECT().
		PerformSync(gomock.Any()).
		Return(&pkgsync.Result{}, nil).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	c := New(manager, time.Hour)

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("coordinator did not stop on context cancellation")
	}
}

func TestJitteredInterval(t *testing.T) {
	t.Parallel()

	interval := time.Hour
	for i := 0; i < 100; i++ {
		jittered := jitteredInterval(interval)
		assert.GreaterOrEqual(t, jittered, interval-interval/10)
		assert.LessOrEqual(t, jittered, interval+interval/10)
	}
}
