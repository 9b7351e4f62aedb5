package state_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctmis/ctgov-sync/database"
	"github.com/ctmis/ctgov-sync/internal/sync/state"
)

func TestDBStateService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool, cleanupFunc := database.SetupTestDBContainer(t, ctx)
	t.Cleanup(cleanupFunc)

	svc := state.NewDBStateService(pool)

	// No runs recorded yet.
	latest, err := svc.LatestRun(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	// Start a run and complete it.
	id, err := svc.StartRun(ctx)
	require.NoError(t, err)

	latest, err = svc.LatestRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, id, latest.ID)
	assert.Equal(t, state.RunStatusRunning, latest.Status)
	assert.Nil(t, latest.FinishedAt)

	watermark := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	err = svc.CompleteRun(ctx, id, state.RunSummary{
		Watermark: watermark,
		Pages:     2,
		Inserted:  10,
		Updated:   3,
		Unchanged: 1,
		Dropped:   1,
	})
	require.NoError(t, err)

	latest, err = svc.LatestRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, state.RunStatusCompleted, latest.Status)
	require.NotNil(t, latest.FinishedAt)
	assert.Equal(t, 10, latest.Summary.Inserted)
	assert.Equal(t, watermark, latest.Summary.Watermark.UTC())

	// Fail a second run; the counts accumulated before the failure survive.
	id2, err := svc.StartRun(ctx)
	require.NoError(t, err)
	err = svc.FailRun(ctx, id2, state.RunSummary{
		Watermark: watermark,
		Pages:     1,
		Inserted:  4,
		Dropped:   1,
	}, "registry unavailable")
	require.NoError(t, err)

	runs, err := svc.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, state.RunStatusFailed, runs[0].Status)
	assert.Equal(t, "registry unavailable", runs[0].Error)
	assert.Equal(t, 1, runs[0].Summary.Pages)
	assert.Equal(t, 4, runs[0].Summary.Inserted)
	assert.Equal(t, 1, runs[0].Summary.Dropped)
}
