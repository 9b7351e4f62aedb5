package sqlc

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/ctmis/ctgov-sync/database"
)

func newRunID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func TestSyncRuns(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		scenarioFunc func(t *testing.T, queries *Queries)
	}{
		{
			name: "insert starts a running run",
			//nolint:thelper // We want to see these lines in the test output
			scenarioFunc: func(t *testing.T, queries *Queries) {
				id := newRunID()
				returned, err := queries.InsertSyncRun(context.Background(), id)
				require.NoError(t, err)
				require.Equal(t, id, returned)

				run, err := queries.GetLatestSyncRun(context.Background())
				require.NoError(t, err)
				require.Equal(t, id, run.ID)
				require.Equal(t, "running", run.Status)
				require.False(t, run.FinishedAt.Valid)
			},
		},
		{
			name: "complete records counts and watermark",
			//nolint:thelper // We want to see these lines in the test output
			scenarioFunc: func(t *testing.T, queries *Queries) {
				id := newRunID()
				_, err := queries.InsertSyncRun(context.Background(), id)
				require.NoError(t, err)

				err = queries.CompleteSyncRun(context.Background(), CompleteSyncRunParams{
					ID:               id,
					Watermark:        testDate(t, "2024-02-01"),
					PagesFetched:     3,
					RecordsInserted:  10,
					RecordsUpdated:   5,
					RecordsUnchanged: 2,
					RecordsDropped:   1,
				})
				require.NoError(t, err)

				run, err := queries.GetLatestSyncRun(context.Background())
				require.NoError(t, err)
				require.Equal(t, "completed", run.Status)
				require.True(t, run.FinishedAt.Valid)
				require.Equal(t, int32(3), run.PagesFetched)
				require.Equal(t, int32(10), run.RecordsInserted)
				require.Equal(t, int32(5), run.RecordsUpdated)
				require.Equal(t, int32(2), run.RecordsUnchanged)
				require.Equal(t, int32(1), run.RecordsDropped)
				require.Equal(t, testDate(t, "2024-02-01").Time, run.Watermark.Time)
			},
		},
		{
			name: "fail records error message and partial counts",
			//nolint:thelper // We want to see these lines in the test output
			scenarioFunc: func(t *testing.T, queries *Queries) {
				id := newRunID()
				_, err := queries.InsertSyncRun(context.Background(), id)
				require.NoError(t, err)

				err = queries.FailSyncRun(context.Background(), FailSyncRunParams{
					ID:              id,
					Watermark:       testDate(t, "2024-02-01"),
					PagesFetched:    1,
					RecordsInserted: 4,
					RecordsDropped:  1,
					ErrorMessage:    pgtype.Text{String: "registry unavailable", Valid: true},
				})
				require.NoError(t, err)

				run, err := queries.GetLatestSyncRun(context.Background())
				require.NoError(t, err)
				require.Equal(t, "failed", run.Status)
				require.Equal(t, "registry unavailable", run.ErrorMessage.String)
				require.Equal(t, int32(1), run.PagesFetched)
				require.Equal(t, int32(4), run.RecordsInserted)
				require.Equal(t, int32(1), run.RecordsDropped)
			},
		},
		{
			name: "list returns newest first",
			//nolint:thelper // We want to see these lines in the test output
			scenarioFunc: func(t *testing.T, queries *Queries) {
				first := newRunID()
				second := newRunID()
				_, err := queries.InsertSyncRun(context.Background(), first)
				require.NoError(t, err)
				_, err = queries.InsertSyncRun(context.Background(), second)
				require.NoError(t, err)

				runs, err := queries.ListSyncRuns(context.Background(), 10)
				require.NoError(t, err)
				require.Len(t, runs, 2)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pool, cleanupFunc := database.SetupTestDBContainer(t, context.Background())
			t.Cleanup(cleanupFunc)
			queries := New(pool)
			require.NotNil(t, queries)

			tc.scenarioFunc(t, queries)
		})
	}
}
