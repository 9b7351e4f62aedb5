package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctmis/ctgov-sync/internal/models"
	"github.com/ctmis/ctgov-sync/internal/store"
)

func ptr[T any](v T) *T {
	return &v
}

func testRecord(nctID string, lastUpdate time.Time) *models.TrialRecord {
	return &models.TrialRecord{
		NCTID:          nctID,
		BriefTitle:     ptr("Original title"),
		Status:         ptr("RECRUITING"),
		Enrollment:     ptr(int32(100)),
		LastUpdateDate: lastUpdate,
	}
}

func TestMemoryStoreUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("insert then unchanged on same date", func(t *testing.T) {
		t.Parallel()

		s := store.NewMemoryStore()
		result, err := s.Upsert(ctx, testRecord("NCT00000001", day1))
		require.NoError(t, err)
		assert.Equal(t, store.ResultInserted, result)

		result, err = s.Upsert(ctx, testRecord("NCT00000001", day1))
		require.NoError(t, err)
		assert.Equal(t, store.ResultUnchanged, result)

		count, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("newer date replaces mutable fields and keeps identification", func(t *testing.T) {
		t.Parallel()

		s := store.NewMemoryStore()
		_, err := s.Upsert(ctx, testRecord("NCT00000002", day1))
		require.NoError(t, err)

		updated := testRecord("NCT00000002", day2)
		updated.BriefTitle = ptr("Renamed title")
		updated.Status = ptr("COMPLETED")
		updated.Enrollment = ptr(int32(300))

		result, err := s.Upsert(ctx, updated)
		require.NoError(t, err)
		assert.Equal(t, store.ResultUpdated, result)

		stored, ok, err := s.Get(ctx, "NCT00000002")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Original title", *stored.BriefTitle)
		assert.Equal(t, "COMPLETED", *stored.Status)
		assert.Equal(t, int32(300), *stored.Enrollment)
		assert.Equal(t, day2, stored.LastUpdateDate)
	})

	t.Run("watermark tracks maximum last update date", func(t *testing.T) {
		t.Parallel()

		s := store.NewMemoryStore()

		_, ok, err := s.Watermark(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = s.Upsert(ctx, testRecord("NCT00000003", day1))
		require.NoError(t, err)
		_, err = s.Upsert(ctx, testRecord("NCT00000004", day2))
		require.NoError(t, err)

		watermark, ok, err := s.Watermark(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, day2, watermark)
	})

	t.Run("get missing record", func(t *testing.T) {
		t.Parallel()

		s := store.NewMemoryStore()
		record, ok, err := s.Get(ctx, "NCT09999999")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, record)
	})
}
