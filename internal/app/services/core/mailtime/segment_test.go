package mailtime

import (
	"mailtime-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singapore(t *testing.T, start, end int) models.OfficeHours {
	t.Helper()
	oh, err := models.NewOfficeHours("Asia/Singapore", start, end)
	require.NoError(t, err)
	return oh
}

func TestSegmentsBetween(t *testing.T) {
	oh := singapore(t, 8, 17)
	loc := oh.Location()

	t.Run("empty interval yields no segments", func(t *testing.T) {
		at := time.Date(2024, 1, 8, 12, 0, 0, 0, loc)
		assert.Empty(t, SegmentsBetween(oh, at, at))
	})

	t.Run("interval inside one working window", func(t *testing.T) {
		from := time.Date(2024, 1, 8, 12, 0, 0, 0, loc)
		to := time.Date(2024, 1, 8, 12, 1, 0, 0, loc)
		segments := SegmentsBetween(oh, from, to)
		require.Len(t, segments, 1)

		d, ok := segments[0].Duration()
		assert.True(t, ok)
		assert.Equal(t, time.Minute, d)
	})

	t.Run("pre-hours start does not contribute", func(t *testing.T) {
		from := time.Date(2024, 1, 8, 7, 0, 0, 0, loc)
		to := time.Date(2024, 1, 8, 8, 1, 0, 0, loc)
		segments := SegmentsBetween(oh, from, to)
		require.Len(t, segments, 2)

		_, ok := segments[0].Duration()
		assert.False(t, ok, "segment before the window must not contribute")

		d, ok := segments[1].Duration()
		assert.True(t, ok)
		assert.Equal(t, time.Minute, d)
	})

	t.Run("after-hours start resumes next morning", func(t *testing.T) {
		from := time.Date(2024, 1, 8, 19, 0, 0, 0, loc)
		to := time.Date(2024, 1, 9, 8, 1, 0, 0, loc)
		segments := SegmentsBetween(oh, from, to)

		assert.Equal(t, time.Minute, SumDurations(segments))
	})

	t.Run("saturday start jumps to monday", func(t *testing.T) {
		from := time.Date(2024, 1, 6, 12, 0, 0, 0, loc)
		to := time.Date(2024, 1, 8, 8, 30, 0, 0, loc)
		segments := SegmentsBetween(oh, from, to)

		assert.Equal(t, 30*time.Minute, SumDurations(segments))
	})

	t.Run("sunday start jumps to monday", func(t *testing.T) {
		from := time.Date(2024, 1, 7, 12, 0, 0, 0, loc)
		to := time.Date(2024, 1, 8, 8, 30, 0, 0, loc)
		segments := SegmentsBetween(oh, from, to)

		assert.Equal(t, 30*time.Minute, SumDurations(segments))
	})

	t.Run("friday evening resumes monday", func(t *testing.T) {
		from := time.Date(2024, 1, 5, 17, 30, 0, 0, loc)
		to := time.Date(2024, 1, 8, 8, 1, 0, 0, loc)
		segments := SegmentsBetween(oh, from, to)

		assert.Equal(t, time.Minute, SumDurations(segments))
	})

	t.Run("sub-second precision is truncated", func(t *testing.T) {
		from := time.Date(2024, 1, 8, 12, 0, 0, 900_000_000, loc)
		to := time.Date(2024, 1, 8, 12, 1, 0, 500_000_000, loc)
		segments := SegmentsBetween(oh, from, to)

		assert.Equal(t, time.Minute, SumDurations(segments))
	})
}

func TestSegmentAdvanceClampsToCutoff(t *testing.T) {
	oh := singapore(t, 8, 17)
	loc := oh.Location()

	seg := Segment{OfficeHours: oh, To: time.Date(2024, 1, 8, 12, 0, 0, 0, loc)}
	cutoff := time.Date(2024, 1, 8, 12, 30, 0, 0, loc)

	advanced := seg.Advance(cutoff)
	assert.True(t, advanced.To.Equal(cutoff))

	d, ok := advanced.Duration()
	assert.True(t, ok)
	assert.Equal(t, 30*time.Minute, d)
}
