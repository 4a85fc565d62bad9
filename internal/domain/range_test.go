package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseAnalysisRange(t *testing.T) {
	r, err := ParseAnalysisRange("ytd")
	require.NoError(t, err)
	require.Equal(t, RangeYTD, r)

	_, err = ParseAnalysisRange("10Y")
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestAnalysisRange_Window(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	day := func(m time.Month, d int) time.Time {
		return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("fixed ranges end today", func(t *testing.T) {
		w := Range7D.Window(now, 0)
		require.Equal(t, day(3, 4), w.Start)
		require.Equal(t, day(3, 10), w.End)
		require.Equal(t, 7, w.Days)
		require.Len(t, w.Dates(), 7)

		require.Equal(t, 2, Range24H.Window(now, 0).Days)
		require.Equal(t, Range30D.Window(now, 0), Range1M.Window(now, 0))
	})

	t.Run("ytd starts jan 1", func(t *testing.T) {
		w := RangeYTD.Window(now, 0)
		require.Equal(t, day(1, 1), w.Start)
		require.Equal(t, 70, w.Days)
	})

	t.Run("all is capped", func(t *testing.T) {
		require.Equal(t, 100, RangeALL.Window(now, 100).Days)
		require.Equal(t, DefaultAllRangeDays, RangeALL.Window(now, 0).Days)
	})

	t.Run("contains", func(t *testing.T) {
		w := NewWindow(day(3, 1), day(3, 10))
		require.True(t, w.Contains(time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)))
		require.False(t, w.Contains(day(2, 29)))
	})
}
