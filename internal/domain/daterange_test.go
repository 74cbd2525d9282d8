package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 14, 30, 0, 0, time.Local)
}

func TestParseHistoryRange(t *testing.T) {
	r, err := ParseHistoryRange("week")
	require.NoError(t, err)
	assert.Equal(t, RangeWeek, r)

	_, err = ParseHistoryRange("fortnight")
	assert.Error(t, err)
}

func TestRangeBounds_Week_MondayStart(t *testing.T) {
	// Wednesday 2025-03-12 falls in Mon 2025-03-10 .. Sun 2025-03-16.
	start, end := RangeBounds(RangeWeek, date(2025, time.March, 12))
	assert.Equal(t, "2025-03-10", start)
	assert.Equal(t, "2025-03-16", end)

	// A Sunday belongs to the week ending that Sunday, not the next one.
	start, end = RangeBounds(RangeWeek, date(2025, time.March, 16))
	assert.Equal(t, "2025-03-10", start)
	assert.Equal(t, "2025-03-16", end)

	// A Monday starts its own week.
	start, end = RangeBounds(RangeWeek, date(2025, time.March, 10))
	assert.Equal(t, "2025-03-10", start)
	assert.Equal(t, "2025-03-16", end)
}

func TestRangeBounds_Week_AcrossMonthBoundary(t *testing.T) {
	// Tuesday 2025-04-01: the week began Monday 2025-03-31.
	start, end := RangeBounds(RangeWeek, date(2025, time.April, 1))
	assert.Equal(t, "2025-03-31", start)
	assert.Equal(t, "2025-04-06", end)
}

func TestRangeBounds_Month(t *testing.T) {
	start, end := RangeBounds(RangeMonth, date(2025, time.February, 14))
	assert.Equal(t, "2025-02-01", start)
	assert.Equal(t, "2025-02-28", end)

	start, end = RangeBounds(RangeMonth, date(2024, time.February, 14))
	assert.Equal(t, "2024-02-29", end, "leap year february has 29 days")
	assert.Equal(t, "2024-02-01", start)
}

func TestRangeBounds_Year(t *testing.T) {
	start, end := RangeBounds(RangeYear, date(2025, time.June, 30))
	assert.Equal(t, "2025-01-01", start)
	assert.Equal(t, "2025-12-31", end)
}

func TestFilterByRange_InclusiveBoundaries(t *testing.T) {
	mk := func(d string) *WorkSession {
		return &WorkSession{ID: d, Date: d, Status: StatusFinished}
	}
	sessions := []*WorkSession{
		mk("2025-03-09"), // Sunday of the previous week
		mk("2025-03-10"), // Monday, range start
		mk("2025-03-13"),
		mk("2025-03-16"), // Sunday, range end
		mk("2025-03-17"), // next Monday
	}

	got := FilterByRange(sessions, RangeWeek, date(2025, time.March, 12))
	require.Len(t, got, 3)
	assert.Equal(t, "2025-03-10", got[0].Date)
	assert.Equal(t, "2025-03-13", got[1].Date)
	assert.Equal(t, "2025-03-16", got[2].Date)
}

func TestFilterByRange_KeepsOpenSessions(t *testing.T) {
	open := &WorkSession{ID: "open", Date: "2025-03-12", Status: StatusWorking}
	got := FilterByRange([]*WorkSession{open}, RangeWeek, date(2025, time.March, 12))
	assert.Len(t, got, 1)
}

func TestRetentionCutoff(t *testing.T) {
	now := date(2025, time.March, 12)
	assert.Equal(t, "2022-03-12", RetentionCutoff(now))
}
