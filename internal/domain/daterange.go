package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateOf formats an instant as a calendar date in local wall-clock time.
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseHistoryRange validates a range selector string.
func ParseHistoryRange(s string) (HistoryRange, error) {
	if !ValidHistoryRanges[s] {
		return "", fmt.Errorf("invalid range %q (want week, month or year)", s)
	}
	return HistoryRange(s), nil
}

// RangeBounds returns the first and last calendar date of the week, month
// or year containing now. Weeks start on Monday, so a Sunday belongs to the
// week ending that Sunday, not the following one.
func RangeBounds(r HistoryRange, now time.Time) (startDate, endDate string) {
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch r {
	case RangeMonth:
		first := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return DateOf(first), DateOf(last)
	case RangeYear:
		return DateOf(time.Date(y, 1, 1, 0, 0, 0, 0, now.Location())),
			DateOf(time.Date(y, 12, 31, 0, 0, 0, 0, now.Location()))
	default: // RangeWeek
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		monday := day.AddDate(0, 0, -offset)
		return DateOf(monday), DateOf(monday.AddDate(0, 0, 6))
	}
}

// FilterByRange keeps sessions whose date falls inside the range containing
// now, boundaries inclusive. Dates are YYYY-MM-DD, so string comparison is
// chronological. Input order is preserved; open sessions are not excluded.
func FilterByRange(sessions []*WorkSession, r HistoryRange, now time.Time) []*WorkSession {
	startDate, endDate := RangeBounds(r, now)
	out := make([]*WorkSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Date >= startDate && s.Date <= endDate {
			out = append(out, s)
		}
	}
	return out
}

// RetentionCutoff returns the date three years before now. Sessions dated
// on or before the cutoff are eligible for deletion.
func RetentionCutoff(now time.Time) string {
	return DateOf(now.AddDate(-3, 0, 0))
}
