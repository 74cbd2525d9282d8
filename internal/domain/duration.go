package domain

import "time"

// ElapsedMinutes returns whole minutes between from and to, truncating
// toward zero. A 90-second interval yields 1.
func ElapsedMinutes(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}

// TotalsAt computes the session's totals as of now: minutes since clock-in,
// minutes spent in completed breaks, and actual worked minutes floored at
// zero. An open break contributes nothing until it is closed, so the same
// function serves both finalization and live display of an open session.
func (s *WorkSession) TotalsAt(now time.Time) (total, brk, actual int) {
	total = ElapsedMinutes(s.StartTime, now)
	if s.BreakfastStart != nil && s.BreakfastEnd != nil {
		brk += ElapsedMinutes(*s.BreakfastStart, *s.BreakfastEnd)
	}
	if s.SnackStart != nil && s.SnackEnd != nil {
		brk += ElapsedMinutes(*s.SnackStart, *s.SnackEnd)
	}
	actual = total - brk
	if actual < 0 {
		actual = 0
	}
	return total, brk, actual
}

// Summary aggregates totals over a set of finished sessions.
type Summary struct {
	TotalWorkMinutes  int
	TotalBreakMinutes int
	ActualWorkMinutes int
	Sessions          int
}

// Summarize sums the stored totals of finished sessions. Open sessions are
// counted but contribute nothing, since their totals are not fixed yet.
func Summarize(sessions []*WorkSession) Summary {
	var sum Summary
	for _, s := range sessions {
		sum.Sessions++
		if s.TotalWorkMinutes != nil {
			sum.TotalWorkMinutes += *s.TotalWorkMinutes
		}
		if s.TotalBreakMinutes != nil {
			sum.TotalBreakMinutes += *s.TotalBreakMinutes
		}
		if s.ActualWorkMinutes != nil {
			sum.ActualWorkMinutes += *s.ActualWorkMinutes
		}
	}
	return sum
}
