package domain

type SessionStatus string

const (
	StatusWorking   SessionStatus = "working"
	StatusBreakfast SessionStatus = "breakfast"
	StatusSnack     SessionStatus = "snack"
	StatusFinished  SessionStatus = "finished"
)

type HistoryRange string

const (
	RangeWeek  HistoryRange = "week"
	RangeMonth HistoryRange = "month"
	RangeYear  HistoryRange = "year"
)

// ValidHistoryRanges is the canonical set of accepted range strings.
var ValidHistoryRanges = map[string]bool{
	"week": true, "month": true, "year": true,
}
