package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "0m", FormatMinutes(-5))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "2h 5m", FormatMinutes(125))
	assert.Equal(t, "8h", FormatMinutes(480))
}

func TestFormatMinutesPtr(t *testing.T) {
	assert.Equal(t, "-", FormatMinutesPtr(nil))
	v := 90
	assert.Equal(t, "1h 30m", FormatMinutesPtr(&v))
}

func TestClockTimeAndInterval(t *testing.T) {
	assert.Equal(t, "-", ClockTime(nil))

	start := time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)
	end := time.Date(2025, 3, 12, 10, 15, 0, 0, time.Local)
	assert.Equal(t, "10:00", ClockTime(&start))
	assert.Equal(t, "10:00 - 10:15", Interval(&start, &end))
	assert.Equal(t, "-", Interval(&start, nil))
	assert.Equal(t, "-", Interval(nil, nil))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"DATE", "WORKED"},
		[][]string{
			{"2025-03-12", "7h 35m"},
			{"2025-03-11", "8h"},
		},
	)
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "2025-03-12")
	assert.Contains(t, out, "7h 35m")
	assert.Contains(t, out, "─")
}
