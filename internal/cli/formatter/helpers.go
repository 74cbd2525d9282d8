package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// FormatMinutes renders a minute count as "2h 5m", "2h" or "45m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatMinutesPtr renders an optional minute count, "-" when unset.
func FormatMinutesPtr(min *int) string {
	if min == nil {
		return "-"
	}
	return FormatMinutes(*min)
}

// ClockTime renders an optional instant as local "15:04", "-" when unset.
func ClockTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04")
}

// Interval renders a completed break as "10:00 - 10:15". Incomplete
// intervals render as "-".
func Interval(start, end *time.Time) string {
	if start == nil || end == nil {
		return "-"
	}
	return ClockTime(start) + " - " + ClockTime(end)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}
