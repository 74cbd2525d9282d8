package formatter

import (
	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusIndicator returns a colored indicator string for a session status.
func StatusIndicator(status domain.SessionStatus) string {
	switch status {
	case domain.StatusWorking:
		return StyleGreen.Render("● WORKING")
	case domain.StatusBreakfast:
		return StyleYellow.Render("● BREAKFAST")
	case domain.StatusSnack:
		return StyleYellow.Render("● SNACK")
	case domain.StatusFinished:
		return StyleBlue.Render("● FINISHED")
	default:
		return StyleDim.Render("● IDLE")
	}
}

// Dim renders s in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}
