// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4")
	// SuccessColor indicates healthy numbers.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates cashflow warnings.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates critical cashflow or failures.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats healthy amounts and ok flags.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning-level output.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors and critical flags.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle wraps the monthly story in a bordered panel.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Money formats an amount with the rupee prefix.
func Money(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// Flag renders a cashflow flag in its severity color.
func Flag(flag string) string {
	switch flag {
	case "critical":
		return ErrorStyle.Render(flag)
	case "warning":
		return WarningStyle.Render(flag)
	default:
		return SuccessStyle.Render(flag)
	}
}
