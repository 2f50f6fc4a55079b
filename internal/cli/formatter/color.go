package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
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
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// WorkStatusPill returns a colored indicator for a mod's work status.
func WorkStatusPill(status domain.WorkStatus) string {
	switch status {
	case domain.WorkPending:
		return StyleBlue.Render("○ Pending")
	case domain.WorkInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.WorkDone:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

// ApprovalPill returns a colored indicator for a mod's approval status.
func ApprovalPill(status domain.ApprovalStatus) string {
	switch status {
	case domain.ApprovalApproved:
		return StyleGreen.Render("✔ Approved")
	case domain.ApprovalPending:
		return StyleYellow.Render("○ Awaiting")
	default:
		return StyleDim.Render(string(status))
	}
}

// PaymentPill returns a colored indicator for how much of a mod is paid.
func PaymentPill(status domain.PaymentStatus) string {
	switch status {
	case domain.PaymentPaid:
		return StyleGreen.Render("✔ Paid")
	case domain.PaymentPartial:
		return StyleYellow.Render("◐ Partial")
	case domain.PaymentUnpaid:
		return StyleRed.Render("○ Unpaid")
	default:
		return StyleDim.Render(string(status))
	}
}

// DuePill colors an outstanding balance: green when settled, red otherwise.
func DuePill(due int) string {
	if due <= 0 {
		return StyleGreen.Render("Paid")
	}
	return StyleRed.Render(Money(due))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
