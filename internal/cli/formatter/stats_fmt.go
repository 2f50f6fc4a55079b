package formatter

import (
	"fmt"
	"strings"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

// FormatStats renders the dashboard aggregate as a bordered summary card.
func FormatStats(s domain.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", StyleBold.Render(fmt.Sprintf("%4d", s.TotalMods)), "total mods")
	fmt.Fprintf(&b, "%s  %s\n", StyleYellow.Render(fmt.Sprintf("%4d", s.PendingMods)), "awaiting approval")
	fmt.Fprintf(&b, "%s  %s\n", StyleGreen.Render(fmt.Sprintf("%4d", s.InProgressMods)), "in progress")
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%4d", s.CompletedMods)), "completed")
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("Earned"), StyleGreen.Render(Money(s.TotalEarned)))
	fmt.Fprintf(&b, "%s %s", StyleDim.Render("Due   "), DuePill(s.TotalDue))

	return RenderBox("Ledger", b.String())
}

// StatsLine renders the aggregate as a single line, used by the TUI header.
func StatsLine(s domain.Stats) string {
	parts := []string{
		fmt.Sprintf("%s mods", Bold(fmt.Sprintf("%d", s.TotalMods))),
		fmt.Sprintf("%s awaiting", StyleYellow.Render(fmt.Sprintf("%d", s.PendingMods))),
		fmt.Sprintf("%s active", StyleGreen.Render(fmt.Sprintf("%d", s.InProgressMods))),
		fmt.Sprintf("%s done", StyleDim.Render(fmt.Sprintf("%d", s.CompletedMods))),
		fmt.Sprintf("earned %s", StyleGreen.Render(Money(s.TotalEarned))),
		fmt.Sprintf("due %s", DuePill(s.TotalDue)),
	}
	return strings.Join(parts, Dim("  ·  "))
}
