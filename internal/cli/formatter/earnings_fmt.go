package formatter

import (
	"fmt"
	"strings"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

const monthBarWidth = 24

// FormatEarnings renders the full earnings report: totals, monthly
// breakdown, per-creator table, and per-mod payment table.
func FormatEarnings(creators []domain.Creator, mods []domain.Mod) string {
	stats := domain.ComputeStats(mods)

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("Earned "), StyleGreen.Render(Money(stats.TotalEarned)))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("Due    "), DuePill(stats.TotalDue))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("Unpaid "), StyleRed.Render(fmt.Sprintf("%d mods", domain.UnpaidMods(mods))))

	if monthly := domain.ComputeMonthlyEarnings(mods); len(monthly) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Monthly"))
		b.WriteString("\n")
		b.WriteString(renderMonthly(monthly))
	}

	if len(creators) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("By creator"))
		b.WriteString("\n")
		b.WriteString(renderCreatorEarnings(creators, mods))
	}

	if len(mods) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("By mod"))
		b.WriteString("\n")
		b.WriteString(renderModEarnings(creators, mods))
	}

	return RenderBox("Earnings", b.String())
}

// renderMonthly draws one bar per month, scaled against the best month.
func renderMonthly(monthly []domain.MonthlyEarning) string {
	max := 0
	for _, m := range monthly {
		if m.Amount > max {
			max = m.Amount
		}
	}

	var b strings.Builder
	for _, m := range monthly {
		width := 0
		if max > 0 {
			width = m.Amount * monthBarWidth / max
		}
		bar := StyleGreen.Render(strings.Repeat("█", width))
		fmt.Fprintf(&b, "%s  %s %s\n", Dim(m.Month), bar, Money(m.Amount))
	}
	return b.String()
}

func renderCreatorEarnings(creators []domain.Creator, mods []domain.Mod) string {
	names := make(map[string]string, len(creators))
	for _, c := range creators {
		names[c.ID] = c.Name
	}

	rows := make([][]string, 0, len(creators))
	for _, e := range domain.ComputeCreatorEarnings(creators, mods) {
		rows = append(rows, []string{
			names[e.CreatorID],
			fmt.Sprintf("%d", e.Mods),
			StyleGreen.Render(Money(e.Earned)),
			DuePill(e.Due),
		})
	}
	return RenderTable([]string{"CREATOR", "MODS", "EARNED", "DUE"}, rows)
}

func renderModEarnings(creators []domain.Creator, mods []domain.Mod) string {
	names := make(map[string]string, len(creators))
	for _, c := range creators {
		names[c.ID] = c.Name
	}

	rows := make([][]string, 0, len(mods))
	for i := range mods {
		m := &mods[i]
		name, ok := names[m.CreatorID]
		if !ok {
			name = Dim("unknown")
		}
		rows = append(rows, []string{
			m.Title,
			name,
			Money(m.TotalPrice),
			StyleGreen.Render(Money(m.AmountPaid())),
			DuePill(m.AmountDue()),
			PaymentPill(m.PaymentStatus()),
		})
	}
	return RenderTable([]string{"MOD", "CREATOR", "PRICE", "PAID", "DUE", "STATUS"}, rows)
}
