package domain

import "sort"

// PaymentStatus classifies how much of a mod's price has been collected.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// PaymentStatus classifies the mod by its payment history: unpaid with no
// payments, paid once payments cover the price, partial in between.
func (m *Mod) PaymentStatus() PaymentStatus {
	paid := m.AmountPaid()
	switch {
	case paid == 0:
		return PaymentUnpaid
	case paid >= m.TotalPrice:
		return PaymentPaid
	default:
		return PaymentPartial
	}
}

// CreatorEarnings aggregates earnings over one creator's mods.
type CreatorEarnings struct {
	CreatorID string
	Mods      int
	Earned    int
	Due       int
}

// ComputeCreatorEarnings aggregates earned and due per creator, in creator
// collection order. Creators without mods appear with zero rows.
func ComputeCreatorEarnings(creators []Creator, mods []Mod) []CreatorEarnings {
	byCreator := make(map[string]*CreatorEarnings, len(creators))
	out := make([]CreatorEarnings, len(creators))
	for i, c := range creators {
		out[i] = CreatorEarnings{CreatorID: c.ID}
		byCreator[c.ID] = &out[i]
	}

	for i := range mods {
		m := &mods[i]
		e, ok := byCreator[m.CreatorID]
		if !ok {
			continue
		}
		paid := m.AmountPaid()
		e.Mods++
		e.Earned += paid
		e.Due += m.TotalPrice - paid
	}
	return out
}

// MonthlyEarning is the payment total for one calendar month.
type MonthlyEarning struct {
	Month  string // "2026-03"
	Amount int
}

// ComputeMonthlyEarnings groups every payment by the year-month prefix of
// its date and returns the totals in chronological order. Payments with a
// date too short to carry a month prefix are skipped.
func ComputeMonthlyEarnings(mods []Mod) []MonthlyEarning {
	totals := make(map[string]int)
	for i := range mods {
		for _, p := range mods[i].PaymentRecords {
			if len(p.Date) < 7 {
				continue
			}
			totals[p.Date[:7]] += p.Amount
		}
	}

	out := make([]MonthlyEarning, 0, len(totals))
	for month, amount := range totals {
		out = append(out, MonthlyEarning{Month: month, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// UnpaidMods counts mods with a price but no payments at all.
func UnpaidMods(mods []Mod) int {
	n := 0
	for i := range mods {
		if mods[i].TotalPrice > 0 && mods[i].AmountPaid() == 0 {
			n++
		}
	}
	return n
}
