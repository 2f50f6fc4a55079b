package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod_PaymentStatus(t *testing.T) {
	tests := []struct {
		name string
		mod  Mod
		want PaymentStatus
	}{
		{"no payments", Mod{TotalPrice: 5000}, PaymentUnpaid},
		{"partial", Mod{TotalPrice: 5000, PaymentRecords: []PaymentRecord{{Amount: 2000}}}, PaymentPartial},
		{"exactly covered", Mod{TotalPrice: 5000, PaymentRecords: []PaymentRecord{{Amount: 5000}}}, PaymentPaid},
		{"overpaid", Mod{TotalPrice: 5000, PaymentRecords: []PaymentRecord{{Amount: 6000}}}, PaymentPaid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.mod.PaymentStatus())
		})
	}
}

func TestComputeCreatorEarnings(t *testing.T) {
	creators := []Creator{
		{ID: "c1", Name: "Arif"},
		{ID: "c2", Name: "Tanvir"},
	}
	mods := []Mod{
		{CreatorID: "c1", TotalPrice: 5000, PaymentRecords: []PaymentRecord{{Amount: 2000}}},
		{CreatorID: "c1", TotalPrice: 1000},
		{CreatorID: "ghost", TotalPrice: 999, PaymentRecords: []PaymentRecord{{Amount: 999}}},
	}

	got := ComputeCreatorEarnings(creators, mods)
	require.Len(t, got, 2, "one row per creator, in collection order")

	assert.Equal(t, CreatorEarnings{CreatorID: "c1", Mods: 2, Earned: 2000, Due: 4000}, got[0])
	assert.Equal(t, CreatorEarnings{CreatorID: "c2"}, got[1], "creator without mods gets a zero row")
}

func TestComputeMonthlyEarnings_GroupsByYearMonth(t *testing.T) {
	mods := []Mod{
		{PaymentRecords: []PaymentRecord{
			{Amount: 2000, Date: "2026-03-14"},
			{Amount: 500, Date: "2026-03-30"},
		}},
		{PaymentRecords: []PaymentRecord{
			{Amount: 1000, Date: "2026-01-02"},
			{Amount: 300, Date: "bad"},
		}},
	}

	got := ComputeMonthlyEarnings(mods)
	require.Len(t, got, 2)
	assert.Equal(t, MonthlyEarning{Month: "2026-01", Amount: 1000}, got[0], "months come back chronologically")
	assert.Equal(t, MonthlyEarning{Month: "2026-03", Amount: 2500}, got[1])
}

func TestComputeMonthlyEarnings_Empty(t *testing.T) {
	assert.Empty(t, ComputeMonthlyEarnings(nil))
}

func TestUnpaidMods(t *testing.T) {
	mods := []Mod{
		{TotalPrice: 5000},
		{TotalPrice: 5000, PaymentRecords: []PaymentRecord{{Amount: 1}}},
		{TotalPrice: 0},
	}
	assert.Equal(t, 1, UnpaidMods(mods))
}
