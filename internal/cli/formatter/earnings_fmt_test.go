package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

func TestFormatEarnings(t *testing.T) {
	creators := []domain.Creator{{ID: "c1", Name: "Arif"}}
	mods := []domain.Mod{
		{
			ID: "m1", Title: "Truck Skin", CreatorID: "c1", TotalPrice: 5000,
			PaymentRecords: []domain.PaymentRecord{
				{ID: "p1", Amount: 2000, Date: "2026-03-14"},
				{ID: "p2", Amount: 1000, Date: "2026-04-02"},
			},
		},
		{ID: "m2", Title: "Bus Interior", CreatorID: "c1", TotalPrice: 1000},
	}

	out := FormatEarnings(creators, mods)

	assert.Contains(t, out, "Truck Skin")
	assert.Contains(t, out, "Arif")
	assert.Contains(t, out, "2026-03")
	assert.Contains(t, out, "2026-04")
	assert.Contains(t, out, "Unpaid")
	assert.Contains(t, out, "Partial")

	// March out-earns April, so it comes first and carries the longer bar.
	march := strings.Index(out, "2026-03")
	april := strings.Index(out, "2026-04")
	assert.Less(t, march, april)
}

func TestFormatEarnings_Empty(t *testing.T) {
	out := FormatEarnings(nil, nil)
	assert.Contains(t, out, "EARNINGS")
	assert.NotContains(t, out, "MOD")
}

func TestPaymentPill(t *testing.T) {
	assert.Contains(t, PaymentPill(domain.PaymentPaid), "Paid")
	assert.Contains(t, PaymentPill(domain.PaymentPartial), "Partial")
	assert.Contains(t, PaymentPill(domain.PaymentUnpaid), "Unpaid")
}
