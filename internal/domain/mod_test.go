package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMod_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mod     Mod
		wantErr bool
	}{
		{"valid", Mod{Title: "Truck Skin", CreatorID: "c1", TotalPrice: 5000}, false},
		{"zero price", Mod{Title: "Free Fix", CreatorID: "c1", TotalPrice: 0}, false},
		{"empty title", Mod{Title: "", CreatorID: "c1", TotalPrice: 100}, true},
		{"whitespace title", Mod{Title: "   ", CreatorID: "c1", TotalPrice: 100}, true},
		{"missing creator", Mod{Title: "Skin", CreatorID: "", TotalPrice: 100}, true},
		{"negative price", Mod{Title: "Skin", CreatorID: "c1", TotalPrice: -1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.mod.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMod_AmountPaidAndDue(t *testing.T) {
	m := Mod{
		TotalPrice: 5000,
		PaymentRecords: []PaymentRecord{
			{ID: "p1", Amount: 2000},
			{ID: "p2", Amount: 1500},
		},
	}
	assert.Equal(t, 3500, m.AmountPaid())
	assert.Equal(t, 1500, m.AmountDue())
}

func TestMod_AmountDue_NoPayments(t *testing.T) {
	m := Mod{TotalPrice: 1200}
	assert.Equal(t, 0, m.AmountPaid())
	assert.Equal(t, 1200, m.AmountDue())
}

func TestMod_TodoProgress(t *testing.T) {
	m := Mod{Todos: []Todo{
		{ID: "t1", IsDone: true},
		{ID: "t2", IsDone: false},
		{ID: "t3", IsDone: true},
	}}
	done, total := m.TodoProgress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 3, total)
}

func TestWorkStatus_Valid(t *testing.T) {
	assert.True(t, WorkPending.Valid())
	assert.True(t, WorkInProgress.Valid())
	assert.True(t, WorkDone.Valid())
	assert.False(t, WorkStatus("cancelled").Valid())
	assert.False(t, WorkStatus("").Valid())
}

func TestComputeStats(t *testing.T) {
	mods := []Mod{
		{
			TotalPrice:     5000,
			WorkStatus:     WorkDone,
			ApprovalStatus: ApprovalApproved,
			PaymentRecords: []PaymentRecord{{Amount: 5000}},
		},
		{
			TotalPrice:     3000,
			WorkStatus:     WorkInProgress,
			ApprovalStatus: ApprovalApproved,
			PaymentRecords: []PaymentRecord{{Amount: 1000}},
		},
		{
			TotalPrice:     2000,
			WorkStatus:     WorkPending,
			ApprovalStatus: ApprovalPending,
		},
	}

	s := ComputeStats(mods)
	assert.Equal(t, 3, s.TotalMods)
	assert.Equal(t, 1, s.PendingMods, "pending counts by approval status")
	assert.Equal(t, 1, s.InProgressMods)
	assert.Equal(t, 1, s.CompletedMods)
	assert.Equal(t, 6000, s.TotalEarned)
	assert.Equal(t, 4000, s.TotalDue)
}

func TestComputeStats_PendingByApprovalNotWork(t *testing.T) {
	// A mod in progress but not yet approved is still pending.
	mods := []Mod{{
		WorkStatus:     WorkInProgress,
		ApprovalStatus: ApprovalPending,
	}}
	s := ComputeStats(mods)
	assert.Equal(t, 1, s.PendingMods)
	assert.Equal(t, 1, s.InProgressMods)
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)
	assert.Equal(t, Stats{}, s)
}
