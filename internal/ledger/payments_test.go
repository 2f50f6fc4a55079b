package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

func addTestMod(t *testing.T, s *Store, price int) domain.Mod {
	t.Helper()
	ctx := context.Background()
	c, err := s.AddCreator(ctx, "Arif", "", "", "")
	require.NoError(t, err)
	m, err := s.AddMod(ctx, "Truck Skin", c.ID, price)
	require.NoError(t, err)
	return m
}

func TestAddPayment_AppendsExactlyOneRecord(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	m := addTestMod(t, s, 5000)

	require.NoError(t, s.AddPayment(ctx, m.ID, 2000, "advance"))

	got, _ := s.Mod(m.ID)
	require.Len(t, got.PaymentRecords, 1)
	p := got.PaymentRecords[0]
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 2000, p.Amount)
	assert.Equal(t, "advance", p.Description)
	assert.Equal(t, testDate.Format("2006-01-02"), p.Date)
	assert.Equal(t, 2000, got.AmountPaid())
	assert.Equal(t, 3000, got.AmountDue())
}

func TestAddPayment_RejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	m := addTestMod(t, s, 5000)

	assert.ErrorIs(t, s.AddPayment(ctx, m.ID, 0, ""), ErrValidation)
	assert.ErrorIs(t, s.AddPayment(ctx, m.ID, -100, ""), ErrValidation)

	got, _ := s.Mod(m.ID)
	assert.Empty(t, got.PaymentRecords)
}

func TestAddPayment_RejectsOverpayment(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	m := addTestMod(t, s, 5000)

	require.NoError(t, s.AddPayment(ctx, m.ID, 4000, "advance"))

	err := s.AddPayment(ctx, m.ID, 2000, "too much")
	assert.ErrorIs(t, err, ErrValidation)

	// Paying exactly the remainder is fine.
	require.NoError(t, s.AddPayment(ctx, m.ID, 1000, "final"))
	got, _ := s.Mod(m.ID)
	assert.Equal(t, 0, got.AmountDue())
}

func TestAddPayment_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	err := s.AddPayment(ctx, "missing", 100, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePayment_PartialMerge(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	m := addTestMod(t, s, 5000)

	require.NoError(t, s.AddPayment(ctx, m.ID, 2000, "advance"))
	got, _ := s.Mod(m.ID)
	paymentID := got.PaymentRecords[0].ID

	desc := "corrected advance"
	require.NoError(t, s.UpdatePayment(ctx, m.ID, paymentID, PaymentUpdate{Description: &desc}))

	got, _ = s.Mod(m.ID)
	assert.Equal(t, "corrected advance", got.PaymentRecords[0].Description)
	assert.Equal(t, 2000, got.PaymentRecords[0].Amount, "amount untouched")

	amount := 2500
	require.NoError(t, s.UpdatePayment(ctx, m.ID, paymentID, PaymentUpdate{Amount: &amount}))
	got, _ = s.Mod(m.ID)
	assert.Equal(t, 2500, got.PaymentRecords[0].Amount)
}

func TestUpdatePayment_RejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	m := addTestMod(t, s, 5000)

	require.NoError(t, s.AddPayment(ctx, m.ID, 2000, "advance"))
	got, _ := s.Mod(m.ID)
	paymentID := got.PaymentRecords[0].ID

	zero := 0
	err := s.UpdatePayment(ctx, m.ID, paymentID, PaymentUpdate{Amount: &zero})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePayment_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	m := addTestMod(t, s, 5000)

	desc := "x"
	err := s.UpdatePayment(ctx, m.ID, "missing-payment", PaymentUpdate{Description: &desc})
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.UpdatePayment(ctx, "missing-mod", "p", PaymentUpdate{Description: &desc})
	assert.ErrorIs(t, err, ErrNotFound)
	_ = m
}

func TestDeletePayment_RestoresPriorSum(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	m := addTestMod(t, s, 5000)

	require.NoError(t, s.AddPayment(ctx, m.ID, 2000, "advance"))
	before, _ := s.Mod(m.ID)

	require.NoError(t, s.AddPayment(ctx, m.ID, 1500, "milestone"))
	mid, _ := s.Mod(m.ID)
	require.Equal(t, 3500, mid.AmountPaid())

	require.NoError(t, s.DeletePayment(ctx, m.ID, mid.PaymentRecords[1].ID))

	after, _ := s.Mod(m.ID)
	assert.Equal(t, before.AmountPaid(), after.AmountPaid(), "deleting the record restores the prior sum exactly")
	require.Len(t, after.PaymentRecords, 1)
	assert.Equal(t, "advance", after.PaymentRecords[0].Description)
}

func TestDeletePayment_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	m := addTestMod(t, s, 5000)

	assert.ErrorIs(t, s.DeletePayment(ctx, m.ID, "missing"), ErrNotFound)
	assert.ErrorIs(t, s.DeletePayment(ctx, "missing", "p"), ErrNotFound)
}

func TestPayments_OrderIsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	m := addTestMod(t, s, 10000)

	for i, desc := range []string{"first", "second", "third"} {
		require.NoError(t, s.AddPayment(ctx, m.ID, 1000+i, desc))
	}

	got, _ := s.Mod(m.ID)
	require.Len(t, got.PaymentRecords, 3)
	assert.Equal(t, "first", got.PaymentRecords[0].Description)
	assert.Equal(t, "second", got.PaymentRecords[1].Description)
	assert.Equal(t, "third", got.PaymentRecords[2].Description)
}
