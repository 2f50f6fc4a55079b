package ledger

import (
	"context"
	"fmt"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

// PaymentUpdate carries partial field updates for a payment record.
// Nil fields are left unchanged.
type PaymentUpdate struct {
	Amount      *int
	Description *string
}

// AddPayment appends a payment record dated today to the mod's history.
// The amount must be positive and must not exceed the remaining due.
func (s *Store) AddPayment(ctx context.Context, modID string, amount int, description string) (err error) {
	start := s.now()
	defer func() { s.observe(ctx, "add_payment", start, err, map[string]any{"mod_id": modID, "amount": amount}) }()

	if amount <= 0 {
		return fmt.Errorf("%w: payment amount must be positive (got %d)", ErrValidation, amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyMods(s.mods)
	idx := indexOfMod(next, modID)
	if idx < 0 {
		return fmt.Errorf("mod %q: %w", modID, ErrNotFound)
	}
	if due := next[idx].AmountDue(); amount > due {
		return fmt.Errorf("%w: payment %d exceeds remaining due %d", ErrValidation, amount, due)
	}

	next[idx].PaymentRecords = append(next[idx].PaymentRecords, domain.PaymentRecord{
		ID:          s.newID(),
		Amount:      amount,
		Date:        s.today(),
		Description: description,
	})

	return s.persistMods(ctx, next)
}

// UpdatePayment merges the given fields into the matching payment record.
func (s *Store) UpdatePayment(ctx context.Context, modID, paymentID string, u PaymentUpdate) (err error) {
	start := s.now()
	defer func() {
		s.observe(ctx, "update_payment", start, err, map[string]any{"mod_id": modID, "payment_id": paymentID})
	}()

	if u.Amount != nil && *u.Amount <= 0 {
		return fmt.Errorf("%w: payment amount must be positive (got %d)", ErrValidation, *u.Amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyMods(s.mods)
	idx := indexOfMod(next, modID)
	if idx < 0 {
		return fmt.Errorf("mod %q: %w", modID, ErrNotFound)
	}

	pIdx := -1
	for i := range next[idx].PaymentRecords {
		if next[idx].PaymentRecords[i].ID == paymentID {
			pIdx = i
			break
		}
	}
	if pIdx < 0 {
		return fmt.Errorf("payment %q: %w", paymentID, ErrNotFound)
	}

	if u.Amount != nil {
		next[idx].PaymentRecords[pIdx].Amount = *u.Amount
	}
	if u.Description != nil {
		next[idx].PaymentRecords[pIdx].Description = *u.Description
	}

	return s.persistMods(ctx, next)
}

// DeletePayment removes the matching payment record. Derived totals adjust
// on the next read; there are no other cascading effects.
func (s *Store) DeletePayment(ctx context.Context, modID, paymentID string) (err error) {
	start := s.now()
	defer func() {
		s.observe(ctx, "delete_payment", start, err, map[string]any{"mod_id": modID, "payment_id": paymentID})
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyMods(s.mods)
	idx := indexOfMod(next, modID)
	if idx < 0 {
		return fmt.Errorf("mod %q: %w", modID, ErrNotFound)
	}

	records := next[idx].PaymentRecords
	filtered := make([]domain.PaymentRecord, 0, len(records))
	found := false
	for _, p := range records {
		if p.ID == paymentID {
			found = true
			continue
		}
		filtered = append(filtered, p)
	}
	if !found {
		return fmt.Errorf("payment %q: %w", paymentID, ErrNotFound)
	}
	next[idx].PaymentRecords = filtered

	return s.persistMods(ctx, next)
}
