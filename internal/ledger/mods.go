package ledger

import (
	"context"
	"fmt"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

// ModUpdate carries partial field updates for a mod.
// Nil fields are left unchanged.
type ModUpdate struct {
	Title      *string
	TotalPrice *int
	WorkStatus *domain.WorkStatus
}

// AddMod appends a new mod owned by an existing creator and persists the
// collection. Work and approval status both start pending.
func (s *Store) AddMod(ctx context.Context, title, creatorID string, totalPrice int) (_ domain.Mod, err error) {
	start := s.now()
	m := domain.Mod{
		ID:             s.newID(),
		Title:          title,
		CreatorID:      creatorID,
		TotalPrice:     totalPrice,
		PaymentRecords: []domain.PaymentRecord{},
		WorkStatus:     domain.WorkPending,
		ApprovalStatus: domain.ApprovalPending,
		CreatedDate:    s.today(),
		Todos:          []domain.Todo{},
	}
	defer func() {
		s.observe(ctx, "add_mod", start, err, map[string]any{"mod_id": m.ID, "creator_id": creatorID})
	}()

	if verr := m.Validate(); verr != nil {
		return domain.Mod{}, fmt.Errorf("%w: %s", ErrValidation, verr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creatorExists := false
	for i := range s.creators {
		if s.creators[i].ID == creatorID {
			creatorExists = true
			break
		}
	}
	if !creatorExists {
		return domain.Mod{}, fmt.Errorf("%w: creator %q does not exist", ErrValidation, creatorID)
	}

	next := append(copyMods(s.mods), m)
	if err := s.persistMods(ctx, next); err != nil {
		return domain.Mod{}, err
	}
	return copyMod(m), nil
}

// UpdateMod merges the given fields into the mod matching id. A work status
// transition to done stamps CompletedDate; leaving done keeps the stamp
// (the stale date is deliberate, pinned by tests).
func (s *Store) UpdateMod(ctx context.Context, id string, u ModUpdate) (err error) {
	start := s.now()
	defer func() { s.observe(ctx, "update_mod", start, err, map[string]any{"mod_id": id}) }()

	if u.Title != nil {
		probe := domain.Mod{Title: *u.Title, CreatorID: "probe"}
		if err := probe.Validate(); err != nil {
			return fmt.Errorf("%w: %s", ErrValidation, err)
		}
	}
	if u.TotalPrice != nil && *u.TotalPrice < 0 {
		return fmt.Errorf("%w: total price must not be negative (got %d)", ErrValidation, *u.TotalPrice)
	}
	if u.WorkStatus != nil && !u.WorkStatus.Valid() {
		return fmt.Errorf("%w: unknown work status %q", ErrValidation, *u.WorkStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyMods(s.mods)
	idx := indexOfMod(next, id)
	if idx < 0 {
		return fmt.Errorf("mod %q: %w", id, ErrNotFound)
	}

	if u.Title != nil {
		next[idx].Title = *u.Title
	}
	if u.TotalPrice != nil {
		next[idx].TotalPrice = *u.TotalPrice
	}
	if u.WorkStatus != nil {
		if *u.WorkStatus == domain.WorkDone && next[idx].WorkStatus != domain.WorkDone {
			next[idx].CompletedDate = s.today()
		}
		next[idx].WorkStatus = *u.WorkStatus
	}

	return s.persistMods(ctx, next)
}

// DeleteMod removes the mod matching id. Nothing references mods, so the
// removal is unconditional.
func (s *Store) DeleteMod(ctx context.Context, id string) (err error) {
	start := s.now()
	defer func() { s.observe(ctx, "delete_mod", start, err, map[string]any{"mod_id": id}) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Mod, 0, len(s.mods))
	found := false
	for i := range s.mods {
		if s.mods[i].ID == id {
			found = true
			continue
		}
		next = append(next, copyMod(s.mods[i]))
	}
	if !found {
		return fmt.Errorf("mod %q: %w", id, ErrNotFound)
	}

	return s.persistMods(ctx, next)
}

// ApproveMod marks the mod approved with a fresh single-slot note and stamps
// StartDate if it is not already set. The transition is one-way; approving an
// already-approved mod replaces the note.
func (s *Store) ApproveMod(ctx context.Context, id, note string) (err error) {
	start := s.now()
	defer func() { s.observe(ctx, "approve_mod", start, err, map[string]any{"mod_id": id}) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyMods(s.mods)
	idx := indexOfMod(next, id)
	if idx < 0 {
		return fmt.Errorf("mod %q: %w", id, ErrNotFound)
	}

	next[idx].ApprovalStatus = domain.ApprovalApproved
	next[idx].ApprovalNote = &domain.ApprovalNote{
		ID:           s.newID(),
		Note:         note,
		ApprovedDate: s.today(),
	}
	if next[idx].StartDate == "" {
		next[idx].StartDate = s.today()
	}

	return s.persistMods(ctx, next)
}

func indexOfMod(mods []domain.Mod, id string) int {
	for i := range mods {
		if mods[i].ID == id {
			return i
		}
	}
	return -1
}
