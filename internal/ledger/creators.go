package ledger

import (
	"context"
	"fmt"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

// CreatorUpdate carries partial field updates for a creator.
// Nil fields are left unchanged.
type CreatorUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// AddCreator appends a new creator and persists the collection.
func (s *Store) AddCreator(ctx context.Context, name, email, phone, address string) (_ domain.Creator, err error) {
	start := s.now()
	c := domain.Creator{
		ID:          s.newID(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Address:     address,
		CreatedDate: s.today(),
	}
	defer func() { s.observe(ctx, "add_creator", start, err, map[string]any{"creator_id": c.ID}) }()

	if verr := c.Validate(); verr != nil {
		return domain.Creator{}, fmt.Errorf("%w: %s", ErrValidation, verr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(copyCreators(s.creators), c)
	if err := s.persistCreators(ctx, next); err != nil {
		return domain.Creator{}, err
	}
	return c, nil
}

// UpdateCreator merges the given fields into the creator matching id.
func (s *Store) UpdateCreator(ctx context.Context, id string, u CreatorUpdate) (err error) {
	start := s.now()
	defer func() { s.observe(ctx, "update_creator", start, err, map[string]any{"creator_id": id}) }()

	if u.Name != nil {
		probe := domain.Creator{Name: *u.Name}
		if err := probe.Validate(); err != nil {
			return fmt.Errorf("%w: %s", ErrValidation, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyCreators(s.creators)
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("creator %q: %w", id, ErrNotFound)
	}

	if u.Name != nil {
		next[idx].Name = *u.Name
	}
	if u.Email != nil {
		next[idx].Email = *u.Email
	}
	if u.Phone != nil {
		next[idx].Phone = *u.Phone
	}
	if u.Address != nil {
		next[idx].Address = *u.Address
	}

	return s.persistCreators(ctx, next)
}

// DeleteCreator removes the creator matching id. It refuses when any mod
// still references the creator; the check runs before removal.
func (s *Store) DeleteCreator(ctx context.Context, id string) (err error) {
	start := s.now()
	defer func() { s.observe(ctx, "delete_creator", start, err, map[string]any{"creator_id": id}) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.mods {
		if s.mods[i].CreatorID == id {
			return fmt.Errorf("creator %q: %w", id, ErrCreatorHasMods)
		}
	}

	next := make([]domain.Creator, 0, len(s.creators))
	found := false
	for _, c := range s.creators {
		if c.ID == id {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		return fmt.Errorf("creator %q: %w", id, ErrNotFound)
	}

	return s.persistCreators(ctx, next)
}

// CreatorMods returns deep copies of the mods owned by the given creator,
// in collection order.
func (s *Store) CreatorMods(id string) []domain.Mod {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Mod
	for i := range s.mods {
		if s.mods[i].CreatorID == id {
			out = append(out, copyMod(s.mods[i]))
		}
	}
	return out
}

// CreatorTotalDue sums the outstanding balance across the creator's mods.
func (s *Store) CreatorTotalDue(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for i := range s.mods {
		if s.mods[i].CreatorID == id {
			total += s.mods[i].AmountDue()
		}
	}
	return total
}

func copyCreators(creators []domain.Creator) []domain.Creator {
	out := make([]domain.Creator, len(creators))
	copy(out, creators)
	return out
}
