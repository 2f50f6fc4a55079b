package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCreator_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c, err := s.AddCreator(ctx, "Arif", "arif@example.com", "01711", "Dhaka")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, testDate.Format("2006-01-02"), c.CreatedDate)

	got, ok := s.Creator(c.ID)
	require.True(t, ok)
	assert.Equal(t, c, got)

	// Reload from the backing store: the creator survives.
	reloaded, err := Open(ctx, s.kv, WithNow(fixedNow))
	require.NoError(t, err)
	got, ok = reloaded.Creator(c.ID)
	require.True(t, ok)
	assert.Equal(t, c, got)
}

func TestAddCreator_RejectsBlankName(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	for _, name := range []string{"", "   ", "\t"} {
		_, err := s.AddCreator(ctx, name, "", "", "")
		assert.ErrorIs(t, err, ErrValidation, "name %q should be rejected", name)
	}
	assert.Empty(t, s.Creators())
}

func TestAddCreator_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c, err := s.AddCreator(ctx, "Creator", "", "", "")
		require.NoError(t, err)
		require.False(t, seen[c.ID], "duplicate ID %q", c.ID)
		seen[c.ID] = true
	}
}

func TestUpdateCreator_PartialMerge(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c, err := s.AddCreator(ctx, "Arif", "old@example.com", "01711", "Dhaka")
	require.NoError(t, err)

	email := "new@example.com"
	require.NoError(t, s.UpdateCreator(ctx, c.ID, CreatorUpdate{Email: &email}))

	got, ok := s.Creator(c.ID)
	require.True(t, ok)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "Arif", got.Name, "unsupplied fields stay unchanged")
	assert.Equal(t, "01711", got.Phone)
	assert.Equal(t, "Dhaka", got.Address)
}

func TestUpdateCreator_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	name := "Nobody"
	err := s.UpdateCreator(ctx, "missing", CreatorUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCreator_RejectsBlankName(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c, err := s.AddCreator(ctx, "Arif", "", "", "")
	require.NoError(t, err)

	blank := "  "
	err = s.UpdateCreator(ctx, c.ID, CreatorUpdate{Name: &blank})
	assert.ErrorIs(t, err, ErrValidation)

	got, _ := s.Creator(c.ID)
	assert.Equal(t, "Arif", got.Name)
}

func TestDeleteCreator_WithoutMods(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c, err := s.AddCreator(ctx, "Arif", "", "", "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteCreator(ctx, c.ID))

	_, ok := s.Creator(c.ID)
	assert.False(t, ok)
	assert.Empty(t, s.Creators())
}

func TestDeleteCreator_RefusedWhileModsReference(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c, err := s.AddCreator(ctx, "Arif", "", "", "")
	require.NoError(t, err)
	_, err = s.AddMod(ctx, "Truck Skin", c.ID, 5000)
	require.NoError(t, err)

	err = s.DeleteCreator(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCreatorHasMods)

	// The collection is untouched.
	_, ok := s.Creator(c.ID)
	assert.True(t, ok)
	assert.Len(t, s.Creators(), 1)
}

func TestDeleteCreator_AllowedAfterModsRemoved(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c, err := s.AddCreator(ctx, "Arif", "", "", "")
	require.NoError(t, err)
	m, err := s.AddMod(ctx, "Truck Skin", c.ID, 5000)
	require.NoError(t, err)

	require.NoError(t, s.DeleteMod(ctx, m.ID))
	require.NoError(t, s.DeleteCreator(ctx, c.ID))
}

func TestDeleteCreator_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	err := s.DeleteCreator(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatorMods_FiltersAndPreservesOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	arif, err := s.AddCreator(ctx, "Arif", "", "", "")
	require.NoError(t, err)
	sumon, err := s.AddCreator(ctx, "Sumon", "", "", "")
	require.NoError(t, err)

	m1, err := s.AddMod(ctx, "First", arif.ID, 100)
	require.NoError(t, err)
	_, err = s.AddMod(ctx, "Other", sumon.ID, 200)
	require.NoError(t, err)
	m3, err := s.AddMod(ctx, "Second", arif.ID, 300)
	require.NoError(t, err)

	mods := s.CreatorMods(arif.ID)
	require.Len(t, mods, 2)
	assert.Equal(t, m1.ID, mods[0].ID)
	assert.Equal(t, m3.ID, mods[1].ID)
}

func TestCreatorTotalDue(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	arif, err := s.AddCreator(ctx, "Arif", "", "", "")
	require.NoError(t, err)

	m1, err := s.AddMod(ctx, "Truck Skin", arif.ID, 5000)
	require.NoError(t, err)
	_, err = s.AddMod(ctx, "Bus Skin", arif.ID, 3000)
	require.NoError(t, err)

	require.NoError(t, s.AddPayment(ctx, m1.ID, 2000, "advance"))

	assert.Equal(t, 6000, s.CreatorTotalDue(arif.ID))
	assert.Equal(t, 0, s.CreatorTotalDue("missing"))
}
