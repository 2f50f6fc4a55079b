package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

// AddTodo appends an unchecked checklist item to the mod.
func (s *Store) AddTodo(ctx context.Context, modID, title string) (err error) {
	start := s.now()
	defer func() { s.observe(ctx, "add_todo", start, err, map[string]any{"mod_id": modID}) }()

	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: todo title is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyMods(s.mods)
	idx := indexOfMod(next, modID)
	if idx < 0 {
		return fmt.Errorf("mod %q: %w", modID, ErrNotFound)
	}

	next[idx].Todos = append(next[idx].Todos, domain.Todo{
		ID:    s.newID(),
		Title: title,
	})

	return s.persistMods(ctx, next)
}

// ToggleTodo flips the done flag on the matching checklist item.
func (s *Store) ToggleTodo(ctx context.Context, modID, todoID string) (err error) {
	start := s.now()
	defer func() { s.observe(ctx, "toggle_todo", start, err, map[string]any{"mod_id": modID, "todo_id": todoID}) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyMods(s.mods)
	idx := indexOfMod(next, modID)
	if idx < 0 {
		return fmt.Errorf("mod %q: %w", modID, ErrNotFound)
	}

	found := false
	for i := range next[idx].Todos {
		if next[idx].Todos[i].ID == todoID {
			next[idx].Todos[i].IsDone = !next[idx].Todos[i].IsDone
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("todo %q: %w", todoID, ErrNotFound)
	}

	return s.persistMods(ctx, next)
}

// DeleteTodo removes the matching checklist item.
func (s *Store) DeleteTodo(ctx context.Context, modID, todoID string) (err error) {
	start := s.now()
	defer func() { s.observe(ctx, "delete_todo", start, err, map[string]any{"mod_id": modID, "todo_id": todoID}) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyMods(s.mods)
	idx := indexOfMod(next, modID)
	if idx < 0 {
		return fmt.Errorf("mod %q: %w", modID, ErrNotFound)
	}

	todos := next[idx].Todos
	filtered := make([]domain.Todo, 0, len(todos))
	found := false
	for _, td := range todos {
		if td.ID == todoID {
			found = true
			continue
		}
		filtered = append(filtered, td)
	}
	if !found {
		return fmt.Errorf("todo %q: %w", todoID, ErrNotFound)
	}
	next[idx].Todos = filtered

	return s.persistMods(ctx, next)
}
