// Package ledger holds the Mod Ledger Store: the sole authority over the
// creator and mod collections. Every mutation rewrites the affected
// collection in memory and persists it as a whole-collection snapshot to the
// backing key-value store before returning.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
	"github.com/1111MdTanvirAhmed1111/modledger/internal/storage"
)

// Fixed snapshot keys in the backing store, one per collection.
const (
	KeyMods     = "modProjects"
	KeyCreators = "modCreators"
)

// Store caches both collections in memory and mediates all reads and writes.
// It is safe for concurrent use; operations apply in invocation order.
type Store struct {
	mu       sync.Mutex
	kv       storage.KV
	creators []domain.Creator
	mods     []domain.Mod
	loading  bool

	now      func() time.Time
	newID    func() string
	logger   *slog.Logger
	observer MutationObserver
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for recoverable load failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithObserver sets the mutation observer.
func WithObserver(o MutationObserver) Option {
	return func(s *Store) { s.observer = o }
}

// WithNow overrides the clock. Tests use this to pin dates.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides ID generation. Any scheme is acceptable as long as
// IDs are unique within the store's lifetime.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// Open loads both collections from kv and returns a ready store.
// An absent key yields an empty collection. A corrupt snapshot is logged and
// replaced with an empty collection for that key only; Open never fails on
// bad data, and a bad snapshot under one key must not abort loading the
// other. Only kv read errors (the substrate itself failing) are returned.
func Open(ctx context.Context, kv storage.KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:       kv,
		loading:  true,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
		observer: NoopMutationObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	s.loading = false
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, KeyCreators)
	if err != nil {
		return fmt.Errorf("loading creators: %w", err)
	}
	if ok {
		var creators []domain.Creator
		if err := json.Unmarshal(raw, &creators); err != nil {
			s.logger.Error("discarding corrupt creators snapshot", "key", KeyCreators, "error", err)
		} else {
			s.creators = creators
		}
	}

	raw, ok, err = s.kv.Get(ctx, KeyMods)
	if err != nil {
		return fmt.Errorf("loading mods: %w", err)
	}
	if ok {
		var mods []domain.Mod
		if err := json.Unmarshal(raw, &mods); err != nil {
			s.logger.Error("discarding corrupt mods snapshot", "key", KeyMods, "error", err)
		} else {
			s.mods = mods
		}
	}
	return nil
}

// Loading reports whether the initial load is still in progress. It is true
// only inside Open; every store obtained from Open reports false.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// today returns the current date in the persisted date-only format.
func (s *Store) today() string {
	return s.now().Format(domain.DateLayout)
}

// persistCreators writes the given collection as the creators snapshot and,
// on success, swaps it into memory. The caller must hold s.mu.
func (s *Store) persistCreators(ctx context.Context, creators []domain.Creator) error {
	raw, err := json.Marshal(creators)
	if err != nil {
		return fmt.Errorf("encoding creators: %w", err)
	}
	if err := s.kv.Put(ctx, KeyCreators, raw); err != nil {
		return fmt.Errorf("persisting creators: %w", err)
	}
	s.creators = creators
	return nil
}

// persistMods writes the given collection as the mods snapshot and, on
// success, swaps it into memory. The caller must hold s.mu.
func (s *Store) persistMods(ctx context.Context, mods []domain.Mod) error {
	raw, err := json.Marshal(mods)
	if err != nil {
		return fmt.Errorf("encoding mods: %w", err)
	}
	if err := s.kv.Put(ctx, KeyMods, raw); err != nil {
		return fmt.Errorf("persisting mods: %w", err)
	}
	s.mods = mods
	return nil
}

// observe emits a mutation event.
func (s *Store) observe(ctx context.Context, op string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveMutation(ctx, MutationEvent{
		Op:        op,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

// Creators returns a copy of the creator collection in insertion order.
func (s *Store) Creators() []domain.Creator {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Creator, len(s.creators))
	copy(out, s.creators)
	return out
}

// Mods returns a deep copy of the mod collection in insertion order.
func (s *Store) Mods() []domain.Mod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMods(s.mods)
}

// Creator returns the creator with the given ID.
func (s *Store) Creator(id string) (domain.Creator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.creators {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Creator{}, false
}

// Mod returns a deep copy of the mod with the given ID.
func (s *Store) Mod(id string) (domain.Mod, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.mods {
		if s.mods[i].ID == id {
			return copyMod(s.mods[i]), true
		}
	}
	return domain.Mod{}, false
}

// Stats derives the dashboard aggregate over all mods.
func (s *Store) Stats() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeStats(s.mods)
}

// copyMod returns a mod whose nested slices do not alias the original.
func copyMod(m domain.Mod) domain.Mod {
	out := m
	if m.PaymentRecords != nil {
		out.PaymentRecords = make([]domain.PaymentRecord, len(m.PaymentRecords))
		copy(out.PaymentRecords, m.PaymentRecords)
	}
	if m.Todos != nil {
		out.Todos = make([]domain.Todo, len(m.Todos))
		copy(out.Todos, m.Todos)
	}
	if m.ApprovalNote != nil {
		note := *m.ApprovalNote
		out.ApprovalNote = &note
	}
	return out
}

func copyMods(mods []domain.Mod) []domain.Mod {
	out := make([]domain.Mod, len(mods))
	for i := range mods {
		out[i] = copyMod(mods[i])
	}
	return out
}
