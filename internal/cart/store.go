package cart

import (
	"errors"

	"brewpoint/internal/logger"
	"brewpoint/internal/storage"

	"go.uber.org/zap"
)

// StorageKey is the durable-storage key the cart is persisted under.
const StorageKey = "cart"

// Store holds the ordered cart lines in memory and mirrors them to durable
// storage after every mutation. A single store instance is shared by
// reference; there is no cross-process locking (last write wins).
type Store struct {
	storage *storage.Store
	items   []Item
}

// NewStore loads any previously persisted cart. A malformed payload is
// treated as an empty cart and logged, never fatal. Loading does not write
// back, so a pre-existing persisted cart is never clobbered by construction.
func NewStore(st *storage.Store) *Store {
	s := &Store{storage: st}

	var items []Item
	err := st.Get(StorageKey, &items)
	switch {
	case err == nil:
		s.items = items
	case errors.Is(err, storage.ErrNotFound):
	default:
		logger.L().Warn("discarding malformed persisted cart", zap.Error(err))
	}
	return s
}

// Add appends a line to the end of the cart. Quantity below 1 is clamped.
func (s *Store) Add(item Item) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	s.items = append(s.items, item)
	return s.persist()
}

// Remove deletes the line with the given id. Removing an absent line is a
// no-op, not an error.
func (s *Store) Remove(lineID string) error {
	for i, item := range s.items {
		if item.ID == lineID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// SetQuantity replaces the quantity of the matching line with max(1, qty).
// The line is never removed implicitly; an absent line is a no-op.
func (s *Store) SetQuantity(lineID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items[i].Quantity = qty
			return s.persist()
		}
	}
	return nil
}

// Clear empties the cart and persists the empty sequence.
func (s *Store) Clear() error {
	s.items = nil
	return s.persist()
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) persist() error {
	items := s.items
	if items == nil {
		items = []Item{}
	}
	return s.storage.Set(StorageKey, items)
}
