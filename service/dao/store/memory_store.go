package store

import (
	"context"
	"sync"

	"github.com/viant/bookscan/service/dao"
)

// MemoryStore is a generic in-memory implementation of dao.Service.
// Entities are keyed by keySelector; List applies the optional filter and order.
type MemoryStore[K comparable, T any] struct {
	mu          sync.RWMutex
	records     map[K]*T
	keySelector func(*T) K
	filter      func(*T, []*dao.Parameter) bool
	order       func([]*T)
}

// NewMemoryStore creates a new MemoryStore; filter and order may be nil.
func NewMemoryStore[K comparable, T any](keySelector func(*T) K, filter func(*T, []*dao.Parameter) bool, order func([]*T)) *MemoryStore[K, T] {
	return &MemoryStore[K, T]{
		records:     make(map[K]*T),
		keySelector: keySelector,
		filter:      filter,
		order:       order,
	}
}

// Save stores or overwrites a record.
func (s *MemoryStore[K, T]) Save(_ context.Context, v *T) error {
	if v == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(v)
	var zero K
	if key == zero {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = v
	return nil
}

// Load returns a record by key.
func (s *MemoryStore[K, T]) Load(_ context.Context, key K) (*T, error) {
	var zero K
	if key == zero {
		return nil, dao.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return v, nil
}

// Delete removes a record.
func (s *MemoryStore[K, T]) Delete(_ context.Context, key K) error {
	var zero K
	if key == zero {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return dao.ErrNotFound
	}
	delete(s.records, key)
	return nil
}

// List returns the stored records accepted by the filter.
func (s *MemoryStore[K, T]) List(_ context.Context, parameters ...*dao.Parameter) ([]*T, error) {
	s.mu.RLock()
	out := make([]*T, 0, len(s.records))
	for _, v := range s.records {
		if s.filter != nil && !s.filter(v, parameters) {
			continue
		}
		out = append(out, v)
	}
	s.mu.RUnlock()
	if s.order != nil {
		s.order(out)
	}
	return out, nil
}
