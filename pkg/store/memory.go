package store

import (
	"context"
	"sync"

	"github.com/duynguyendang/stringlab/pkg/common/errors"
)

// MemoryStore is an in-memory Repository, used as the test double and
// for ephemeral runs. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]StringRecord // keyed by value
	order   []string                // insertion order of values
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]StringRecord)}
}

// Create inserts a new record, or returns ErrConflict on a duplicate
// value. The check and insert happen under one lock, so the
// check-then-insert race of the SQL backend does not exist here.
func (m *MemoryStore) Create(_ context.Context, rec StringRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[rec.Value]; ok {
		return errors.Wrap(errors.ErrConflict, "String already exists")
	}
	m.records[rec.Value] = rec
	m.order = append(m.order, rec.Value)
	return nil
}

// FindByValue returns the record for value, or ErrNotFound.
func (m *MemoryStore) FindByValue(_ context.Context, value string) (StringRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[value]
	if !ok {
		return StringRecord{}, errors.Wrap(errors.ErrNotFound, "String not found")
	}
	return rec, nil
}

// DeleteByValue removes the record for value, or returns ErrNotFound.
func (m *MemoryStore) DeleteByValue(_ context.Context, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[value]; !ok {
		return errors.Wrap(errors.ErrNotFound, "String not found")
	}
	delete(m.records, value)
	for i, v := range m.order {
		if v == value {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// ScanAll returns every stored record in creation order.
func (m *MemoryStore) ScanAll(_ context.Context) ([]StringRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make([]StringRecord, 0, len(m.order))
	for _, v := range m.order {
		records = append(records, m.records[v])
	}
	return records, nil
}
