// Package store persists analyzed string records. The Repository
// interface abstracts the backend; SQLiteStore is the concrete store
// and MemoryStore backs tests and ephemeral runs.
package store

import (
	"context"
	"time"

	"github.com/duynguyendang/stringlab/pkg/analysis"
)

// StringRecord is the persisted entity: the submitted value, its
// derived properties and the creation timestamp. ID is the hex SHA-256
// of the raw value, so it always equals Properties.SHA256Hash.
type StringRecord struct {
	ID         string                    `json:"id"`
	Value      string                    `json:"value"`
	Properties analysis.StringProperties `json:"properties"`
	CreatedAt  time.Time                 `json:"created_at"`
}

// NewRecord builds a record for value with freshly computed properties
// and a UTC creation time.
func NewRecord(value string) StringRecord {
	return StringRecord{
		ID:         analysis.Digest(value),
		Value:      value,
		Properties: analysis.Analyze(value),
		CreatedAt:  time.Now().UTC(),
	}
}

// Repository is the storage abstraction over string records. Records
// are immutable once created: there is no update operation, only
// whole-record deletion.
type Repository interface {
	// Create inserts a new record. Returns ErrConflict if a record
	// with the same value already exists.
	Create(ctx context.Context, rec StringRecord) error
	// FindByValue returns the record for value, or ErrNotFound.
	FindByValue(ctx context.Context, value string) (StringRecord, error)
	// DeleteByValue removes the record for value, or returns
	// ErrNotFound if it is absent.
	DeleteByValue(ctx context.Context, value string) error
	// ScanAll returns every stored record. Full materialization, no
	// pagination; the domain is bounded-scale.
	ScanAll(ctx context.Context) ([]StringRecord, error)
}
