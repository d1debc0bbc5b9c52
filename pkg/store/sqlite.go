package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/duynguyendang/stringlab/pkg/analysis"
	"github.com/duynguyendang/stringlab/pkg/common/errors"
)

// Query constants
const (
	createTableQuery = `
		CREATE TABLE IF NOT EXISTS strings (
			id         TEXT PRIMARY KEY,
			value      TEXT NOT NULL UNIQUE,
			properties TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`

	insertQuery = `
		INSERT INTO strings (id, value, properties, created_at)
		VALUES (?, ?, ?, ?)`

	existsQuery = `
		SELECT EXISTS(SELECT 1 FROM strings WHERE value = ?)`

	selectByValueQuery = `
		SELECT id, value, properties, created_at FROM strings WHERE value = ?`

	deleteByValueQuery = `
		DELETE FROM strings WHERE value = ?`

	scanAllQuery = `
		SELECT id, value, properties, created_at FROM strings
		ORDER BY created_at, id`
)

// SQLiteStore implements Repository with a SQLite backend. Properties
// are serialized to a JSON column; the UNIQUE constraint on value is
// the data-layer backstop for the check-then-insert race, turning a
// late collision into the same ErrConflict.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// OpenDatabase opens (and creates if necessary) the SQLite database at
// path. Use ":memory:" for an in-process database.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}
	return db, nil
}

// NewSQLiteStore creates the store and ensures the schema exists.
func NewSQLiteStore(db *sql.DB, logger *zap.SugaredLogger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if _, err := db.Exec(createTableQuery); err != nil {
		return nil, errors.Wrap(err, "failed to create strings table")
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Create inserts a new record. The existence check runs first so the
// common duplicate case is reported without touching the constraint;
// concurrent submissions racing past the check are caught by the
// UNIQUE constraint and mapped to the same conflict.
func (s *SQLiteStore) Create(ctx context.Context, rec StringRecord) error {
	var exists bool
	if err := s.db.QueryRowContext(ctx, existsQuery, rec.Value).Scan(&exists); err != nil {
		return errors.Wrap(err, "failed to check for existing value")
	}
	if exists {
		return errors.Wrap(errors.ErrConflict, "String already exists")
	}

	propsJSON, err := json.Marshal(rec.Properties)
	if err != nil {
		return errors.Wrap(err, "failed to marshal properties")
	}

	_, err = s.db.ExecContext(ctx, insertQuery, rec.ID, rec.Value, string(propsJSON), rec.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Wrap(errors.ErrConflict, "String already exists")
		}
		return errors.Wrap(err, "failed to insert record")
	}

	s.logger.Infow("string analysis created", "id", rec.ID)
	return nil
}

// FindByValue returns the record for value, or ErrNotFound.
func (s *SQLiteStore) FindByValue(ctx context.Context, value string) (StringRecord, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx, selectByValueQuery, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StringRecord{}, errors.Wrap(errors.ErrNotFound, "String not found")
		}
		return StringRecord{}, errors.Wrap(err, "failed to query record")
	}
	return rec, nil
}

// DeleteByValue removes the record for value, or returns ErrNotFound.
func (s *SQLiteStore) DeleteByValue(ctx context.Context, value string) error {
	res, err := s.db.ExecContext(ctx, deleteByValueQuery, value)
	if err != nil {
		return errors.Wrap(err, "failed to delete record")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read rows affected")
	}
	if affected == 0 {
		return errors.Wrap(errors.ErrNotFound, "String not found")
	}
	s.logger.Infow("string deleted", "value", value)
	return nil
}

// ScanAll returns every stored record in creation order.
func (s *SQLiteStore) ScanAll(ctx context.Context) ([]StringRecord, error) {
	rows, err := s.db.QueryContext(ctx, scanAllQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan records")
	}
	defer rows.Close()

	records := []StringRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan record row")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed iterating records")
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (StringRecord, error) {
	var (
		rec       StringRecord
		propsJSON string
	)
	if err := row.Scan(&rec.ID, &rec.Value, &propsJSON, &rec.CreatedAt); err != nil {
		return StringRecord{}, err
	}
	var props analysis.StringProperties
	if err := json.Unmarshal([]byte(propsJSON), &props); err != nil {
		return StringRecord{}, errors.Wrap(err, "failed to unmarshal properties")
	}
	rec.Properties = props
	return rec, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
