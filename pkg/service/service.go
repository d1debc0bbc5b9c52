// Package service orchestrates validation, analysis and persistence
// of string records, and hosts the filter engine and the
// natural-language query interpreter.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/duynguyendang/stringlab/pkg/common/errors"
	"github.com/duynguyendang/stringlab/pkg/store"
)

// StringService is the facade over the repository. Dependencies are
// passed in at construction; there is no package-level state.
type StringService struct {
	repo   store.Repository
	logger *zap.SugaredLogger
}

// New creates a StringService. A nil logger is replaced with a no-op.
func New(repo store.Repository, logger *zap.SugaredLogger) *StringService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &StringService{repo: repo, logger: logger}
}

// Submit validates, analyzes and persists a new value. Blank values
// (after trimming) are rejected before any storage access; duplicates
// surface as ErrConflict from the repository.
func (s *StringService) Submit(ctx context.Context, value string) (store.StringRecord, error) {
	if strings.TrimSpace(value) == "" {
		s.logger.Errorw("rejected blank string value")
		return store.StringRecord{}, errors.Wrap(errors.ErrInvalidInput, "String value is required")
	}

	rec := store.NewRecord(value)
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Errorw("failed to create string record", "id", rec.ID, "error", err)
		return store.StringRecord{}, err
	}

	s.logger.Infow("string analysis created", "id", rec.ID)
	return rec, nil
}

// Retrieve returns the record for value, or ErrNotFound.
func (s *StringService) Retrieve(ctx context.Context, value string) (store.StringRecord, error) {
	rec, err := s.repo.FindByValue(ctx, value)
	if err != nil {
		s.logger.Errorw("failed to fetch string record", "error", err)
		return store.StringRecord{}, err
	}
	return rec, nil
}

// Remove deletes the record for value, or returns ErrNotFound.
func (s *StringService) Remove(ctx context.Context, value string) error {
	if err := s.repo.DeleteByValue(ctx, value); err != nil {
		s.logger.Errorw("failed to delete string record", "error", err)
		return err
	}
	s.logger.Infow("string deleted", "value", value)
	return nil
}
