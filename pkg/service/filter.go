package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/duynguyendang/stringlab/pkg/common/errors"
	"github.com/duynguyendang/stringlab/pkg/store"
)

// Criteria is the optional predicate set applied to stored records.
// Nil fields impose no constraint. Serialized as-is for the
// filters_applied echo, so unset fields appear as null rather than as
// zero values.
type Criteria struct {
	IsPalindrome      *bool   `json:"is_palindrome"`
	MinLength         *int    `json:"min_length"`
	MaxLength         *int    `json:"max_length"`
	WordCount         *int    `json:"word_count"`
	ContainsCharacter *string `json:"contains_character"`
}

// Validate fails fast with ErrInvalidInput before any scan happens.
func (c Criteria) Validate() error {
	if c.MinLength != nil && *c.MinLength < 0 {
		return errors.Wrap(errors.ErrInvalidInput, "min_length must be a non-negative integer")
	}
	if c.MaxLength != nil && *c.MaxLength < 0 {
		return errors.Wrap(errors.ErrInvalidInput, "max_length must be a non-negative integer")
	}
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		return errors.Wrap(errors.ErrInvalidInput, "min_length cannot be greater than max_length")
	}
	if c.WordCount != nil && *c.WordCount < 0 {
		return errors.Wrap(errors.ErrInvalidInput, "word_count must be a non-negative integer")
	}
	if c.ContainsCharacter != nil && utf8.RuneCountInString(*c.ContainsCharacter) != 1 {
		return errors.Wrap(errors.ErrInvalidInput, "contains_character must be a single character string")
	}
	return nil
}

// matches reports whether rec satisfies every supplied criterion.
// Bounds are inclusive; contains_character is substring membership on
// the raw value, not a frequency map lookup.
func (c Criteria) matches(rec store.StringRecord) bool {
	props := rec.Properties
	if c.IsPalindrome != nil && props.IsPalindrome != *c.IsPalindrome {
		return false
	}
	if c.MinLength != nil && props.Length < *c.MinLength {
		return false
	}
	if c.MaxLength != nil && props.Length > *c.MaxLength {
		return false
	}
	if c.WordCount != nil && props.WordCount != *c.WordCount {
		return false
	}
	if c.ContainsCharacter != nil && !strings.Contains(rec.Value, *c.ContainsCharacter) {
		return false
	}
	return true
}

// Fields returns only the criteria that are set, keyed by their wire
// names. Used for the parsed_filters echo of the query interpreter,
// which omits fields no rule produced.
func (c Criteria) Fields() map[string]any {
	fields := make(map[string]any)
	if c.IsPalindrome != nil {
		fields["is_palindrome"] = *c.IsPalindrome
	}
	if c.MinLength != nil {
		fields["min_length"] = *c.MinLength
	}
	if c.MaxLength != nil {
		fields["max_length"] = *c.MaxLength
	}
	if c.WordCount != nil {
		fields["word_count"] = *c.WordCount
	}
	if c.ContainsCharacter != nil {
		fields["contains_character"] = *c.ContainsCharacter
	}
	return fields
}

// FilterResult carries the matched records, their count and the
// criteria exactly as supplied.
type FilterResult struct {
	Data           []store.StringRecord `json:"data"`
	Count          int                  `json:"count"`
	FiltersApplied Criteria             `json:"filters_applied"`
}

// ListFiltered validates the criteria, scans all records and returns
// the subset matching every supplied predicate.
func (s *StringService) ListFiltered(ctx context.Context, criteria Criteria) (FilterResult, error) {
	if err := criteria.Validate(); err != nil {
		s.logger.Errorw("invalid filter criteria", "error", err)
		return FilterResult{}, err
	}

	records, err := s.repo.ScanAll(ctx)
	if err != nil {
		s.logger.Errorw("failed to scan records for filtering", "error", err)
		return FilterResult{}, err
	}

	matched := []store.StringRecord{}
	for _, rec := range records {
		if criteria.matches(rec) {
			matched = append(matched, rec)
		}
	}

	return FilterResult{
		Data:           matched,
		Count:          len(matched),
		FiltersApplied: criteria,
	}, nil
}
