package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/duynguyendang/stringlab/pkg/common/errors"
	"github.com/duynguyendang/stringlab/pkg/store"
)

// The natural-language interpreter is a fixed rule set over the
// lowercased query, not a language model. Rules fire independently and
// several may match one query. The contains_character rules overlap on
// purpose: the "containing the letter X" form re-matches what
// "letter X" already captured and overwrites it, while the looser
// "containing X" and "first vowel" forms only fill the field if no
// earlier rule set it. The ordering is load-bearing; keep it.
var (
	singleWordPattern       = regexp.MustCompile(`\bsingle[- ]word\b`)
	oneWordPattern          = regexp.MustCompile(`\bone[- ]word\b`)
	longerThanPattern       = regexp.MustCompile(`longer than\s+(\d+)`)
	letterPattern           = regexp.MustCompile(`letter\s+([a-z])`)
	containingLetterPattern = regexp.MustCompile(`containing\s+the\s+letter\s+([a-z])`)
	containingPattern       = regexp.MustCompile(`containing\s+([a-z])\b`)
)

// InterpretedQuery echoes the original query text and the filters the
// rules derived from it.
type InterpretedQuery struct {
	Original      string         `json:"original"`
	ParsedFilters map[string]any `json:"parsed_filters"`
}

// QueryResult is a filter result annotated with the interpretation
// that produced it.
type QueryResult struct {
	Data             []store.StringRecord `json:"data"`
	Count            int                  `json:"count"`
	InterpretedQuery InterpretedQuery     `json:"interpreted_query"`
}

// parseQuery translates free text into Criteria. Returns ErrUnparsable
// for blank input or when no rule fires, and ErrConflictingFilters
// when the parsed bounds invert (a semantic conflict in an otherwise
// well-formed parse, hence distinct from ErrInvalidInput).
func parseQuery(query string) (Criteria, error) {
	if strings.TrimSpace(query) == "" {
		return Criteria{}, errors.Wrap(errors.ErrUnparsable, "Unable to parse natural language query")
	}

	q := strings.ToLower(query)
	var parsed Criteria
	fired := false

	if singleWordPattern.MatchString(q) || oneWordPattern.MatchString(q) {
		one := 1
		parsed.WordCount = &one
		fired = true
	}

	if strings.Contains(q, "palindr") {
		truth := true
		parsed.IsPalindrome = &truth
		fired = true
	}

	if m := longerThanPattern.FindStringSubmatch(q); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			minLen := n + 1
			parsed.MinLength = &minLen
			fired = true
		}
	}

	if m := letterPattern.FindStringSubmatch(q); m != nil {
		ch := m[1]
		parsed.ContainsCharacter = &ch
		fired = true
	}

	// "containing the letter X" overwrites unconditionally.
	if m := containingLetterPattern.FindStringSubmatch(q); m != nil {
		ch := m[1]
		parsed.ContainsCharacter = &ch
		fired = true
	}

	// "containing X" only fills an unset field.
	if m := containingPattern.FindStringSubmatch(q); parsed.ContainsCharacter == nil && m != nil {
		ch := m[1]
		parsed.ContainsCharacter = &ch
		fired = true
	}

	// "first vowel" heuristic, also fill-only.
	if strings.Contains(q, "first vowel") {
		if parsed.ContainsCharacter == nil {
			a := "a"
			parsed.ContainsCharacter = &a
		}
		fired = true
	}

	if err := checkParsedBounds(parsed); err != nil {
		return Criteria{}, err
	}

	if !fired {
		return Criteria{}, errors.Wrap(errors.ErrUnparsable, "Unable to parse natural language query")
	}

	return parsed, nil
}

// checkParsedBounds rejects an inverted min/max pair coming out of a
// parse. Kept separate from Criteria.Validate because this is a
// semantic conflict in a well-formed parse (422), not malformed input
// (400).
func checkParsedBounds(c Criteria) error {
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		return errors.Wrap(errors.ErrConflictingFilters, "Parsed query resulted in conflicting filters")
	}
	return nil
}

// ListByQuery interprets a natural-language query and runs the
// resulting criteria through the filter engine.
func (s *StringService) ListByQuery(ctx context.Context, query string) (QueryResult, error) {
	parsed, err := parseQuery(query)
	if err != nil {
		s.logger.Errorw("failed to interpret query", "query", query, "error", err)
		return QueryResult{}, err
	}

	result, err := s.ListFiltered(ctx, parsed)
	if err != nil {
		return QueryResult{}, err
	}

	return QueryResult{
		Data:  result.Data,
		Count: result.Count,
		InterpretedQuery: InterpretedQuery{
			Original:      query,
			ParsedFilters: parsed.Fields(),
		},
	}, nil
}
