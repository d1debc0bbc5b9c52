package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynguyendang/stringlab/pkg/common/errors"
)

func TestParseQuerySingleWord(t *testing.T) {
	for _, q := range []string{
		"all single word strings",
		"single-word entries",
		"ONE WORD only",
		"one-word please",
	} {
		parsed, err := parseQuery(q)
		require.NoError(t, err, "query %q", q)
		require.NotNil(t, parsed.WordCount)
		assert.Equal(t, 1, *parsed.WordCount)
	}
}

func TestParseQueryPalindrome(t *testing.T) {
	for _, q := range []string{"palindromic strings", "find palindromes", "Palindrome"} {
		parsed, err := parseQuery(q)
		require.NoError(t, err, "query %q", q)
		require.NotNil(t, parsed.IsPalindrome)
		assert.True(t, *parsed.IsPalindrome)
	}
}

func TestParseQueryLongerThan(t *testing.T) {
	parsed, err := parseQuery("strings longer than 10 characters")
	require.NoError(t, err)
	require.NotNil(t, parsed.MinLength)
	assert.Equal(t, 11, *parsed.MinLength)
}

func TestParseQueryCombinedRules(t *testing.T) {
	parsed, err := parseQuery("all single word palindromic strings")
	require.NoError(t, err)
	require.NotNil(t, parsed.WordCount)
	require.NotNil(t, parsed.IsPalindrome)
	assert.Equal(t, 1, *parsed.WordCount)
	assert.True(t, *parsed.IsPalindrome)
}

func TestParseQueryLetter(t *testing.T) {
	parsed, err := parseQuery("strings with the letter z")
	require.NoError(t, err)
	require.NotNil(t, parsed.ContainsCharacter)
	assert.Equal(t, "z", *parsed.ContainsCharacter)
}

func TestParseQueryContainingTheLetterOverrides(t *testing.T) {
	// The generic "letter X" rule fires first on the same phrase;
	// the explicit "containing the letter" rule then overwrites it.
	parsed, err := parseQuery("strings containing the letter x")
	require.NoError(t, err)
	require.NotNil(t, parsed.ContainsCharacter)
	assert.Equal(t, "x", *parsed.ContainsCharacter)
}

func TestParseQueryContainingBareLetterFillsOnly(t *testing.T) {
	parsed, err := parseQuery("strings containing z")
	require.NoError(t, err)
	require.NotNil(t, parsed.ContainsCharacter)
	assert.Equal(t, "z", *parsed.ContainsCharacter)

	// Already set by the "letter X" rule; "containing b" must not win.
	parsed, err = parseQuery("containing b with the letter a")
	require.NoError(t, err)
	require.NotNil(t, parsed.ContainsCharacter)
	assert.Equal(t, "a", *parsed.ContainsCharacter)
}

func TestParseQueryFirstVowel(t *testing.T) {
	parsed, err := parseQuery("strings with the first vowel")
	require.NoError(t, err)
	require.NotNil(t, parsed.ContainsCharacter)
	assert.Equal(t, "a", *parsed.ContainsCharacter)

	// Fill-only: an earlier rule wins.
	parsed, err = parseQuery("first vowel and the letter k")
	require.NoError(t, err)
	require.NotNil(t, parsed.ContainsCharacter)
	assert.Equal(t, "k", *parsed.ContainsCharacter)
}

func TestParseQueryUnparsable(t *testing.T) {
	for _, q := range []string{"", "   ", "show me everything interesting"} {
		_, err := parseQuery(q)
		assert.True(t, errors.Is(err, errors.ErrUnparsable), "query %q", q)
	}
}

func TestConflictingBoundsDetection(t *testing.T) {
	// No shipped rule sets max_length, so the conflict cannot be
	// produced end-to-end; the guard itself is still exercised here
	// via the same check parseQuery performs.
	c := Criteria{MinLength: intPtr(10), MaxLength: intPtr(2)}
	err := checkParsedBounds(c)
	assert.True(t, errors.Is(err, errors.ErrConflictingFilters))

	assert.NoError(t, checkParsedBounds(Criteria{MinLength: intPtr(2), MaxLength: intPtr(10)}))
	assert.NoError(t, checkParsedBounds(Criteria{MinLength: intPtr(2)}))
}

func TestListByQueryEndToEnd(t *testing.T) {
	svc := seededService(t, "racecar", "race car", "hello")

	res, err := svc.ListByQuery(context.Background(), "all single word palindromic strings")
	require.NoError(t, err)
	assert.Equal(t, []string{"racecar"}, func() []string {
		values := make([]string, 0, len(res.Data))
		for _, rec := range res.Data {
			values = append(values, rec.Value)
		}
		return values
	}())
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "all single word palindromic strings", res.InterpretedQuery.Original)
	assert.Equal(t, map[string]any{"word_count": 1, "is_palindrome": true}, res.InterpretedQuery.ParsedFilters)
}

func TestListByQueryUnparsableDoesNotScan(t *testing.T) {
	svc := New(failingRepo{}, nil)
	_, err := svc.ListByQuery(context.Background(), "gibberish with no rules")
	assert.True(t, errors.Is(err, errors.ErrUnparsable))
}
