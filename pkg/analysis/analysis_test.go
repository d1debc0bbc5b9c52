package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeDeterministic(t *testing.T) {
	a := Analyze("race car")
	b := Analyze("race car")
	assert.Equal(t, a, b)
}

func TestAnalyzeLengthCountsRunes(t *testing.T) {
	assert.Equal(t, 5, Analyze("hello").Length)
	assert.Equal(t, 0, Analyze("").Length)
	// Multi-byte runes count once each.
	assert.Equal(t, 5, Analyze("héllo").Length)
	assert.Equal(t, 2, Analyze("日本").Length)
}

func TestAnalyzePalindrome(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"racecar", true},
		{"race car", true}, // internal space removed by normalization
		{"RaceCar", true},
		{"  racecar  ", true},
		{"hello", false},
		{"a,a", true},        // punctuation kept, but symmetric
		{"ab, a", false},     // comma stays, breaks symmetry
		{"", true},           // empty normalizes to empty, trivially palindromic
		{"race\tcar", false}, // tab is not removed, only spaces
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Analyze(tc.in).IsPalindrome, "input %q", tc.in)
	}
}

func TestAnalyzeUniqueCharacters(t *testing.T) {
	assert.Equal(t, 4, Analyze("hello").UniqueCharacters) // h e l o
	assert.Equal(t, 2, Analyze("aA").UniqueCharacters)    // case-sensitive
	assert.Equal(t, 2, Analyze("a a").UniqueCharacters)   // space counts as a character
}

func TestAnalyzeWordCount(t *testing.T) {
	assert.Equal(t, 1, Analyze("hello").WordCount)
	assert.Equal(t, 2, Analyze("race car").WordCount)
	assert.Equal(t, 3, Analyze("  a  b\tc ").WordCount)
	assert.Equal(t, 0, Analyze("   ").WordCount)
	assert.Equal(t, 0, Analyze("").WordCount)
}

func TestAnalyzeSHA256ReferenceVector(t *testing.T) {
	// Known vector: sha256("hello")
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Analyze("hello").SHA256Hash)
	assert.Equal(t, Analyze("hello").SHA256Hash, Digest("hello"))
}

func TestAnalyzeCharacterFrequency(t *testing.T) {
	props := Analyze("hello")
	assert.Equal(t, map[string]int{"h": 1, "e": 1, "l": 2, "o": 1}, props.CharacterFrequencyMap)

	props = Analyze("a a")
	assert.Equal(t, map[string]int{"a": 2, " ": 1}, props.CharacterFrequencyMap)

	assert.Empty(t, Analyze("").CharacterFrequencyMap)
}
