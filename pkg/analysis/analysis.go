// Package analysis computes derived properties for submitted strings.
// Analyze is a pure function: the same input always yields the same
// property set, so properties are computed once at creation time and
// stored alongside the value.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// StringProperties is the fixed property bundle derived from a string.
// All fields are computed from the raw input except is_palindrome,
// which works on a normalized copy (trimmed, lowercased, spaces
// removed). Punctuation is not stripped during normalization.
type StringProperties struct {
	Length                int            `json:"length"`
	IsPalindrome          bool           `json:"is_palindrome"`
	UniqueCharacters      int            `json:"unique_characters"`
	WordCount             int            `json:"word_count"`
	SHA256Hash            string         `json:"sha256_hash"`
	CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
}

// Analyze derives the property set for text. Total function: every
// string, including the empty string, is valid input. Emptiness
// validation belongs to the service layer, not here.
func Analyze(text string) StringProperties {
	freq := make(map[string]int)
	unique := 0
	for _, r := range text {
		key := string(r)
		if freq[key] == 0 {
			unique++
		}
		freq[key]++
	}

	return StringProperties{
		Length:                utf8.RuneCountInString(text),
		IsPalindrome:          isPalindrome(text),
		UniqueCharacters:      unique,
		WordCount:             len(strings.Fields(text)),
		SHA256Hash:            Digest(text),
		CharacterFrequencyMap: freq,
	}
}

// Digest returns the hex-encoded SHA-256 of the raw UTF-8 bytes of
// text. The same digest serves as the record ID and as the stored
// sha256_hash property.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// isPalindrome normalizes (trim, lowercase, drop spaces) and compares
// the result against its own reversal. Only the plain space character
// is removed; tabs and punctuation stay significant.
func isPalindrome(text string) bool {
	clean := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(text)), " ", "")
	runes := []rune(clean)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
