package core

import (
	"math/bits"
	"strings"
)

// AlphabetSize is the number of letters computer strategies choose from.
const AlphabetSize = 26

// LetterSet is a set of the 26 ASCII letters, case-folded.
// The zero value is an empty set.
type LetterSet uint32

const fullLetterSet LetterSet = 1<<AlphabetSize - 1

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ToLower folds an ASCII letter to lower case. Other runes are returned unchanged.
func ToLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func letterBit(r rune) (LetterSet, bool) {
	if !IsLetter(r) {
		return 0, false
	}
	return 1 << uint(ToLower(r)-'a'), true
}

// Has reports whether the letter is in the set.
func (s LetterSet) Has(r rune) bool {
	bit, ok := letterBit(r)
	return ok && s&bit != 0
}

// Add inserts the letter and reports whether it was newly added.
// Non-letters are ignored.
func (s *LetterSet) Add(r rune) bool {
	bit, ok := letterBit(r)
	if !ok || *s&bit != 0 {
		return false
	}
	*s |= bit
	return true
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Full reports whether all 26 letters are in the set.
func (s LetterSet) Full() bool {
	return s&fullLetterSet == fullLetterSet
}

// Clear empties the set.
func (s *LetterSet) Clear() {
	*s = 0
}

// String lists the letters in alphabetical order.
func (s LetterSet) String() string {
	var b strings.Builder
	for r := 'a'; r <= 'z'; r++ {
		if s.Has(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
