package wheel

import (
	"strings"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

// HiddenRune marks an unrevealed letter in View output.
const HiddenRune = '*'

// MaskedView tracks which positions of a phrase are visible.
// Non-letters are visible from the start, and positions are never re-hidden.
type MaskedView struct {
	phrase   []rune
	revealed []bool
	hidden   int
}

// NewMaskedView masks every letter of phrase.
func NewMaskedView(phrase string) *MaskedView {
	v := &MaskedView{phrase: []rune(phrase)}
	v.revealed = make([]bool, len(v.phrase))
	for i, r := range v.phrase {
		if core.IsLetter(r) {
			v.hidden++
		} else {
			v.revealed[i] = true
		}
	}
	return v
}

// Reveal uncovers every position holding letter, case-insensitively.
// found reports whether the letter occurs at all; newly counts positions
// that were hidden before this call.
func (v *MaskedView) Reveal(letter rune) (found bool, newly int) {
	if !core.IsLetter(letter) {
		return false, 0
	}
	letter = core.ToLower(letter)
	for i, r := range v.phrase {
		if core.ToLower(r) != letter {
			continue
		}
		found = true
		if !v.revealed[i] {
			v.revealed[i] = true
			v.hidden--
			newly++
		}
	}
	return found, newly
}

// IsRevealed reports whether position i is visible.
func (v *MaskedView) IsRevealed(i int) bool {
	return i >= 0 && i < len(v.revealed) && v.revealed[i]
}

// Hidden returns the number of letters still masked.
func (v *MaskedView) Hidden() int { return v.hidden }

// Solved reports whether nothing is masked.
func (v *MaskedView) Solved() bool { return v.hidden == 0 }

// Phrase returns the unmasked phrase.
func (v *MaskedView) Phrase() string { return string(v.phrase) }

// String renders the phrase with hidden letters as '*'.
func (v *MaskedView) String() string {
	var b strings.Builder
	for i, r := range v.phrase {
		if v.revealed[i] {
			b.WriteRune(r)
		} else {
			b.WriteRune(HiddenRune)
		}
	}
	return b.String()
}
