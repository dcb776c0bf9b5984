package mastermind

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

// Color is one peg symbol, stored upper case.
type Color rune

// Code is an ordered sequence of pegs.
type Code []Color

// DefaultColors is the classic four-color alphabet.
var DefaultColors = []Color{'R', 'G', 'B', 'Y'}

// DefaultLength is the number of pegs in a code.
const DefaultLength = 4

// String renders the code as its symbols, e.g. "RGBY".
func (c Code) String() string {
	var b strings.Builder
	for _, color := range c {
		b.WriteRune(rune(color))
	}
	return b.String()
}

// Equal reports whether both codes hold the same pegs in the same order.
func (c Code) Equal(other Code) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// ParseCode reads a code of exactly length symbols from alphabet.
// Input is trimmed and case-insensitive.
func ParseCode(input string, alphabet []Color, length int) (Code, error) {
	input = strings.ToUpper(strings.TrimSpace(input))
	symbols := []rune(input)
	if len(symbols) != length {
		return nil, fmt.Errorf("enter exactly %d colors from %s: %w", length, alphabetList(alphabet), core.ErrInvalidGuess)
	}

	code := make(Code, length)
	for i, r := range symbols {
		if !inAlphabet(Color(r), alphabet) {
			return nil, fmt.Errorf("%q is not one of %s: %w", r, alphabetList(alphabet), core.ErrInvalidGuess)
		}
		code[i] = Color(r)
	}
	return code, nil
}

// Generator draws secret codes.
type Generator struct {
	Colors []Color
	Length int
}

// Generate draws Length independent uniform symbols; repeats are allowed.
func (g Generator) Generate(rng *rand.Rand) Code {
	code := make(Code, g.Length)
	for i := range code {
		code[i] = g.Colors[rng.Intn(len(g.Colors))]
	}
	return code
}

func inAlphabet(c Color, alphabet []Color) bool {
	for _, a := range alphabet {
		if a == c {
			return true
		}
	}
	return false
}

// alphabetList formats colors as "R, G, B, Y".
func alphabetList(alphabet []Color) string {
	names := make([]string, len(alphabet))
	for i, c := range alphabet {
		names[i] = string(rune(c))
	}
	return strings.Join(names, ", ")
}
