package mastermind

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

func code(s string) Code {
	c := make(Code, 0, len(s))
	for _, r := range s {
		c = append(c, Color(r))
	}
	return c
}

func TestGrade(t *testing.T) {
	tests := []struct {
		secret, guess  string
		exact, partial int
	}{
		{"RGBY", "RGBY", 4, 0},
		{"RGBY", "GRBB", 1, 2},
		{"RRGY", "RGGB", 2, 0},
		{"RRGY", "GRRB", 1, 2},
		{"RGBY", "YBGR", 0, 4},
		{"RRRR", "RGGG", 1, 0},
		{"RGGG", "GRRR", 0, 2},
		{"BBBB", "RGYR", 0, 0},
		{"RGBR", "RRRR", 2, 0},
		{"YRGB", "RRYY", 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.secret+"/"+tc.guess, func(t *testing.T) {
			res, err := Grade(code(tc.secret), code(tc.guess))
			if err != nil {
				t.Fatalf("Grade() error = %v", err)
			}
			if res.Exact != tc.exact || res.Partial != tc.partial {
				t.Errorf("Grade(%s, %s) = (%d,%d), want (%d,%d)",
					tc.secret, tc.guess, res.Exact, res.Partial, tc.exact, tc.partial)
			}
		})
	}
}

func TestGradeLengthMismatch(t *testing.T) {
	if _, err := Grade(code("RGBY"), code("RGB")); !errors.Is(err, core.ErrInvalidGuess) {
		t.Errorf("Grade() with short guess error = %v, want ErrInvalidGuess", err)
	}
}

// bruteForce counts exact matches position by position and the color
// overlap by multiplicity; partials are whatever overlap exact leaves.
func bruteForce(secret, guess Code) Result {
	var res Result
	counts := make(map[Color][2]int)
	for i := range secret {
		if secret[i] == guess[i] {
			res.Exact++
		}
		s := counts[secret[i]]
		s[0]++
		counts[secret[i]] = s
		g := counts[guess[i]]
		g[1]++
		counts[guess[i]] = g
	}
	overlap := 0
	for _, c := range counts {
		overlap += min(c[0], c[1])
	}
	res.Partial = overlap - res.Exact
	return res
}

func TestGradeMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	gen := Generator{Colors: DefaultColors, Length: DefaultLength}

	for i := 0; i < 2000; i++ {
		secret := gen.Generate(rng)
		guess := gen.Generate(rng)

		got, err := Grade(secret, guess)
		if err != nil {
			t.Fatalf("Grade() error = %v", err)
		}
		if got.Exact+got.Partial > len(secret) {
			t.Fatalf("Grade(%s, %s) = %+v exceeds code length", secret, guess, got)
		}
		if want := bruteForce(secret, guess); got != want {
			t.Fatalf("Grade(%s, %s) = %+v, brute force %+v", secret, guess, got, want)
		}
	}
}

func TestGeneratorUsesAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gen := Generator{Colors: DefaultColors, Length: 6}
	seen := make(map[Color]bool)

	for i := 0; i < 200; i++ {
		c := gen.Generate(rng)
		if len(c) != 6 {
			t.Fatalf("Generate() length = %d, want 6", len(c))
		}
		for _, color := range c {
			if !inAlphabet(color, DefaultColors) {
				t.Fatalf("Generate() produced %q outside the alphabet", color)
			}
			seen[color] = true
		}
	}
	if len(seen) != len(DefaultColors) {
		t.Errorf("Generate() used %d colors over 200 codes, want all %d", len(seen), len(DefaultColors))
	}
}

func TestGeneratorSeeded(t *testing.T) {
	gen := Generator{Colors: DefaultColors, Length: DefaultLength}
	a := gen.Generate(rand.New(rand.NewSource(99)))
	b := gen.Generate(rand.New(rand.NewSource(99)))
	if !a.Equal(b) {
		t.Errorf("same seed produced %s and %s", a, b)
	}
}
