// Package password builds random strings from character-class patterns.
//
// A pattern is a set of class markers: '?' the custom Options.Chars, 'a'
// lowercase, 'A' uppercase, '0' digits, '!' specials and '*' all of the
// above. Repeating a marker does not change the pool.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/cecil-the-coder/util-kit/pkg/errors"
)

const (
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Number  = "0123456789"
	Special = "~!@#$%^&()_+-={}[];',."
	All     = Lower + Upper + Number + Special
)

// Options tune a pattern.
type Options struct {
	// Chars is the pool selected by '?'.
	Chars string
	// Exclude lists characters removed from the final pool.
	Exclude string
}

// Generate returns length characters drawn from the pool described by pattern.
// A length of zero or less means len(pattern).
func Generate(pattern string, length int, opts Options) (string, error) {
	if length <= 0 {
		length = len(pattern)
	}
	return draw(Pool(pattern, opts), length)
}

// GenerateLength returns n characters drawn from All.
func GenerateLength(n int) (string, error) {
	return draw(All, n)
}

// FromChars returns n characters drawn from chars. n <= 0 means len(chars).
func FromChars(chars string, n int) (string, error) {
	if n <= 0 {
		n = len(chars)
	}
	return draw(chars, n)
}

// Pool returns the characters pattern selects, minus opts.Exclude.
func Pool(pattern string, opts Options) string {
	var b strings.Builder
	if strings.Contains(pattern, "?") {
		b.WriteString(opts.Chars)
	}
	if strings.Contains(pattern, "a") {
		b.WriteString(Lower)
	}
	if strings.Contains(pattern, "A") {
		b.WriteString(Upper)
	}
	if strings.Contains(pattern, "0") {
		b.WriteString(Number)
	}
	if strings.Contains(pattern, "!") {
		b.WriteString(Special)
	}
	if strings.Contains(pattern, "*") {
		b.WriteString(All)
	}
	pool := b.String()
	if opts.Exclude == "" {
		return pool
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(opts.Exclude, r) {
			return -1
		}
		return r
	}, pool)
}

func draw(pool string, n int) (string, error) {
	if n < 0 {
		return "", errors.Validation("length must not be negative")
	}
	chars := []rune(pool)
	if len(chars) == 0 {
		if n == 0 {
			return "", nil
		}
		return "", errors.Validation("character pool is empty")
	}
	limit := big.NewInt(int64(len(chars)))
	out := make([]rune, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %w", err)
		}
		out[i] = chars[idx.Int64()]
	}
	return string(out), nil
}
