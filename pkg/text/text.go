// Package text provides small string helpers: slugs, casing, truncation and padding.
package text

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	spacesRe   = regexp.MustCompile(` +`)
	nonSlugRe  = regexp.MustCompile(`[^\w-]+`)
	dashesRe   = regexp.MustCompile(`-+`)
	wordRe     = regexp.MustCompile(`\w\S*`)
	whiteRe    = regexp.MustCompile(`\s+`)
	nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// DefaultEnding is appended by Truncate when no ending is given.
const DefaultEnding = "..."

// ReverseString reverses s rune by rune.
func ReverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// IsPalindrome reports whether the ASCII letters and digits of s read the same
// in both directions, ignoring case.
func IsPalindrome(s string) bool {
	cleaned := strings.ToLower(nonAlnumRe.ReplaceAllString(s, ""))
	return cleaned == ReverseString(cleaned)
}

// Truncate shortens s to at most length runes, ending with ending (DefaultEnding
// when omitted). Strings that already fit are returned unchanged.
func Truncate(s string, length int, ending ...string) string {
	end := DefaultEnding
	if len(ending) > 0 {
		end = ending[0]
	}
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	keep := length - utf8.RuneCountInString(end)
	if keep < 0 {
		keep = 0
	}
	return string([]rune(s)[:keep]) + end
}

// CountOccurrences counts non-overlapping occurrences of sub in s. An empty sub
// counts as zero.
func CountOccurrences(s, sub string) int {
	if sub == "" {
		return 0
	}
	return strings.Count(s, sub)
}

// RemoveWhitespace strips every whitespace character from s.
func RemoveWhitespace(s string) string {
	return whiteRe.ReplaceAllString(s, "")
}

// CapitalizeFirstLetter upper-cases the first character of s when it is a word character.
func CapitalizeFirstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !isWordRune(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// MakeSlug converts s into a URL-friendly slug: spaces become hyphens,
// apostrophes and other non-word characters are dropped, hyphen runs collapse and
// the result is lower-cased.
func MakeSlug(s string) string {
	s = spacesRe.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "'", "")
	s = nonSlugRe.ReplaceAllString(s, "")
	s = dashesRe.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// TitleCase capitalizes the first letter of every word and lower-cases the rest.
func TitleCase(s string) string {
	return wordRe.ReplaceAllStringFunc(s, func(word string) string {
		r, size := utf8.DecodeRuneInString(word)
		return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
	})
}

// Pad left-pads num with zeros to size characters.
func Pad(num int, size int) string {
	s := strconv.Itoa(num)
	if len(s) >= size {
		return s
	}
	return strings.Repeat("0", size-len(s)) + s
}

// GetInitials returns up to two upper-cased initials of the words in s.
// A " - " separator counts as a single space.
func GetInitials(s string) string {
	s = strings.Replace(s, " - ", " ", 1)
	var b strings.Builder
	for _, word := range strings.Split(s, " ") {
		r, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			continue
		}
		b.WriteRune(r)
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

// EnsureEndingSlash appends "/" to s unless it already ends with one.
func EnsureEndingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

// OnOffToBool converts the HTML checkbox values "on" and "off". ok is false for
// any other input.
func OnOffToBool(v string) (value bool, ok bool) {
	switch v {
	case "on":
		return true, true
	case "off":
		return false, true
	default:
		return false, false
	}
}

func isWordRune(r rune) bool {
	return r == '_' || (r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)))
}
