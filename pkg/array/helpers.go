package array

import (
	"math/rand/v2"
	"slices"
)

// HasItems reports whether s holds at least one element.
func HasItems[S ~[]E, E any](s S) bool {
	return len(s) > 0
}

// RemoveEmptyItems returns a new slice without the zero values of s.
func RemoveEmptyItems[S ~[]E, E comparable](s S) S {
	var zero E
	out := make(S, 0, len(s))
	for _, v := range s {
		if v != zero {
			out = append(out, v)
		}
	}
	return out
}

// Flatten recursively expands nested []any values into a single level.
func Flatten(s []any) []any {
	out := make([]any, 0, len(s))
	for _, v := range s {
		if inner, ok := v.([]any); ok {
			out = append(out, Flatten(inner)...)
			continue
		}
		out = append(out, v)
	}
	return out
}

// RemoveDuplicates returns the distinct elements of s in first-seen order.
func RemoveDuplicates[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// GroupBy buckets the elements of s by the key returned from key.
func GroupBy[S ~[]E, E any, K comparable](s S, key func(E) K) map[K]S {
	groups := make(map[K]S)
	for _, v := range s {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// Intersect returns the elements of a that are also present in b, in a's order.
func Intersect[S ~[]E, E comparable](a, b S) S {
	in := make(map[E]struct{}, len(b))
	for _, v := range b {
		in[v] = struct{}{}
	}
	out := make(S, 0)
	for _, v := range a {
		if _, ok := in[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Shuffle returns a shuffled copy of s.
func Shuffle[S ~[]E, E any](s S) S {
	out := slices.Clone(s)
	if out == nil {
		return S{}
	}
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Find returns the first element matching pred.
func Find[S ~[]E, E any](s S, pred func(E) bool) (E, bool) {
	if i := slices.IndexFunc(s, pred); i >= 0 {
		return s[i], true
	}
	var zero E
	return zero, false
}

// NextAfter returns the element following the first occurrence of current.
// It reports false when current is missing or last.
func NextAfter[S ~[]E, E comparable](s S, current E) (E, bool) {
	var zero E
	i := slices.Index(s, current)
	if i < 0 || i+1 >= len(s) {
		return zero, false
	}
	return s[i+1], true
}
