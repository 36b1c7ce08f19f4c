package array

import "slices"

// RemoveItemFromList removes every element of *s matching pred and returns the
// removed elements in their original order. *s is rewritten in place to hold the
// remaining elements, also in their original order.
//
// pred receives the element, its index and the slice as it was before any removal.
// A nil pointer or an empty slice yields an empty result.
func RemoveItemFromList[S ~[]E, E any](s *S, pred func(value E, index int, s S) bool) S {
	result := S{}
	if s == nil || len(*s) == 0 {
		return result
	}

	src := *s
	indexes := make([]int, 0)
	for i, v := range src {
		if pred(v, i, src) {
			result = append(result, v)
			indexes = append(indexes, i)
		}
	}

	basePullAt(s, indexes)
	return result
}

// Partition splits s into the elements that do not match pred and those that do,
// leaving s untouched.
func Partition[S ~[]E, E any](s S, pred func(value E, index int, s S) bool) (retained, removed S) {
	retained = make(S, 0, len(s))
	removed = S{}
	for i, v := range s {
		if pred(v, i, s) {
			removed = append(removed, v)
		} else {
			retained = append(retained, v)
		}
	}
	return retained, removed
}

// PullAt removes the elements at the given indexes from *s in place and returns
// them in ascending index order. Out of range and repeated indexes are skipped.
func PullAt[S ~[]E, E any](s *S, indexes ...int) S {
	pulled := S{}
	if s == nil || len(indexes) == 0 {
		return pulled
	}

	sorted := slices.Clone(indexes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	for _, i := range sorted {
		if IsIndex(i, len(*s)) {
			pulled = append(pulled, (*s)[i])
		}
	}

	basePullAt(s, sorted)
	return pulled
}

// IsIndex reports whether i addresses an element of a sequence of the given length.
func IsIndex(i, length int) bool {
	return length > 0 && i >= 0 && i < length
}

// basePullAt splices ascending indexes out of *s, highest first so the lower
// positions stay valid.
func basePullAt[S ~[]E, E any](s *S, indexes []int) {
	previous := -1
	for n := len(indexes) - 1; n >= 0; n-- {
		i := indexes[n]
		if n != len(indexes)-1 && i == previous {
			continue
		}
		previous = i
		if IsIndex(i, len(*s)) {
			*s = slices.Delete(*s, i, i+1)
		}
	}
}
