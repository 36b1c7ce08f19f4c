package merge

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Kind identifies which variant a Patch holds.
type Kind int

const (
	// KindValue assigns the carried value as is.
	KindValue Kind = iota
	// KindDelete removes the key or index it is placed under.
	KindDelete
	// KindSequence folds its sub-patches left to right.
	KindSequence
	// KindMapping patches keys of the target container.
	KindMapping
	// KindFunc computes the new value from the current one.
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "Value"
	case KindDelete:
		return "Delete"
	case KindSequence:
		return "Sequence"
	case KindMapping:
		return "Mapping"
	case KindFunc:
		return "Func"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// MergeFunc has the signature of Merge. Func patches receive it so they can
// combine values recursively.
type MergeFunc func(base any, patches ...Patch) any

// Func is a combinator patch. current is the value before the patch is applied
// (nil when absent).
type Func func(current any, merge MergeFunc) any

// Field is one key of a mapping patch.
type Field struct {
	Key   string
	Patch Patch
}

// Patch is a closed variant: Value, Delete, Sequence, Mapping or Func.
// The zero Patch is Value(nil).
type Patch struct {
	kind   Kind
	value  any
	items  []Patch
	fields []Field
	fn     Func

	// source is the map a Mapping was converted from, if any
	source map[string]any
}

// Kind returns the variant held by p.
func (p Patch) Kind() Kind {
	return p.kind
}

// Value returns a patch that assigns v directly. Slices are replaced wholesale and
// maps passed here are assigned without merging; use From or Map to merge.
func Value(v any) Patch {
	return Patch{kind: KindValue, value: v}
}

// Delete returns the delete marker. Under a []any result the key must be a
// canonical decimal index ("0", "12"); keys such as "01", "-1" or "+1" are ignored.
func Delete() Patch {
	return Patch{kind: KindDelete}
}

// Seq returns a patch applying each of ps in order.
func Seq(ps ...Patch) Patch {
	return Patch{kind: KindSequence, items: slices.Clone(ps)}
}

// Map returns a mapping patch. Fields are applied in the given order.
func Map(fields ...Field) Patch {
	return Patch{kind: KindMapping, fields: slices.Clone(fields)}
}

// Set pairs a key with its patch for Map.
func Set(key string, p Patch) Field {
	return Field{Key: key, Patch: p}
}

// Fn returns a combinator patch.
func Fn(f Func) Patch {
	if f == nil {
		return Value(nil)
	}
	return Patch{kind: KindFunc, fn: f}
}

// From converts a plain structure into a Patch.
//
// A map[string]any becomes a Mapping with its index-like keys first in numeric
// order, the rest in string order, and its values converted recursively.
// A top-level []any becomes a Sequence of converted elements, while a []any
// found under a key is a Value so arrays replace wholesale. Patches pass through, functions become Func patches and everything
// else is a Value.
func From(v any) Patch {
	if s, ok := v.([]any); ok {
		items := make([]Patch, len(s))
		for i, e := range s {
			items[i] = From(e)
		}
		return Patch{kind: KindSequence, items: items}
	}
	return fromValue(v)
}

func fromValue(v any) Patch {
	switch t := v.(type) {
	case Patch:
		return t
	case Func:
		return Fn(t)
	case func(any, MergeFunc) any:
		return Fn(t)
	case map[string]any:
		if t == nil {
			return Value(nil)
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, compareKeys)
		fields := make([]Field, len(keys))
		for i, k := range keys {
			fields[i] = Field{Key: k, Patch: fromValue(t[k])}
		}
		return Patch{kind: KindMapping, fields: fields, source: t}
	default:
		return Value(v)
	}
}

// compareKeys orders index-like keys numerically ahead of all other keys, which
// sort as strings. Applying "2" before "10" keeps splices on a []any predictable.
func compareKeys(a, b string) int {
	ai, aok := parseIndex(a)
	bi, bok := parseIndex(b)
	switch {
	case aok && bok:
		return cmp.Compare(ai, bi)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
