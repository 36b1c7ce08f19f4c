package merge

import (
	"reflect"
	"strconv"
)

// Merge applies patches to base from left to right and returns a new structure.
//
// A []any base yields a []any result, any other base yields a map[string]any.
// The top-level container is always a fresh copy and nested containers touched by
// a patch are copied before they change, so base and the patches are never mutated.
func Merge(base any, patches ...Patch) any {
	out, _ := run(copyContainer(base), true, Patch{kind: KindSequence, items: patches})
	return out
}

// MergeValues is Merge over plain structures, each converted with From.
func MergeValues(base any, patches ...any) any {
	ps := make([]Patch, len(patches))
	for i, p := range patches {
		ps[i] = From(p)
	}
	return Merge(base, ps...)
}

// run applies p to acc. owned reports whether acc is a container this merge
// created and may therefore modify in place; the returned flag says the same of
// the result.
func run(acc any, owned bool, p Patch) (any, bool) {
	switch p.kind {
	case KindSequence:
		for _, item := range p.items {
			acc, owned = run(acc, owned, item)
		}
	case KindMapping:
		acc, owned = applyFields(acc, owned, p), true
	case KindFunc:
		// The result may be shared with the function's caller.
		acc, owned = p.fn(acc, Merge), false
	case KindValue:
		// Only containers carry keys to apply; bare scalars are ignored.
		switch p.value.(type) {
		case map[string]any, []any:
			acc, owned = run(acc, owned, From(p.value))
		}
	}
	return acc, owned
}

func applyFields(acc any, owned bool, p Patch) any {
	if !owned {
		acc = copyOrSelf(acc)
	}
	var t target
	switch c := acc.(type) {
	case map[string]any:
		t = mapTarget(c)
	case []any:
		t = &seqTarget{s: c}
	default:
		t = mapTarget(map[string]any{})
	}
	for _, f := range p.fields {
		applyField(t, f)
	}
	return t.result()
}

func applyField(t target, f Field) {
	k, p := f.Key, f.Patch
	cur, _ := t.get(k)

	switch p.kind {
	case KindFunc:
		t.set(k, p.fn(cur, Merge))
	case KindDelete:
		t.del(k)
	case KindValue:
		t.set(k, p.value)
	case KindMapping:
		cm, ok := cur.(map[string]any)
		switch {
		case ok && cm != nil && p.source != nil && sameMap(p.source, cm):
			t.set(k, cm)
		case ok && cm != nil:
			t.set(k, Merge(cm, p))
		default:
			// The current value is discarded, not merged.
			v, _ := run(map[string]any{}, true, p)
			t.set(k, v)
		}
	case KindSequence:
		v, _ := run(copyOrSelf(cur), true, p)
		t.set(k, v)
	}
}

// copyContainer returns a fresh shallow copy of v if it is a container and a
// fresh empty map otherwise.
func copyContainer(v any) any {
	switch c := v.(type) {
	case []any:
		out := make([]any, len(c))
		copy(out, c)
		return out
	case map[string]any:
		out := make(map[string]any, len(c))
		for k, e := range c {
			out[k] = e
		}
		return out
	default:
		return map[string]any{}
	}
}

func copyOrSelf(v any) any {
	switch v.(type) {
	case []any, map[string]any:
		return copyContainer(v)
	default:
		return v
	}
}

func sameMap(a, b map[string]any) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}

// target abstracts key access over the two container shapes.
type target interface {
	get(key string) (any, bool)
	set(key string, v any)
	del(key string)
	result() any
}

type mapTarget map[string]any

func (m mapTarget) get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapTarget) set(key string, v any) { m[key] = v }
func (m mapTarget) del(key string)        { delete(m, key) }
func (m mapTarget) result() any           { return map[string]any(m) }

// seqTarget addresses a slice by canonical decimal index. Other keys are ignored.
type seqTarget struct {
	s []any
}

func (t *seqTarget) get(key string) (any, bool) {
	i, ok := parseIndex(key)
	if !ok || i >= len(t.s) {
		return nil, false
	}
	return t.s[i], true
}

// set replaces an existing element or appends when the index equals the length.
// Indexes further out are ignored rather than padded.
func (t *seqTarget) set(key string, v any) {
	i, ok := parseIndex(key)
	switch {
	case !ok:
	case i < len(t.s):
		t.s[i] = v
	case i == len(t.s):
		t.s = append(t.s, v)
	}
}

func (t *seqTarget) del(key string) {
	i, ok := parseIndex(key)
	if !ok || i >= len(t.s) {
		return
	}
	t.s = append(t.s[:i:i], t.s[i+1:]...)
}

func (t *seqTarget) result() any { return t.s }

// parseIndex accepts "0" or a decimal without a leading zero.
func parseIndex(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return n, true
}
