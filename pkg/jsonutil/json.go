package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse decodes a JSON document. Blank input and "null" yield an empty map so
// callers can always index the result.
func Parse(s string) (any, error) {
	if strings.TrimSpace(s) == "" {
		return map[string]any{}, nil
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if v == nil {
		return map[string]any{}, nil
	}
	return v, nil
}

// ParseMap decodes a JSON object. Blank input and "null" yield an empty map.
func ParseMap(s string) (map[string]any, error) {
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
	return m, nil
}

// Stringify encodes v as JSON. nil encodes to "" and strings pass through untouched.
func Stringify(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(b), nil
}

// CleanObject deletes the keys of m holding an empty string and returns m.
func CleanObject(m map[string]any) map[string]any {
	for k, v := range m {
		if s, ok := v.(string); ok && s == "" {
			delete(m, k)
		}
	}
	return m
}

// CleanEmptyObjectProperties removes empty-string values from every map nested in v,
// descending into slices as well. Maps are cleaned in place; slice elements are
// never removed.
func CleanEmptyObjectProperties(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			if s, ok := e.(string); ok && s == "" {
				delete(t, k)
				continue
			}
			t[k] = CleanEmptyObjectProperties(e)
		}
	case []any:
		for i, e := range t {
			t[i] = CleanEmptyObjectProperties(e)
		}
	}
	return v
}

// PageFields are the keys ParseChildObjects decodes when none are given.
var PageFields = []string{"modules", "preloads", "css", "images", "image", "scripts", "tags", "related"}

// ParseChildObjects decodes the JSON string values found under keys (PageFields
// when empty) in place. Missing or empty values become empty maps; values that are
// already structured are left alone.
func ParseChildObjects(page map[string]any, keys ...string) (map[string]any, error) {
	if page == nil {
		page = map[string]any{}
	}
	if len(keys) == 0 {
		keys = PageFields
	}
	for _, k := range keys {
		switch v := page[k].(type) {
		case nil:
			page[k] = map[string]any{}
		case string:
			parsed, err := Parse(v)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			page[k] = parsed
		}
	}
	return page, nil
}
