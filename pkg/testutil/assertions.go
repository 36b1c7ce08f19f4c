// Package testutil holds assertion wrappers, fixtures and temp-file helpers
// shared by util-kit's tests.
package testutil

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/util-kit/pkg/errors"
)

// AssertDeepEqual compares with go-cmp and reports a readable diff. Unlike
// assert.Equal it distinguishes a nil map or slice from an empty one.
func AssertDeepEqual(t testing.TB, expected, actual any, opts ...cmp.Option) bool {
	t.Helper()
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
		return false
	}
	return true
}

// AssertErrorName checks that err carries a util-kit *errors.Error with the given name.
func AssertErrorName(t testing.TB, err error, name errors.Name, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	assert.Equal(t, name, errors.NameOf(err), msgAndArgs...)
	assert.True(t, stderrors.Is(err, &errors.Error{Name: name}), "errors.Is should match %s", name)
}

// AssertStatusCode checks that the HTTP status code matches the expected value.
func AssertStatusCode(t testing.TB, expected, actual int, msgAndArgs ...any) {
	t.Helper()
	if expected != actual {
		msg := fmt.Sprintf("Expected status code %d (%s), got %d (%s)",
			expected, http.StatusText(expected),
			actual, http.StatusText(actual))
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf("%s: %v", msg, msgAndArgs[0])
		}
		t.Error(msg)
	}
}

// AssertJSONEqual compares two JSON strings, ignoring formatting differences.
func AssertJSONEqual(t testing.TB, expected, actual string, msgAndArgs ...any) {
	t.Helper()
	assert.JSONEq(t, expected, actual, msgAndArgs...)
}

// AssertUnchanged fails if running f alters v. It snapshots v with go-cmp
// semantics, so nested maps and slices are compared by value.
func AssertUnchanged(t testing.TB, v any, f func()) {
	t.Helper()
	before := DeepCopy(v)
	f()
	if diff := cmp.Diff(before, v); diff != "" {
		t.Errorf("value was mutated (-before +after):\n%s", diff)
	}
}

// DeepCopy clones the map[string]any / []any trees produced by JSON decoding.
// Other values are returned as is.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = DeepCopy(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = DeepCopy(e)
		}
		return out
	default:
		return v
	}
}
