package testutil

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/util-kit/pkg/errors"
)

// recorder captures failures from helpers under test.
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}
func (r *recorder) Error(...any) { r.failed = true }
func (r *recorder) Errorf(string, ...any) { r.failed = true }
func (r *recorder) Failed() bool { return r.failed }

func TestAssertDeepEqual(t *testing.T) {
	assert.True(t, AssertDeepEqual(t, map[string]any{"a": []any{1}}, map[string]any{"a": []any{1}}))

	inner := &recorder{}
	assert.False(t, AssertDeepEqual(inner, []any{}, []any(nil)), "nil and empty slices differ")
}

func TestAssertErrorName(t *testing.T) {
	AssertErrorName(t, errors.Validation("bad"), errors.NameValidation)
	AssertErrorName(t, errors.Wrap(errors.NameFileNotFound, assert.AnError, "missing"), errors.NameFileNotFound)
}

func TestAssertStatusCode(t *testing.T) {
	AssertStatusCode(t, http.StatusOK, 200)

	inner := &recorder{}
	AssertStatusCode(inner, http.StatusOK, http.StatusNotFound)
	assert.True(t, inner.Failed())
}

func TestDeepCopyAndAssertUnchanged(t *testing.T) {
	f := NewFixtures()
	cp := DeepCopy(f.Base).(map[string]any)
	cp["settings"].(map[string]any)["port"] = 1

	assert.Equal(t, 8080, f.Base["settings"].(map[string]any)["port"])

	AssertUnchanged(t, f.Base, func() {
		_ = DeepCopy(f.Base)
	})

	inner := &recorder{}
	AssertUnchanged(inner, f.List, func() { f.List[0] = 99 })
	assert.True(t, inner.Failed())
}

func TestFixturesAreFresh(t *testing.T) {
	a, b := NewFixtures(), NewFixtures()
	a.Base["name"] = "changed"
	assert.Equal(t, "service", b.Base["name"])
	assert.Len(t, AESKey, 32)
	assert.Len(t, AESIV, 16)
}

func TestTempFiles(t *testing.T) {
	path := TempFile(t, "nested/dir/file.txt", "hello")
	assert.Equal(t, "file.txt", filepath.Base(path))
	assert.Equal(t, []byte("hello"), ReadFile(t, path))

	dir := t.TempDir()
	p := WriteFile(t, dir, "a.bin", []byte{0, 1})
	assert.Equal(t, filepath.Join(dir, "a.bin"), p)
}

func TestContexts(t *testing.T) {
	ctx := TestContext(t)
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(30*time.Second), deadline, 5*time.Second)

	short := TestContextWithTimeout(t, time.Millisecond)
	<-short.Done()
	assert.Error(t, short.Err())

	assert.Error(t, CancelledContext(t).Err())
}
