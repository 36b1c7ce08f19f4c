package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Crypto fixtures sized for aes-256-cbc.
var (
	AESKey = bytes.Repeat([]byte("k"), 32)
	AESIV  = []byte("0123456789abcdef")
)

// Fixtures is a set of nested documents for merge and JSON tests.
type Fixtures struct {
	Base    map[string]any
	Overlay map[string]any
	List    []any
}

// NewFixtures returns fresh documents; callers may mutate them freely.
func NewFixtures() *Fixtures {
	return &Fixtures{
		Base: map[string]any{
			"name": "service",
			"settings": map[string]any{
				"port":    8080,
				"debug":   false,
				"origins": []any{"a.example.com", "b.example.com"},
			},
			"tags": []any{"alpha", "beta"},
		},
		Overlay: map[string]any{
			"settings": map[string]any{
				"debug": true,
				"tls":   map[string]any{"enabled": true},
			},
		},
		List: []any{1, "two", map[string]any{"three": 3}, nil},
	}
}

// WriteFile writes content to name under dir, creating parents, and returns
// the full path.
func WriteFile(t testing.TB, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// TempFile writes content to name inside a fresh t.TempDir().
func TempFile(t testing.TB, name, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), name, []byte(content))
}

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Clean(path))
	require.NoError(t, err)
	return data
}
