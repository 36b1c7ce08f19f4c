package password

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/util-kit/pkg/errors"
)

func onlyFrom(t *testing.T, s, pool string) {
	t.Helper()
	for _, r := range s {
		assert.Truef(t, strings.ContainsRune(pool, r), "%q not in pool", r)
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		length  int
		opts    Options
		pool    string
		wantLen int
	}{
		{"lower", "a", 12, Options{}, Lower, 12},
		{"upper and digits", "A0", 20, Options{}, Upper + Number, 20},
		{"special", "!", 8, Options{}, Special, 8},
		{"length from pattern", "aaaa", 0, Options{}, Lower, 4},
		{"custom chars", "?", 10, Options{Chars: "xyz"}, "xyz", 10},
		{"all", "*", 32, Options{}, All, 32},
		{"exclude", "0", 50, Options{Exclude: "0123"}, "456789", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.pattern, tt.length, tt.opts)
			require.NoError(t, err)
			assert.Len(t, []rune(got), tt.wantLen)
			onlyFrom(t, got, tt.pool)
		})
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	_, err := Generate("x", 5, Options{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrValidation))

	_, err = Generate("0", 5, Options{Exclude: Number})
	assert.Error(t, err)

	s, err := Generate("", 0, Options{})
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestPool(t *testing.T) {
	assert.Equal(t, Lower+Number, Pool("a00", Options{}))
	assert.Equal(t, "ac", Pool("?", Options{Chars: "abc", Exclude: "b"}))
	assert.Empty(t, Pool("", Options{Chars: "abc"}))
}

func TestGenerateLengthAndFromChars(t *testing.T) {
	s, err := GenerateLength(64)
	require.NoError(t, err)
	assert.Len(t, s, 64)
	onlyFrom(t, s, All)

	s, err = FromChars("ab", 0)
	require.NoError(t, err)
	assert.Len(t, s, 2)
	onlyFrom(t, s, "ab")

	s, err = FromChars("é", 3)
	require.NoError(t, err)
	assert.Equal(t, "ééé", s)

	_, err = GenerateLength(-1)
	assert.Error(t, err)
}
