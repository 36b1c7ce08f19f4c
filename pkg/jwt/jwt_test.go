package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2/jws"

	"github.com/cecil-the-coder/util-kit/pkg/errors"
)

func signedToken(t *testing.T) (string, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := jws.Encode(
		&jws.Header{Algorithm: "RS256", Typ: "JWT"},
		&jws.ClaimSet{
			Iss:           "issuer@example.com",
			Sub:           "user-42",
			Aud:           "https://api.example.com",
			Iat:           1700000000,
			Exp:           1700003600,
			PrivateClaims: map[string]interface{}{"role": "admin"},
		},
		key,
	)
	require.NoError(t, err)
	return token, key
}

func TestClaimsAndHeader(t *testing.T) {
	token, _ := signedToken(t)

	header, err := Header(token)
	require.NoError(t, err)
	assert.Equal(t, "RS256", header["alg"])
	assert.Equal(t, "JWT", header["typ"])

	claims, err := Claims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, float64(1700003600), claims["exp"])

	std, err := StandardClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "issuer@example.com", std.Iss)
	assert.Equal(t, int64(1700000000), std.Iat)
}

func TestBase64URLDecode(t *testing.T) {
	payload := `{"name":"ok?"}`
	raw := base64.RawURLEncoding.EncodeToString([]byte(payload))
	padded := base64.URLEncoding.EncodeToString([]byte(payload))

	tests := []struct {
		name    string
		segment string
		wantErr bool
	}{
		{"unpadded", raw, false},
		{"padded", padded, false},
		{"not base64", "***", true},
		{"not json", base64.RawURLEncoding.EncodeToString([]byte("plain")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Base64URLDecode(tt.segment)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, stderrors.Is(err, errors.ErrValidation))
				assert.Contains(t, err.Error(), "Base64URL decode of JWT segment failed")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok?", got["name"])
		})
	}
}

func TestMalformedToken(t *testing.T) {
	for _, token := range []string{"", "a.b", "a.b.c.d"} {
		_, err := Claims(token)
		assert.Truef(t, stderrors.Is(err, errors.ErrValidation), "token %q", token)
	}

	_, err := StandardClaims("a.%%%.c")
	assert.Equal(t, errors.NameValidation, errors.NameOf(err))
}

func TestVerify(t *testing.T) {
	token, key := signedToken(t)

	require.NoError(t, Verify(token, &key.PublicKey))

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	err = Verify(token, &other.PublicKey)
	assert.Equal(t, errors.NameAuthentication, errors.NameOf(err))

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"root"}`)) + "." + parts[2]
	assert.Error(t, Verify(tampered, &key.PublicKey))

	assert.True(t, stderrors.Is(Verify(token, nil), errors.ErrValidation))
}
