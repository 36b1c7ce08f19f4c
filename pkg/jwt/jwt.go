// Package jwt extracts header and claim data from compact JSON Web Tokens.
//
// Decoding never checks signatures. Use Verify when the token must be trusted.
package jwt

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/oauth2/jws"

	"github.com/cecil-the-coder/util-kit/pkg/errors"
)

const decodeFailure = "Base64URL decode of JWT segment failed"

// Base64URLDecode decodes one base64url segment of a token into a JSON object.
// Trailing padding is accepted but not required.
func Base64URLDecode(segment string) (map[string]any, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(segment, "="))
	if err != nil {
		return nil, errors.Wrap(errors.NameValidation, err, decodeFailure)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(errors.NameValidation, err, decodeFailure)
	}
	return out, nil
}

func segment(token string, i int) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", errors.Validation(fmt.Sprintf("JWT must have 3 segments, got %d", len(parts)))
	}
	return parts[i], nil
}

// Header returns the decoded header of token.
func Header(token string) (map[string]any, error) {
	s, err := segment(token, 0)
	if err != nil {
		return nil, err
	}
	return Base64URLDecode(s)
}

// Claims returns the decoded payload of token.
func Claims(token string) (map[string]any, error) {
	s, err := segment(token, 1)
	if err != nil {
		return nil, err
	}
	return Base64URLDecode(s)
}

// StandardClaims decodes the payload into the registered claim set.
func StandardClaims(token string) (*jws.ClaimSet, error) {
	cs, err := jws.Decode(token)
	if err != nil {
		return nil, errors.Wrap(errors.NameValidation, err, decodeFailure)
	}
	return cs, nil
}

// Verify checks an RS256 signature against key.
func Verify(token string, key *rsa.PublicKey) error {
	if key == nil {
		return errors.Validation("public key is required")
	}
	if err := jws.Verify(token, key); err != nil {
		return errors.Wrap(errors.NameAuthentication, err, "JWT signature verification failed")
	}
	return nil
}
