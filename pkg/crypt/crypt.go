// Package crypt wraps AES-CBC encryption with PKCS#7 padding and content hashing.
package crypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" //nolint:gosec // content fingerprint, not a security boundary
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cecil-the-coder/util-kit/pkg/errors"
)

// Algorithm names an AES-CBC variant by key size.
type Algorithm string

const (
	AES128CBC Algorithm = "aes-128-cbc"
	AES192CBC Algorithm = "aes-192-cbc"
	AES256CBC Algorithm = "aes-256-cbc"

	DefaultAlgorithm = AES256CBC
)

// KeySize returns the key length in bytes, or 0 for an unknown algorithm.
func (a Algorithm) KeySize() int {
	switch Algorithm(strings.ToLower(string(a))) {
	case AES128CBC:
		return 16
	case AES192CBC:
		return 24
	case AES256CBC:
		return 32
	default:
		return 0
	}
}

func newCBC(alg Algorithm, key, iv []byte) (cipher.Block, error) {
	if alg == "" {
		alg = DefaultAlgorithm
	}
	size := alg.KeySize()
	if size == 0 {
		return nil, errors.Validation(fmt.Sprintf("unsupported algorithm %q", alg))
	}
	if len(key) != size {
		return nil, errors.Validation(fmt.Sprintf("%s requires a %d byte key, got %d", alg, size, len(key)))
	}
	if len(iv) != aes.BlockSize {
		return nil, errors.Validation(fmt.Sprintf("IV must be %d bytes, got %d", aes.BlockSize, len(iv)))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return block, nil
}

// Encrypt pads data with PKCS#7 and encrypts it with alg in CBC mode.
// An empty alg means DefaultAlgorithm.
func Encrypt(alg Algorithm, key, iv, data []byte) ([]byte, error) {
	block, err := newCBC(alg, key, iv)
	if err != nil {
		return nil, err
	}
	padded := pad(data, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

// Decrypt reverses Encrypt.
func Decrypt(alg Algorithm, key, iv, data []byte) ([]byte, error) {
	block, err := newCBC(alg, key, iv)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, errors.Validation("ciphertext is not a multiple of the block size")
	}
	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	return unpad(out, aes.BlockSize)
}

func pad(data []byte, size int) []byte {
	n := size - len(data)%size
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, size int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > size || n > len(data) {
		return nil, errors.Validation("invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.Validation("invalid padding")
		}
	}
	return data[:len(data)-n], nil
}

// Hash returns the hex MD5 digest of data. Strings and byte slices are hashed
// as is; anything else is JSON encoded first.
func Hash(data any) (string, error) {
	var raw []byte
	switch t := data.(type) {
	case string:
		raw = []byte(t)
	case []byte:
		raw = t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", fmt.Errorf("failed to encode hash input: %w", err)
		}
		raw = b
	}
	sum := md5.Sum(raw) //nolint:gosec
	return hex.EncodeToString(sum[:]), nil
}
