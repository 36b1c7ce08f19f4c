package jsonutil

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies an RFC 7396 merge patch to doc: objects merge recursively,
// null deletes a key and everything else replaces.
func MergePatch(doc, patch []byte) ([]byte, error) {
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to apply merge patch: %w", err)
	}
	return out, nil
}

// CreateMergePatch returns the RFC 7396 merge patch turning original into modified.
func CreateMergePatch(original, modified []byte) ([]byte, error) {
	out, err := jsonpatch.CreateMergePatch(original, modified)
	if err != nil {
		return nil, fmt.Errorf("failed to create merge patch: %w", err)
	}
	return out, nil
}

// ApplyPatch applies an RFC 6902 operation list to doc.
func ApplyPatch(doc, ops []byte) ([]byte, error) {
	patch, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON patch: %w", err)
	}
	out, err := patch.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to apply JSON patch: %w", err)
	}
	return out, nil
}

// Equal reports whether two JSON documents are semantically equal.
func Equal(a, b []byte) bool {
	return jsonpatch.Equal(a, b)
}
