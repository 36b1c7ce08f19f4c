// Package random produces short identifiers and UUIDs.
package random

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var now = time.Now

// RandomChar returns an uppercase ASCII letter.
func RandomChar() string {
	return string(rune('A' + rand.IntN(26)))
}

// RandomID returns a letter, the current Unix time in milliseconds and another letter.
// IDs sort roughly by creation time but are not guaranteed unique.
func RandomID() string {
	return RandomChar() + strconv.FormatInt(now().UnixMilli(), 10) + RandomChar()
}

// GenerateUUID returns a random (version 4) UUID.
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateUUIDv7 returns a time-ordered (version 7) UUID.
func GenerateUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUIDv7: %w", err)
	}
	return id.String(), nil
}
