// Package invite generates shop invite codes.
package invite

import (
	"crypto/rand"
	"errors"
)

const (
	CodeLength = 6
	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var ErrGenerationFailed = errors.New("invite code generation failed")

// NewCode returns a random uppercase base36 code of CodeLength characters.
// Uniqueness is the caller's responsibility (the storage layer carries a
// unique constraint and the use case retries on collision).
func NewCode() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrGenerationFailed
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
