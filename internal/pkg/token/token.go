// Package token generates opaque session tokens.
package token

import (
	"crypto/rand"
	"encoding/base64"
)

// size is the number of random bytes per token. 32 bytes (256 bits) is
// enough entropy to make brute force and collision infeasible for the
// lifetime of a process's session table.
const size = 32

// New returns a cryptographically random, URL-safe opaque token.
func New() (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
