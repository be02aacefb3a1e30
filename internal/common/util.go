// Package common provides small helpers shared across the vault and its
// callers: random material generation and secure wiping of sensitive buffers.
package common

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system random source fails, which is unrecoverable anyway.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// MakeURLSafeToken generates an opaque random identifier from size random
// bytes, encoded with the unpadded URL-safe base64 alphabet. With size=16
// the birthday-bound collision chance across any realistic number of
// accounts is negligible, so callers do not re-check uniqueness.
//
// Example:
//
//	id, err := MakeURLSafeToken(16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id) // e.g. "qW3kZ9xLJ2mPnO4aVscuFA"
func MakeURLSafeToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// WipeByteArray overwrites the contents of b with zeros. Use it to remove
// plaintext passwords and key material from memory once they are no longer
// needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
