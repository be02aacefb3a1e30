// Package cryptox implements the at-rest protection for the user store:
// AES-256-GCM encryption of a serialized snapshot into a single opaque
// text token, plus the lifecycle of the symmetric key that protects it.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

var (
	ErrInvalidKey  = errors.New("invalid encryption key")
	ErrInvalidBlob = errors.New("invalid encrypted blob")
)

// EncryptBlob encrypts plaintext with AES-GCM under key and returns a
// single URL-safe base64 token. A fresh random nonce is generated per call
// and prefixed to the ciphertext inside the token, so the token is
// self-contained and safe to write to a file as-is.
func EncryptBlob(plaintext, key []byte) (string, error) {
	if len(key) != KeySize {
		return "", ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := aesgcm.Seal(nonce, nonce, plaintext, nil)

	return base64.URLEncoding.EncodeToString(sealed), nil
}

// DecryptBlob reverses EncryptBlob. It returns ErrInvalidBlob for any
// malformed or tampered token, including one produced under a different
// key; callers are expected to treat that as "no data" (see vault.Store).
func DecryptBlob(token string, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	sealed, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidBlob
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(sealed) < aesgcm.NonceSize() {
		return nil, ErrInvalidBlob
	}

	nonce, ciphertext := sealed[:aesgcm.NonceSize()], sealed[aesgcm.NonceSize():]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidBlob
	}

	return plaintext, nil
}
