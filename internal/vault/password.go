package vault

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades login latency for offline brute-force resistance.
// 12 keeps a single verification in the tens of milliseconds on current
// hardware while making bulk cracking of a leaked store impractical.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt. The per-call random
// salt is embedded in the returned hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against a stored bcrypt hash
// using the scheme's own constant-time comparison. Never compare hash
// strings with ==.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
