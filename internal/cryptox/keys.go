package cryptox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/UdayAnalyst/visual-news/internal/common"
)

// LoadOrCreateKey returns the symmetric store key, generating and persisting
// a fresh one on first use. The key file is written with 0600 permissions so
// only the service account can read it.
//
// The same key protects the entire store for the lifetime of the
// deployment. There is no rotation: re-keying would require decrypting and
// re-encrypting every record, which is not supported. Losing the key file
// makes the existing store permanently unreadable.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != KeySize {
			return nil, fmt.Errorf("key file %s: %w", path, ErrInvalidKey)
		}
		return key, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	key = common.GenerateRandByteArray(KeySize)

	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("writing key file: %w", err)
	}

	return key, nil
}
