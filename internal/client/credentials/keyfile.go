package credentials

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"github.com/freshkeep/freshkeep-cli/internal/cryptox"
)

const (
	keyFileName = "device.secret"
	saltSize    = 16
	secretSize  = 32
)

// LoadOrCreateKey returns the AES key protecting stored tokens. On first run
// it generates a random per-install secret and salt, written to a 0600 file
// in dataDir; afterwards the same file always derives the same key.
func LoadOrCreateKey(dataDir string) ([]byte, error) {
	path := filepath.Join(dataDir, keyFileName)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		raw = make([]byte, saltSize+secretSize)
		if _, err := rand.Read(raw); err != nil {
			return nil, fmt.Errorf("generate device secret: %w", err)
		}
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			return nil, fmt.Errorf("write device secret: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("read device secret: %w", err)
	}

	if len(raw) != saltSize+secretSize {
		return nil, fmt.Errorf("device secret file %s has unexpected size %d", path, len(raw))
	}

	return cryptox.DeriveKey(raw[saltSize:], raw[:saltSize]), nil
}
