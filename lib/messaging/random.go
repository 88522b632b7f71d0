package messaging

import (
	"github.com/go-i2p/crypto/rand"
	"github.com/samber/oops"
)

// GenerateRandomBytes returns size bytes drawn from the CSPRNG.
func GenerateRandomBytes(size int) ([]byte, error) {
	if size < 0 {
		return nil, oops.Errorf("messaging: negative size %d", size)
	}
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, oops.Errorf("messaging: crypto/rand failed: %w", err)
	}
	return b, nil
}

// GenerateGUID returns a fresh random identifier.
func GenerateGUID() (guid [GUID_SIZE]byte, err error) {
	if _, err = rand.Read(guid[:]); err != nil {
		err = oops.Errorf("messaging: crypto/rand failed: %w", err)
	}
	return
}
