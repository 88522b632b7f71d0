package messaging

import (
	"bytes"
	"sync"

	"github.com/go-i2p/crypto/ed25519"
	"github.com/go-i2p/crypto/rand"
	"github.com/go-i2p/crypto/types"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// initialiser runs selfTest at most once and remembers the outcome.
// The result is terminal: a failed self-test is never retried.
type initialiser struct {
	once     sync.Once
	selfTest func() error
	err      error
}

func (i *initialiser) initialise() error {
	i.once.Do(func() {
		if err := i.selfTest(); err != nil {
			log.WithError(err).Error("Crypto backend initialisation failed")
			i.err = oops.Wrapf(ErrCryptoInitFailed, "%s", err.Error())
			return
		}
		log.Debug("Crypto backend initialised")
	})
	return i.err
}

var backend = &initialiser{selfTest: selfTestBackend}

// InitialiseCrypto prepares the crypto backend for use. Only the first call
// in the process does any work; every later call returns the same result.
// The returned error, if any, wraps ErrCryptoInitFailed.
func InitialiseCrypto() error {
	return backend.initialise()
}

// SetBackendForTest swaps in a fresh one-shot initialiser that runs selfTest
// instead of the real backend check; the returned func restores the previous
// one. Not safe for use concurrently with InitialiseCrypto.
func SetBackendForTest(selfTest func() error) (restore func()) {
	previous := backend
	backend = &initialiser{selfTest: selfTest}
	return func() { backend = previous }
}

var selfTestMessage = []byte("go-mpid crypto backend self-test")

// selfTestBackend checks that the CSPRNG yields data and that an Ed25519 key
// pair can sign and verify a message.
func selfTestBackend() error {
	sample := make([]byte, GUID_SIZE)
	if _, err := rand.Read(sample); err != nil {
		return oops.Errorf("crypto/rand unavailable: %w", err)
	}
	if bytes.Equal(sample, make([]byte, GUID_SIZE)) {
		return oops.Errorf("crypto/rand returned only zero bytes")
	}

	var (
		pub  types.SigningPublicKey
		priv types.SigningPrivateKey
		err  error
	)
	pub, priv, err = ed25519.GenerateEd25519KeyPair()
	if err != nil {
		return oops.Errorf("ed25519 key generation failed: %w", err)
	}
	signer, err := priv.NewSigner()
	if err != nil {
		return oops.Errorf("ed25519 signer unavailable: %w", err)
	}
	sig, err := signer.Sign(selfTestMessage)
	if err != nil {
		return oops.Errorf("ed25519 signing failed: %w", err)
	}
	verifier, err := pub.NewVerifier()
	if err != nil {
		return oops.Errorf("ed25519 verifier unavailable: %w", err)
	}
	if err := verifier.Verify(selfTestMessage, sig); err != nil {
		return oops.Errorf("ed25519 self-verification failed: %w", err)
	}
	return nil
}
