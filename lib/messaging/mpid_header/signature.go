package mpid_header

import (
	"errors"

	"github.com/go-i2p/common/signature"
	"github.com/go-i2p/go-mpid/lib/messaging"
	"github.com/samber/oops"
)

// SIGNATURE_SIZE is the width of an Ed25519 detached signature.
const SIGNATURE_SIZE = 64

// Signature is a detached signature over the encoded Detail of a header.
type Signature [SIGNATURE_SIZE]byte

// ReadSignature reads an Ed25519 signature from the front of data and returns
// the remaining bytes. On error data is returned unchanged.
func ReadSignature(data []byte) (sig Signature, remainder []byte, err error) {
	parsed, remainder, err := signature.ReadSignature(data, signature.SIGNATURE_TYPE_EDDSA_SHA512_ED25519)
	if err != nil {
		return sig, data, oops.Wrapf(errors.Join(messaging.ErrDeserializationFailed, err),
			"need %d signature bytes, have %d", SIGNATURE_SIZE, len(data))
	}
	raw := parsed.Bytes()
	if len(raw) != SIGNATURE_SIZE {
		return sig, data, oops.Wrapf(messaging.ErrDeserializationFailed,
			"signature is %d bytes, expected %d", len(raw), SIGNATURE_SIZE)
	}
	copy(sig[:], raw)
	return sig, remainder, nil
}

// NewSignature validates raw as an Ed25519 signature of exactly
// SIGNATURE_SIZE bytes.
func NewSignature(raw []byte) (sig Signature, err error) {
	parsed, err := signature.NewSignatureFromBytes(raw, signature.SIGNATURE_TYPE_EDDSA_SHA512_ED25519)
	if err != nil {
		return sig, err
	}
	b := parsed.Bytes()
	if len(b) != SIGNATURE_SIZE {
		return sig, oops.Errorf("signature is %d bytes, expected %d", len(b), SIGNATURE_SIZE)
	}
	copy(sig[:], b)
	return sig, nil
}

// Bytes returns a copy of the signature as a slice.
func (s Signature) Bytes() []byte {
	b := make([]byte, SIGNATURE_SIZE)
	copy(b, s[:])
	return b
}

func (s Signature) String() string {
	return messaging.FormatBinaryArray(s[:])
}
