package mpid_header

import (
	"crypto/sha512"
	"fmt"

	"github.com/go-i2p/crypto/types"
	"github.com/go-i2p/go-mpid/lib/common/xor_name"
	"github.com/go-i2p/go-mpid/lib/messaging"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// MpidHeader is the minimal information about a message which a receiver
// can use as a notification. It is immutable once constructed and may be
// shared between goroutines.
type MpidHeader struct {
	detail    Detail
	signature Signature
}

// NewMpidHeader creates a header for a message from sender, assigning it a
// random GUID and signing sender, GUID and metadata with secretKey.
//
// metadata is arbitrary application data of at most
// messaging.MAX_HEADER_METADATA_SIZE bytes and may be empty. The header
// keeps its own copy.
func NewMpidHeader(sender xor_name.XorName, metadata []byte, secretKey types.SigningPrivateKey) (*MpidHeader, error) {
	if err := messaging.InitialiseCrypto(); err != nil {
		return nil, err
	}
	if len(metadata) > messaging.MAX_HEADER_METADATA_SIZE {
		log.WithFields(logger.Fields{
			"at":              "NewMpidHeader",
			"metadata_length": len(metadata),
			"max_length":      messaging.MAX_HEADER_METADATA_SIZE,
		}).Error("metadata too large")
		return nil, oops.Wrapf(messaging.ErrMetadataTooLarge,
			"metadata length %d exceeds %d", len(metadata), messaging.MAX_HEADER_METADATA_SIZE)
	}
	if secretKey == nil {
		return nil, oops.Wrapf(messaging.ErrSigningFailed, "nil secret key")
	}

	guid, err := messaging.GenerateGUID()
	if err != nil {
		return nil, err
	}

	detail := Detail{
		sender:   sender,
		guid:     guid,
		metadata: append(make([]byte, 0, len(metadata)), metadata...),
	}

	encoded, err := detail.Bytes()
	if err != nil {
		return nil, err
	}

	signature, err := sign(encoded, secretKey)
	if err != nil {
		log.WithError(err).Error("Failed to sign MpidHeader detail")
		return nil, err
	}

	log.WithFields(logger.Fields{
		"at":              "NewMpidHeader",
		"sender":          sender.String(),
		"guid":            messaging.FormatBinaryArray(guid[:]),
		"metadata_length": len(metadata),
	}).Debug("Created new MpidHeader")

	return &MpidHeader{
		detail:    detail,
		signature: signature,
	}, nil
}

func sign(data []byte, secretKey types.SigningPrivateKey) (sig Signature, err error) {
	signer, err := secretKey.NewSigner()
	if err != nil {
		return sig, oops.Wrapf(messaging.ErrSigningFailed, "signer unavailable: %s", err.Error())
	}
	raw, err := signer.Sign(data)
	if err != nil {
		return sig, oops.Wrapf(messaging.ErrSigningFailed, "%s", err.Error())
	}
	sig, err = NewSignature(raw)
	if err != nil {
		return sig, oops.Wrapf(messaging.ErrSigningFailed, "%s", err.Error())
	}
	return sig, nil
}

// Sender is the name of the original creator of the message.
func (h *MpidHeader) Sender() xor_name.XorName {
	return h.detail.sender
}

// GUID is the unique identifier generated when the header was created.
func (h *MpidHeader) GUID() [messaging.GUID_SIZE]byte {
	return h.detail.guid
}

// Metadata returns a copy of the user-supplied metadata.
func (h *MpidHeader) Metadata() []byte {
	return append(make([]byte, 0, len(h.detail.metadata)), h.detail.metadata...)
}

// Signature is the signature of sender, GUID and metadata.
func (h *MpidHeader) Signature() Signature {
	return h.signature
}

// Bytes returns the canonical encoding of the header: the encoded Detail
// followed by the 64 signature bytes.
func (h *MpidHeader) Bytes() ([]byte, error) {
	encoded, err := h.detail.Bytes()
	if err != nil {
		return nil, err
	}
	return append(encoded, h.signature[:]...), nil
}

// Name returns the SHA-512 of the encoded header. It is recomputed on every
// call; callers that need it repeatedly should keep the result.
func (h *MpidHeader) Name() (xor_name.XorName, error) {
	encoded, err := h.Bytes()
	if err != nil {
		return xor_name.XorName{}, err
	}
	return xor_name.XorName(sha512.Sum512(encoded)), nil
}

// Verify reports whether the header's signature is valid for publicKey.
// Any failure, including an unencodable header, yields false.
func (h *MpidHeader) Verify(publicKey types.SigningPublicKey) bool {
	if publicKey == nil {
		log.WithField("at", "(MpidHeader) Verify").Warn("nil public key")
		return false
	}
	encoded, err := h.detail.Bytes()
	if err != nil {
		return false
	}
	verifier, err := publicKey.NewVerifier()
	if err != nil {
		log.WithError(err).Warn("Failed to create verifier for MpidHeader")
		return false
	}
	if err := verifier.Verify(encoded, h.signature[:]); err != nil {
		log.WithFields(logger.Fields{
			"at":     "(MpidHeader) Verify",
			"sender": h.detail.sender.String(),
			"guid":   messaging.FormatBinaryArray(h.detail.guid[:]),
		}).Debug("MpidHeader signature did not verify")
		return false
	}
	return true
}

// Equal compares two headers field by field.
func (h *MpidHeader) Equal(other *MpidHeader) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.detail.Equal(&other.detail) && h.signature == other.signature
}

func (h *MpidHeader) String() string {
	return fmt.Sprintf("MpidHeader { sender: %s, guid: %s, metadata: %s, signature: %s }",
		h.detail.sender,
		messaging.FormatBinaryArray(h.detail.guid[:]),
		messaging.FormatBinaryArray(h.detail.metadata),
		h.signature)
}

// GoString makes %#v print the same as String.
func (h *MpidHeader) GoString() string {
	return h.String()
}
