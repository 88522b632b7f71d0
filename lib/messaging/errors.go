package messaging

import "errors"

var (
	// ErrMetadataTooLarge is returned when header metadata exceeds MAX_HEADER_METADATA_SIZE.
	ErrMetadataTooLarge = errors.New("metadata too large")
	// ErrSerializationFailed is returned when a value cannot be canonically encoded.
	ErrSerializationFailed = errors.New("serialization failed")
	// ErrDeserializationFailed is returned when bytes do not hold a well-formed value.
	ErrDeserializationFailed = errors.New("deserialization failed")
	// ErrCryptoInitFailed is returned by every construction once backend initialisation has failed.
	ErrCryptoInitFailed = errors.New("crypto backend initialisation failed")
	// ErrSigningFailed is returned when the signing backend rejects the key or produces a bad signature.
	ErrSigningFailed = errors.New("signing failed")
)
