package mpid_header

import (
	"github.com/go-i2p/go-mpid/lib/messaging"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// ReadMpidHeader parses an encoded header from the front of data and
// returns the remaining bytes. It does not verify the signature.
func ReadMpidHeader(data []byte) (header MpidHeader, remainder []byte, err error) {
	detail, remainder, err := ReadDetail(data)
	if err != nil {
		return MpidHeader{}, data, err
	}
	sig, remainder, err := ReadSignature(remainder)
	if err != nil {
		log.WithFields(logger.Fields{
			"at":           "ReadMpidHeader",
			"data_len":     len(remainder),
			"required_len": SIGNATURE_SIZE,
		}).Error("header missing signature")
		return MpidHeader{}, data, err
	}

	header.detail = detail
	header.signature = sig

	log.WithFields(logger.Fields{
		"sender":           header.detail.sender.String(),
		"metadata_length":  len(header.detail.metadata),
		"remainder_length": len(remainder),
	}).Debug("Successfully read MpidHeader")
	return header, remainder, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h *MpidHeader) MarshalBinary() ([]byte, error) {
	return h.Bytes()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Trailing bytes are rejected.
func (h *MpidHeader) UnmarshalBinary(data []byte) error {
	header, remainder, err := ReadMpidHeader(data)
	if err != nil {
		return err
	}
	if len(remainder) != 0 {
		return oops.Wrapf(messaging.ErrDeserializationFailed,
			"%d trailing bytes after header", len(remainder))
	}
	*h = header
	return nil
}
