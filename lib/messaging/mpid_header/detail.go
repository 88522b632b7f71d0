package mpid_header

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/go-i2p/go-mpid/lib/common/xor_name"
	"github.com/go-i2p/go-mpid/lib/messaging"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

const (
	// METADATA_LENGTH_SIZE is the width of the metadata length prefix.
	METADATA_LENGTH_SIZE = 8

	// DETAIL_MIN_SIZE is the encoded size of a Detail with empty metadata.
	DETAIL_MIN_SIZE = xor_name.XOR_NAME_SIZE + messaging.GUID_SIZE + METADATA_LENGTH_SIZE

	// DETAIL_MAX_SIZE is the encoded size of a Detail with full metadata.
	DETAIL_MAX_SIZE = DETAIL_MIN_SIZE + messaging.MAX_HEADER_METADATA_SIZE
)

// Detail is the signed part of a header.
type Detail struct {
	sender   xor_name.XorName
	guid     [messaging.GUID_SIZE]byte
	metadata []byte
}

// Equal compares two details field by field.
func (d *Detail) Equal(other *Detail) bool {
	return d.sender == other.sender &&
		d.guid == other.guid &&
		bytes.Equal(d.metadata, other.metadata)
}

// Bytes returns the canonical encoding of the Detail: sender, guid, the
// metadata length as a 64-bit little-endian integer, then the metadata.
func (d *Detail) Bytes() ([]byte, error) {
	if len(d.metadata) > messaging.MAX_HEADER_METADATA_SIZE {
		log.WithFields(logger.Fields{
			"at":              "(Detail) Bytes",
			"metadata_length": len(d.metadata),
			"max_length":      messaging.MAX_HEADER_METADATA_SIZE,
		}).Error("refusing to encode oversized metadata")
		return nil, oops.Wrapf(messaging.ErrSerializationFailed,
			"metadata length %d exceeds %d", len(d.metadata), messaging.MAX_HEADER_METADATA_SIZE)
	}

	buf := make([]byte, 0, DETAIL_MIN_SIZE+len(d.metadata))
	buf = append(buf, d.sender[:]...)
	buf = append(buf, d.guid[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(d.metadata)))
	buf = append(buf, d.metadata...)
	return buf, nil
}

// ReadDetail parses a Detail from the front of data and returns the remaining bytes.
// The returned Detail does not alias data.
func ReadDetail(data []byte) (detail Detail, remainder []byte, err error) {
	if len(data) < DETAIL_MIN_SIZE {
		log.WithFields(logger.Fields{
			"at":           "ReadDetail",
			"data_len":     len(data),
			"required_len": DETAIL_MIN_SIZE,
		}).Error("detail missing data")
		err = oops.Wrapf(messaging.ErrDeserializationFailed,
			"need at least %d bytes for detail, have %d", DETAIL_MIN_SIZE, len(data))
		return Detail{}, data, err
	}

	detail.sender, remainder, err = xor_name.ReadXorName(data)
	if err != nil {
		err = oops.Wrapf(errors.Join(messaging.ErrDeserializationFailed, err), "detail sender")
		return Detail{}, data, err
	}
	copy(detail.guid[:], remainder[:messaging.GUID_SIZE])
	remainder = remainder[messaging.GUID_SIZE:]

	length := binary.LittleEndian.Uint64(remainder[:METADATA_LENGTH_SIZE])
	remainder = remainder[METADATA_LENGTH_SIZE:]
	if length > messaging.MAX_HEADER_METADATA_SIZE {
		log.WithFields(logger.Fields{
			"at":              "ReadDetail",
			"metadata_length": length,
			"max_length":      messaging.MAX_HEADER_METADATA_SIZE,
		}).Error("encoded metadata exceeds limit")
		err = oops.Wrapf(errors.Join(messaging.ErrDeserializationFailed, messaging.ErrMetadataTooLarge),
			"length prefix %d", length)
		return Detail{}, data, err
	}
	if uint64(len(remainder)) < length {
		err = oops.Wrapf(messaging.ErrDeserializationFailed,
			"metadata length prefix %d exceeds remaining %d bytes", length, len(remainder))
		return Detail{}, data, err
	}

	detail.metadata = make([]byte, length)
	copy(detail.metadata, remainder[:length])
	remainder = remainder[length:]
	return detail, remainder, nil
}
