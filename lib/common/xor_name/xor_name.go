// Package xor_name implements the 512-bit XorName used to identify senders
// and content in the MPID messaging layer.
package xor_name

import (
	"bytes"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/go-i2p/crypto/rand"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

/*
[XorName]

Description
An opaque 512-bit identifier. Two names are compared bytewise for equality
and ordering; their XOR is the distance metric used by the routing layer.

Contents
64 bytes. The SHA-512 of some data, or a node identifier in the same space.
*/

// XOR_NAME_SIZE is the width of an XorName in bytes.
const XOR_NAME_SIZE = 64

// ErrInvalidXorNameSize is returned when input is not XOR_NAME_SIZE bytes long.
var ErrInvalidXorNameSize = errors.New("invalid xor name size")

// XorName is a 512-bit opaque name.
type XorName [XOR_NAME_SIZE]byte

// ReadXorName reads an XorName from the front of data and returns the remaining bytes.
func ReadXorName(data []byte) (name XorName, remainder []byte, err error) {
	if len(data) < XOR_NAME_SIZE {
		log.WithFields(logger.Fields{
			"at":           "ReadXorName",
			"data_len":     len(data),
			"required_len": XOR_NAME_SIZE,
		}).Error("xor name missing data")
		err = oops.Wrapf(ErrInvalidXorNameSize, "need %d bytes, have %d", XOR_NAME_SIZE, len(data))
		return
	}
	copy(name[:], data[:XOR_NAME_SIZE])
	remainder = data[XOR_NAME_SIZE:]
	return
}

// NewXorName copies exactly XOR_NAME_SIZE bytes into a new XorName.
func NewXorName(b []byte) (XorName, error) {
	if len(b) != XOR_NAME_SIZE {
		return XorName{}, oops.Wrapf(ErrInvalidXorNameSize, "expected %d bytes, got %d", XOR_NAME_SIZE, len(b))
	}
	var name XorName
	copy(name[:], b)
	return name, nil
}

// ParseHex decodes a 128 character hex string into an XorName.
func ParseHex(s string) (XorName, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return XorName{}, oops.Wrapf(err, "invalid xor name hex")
	}
	return NewXorName(b)
}

// RandomXorName samples a name uniformly from the CSPRNG.
func RandomXorName() (XorName, error) {
	var name XorName
	if _, err := rand.Read(name[:]); err != nil {
		return XorName{}, oops.Errorf("xor_name: crypto/rand failed: %w", err)
	}
	return name, nil
}

// Bytes returns a copy of the name as a slice.
func (n XorName) Bytes() []byte {
	b := make([]byte, XOR_NAME_SIZE)
	copy(b, n[:])
	return b
}

// Equal compares two names in constant time.
func (n XorName) Equal(other XorName) bool {
	return subtle.ConstantTimeCompare(n[:], other[:]) == 1
}

// Compare orders names bytewise, returning -1, 0 or +1.
func (n XorName) Compare(other XorName) int {
	return bytes.Compare(n[:], other[:])
}

// IsZero returns true if every byte of the name is zero.
func (n XorName) IsZero() bool {
	var zero XorName
	return n.Equal(zero)
}

// Distance returns the bitwise XOR of two names.
func (n XorName) Distance(other XorName) XorName {
	var d XorName
	for i := range d {
		d[i] = n[i] ^ other[i]
	}
	return d
}

// CloserTo reports whether n is strictly closer to target than other is.
func (n XorName) CloserTo(target, other XorName) bool {
	return n.Distance(target).Compare(other.Distance(target)) < 0
}

// Hex returns the full lowercase hex encoding of the name.
func (n XorName) Hex() string {
	return hex.EncodeToString(n[:])
}

// String renders the first three bytes followed by "..".
func (n XorName) String() string {
	return fmt.Sprintf("%02x%02x%02x..", n[0], n[1], n[2])
}
