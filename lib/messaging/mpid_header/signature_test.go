package mpid_header

import (
	"testing"

	"github.com/go-i2p/go-mpid/lib/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSignature(t *testing.T) {
	raw := randomMetadata(t, SIGNATURE_SIZE)
	data := append(append([]byte{}, raw...), 0xaa, 0xbb)

	sig, remainder, err := ReadSignature(data)
	require.NoError(t, err)
	assert.Equal(t, raw, sig.Bytes())
	assert.Equal(t, []byte{0xaa, 0xbb}, remainder)
}

func TestReadSignatureShortInput(t *testing.T) {
	data := randomMetadata(t, SIGNATURE_SIZE-1)

	sig, remainder, err := ReadSignature(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, messaging.ErrDeserializationFailed)
	assert.Equal(t, Signature{}, sig)
	assert.Equal(t, data, remainder, "input is handed back on error")
}

func TestNewSignature(t *testing.T) {
	raw := randomMetadata(t, SIGNATURE_SIZE)
	sig, err := NewSignature(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, sig.Bytes())

	raw[0] ^= 0xff
	assert.NotEqual(t, raw, sig.Bytes(), "signature does not alias its input")

	_, err = NewSignature(raw[:32])
	assert.Error(t, err)
}

func TestReadMpidHeaderSignatureMatches(t *testing.T) {
	_, priv := generateKeys(t)
	header, err := NewMpidHeader(randomSender(t), randomMetadata(t, 16), priv)
	require.NoError(t, err)
	encoded, err := header.Bytes()
	require.NoError(t, err)

	decoded, remainder, err := ReadMpidHeader(encoded)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	assert.Equal(t, header.Signature(), decoded.Signature())
}
