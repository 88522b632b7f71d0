package mpid_header

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultihashWrapsName(t *testing.T) {
	_, priv := generateKeys(t)
	header, err := NewMpidHeader(randomSender(t), []byte("addressed"), priv)
	require.NoError(t, err)

	name, err := header.Name()
	require.NoError(t, err)

	mh, err := header.Multihash()
	require.NoError(t, err)

	decoded, err := multihash.Decode(mh)
	require.NoError(t, err)
	assert.Equal(t, uint64(multihash.SHA2_512), decoded.Code)
	assert.Equal(t, 64, decoded.Length)
	assert.Equal(t, name[:], decoded.Digest)
}

func TestCIDIsStableAndParses(t *testing.T) {
	_, priv := generateKeys(t)
	header, err := NewMpidHeader(randomSender(t), nil, priv)
	require.NoError(t, err)

	c1, err := header.CID()
	require.NoError(t, err)
	c2, err := header.CID()
	require.NoError(t, err)
	assert.True(t, c1.Equals(c2))

	assert.Equal(t, uint64(1), c1.Version())
	assert.Equal(t, uint64(cid.Raw), c1.Type())

	parsed, err := cid.Decode(c1.String())
	require.NoError(t, err)
	assert.True(t, c1.Equals(parsed))
}

func TestCIDDiffersPerHeader(t *testing.T) {
	_, priv := generateKeys(t)
	sender := randomSender(t)

	h1, err := NewMpidHeader(sender, nil, priv)
	require.NoError(t, err)
	h2, err := NewMpidHeader(sender, nil, priv)
	require.NoError(t, err)

	c1, err := h1.CID()
	require.NoError(t, err)
	c2, err := h2.CID()
	require.NoError(t, err)
	assert.False(t, c1.Equals(c2))
}
