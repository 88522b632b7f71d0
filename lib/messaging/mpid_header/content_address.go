package mpid_header

import (
	"github.com/go-i2p/go-mpid/lib/messaging"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/samber/oops"
)

// Multihash returns the header's name as a sha2-512 multihash.
func (h *MpidHeader) Multihash() (multihash.Multihash, error) {
	name, err := h.Name()
	if err != nil {
		return nil, err
	}
	mh, err := multihash.Encode(name[:], multihash.SHA2_512)
	if err != nil {
		return nil, oops.Wrapf(messaging.ErrSerializationFailed, "multihash: %s", err.Error())
	}
	return multihash.Multihash(mh), nil
}

// CID returns a CIDv1 with the raw codec over the header's multihash.
func (h *MpidHeader) CID() (cid.Cid, error) {
	mh, err := h.Multihash()
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}
