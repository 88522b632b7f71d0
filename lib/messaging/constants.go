package messaging

const (
	// GUID_SIZE is the width in bytes of the random identifier carried by
	// every MPID message and header.
	GUID_SIZE = 16

	// MAX_HEADER_METADATA_SIZE is the maximum allowed length of a header's
	// metadata in bytes.
	MAX_HEADER_METADATA_SIZE = 128
)
