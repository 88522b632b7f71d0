// Package mpid_header implements the MPID message header: a small signed
// record that tells a receiver who sent a message and lets it decide
// whether to fetch the full message.
//
// A header holds a Detail (sender name, random GUID, opaque metadata) and
// a detached signature over the canonical encoding of that Detail. The
// header's name is the SHA-512 of its own canonical encoding, so any party
// holding a header can refer to it unambiguously.
//
// Wire format, all integers little-endian:
//
//	+----+----+----+----+----+----+----+----+
//	|          sender (64 bytes)            |
//	~                                       ~
//	+----+----+----+----+----+----+----+----+
//	|           guid (16 bytes)             |
//	+----+----+----+----+----+----+----+----+
//	|     metadata length (8 bytes, LE)     |
//	+----+----+----+----+----+----+----+----+
//	|    metadata (0 to 128 bytes)          |
//	~                                       ~
//	+----+----+----+----+----+----+----+----+
//	|         signature (64 bytes)          |
//	~                                       ~
//	+----+----+----+----+----+----+----+----+
//
// The signature covers everything above it. The name covers everything.
package mpid_header
