// Package messaging holds what the MPID message types share: size limits,
// error kinds, the opaque-bytes formatter used in debug output, CSPRNG
// helpers and the process-wide crypto backend initialisation.
//
// The header type itself lives in the mpid_header subpackage.
package messaging
