package messaging

import "fmt"

// FormatBinaryArray renders opaque bytes for debug output. Up to six bytes
// are shown in full; longer input shows the first and last three bytes
// separated by "..".
func FormatBinaryArray(b []byte) string {
	if len(b) <= 6 {
		return fmt.Sprintf("%x", b)
	}
	return fmt.Sprintf("%x..%x", b[:3], b[len(b)-3:])
}
