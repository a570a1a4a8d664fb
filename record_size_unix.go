//go:build !windows

package ovr

// The runtime headers pack event records at 4 bytes outside Windows, so the
// data union follows the header directly.
const (
	RecordSize   = 60
	unionPadding = 0
)
