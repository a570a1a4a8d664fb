//go:build windows

package ovr

// The Windows headers pack event records at 8 bytes; the 8-byte aligned
// data union starts after 4 bytes of padding.
const (
	RecordSize   = 64
	unionPadding = 4
)
