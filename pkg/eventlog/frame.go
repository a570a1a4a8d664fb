package eventlog

import (
	"encoding/binary"
	"hash/crc32"
)

const (
	frameFlagZstd byte = 0x01

	// length(4) + count(2) + flags(1)
	framePrefixSize = 7
	crcSize         = 4
	minFrameSize    = framePrefixSize + crcSize

	// maxFrameSize bounds a single frame read from disk.
	maxFrameSize = 64 << 20
)

// appendFrame encodes one frame onto dst.
func appendFrame(dst []byte, count uint16, flags byte, body []byte) []byte {
	start := len(dst)
	total := uint32(framePrefixSize + len(body) + crcSize)
	dst = binary.LittleEndian.AppendUint32(dst, total)
	dst = binary.LittleEndian.AppendUint16(dst, count)
	dst = append(dst, flags)
	dst = append(dst, body...)

	crc := crc32.ChecksumIEEE(dst[start+4:])
	return binary.LittleEndian.AppendUint32(dst, crc)
}

// parseFrame validates a complete frame, length prefix included. body
// aliases frame.
func parseFrame(frame []byte) (count uint16, flags byte, body []byte, err error) {
	if len(frame) < minFrameSize {
		return 0, 0, nil, ErrTruncated
	}
	if int(binary.LittleEndian.Uint32(frame)) != len(frame) {
		return 0, 0, nil, ErrCorrupt
	}
	end := len(frame) - crcSize
	want := binary.LittleEndian.Uint32(frame[end:])
	if crc32.ChecksumIEEE(frame[4:end]) != want {
		return 0, 0, nil, ErrChecksum
	}
	count = binary.LittleEndian.Uint16(frame[4:])
	flags = frame[6]
	return count, flags, frame[framePrefixSize:end], nil
}
