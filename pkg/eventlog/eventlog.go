// Package eventlog stores raw runtime event records on disk so a session
// can be inspected or replayed later.
//
// A log is a 20 byte file header followed by frames:
//
//	header: "OVRL" | version u16 | flags u16 | record size u16 | reserved u16 | start unix-nanos i64
//	frame:  length u32 | count u16 | flags u8 | body | crc32 u32
//
// length covers the whole frame, CRC included. The CRC (IEEE) covers count
// through body. A body is count entries of uvarint(microseconds since the
// previous entry) followed by one record, zstd compressed when the frame
// flags say so. All integers are little-endian.
package eventlog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/rawbytedev/ovr"
)

const (
	Magic   = "OVRL"
	Version = 1

	HeaderSize = 20
)

// FlagZstd marks a log whose frames are zstd compressed.
const FlagZstd uint16 = 0x0001

var (
	ErrBadMagic           = errors.New("eventlog: not an event log")
	ErrVersion            = errors.New("eventlog: unsupported version")
	ErrRecordSizeMismatch = errors.New("eventlog: record size mismatch")
	ErrChecksum           = errors.New("eventlog: frame checksum mismatch")
	ErrTruncated          = errors.New("eventlog: truncated")
	ErrCorrupt            = errors.New("eventlog: corrupt frame")
	ErrClosed             = errors.New("eventlog: writer closed")
)

// Compression selects how frame bodies are stored.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
)

// ParseCompression maps the configuration names "none" and "zstd".
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("eventlog: unknown compression %q", s)
	}
}

func (c Compression) String() string {
	if c == CompressionZstd {
		return "zstd"
	}
	return "none"
}

// Header describes a log.
type Header struct {
	Version    uint16
	Flags      uint16
	RecordSize uint16
	Start      time.Time
}

func (h Header) Compression() Compression {
	if h.Flags&FlagZstd != 0 {
		return CompressionZstd
	}
	return CompressionNone
}

func (h Header) encode() [HeaderSize]byte {
	var b [HeaderSize]byte
	copy(b[0:4], Magic)
	binary.LittleEndian.PutUint16(b[4:], h.Version)
	binary.LittleEndian.PutUint16(b[6:], h.Flags)
	binary.LittleEndian.PutUint16(b[8:], h.RecordSize)
	// b[10:12] reserved
	binary.LittleEndian.PutUint64(b[12:], uint64(h.Start.UnixNano()))
	return b
}

func decodeHeader(b *[HeaderSize]byte) (Header, error) {
	if string(b[0:4]) != Magic {
		return Header{}, ErrBadMagic
	}
	h := Header{
		Version:    binary.LittleEndian.Uint16(b[4:]),
		Flags:      binary.LittleEndian.Uint16(b[6:]),
		RecordSize: binary.LittleEndian.Uint16(b[8:]),
		Start:      time.Unix(0, int64(binary.LittleEndian.Uint64(b[12:]))).UTC(),
	}
	if h.Version != Version {
		return h, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	if int(h.RecordSize) != ovr.RecordSize {
		return h, fmt.Errorf("%w: log has %d byte records, this build expects %d",
			ErrRecordSizeMismatch, h.RecordSize, ovr.RecordSize)
	}
	return h, nil
}

// Entry is one logged event with the time it was appended.
type Entry struct {
	Time  time.Time
	Event ovr.Event
}
