// Package wire holds the size-generic little-endian readers shared by the
// event decoder and the capture log.
package wire

import (
	"encoding/binary"
	"math"
)

// HeaderSize is the width of the three leading record fields.
const HeaderSize = 12

// Header is the fixed prefix of every runtime event record.
type Header struct {
	EventType   uint32 // 4B
	DeviceIndex uint32 // 4B
	AgeSeconds  float32
}

// ReadHeader extracts the record prefix from b. b must hold at least
// HeaderSize bytes.
func ReadHeader(b []byte) Header {
	_ = b[HeaderSize-1] // bounds check hint
	return Header{
		EventType:   binary.LittleEndian.Uint32(b[0:4]),
		DeviceIndex: binary.LittleEndian.Uint32(b[4:8]),
		AgeSeconds:  math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
	}
}

// PutHeader writes h into the first HeaderSize bytes of b.
func PutHeader(b []byte, h Header) {
	_ = b[HeaderSize-1]
	binary.LittleEndian.PutUint32(b[0:4], h.EventType)
	binary.LittleEndian.PutUint32(b[4:8], h.DeviceIndex)
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(h.AgeSeconds))
}

// SplitRecord returns the header and the trailing payload of a record of
// any size. The payload aliases b.
func SplitRecord(b []byte) (Header, []byte) {
	return ReadHeader(b), b[HeaderSize:]
}

// ---- fixed-width readers ----

func Uint16(b []byte, off int) uint16 { return binary.LittleEndian.Uint16(b[off:]) }
func Uint32(b []byte, off int) uint32 { return binary.LittleEndian.Uint32(b[off:]) }
func Uint64(b []byte, off int) uint64 { return binary.LittleEndian.Uint64(b[off:]) }

func Float32(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

// Bool reads a one-byte C bool.
func Bool(b []byte, off int) bool { return b[off] != 0 }

// ---- varints ----

// AppendUvarint appends varint-encoded x to dst using a small stack scratch.
func AppendUvarint(dst []byte, x uint64) []byte {
	var scratch [binary.MaxVarintLen64]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// ReadUvarint decodes a varint from b returning value and bytes consumed.
// n is 0 when b ends before the varint does or the value overflows.
func ReadUvarint(b []byte) (x uint64, n int) {
	var s uint
	for i, c := range b {
		if i == binary.MaxVarintLen64 {
			return 0, 0
		}
		if i == binary.MaxVarintLen64-1 && c > 1 {
			return 0, 0 // past 64 bits
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}
