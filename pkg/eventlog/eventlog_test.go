package eventlog

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/ovr"
)

var start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleEvent(i int) ovr.Event {
	ev := ovr.Event{
		Type:               ovr.EventButtonPress,
		TrackedDeviceIndex: ovr.DeviceIndex(i % ovr.MaxTrackedDeviceCount),
		AgeSeconds:         float32(i) / 1000,
	}
	for j := range ev.Payload {
		ev.Payload[j] = byte(i + j)
	}
	return ev
}

func writeLog(t *testing.T, comp Compression, block, n int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, Options{Compression: comp, BlockRecords: block, Start: start})
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		ev := sampleEvent(i)
		require.NoError(t, w.AppendAt(start.Add(time.Duration(i)*1500*time.Microsecond), &ev))
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func readAll(t *testing.T, data []byte) (Header, []Entry, error) {
	t.Helper()
	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		return Header{}, nil, err
	}
	defer r.Close()
	var out []Entry
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return r.Header(), out, nil
		}
		if err != nil {
			return r.Header(), out, err
		}
		out = append(out, e)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, comp := range []Compression{CompressionNone, CompressionZstd} {
		t.Run(comp.String(), func(t *testing.T) {
			data := writeLog(t, comp, 4, 10)
			h, entries, err := readAll(t, data)
			require.NoError(t, err)

			assert.Equal(t, uint16(Version), h.Version)
			assert.Equal(t, uint16(ovr.RecordSize), h.RecordSize)
			assert.Equal(t, comp, h.Compression())
			assert.True(t, start.Equal(h.Start))

			require.Len(t, entries, 10)
			for i, e := range entries {
				assert.Equal(t, sampleEvent(i), e.Event)
				assert.True(t, start.Add(time.Duration(i)*1500*time.Microsecond).Equal(e.Time), "entry %d", i)
			}
		})
	}
}

func TestFlushEveryBlock(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, Options{BlockRecords: 3, Start: start})
	require.NoError(t, err)
	ev := sampleEvent(1)
	for i := 0; i < 7; i++ {
		require.NoError(t, w.AppendAt(start, &ev))
	}
	assert.Equal(t, 2, w.Frames())
	require.NoError(t, w.Close())
	assert.Equal(t, 3, w.Frames())
	assert.ErrorIs(t, w.Close(), ErrClosed)
	assert.ErrorIs(t, w.AppendAt(start, &ev), ErrClosed)
}

func TestEmptyLog(t *testing.T) {
	data := writeLog(t, CompressionZstd, 8, 0)
	assert.Len(t, data, HeaderSize)
	_, entries, err := readAll(t, data)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTimeGoingBackwards(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, Options{Start: start})
	require.NoError(t, err)
	ev := sampleEvent(0)
	require.NoError(t, w.AppendAt(start.Add(time.Second), &ev))
	require.NoError(t, w.AppendAt(start, &ev))
	require.NoError(t, w.Close())

	_, entries, err := readAll(t, buf.Bytes())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Time.Equal(entries[1].Time))
}

func TestBadMagic(t *testing.T) {
	data := writeLog(t, CompressionNone, 4, 1)
	copy(data, "XXXX")
	_, _, err := readAll(t, data)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestRecordSizeMismatch(t *testing.T) {
	data := writeLog(t, CompressionNone, 4, 1)
	binary.LittleEndian.PutUint16(data[8:], ovr.RecordSize+4)
	_, _, err := readAll(t, data)
	assert.ErrorIs(t, err, ErrRecordSizeMismatch)
}

func TestUnsupportedVersion(t *testing.T) {
	data := writeLog(t, CompressionNone, 4, 1)
	binary.LittleEndian.PutUint16(data[4:], 9)
	_, _, err := readAll(t, data)
	assert.ErrorIs(t, err, ErrVersion)
}

func TestChecksum(t *testing.T) {
	data := writeLog(t, CompressionNone, 4, 2)
	data[HeaderSize+framePrefixSize+3] ^= 0xFF
	_, _, err := readAll(t, data)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestTruncated(t *testing.T) {
	data := writeLog(t, CompressionZstd, 4, 6)
	_, _, err := readAll(t, data[:len(data)-3])
	assert.ErrorIs(t, err, ErrTruncated)

	_, _, err = readAll(t, data[:HeaderSize-1])
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestFrameEncoding(t *testing.T) {
	body := []byte{1, 2, 3}
	frame := appendFrame(nil, 5, frameFlagZstd, body)
	assert.Len(t, frame, minFrameSize+len(body))
	assert.Equal(t, uint32(len(frame)), binary.LittleEndian.Uint32(frame))

	count, flags, got, err := parseFrame(frame)
	require.NoError(t, err)
	assert.Equal(t, uint16(5), count)
	assert.Equal(t, frameFlagZstd, flags)
	assert.Equal(t, body, got)

	_, _, _, err = parseFrame(frame[:len(frame)-1])
	assert.ErrorIs(t, err, ErrCorrupt)
	_, _, _, err = parseFrame(frame[:4])
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestCountMismatchIsCorrupt(t *testing.T) {
	var rec [ovr.RecordSize]byte
	body := append([]byte{0}, rec[:]...)
	body = append(body, 0) // stray byte after the only entry
	var data []byte
	h := Header{Version: Version, RecordSize: ovr.RecordSize, Start: start}
	hdr := h.encode()
	data = append(data, hdr[:]...)
	data = appendFrame(data, 1, 0, body)

	_, _, err := readAll(t, data)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestInflatedFrameIsBounded(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	body := enc.EncodeAll(make([]byte, 8<<20), nil)

	h := Header{Version: Version, Flags: FlagZstd, RecordSize: ovr.RecordSize, Start: start}
	hdr := h.encode()
	data := append([]byte(nil), hdr[:]...)
	data = appendFrame(data, 1, frameFlagZstd, body)

	_, entries, err := readAll(t, data)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Empty(t, entries)
}

func TestLargeZstdBlock(t *testing.T) {
	// one frame well past a megabyte of entries
	const n = 30000
	_, entries, err := readAll(t, writeLog(t, CompressionZstd, n, n))
	require.NoError(t, err)
	require.Len(t, entries, n)
	assert.Equal(t, sampleEvent(n-1), entries[n-1].Event)
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression("zstd")
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, c)
	_, err = ParseCompression("brotli")
	assert.Error(t, err)
}

func FuzzReader(f *testing.F) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, Options{Start: start, BlockRecords: 2})
	ev := sampleEvent(3)
	_ = w.AppendAt(start, &ev)
	_ = w.Close()
	f.Add(buf.Bytes())
	f.Fuzz(func(t *testing.T, data []byte) {
		r, err := NewReader(bytes.NewReader(data))
		if err != nil {
			return
		}
		defer r.Close()
		for i := 0; i < 1<<16; i++ {
			if _, err := r.Next(); err != nil {
				return
			}
		}
	})
}

func BenchmarkAppend(b *testing.B) {
	w, err := NewWriter(io.Discard, Options{Compression: CompressionZstd, Start: start})
	require.NoError(b, err)
	ev := sampleEvent(7)
	b.ReportAllocs()
	for b.Loop() {
		_ = w.AppendAt(start, &ev)
	}
	_ = w.Close()
}
