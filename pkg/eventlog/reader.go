package eventlog

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/ovr"
	"github.com/rawbytedev/ovr/internal/wire"
)

// Reader iterates the entries of a log.
type Reader struct {
	r    *bufio.Reader
	hdr  Header
	dec  *zstd.Decoder
	now  time.Time
	buf   []byte
	plain bytes.Buffer
	body  []byte
	left  int
}

// maxEntrySize bounds one encoded entry: a full varint delta and a record.
const maxEntrySize = binary.MaxVarintLen64 + ovr.RecordSize

// NewReader reads and checks the file header.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	var b [HeaderSize]byte
	if _, err := io.ReadFull(br, b[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: header", ErrTruncated)
		}
		return nil, err
	}
	h, err := decodeHeader(&b)
	if err != nil {
		return nil, err
	}
	return &Reader{r: br, hdr: h, now: h.Start}, nil
}

func (lr *Reader) Header() Header { return lr.hdr }

// Next returns the next entry, or io.EOF after the last one.
func (lr *Reader) Next() (Entry, error) {
	for lr.left == 0 {
		if err := lr.readFrame(); err != nil {
			return Entry{}, err
		}
	}

	delta, n := wire.ReadUvarint(lr.body)
	if n == 0 || len(lr.body)-n < ovr.RecordSize {
		return Entry{}, ErrCorrupt
	}
	lr.now = lr.now.Add(time.Duration(delta) * time.Microsecond)
	ev := ovr.Decode((*[ovr.RecordSize]byte)(lr.body[n : n+ovr.RecordSize]))
	lr.body = lr.body[n+ovr.RecordSize:]
	lr.left--
	if lr.left == 0 && len(lr.body) != 0 {
		return Entry{}, ErrCorrupt
	}
	return Entry{Time: lr.now, Event: ev}, nil
}

func (lr *Reader) readFrame() error {
	var lenBuf [4]byte
	if _, err := io.ReadFull(lr.r, lenBuf[:]); err != nil {
		if err == io.EOF {
			return io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}
	size := binary.LittleEndian.Uint32(lenBuf[:])
	if size < minFrameSize || size > maxFrameSize {
		return ErrCorrupt
	}
	if cap(lr.buf) < int(size) {
		lr.buf = make([]byte, size)
	}
	frame := lr.buf[:size]
	copy(frame, lenBuf[:])
	if _, err := io.ReadFull(lr.r, frame[4:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}

	count, flags, body, err := parseFrame(frame)
	if err != nil {
		return err
	}
	if flags&frameFlagZstd != 0 {
		if body, err = lr.inflate(body, int(count)*maxEntrySize); err != nil {
			return err
		}
	}
	if count == 0 && len(body) != 0 {
		return ErrCorrupt
	}
	lr.body = body
	lr.left = int(count)
	return nil
}

// inflate decompresses body, failing once the output passes limit bytes.
func (lr *Reader) inflate(body []byte, limit int) ([]byte, error) {
	if lr.dec == nil {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(maxFrameSize),
		)
		if err != nil {
			return nil, fmt.Errorf("eventlog: zstd decoder: %w", err)
		}
		lr.dec = dec
	}
	if err := lr.dec.Reset(bytes.NewReader(body)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	lr.plain.Reset()
	if _, err := lr.plain.ReadFrom(io.LimitReader(lr.dec, int64(limit)+1)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if lr.plain.Len() > limit {
		return nil, fmt.Errorf("%w: frame inflates past %d bytes", ErrCorrupt, limit)
	}
	return lr.plain.Bytes(), nil
}

// Close releases the decompressor. It does not close the source.
func (lr *Reader) Close() {
	if lr.dec != nil {
		lr.dec.Close()
		lr.dec = nil
	}
}
