package eventlog

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/ovr"
	"github.com/rawbytedev/ovr/internal/wire"
)

// DefaultBlockRecords is the number of entries per frame when Options
// leaves it unset.
const DefaultBlockRecords = 256

type Options struct {
	Compression Compression
	// BlockRecords is the number of entries buffered before a frame is
	// written. At most 65535.
	BlockRecords int
	// Start is stamped into the header; zero means time.Now.
	Start  time.Time
	Logger *slog.Logger
}

// Writer appends events to a log. It is not safe for concurrent use.
type Writer struct {
	w     io.Writer
	opts  Options
	enc   *zstd.Encoder
	log   *slog.Logger
	last  time.Time
	body  []byte
	frame []byte
	count int

	frames int
	err    error
}

// NewWriter writes the file header to w and returns a Writer. w stays
// owned by the caller; Close does not close it.
func NewWriter(w io.Writer, opts Options) (*Writer, error) {
	if opts.BlockRecords <= 0 {
		opts.BlockRecords = DefaultBlockRecords
	}
	if opts.BlockRecords > 0xFFFF {
		return nil, fmt.Errorf("eventlog: block of %d records exceeds 65535", opts.BlockRecords)
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	lw := &Writer{
		w:    w,
		opts: opts,
		log:  opts.Logger,
		last: opts.Start,
		body: make([]byte, 0, opts.BlockRecords*(ovr.RecordSize+3)),
	}
	if lw.log == nil {
		lw.log = slog.New(slog.DiscardHandler)
	}

	h := Header{Version: Version, RecordSize: ovr.RecordSize, Start: opts.Start}
	if opts.Compression == CompressionZstd {
		h.Flags |= FlagZstd
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("eventlog: zstd encoder: %w", err)
		}
		lw.enc = enc
	}
	hdr := h.encode()
	if _, err := w.Write(hdr[:]); err != nil {
		return nil, fmt.Errorf("eventlog: write header: %w", err)
	}
	return lw, nil
}

// Append logs ev stamped with the current time.
func (lw *Writer) Append(ev *ovr.Event) error {
	return lw.AppendAt(time.Now(), ev)
}

// AppendAt logs ev stamped with t. Times earlier than the previous entry
// are stored as a zero delta.
func (lw *Writer) AppendAt(t time.Time, ev *ovr.Event) error {
	if lw.err != nil {
		return lw.err
	}
	delta := t.Sub(lw.last).Microseconds()
	if delta < 0 {
		delta = 0
	}
	// last follows the reconstructed time, not t
	lw.last = lw.last.Add(time.Duration(delta) * time.Microsecond)
	lw.body = wire.AppendUvarint(lw.body, uint64(delta))
	lw.body = ev.AppendRecord(lw.body)
	lw.count++
	if lw.count >= lw.opts.BlockRecords {
		return lw.Flush()
	}
	return nil
}

// Flush writes buffered entries as one frame.
func (lw *Writer) Flush() error {
	if lw.err != nil {
		return lw.err
	}
	if lw.count == 0 {
		return nil
	}
	body, flags := lw.body, byte(0)
	if lw.enc != nil {
		body = lw.enc.EncodeAll(lw.body, nil)
		flags |= frameFlagZstd
	}
	lw.frame = appendFrame(lw.frame[:0], uint16(lw.count), flags, body)
	if _, err := lw.w.Write(lw.frame); err != nil {
		lw.err = fmt.Errorf("eventlog: write frame: %w", err)
		return lw.err
	}
	lw.frames++
	lw.log.Debug("eventlog frame written",
		"entries", lw.count,
		"raw_bytes", len(lw.body),
		"frame_bytes", len(lw.frame),
	)
	lw.body = lw.body[:0]
	lw.count = 0
	return nil
}

// Frames reports the number of frames written so far.
func (lw *Writer) Frames() int { return lw.frames }

// Close flushes and releases the compressor. Later calls fail with
// ErrClosed.
func (lw *Writer) Close() error {
	if lw.err == ErrClosed {
		return ErrClosed
	}
	err := lw.Flush()
	if lw.enc != nil {
		if cerr := lw.enc.Close(); err == nil && cerr != nil {
			err = cerr
		}
		lw.enc = nil
	}
	lw.err = ErrClosed
	return err
}
