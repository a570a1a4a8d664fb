package ovr

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/ovr/internal/wire"
)

const (
	// HeaderSize covers event type, device index and event age.
	HeaderSize = wire.HeaderSize
	// PayloadSize is the opaque tail of a record, union padding included.
	PayloadSize = RecordSize - HeaderSize
	// UnionSize is the width of the runtime's event data union.
	UnionSize = 48
)

// Fails to compile when the record size no longer matches the layout.
var _ = [1]struct{}{}[RecordSize-HeaderSize-unionPadding-UnionSize]

// ErrRecordSize matches every *RecordSizeError.
var ErrRecordSize = errors.New("ovr: event record size mismatch")

// RecordSizeError reports a buffer whose length is not RecordSize. It
// means the caller and the linked runtime disagree on the record layout.
type RecordSizeError struct {
	Got int
}

func (e *RecordSizeError) Error() string {
	return fmt.Sprintf("ovr: event record is %d bytes, want %d", e.Got, RecordSize)
}

func (e *RecordSizeError) Is(target error) bool { return target == ErrRecordSize }

// DeviceIndex identifies a device in the runtime's tracked device table.
type DeviceIndex uint32

const (
	DeviceIndexHMD     DeviceIndex = 0
	DeviceIndexInvalid DeviceIndex = 0xFFFFFFFF
)

// MaxTrackedDeviceCount is the size of the runtime's device table.
const MaxTrackedDeviceCount = 64

// Event is one decoded runtime event. It owns its payload; nothing in it
// refers back to the record it was decoded from.
//
// Payload is left undecoded because its shape depends on Type. The typed
// views (Controller, Mouse, Process, Property) cover the common families.
type Event struct {
	Type               EventType
	TrackedDeviceIndex DeviceIndex
	AgeSeconds         float32
	Payload            [PayloadSize]byte
}

// Decode extracts an event from a raw record. Fields are always read as
// little-endian, whatever the host byte order. Decode never fails; a poll
// that produced no record is reported by the poll call itself.
func Decode(raw *[RecordSize]byte) Event {
	h, payload := wire.SplitRecord(raw[:])
	ev := Event{
		Type:               EventType(h.EventType),
		TrackedDeviceIndex: DeviceIndex(h.DeviceIndex),
		AgeSeconds:         h.AgeSeconds,
	}
	copy(ev.Payload[:], payload)
	return ev
}

// DecodeBytes is Decode for callers holding a slice. The slice must be
// exactly RecordSize bytes long.
func DecodeBytes(b []byte) (Event, error) {
	if len(b) != RecordSize {
		return Event{}, &RecordSizeError{Got: len(b)}
	}
	return Decode((*[RecordSize]byte)(b)), nil
}

// Record encodes the event back into its raw form.
func (e *Event) Record() [RecordSize]byte {
	var rec [RecordSize]byte
	wire.PutHeader(rec[:], wire.Header{
		EventType:   uint32(e.Type),
		DeviceIndex: uint32(e.TrackedDeviceIndex),
		AgeSeconds:  e.AgeSeconds,
	})
	copy(rec[HeaderSize:], e.Payload[:])
	return rec
}

// AppendRecord appends the raw form of e to dst.
func (e *Event) AppendRecord(dst []byte) []byte {
	rec := e.Record()
	return append(dst, rec[:]...)
}

// union returns the data union inside the payload.
func (e *Event) union() []byte {
	return e.Payload[unionPadding:]
}

// ---- typed payload views ----

// ControllerData is the payload of button events.
type ControllerData struct {
	Button uint32
}

// MouseData is the payload of overlay mouse events.
type MouseData struct {
	X, Y   float32
	Button uint32
}

// ProcessData is the payload of application and quit events.
type ProcessData struct {
	PID            uint32
	OldPID         uint32
	Forced         bool
	ConnectionLost bool
}

// PropertyData is the payload of property change events.
type PropertyData struct {
	Container uint64
	Prop      DeviceProperty
}

// Controller decodes a button event payload.
func (e *Event) Controller() (ControllerData, bool) {
	switch e.Type {
	case EventButtonPress, EventButtonUnpress, EventButtonTouch, EventButtonUntouch:
	default:
		return ControllerData{}, false
	}
	return ControllerData{Button: wire.Uint32(e.union(), 0)}, true
}

// Mouse decodes a mouse event payload.
func (e *Event) Mouse() (MouseData, bool) {
	switch e.Type {
	case EventMouseMove, EventMouseButtonDown, EventMouseButtonUp:
	default:
		return MouseData{}, false
	}
	u := e.union()
	return MouseData{
		X:      wire.Float32(u, 0),
		Y:      wire.Float32(u, 4),
		Button: wire.Uint32(u, 8),
	}, true
}

// Process decodes the payload of quit and scene application events.
func (e *Event) Process() (ProcessData, bool) {
	switch e.Type {
	case EventQuit, EventProcessQuit, EventQuitAcknowledged, EventSceneApplicationChanged:
	default:
		return ProcessData{}, false
	}
	u := e.union()
	return ProcessData{
		PID:            wire.Uint32(u, 0),
		OldPID:         wire.Uint32(u, 4),
		Forced:         wire.Bool(u, 8),
		ConnectionLost: wire.Bool(u, 9),
	}, true
}

// Property decodes a property change payload.
func (e *Event) Property() (PropertyData, bool) {
	if e.Type != EventPropertyChanged {
		return PropertyData{}, false
	}
	u := e.union()
	return PropertyData{
		Container: wire.Uint64(u, 0),
		Prop:      DeviceProperty(wire.Uint32(u, 8)),
	}, true
}
