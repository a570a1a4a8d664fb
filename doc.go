// Package ovr is a typed Go layer over a native VR runtime.
//
// The runtime itself is reached through the interfaces in runtime.go; the
// types here turn its buffer and error-code protocol into ordinary Go
// values. The event decoder is pure:
//
//	var rec [ovr.RecordSize]byte
//	// ... filled by the runtime
//	ev := ovr.Decode(&rec)
//	if b, ok := ev.Controller(); ok {
//		fmt.Println(ev.Type, ev.TrackedDeviceIndex, b.Button)
//	}
//
// RecordSize depends on the target platform because the runtime headers
// pack the record differently on Windows.
package ovr
