package ovr

// System gives access to devices, poses and the event queue.
type System struct {
	rt SystemRuntime
}

// NewSystem wraps a system runtime directly, for callers that manage the
// session themselves.
func NewSystem(rt SystemRuntime) *System { return &System{rt: rt} }

// PollNextEvent returns the next pending event. ok is false when the
// queue is empty. The record buffer is fully copied before returning.
func (s *System) PollNextEvent() (ev Event, ok bool) {
	var rec [RecordSize]byte
	if !s.rt.PollNextEvent(rec[:]) {
		return Event{}, false
	}
	return Decode(&rec), true
}

func (s *System) TrackedDeviceClass(idx DeviceIndex) DeviceClass {
	return s.rt.TrackedDeviceClass(idx)
}

func (s *System) IsTrackedDeviceConnected(idx DeviceIndex) bool {
	return s.rt.IsTrackedDeviceConnected(idx)
}

func (s *System) ControllerRoleForTrackedDeviceIndex(idx DeviceIndex) ControllerRole {
	return s.rt.ControllerRoleForTrackedDeviceIndex(idx)
}

// DeviceToAbsoluteTrackingPose returns the pose of every device slot,
// predicted the given number of seconds ahead.
func (s *System) DeviceToAbsoluteTrackingPose(origin TrackingUniverseOrigin, predictedSecondsToPhotons float32) [MaxTrackedDeviceCount]TrackedDevicePose {
	var poses [MaxTrackedDeviceCount]TrackedDevicePose
	s.rt.DeviceToAbsoluteTrackingPose(origin, predictedSecondsToPhotons, poses[:])
	return poses
}

func (s *System) RawZeroPoseToStandingAbsoluteTrackingPose() Matrix34 {
	return s.rt.RawZeroPoseToStandingAbsoluteTrackingPose()
}

// TimeSinceLastVsync reports seconds since the last vsync and the frame
// counter. ok is false when the runtime has no timing data.
func (s *System) TimeSinceLastVsync() (seconds float32, frame uint64, ok bool) {
	return s.rt.TimeSinceLastVsync()
}

// ConnectedDevices lists the indexes of connected devices.
func (s *System) ConnectedDevices() []DeviceIndex {
	var out []DeviceIndex
	for i := DeviceIndex(0); i < MaxTrackedDeviceCount; i++ {
		if s.rt.IsTrackedDeviceConnected(i) {
			out = append(out, i)
		}
	}
	return out
}
