package ovr

import (
	"path/filepath"
	"strings"
	"time"
)

type (
	ActionSetHandle  uint64
	ActionHandle     uint64
	InputValueHandle uint64
)

// InvalidInputValueHandle means "any device" where a restrict handle is
// accepted.
const InvalidInputValueHandle InputValueHandle = 0

// MaxActionOriginCount is the size of the origin list returned per action.
const MaxActionOriginCount = 16

// originNameBufferSize bounds localized origin names.
const originNameBufferSize = 128

// MaxActionBindingCount is the number of binding entries read per action.
const MaxActionBindingCount = 16

// ActiveActionSet selects an action set for UpdateActions.
type ActiveActionSet struct {
	ActionSet          ActionSetHandle
	RestrictedToDevice InputValueHandle
	SecondaryActionSet ActionSetHandle
	Priority           int32
}

type DigitalActionData struct {
	Active            bool
	ActiveOrigin      InputValueHandle
	State             bool
	Changed           bool
	UpdateTimeSeconds float32 // relative to now, usually negative
}

type AnalogActionData struct {
	Active                 bool
	ActiveOrigin           InputValueHandle
	X, Y, Z                float32
	DeltaX, DeltaY, DeltaZ float32
	UpdateTimeSeconds      float32
}

type PoseActionData struct {
	Active       bool
	ActiveOrigin InputValueHandle
	Pose         TrackedDevicePose
}

// RawInputOriginInfo is the runtime's fixed-size origin record.
type RawInputOriginInfo struct {
	DevicePath               InputValueHandle
	TrackedDeviceIndex       DeviceIndex
	RenderModelComponentName [128]byte
}

// InputOriginInfo describes the device behind an input origin.
type InputOriginInfo struct {
	DevicePath               InputValueHandle
	TrackedDeviceIndex       DeviceIndex
	RenderModelComponentName string
}

// RawInputBindingInfo is the runtime's fixed-size binding record. Every
// field is a NUL-terminated string.
type RawInputBindingInfo struct {
	DevicePathName  [128]byte
	InputPathName   [128]byte
	ModeName        [128]byte
	SlotName        [128]byte
	InputSourceType [32]byte
}

// InputBindingInfo describes one binding of an action, e.g. device
// "/user/hand/right", input "/input/trigger", mode "button", slot "click".
type InputBindingInfo struct {
	DevicePathName  string
	InputPathName   string
	ModeName        string
	SlotName        string
	InputSourceType string
}

// InputStringBits selects the parts of a localized origin name.
type InputStringBits uint32

const (
	InputStringHand           InputStringBits = 0x01
	InputStringControllerType InputStringBits = 0x02
	InputStringInputSource    InputStringBits = 0x04
	// InputStringAll asks for every part, including ones added by later
	// runtime versions.
	InputStringAll InputStringBits = 0xFFFFFFFF
)

// Input drives the action-based input system.
type Input struct {
	rt InputRuntime
}

// cName rejects strings the runtime cannot receive as C strings.
func cName(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return InputErrorInvalidParam
	}
	return nil
}

// SetActionManifest loads the action manifest at path. Relative paths are
// resolved against the working directory since the runtime requires an
// absolute one.
func (in *Input) SetActionManifest(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return InputErrorInvalidParam
	}
	if err := cName(abs); err != nil {
		return err
	}
	return result(in.rt.SetActionManifestPath(abs))
}

func (in *Input) ActionSetHandle(name string) (ActionSetHandle, error) {
	if err := cName(name); err != nil {
		return 0, err
	}
	h, code := in.rt.ActionSetHandle(name)
	if err := result(code); err != nil {
		return 0, err
	}
	return h, nil
}

func (in *Input) ActionHandle(name string) (ActionHandle, error) {
	if err := cName(name); err != nil {
		return 0, err
	}
	h, code := in.rt.ActionHandle(name)
	if err := result(code); err != nil {
		return 0, err
	}
	return h, nil
}

// InputSourceHandle resolves an input source path such as
// "/user/hand/left".
func (in *Input) InputSourceHandle(path string) (InputValueHandle, error) {
	if err := cName(path); err != nil {
		return 0, err
	}
	h, code := in.rt.InputSourceHandle(path)
	if err := result(code); err != nil {
		return 0, err
	}
	return h, nil
}

// UpdateActions refreshes action state for the given sets. Call it once
// per frame before reading action data.
func (in *Input) UpdateActions(sets []ActiveActionSet) error {
	return result(in.rt.UpdateActionState(sets))
}

func (in *Input) DigitalActionData(action ActionHandle, restrict InputValueHandle) (DigitalActionData, error) {
	d, code := in.rt.DigitalActionData(action, restrict)
	if err := result(code); err != nil {
		return DigitalActionData{}, err
	}
	return d, nil
}

func (in *Input) AnalogActionData(action ActionHandle, restrict InputValueHandle) (AnalogActionData, error) {
	d, code := in.rt.AnalogActionData(action, restrict)
	if err := result(code); err != nil {
		return AnalogActionData{}, err
	}
	return d, nil
}

func (in *Input) PoseActionDataRelativeToNow(action ActionHandle, origin TrackingUniverseOrigin, predicted time.Duration, restrict InputValueHandle) (PoseActionData, error) {
	d, code := in.rt.PoseActionDataRelativeToNow(action, origin, float32(predicted.Seconds()), restrict)
	if err := result(code); err != nil {
		return PoseActionData{}, err
	}
	return d, nil
}

// TriggerHapticVibrationAction schedules a vibration on the output action.
// frequency is in Hz and amplitude in [0,1].
func (in *Input) TriggerHapticVibrationAction(action ActionHandle, startIn, duration time.Duration, frequency, amplitude float32, restrict InputValueHandle) error {
	return result(in.rt.TriggerHapticVibrationAction(
		action,
		float32(startIn.Seconds()),
		float32(duration.Seconds()),
		frequency,
		amplitude,
		restrict,
	))
}

// ActionOrigins lists the origins bound to action. Unused slots are 0.
func (in *Input) ActionOrigins(set ActionSetHandle, action ActionHandle) ([MaxActionOriginCount]InputValueHandle, error) {
	var origins [MaxActionOriginCount]InputValueHandle
	if err := result(in.rt.ActionOrigins(set, action, origins[:])); err != nil {
		return origins, err
	}
	return origins, nil
}

// OriginLocalizedName returns a display name such as "Left Hand Index
// Controller Trigger".
func (in *Input) OriginLocalizedName(origin InputValueHandle, parts InputStringBits) (string, error) {
	buf := make([]byte, originNameBufferSize)
	if err := result(in.rt.OriginLocalizedName(origin, buf, parts)); err != nil {
		return "", err
	}
	return cString(buf), nil
}

// OriginTrackedDeviceInfo reports the tracked device an origin belongs to.
func (in *Input) OriginTrackedDeviceInfo(origin InputValueHandle) (InputOriginInfo, error) {
	raw, code := in.rt.OriginTrackedDeviceInfo(origin)
	if err := result(code); err != nil {
		return InputOriginInfo{}, err
	}
	return InputOriginInfo{
		DevicePath:               raw.DevicePath,
		TrackedDeviceIndex:       raw.TrackedDeviceIndex,
		RenderModelComponentName: cString(raw.RenderModelComponentName[:]),
	}, nil
}

// ShowActionOrigins highlights the controls bound to action in the headset.
func (in *Input) ShowActionOrigins(set ActionSetHandle, action ActionHandle) error {
	return result(in.rt.ShowActionOrigins(set, action))
}

// ShowBindingsForActionSet highlights the bindings of every set, optionally
// restricted to one origin.
func (in *Input) ShowBindingsForActionSet(sets []ActiveActionSet, origin InputValueHandle) error {
	return result(in.rt.ShowBindingsForActionSet(sets, origin))
}

// OpenBindingUI opens the binding editor. An empty appKey selects the
// calling application and a zero set opens the set overview.
func (in *Input) OpenBindingUI(appKey string, set ActionSetHandle, device InputValueHandle, showOnDesktop bool) error {
	if err := cName(appKey); err != nil {
		return err
	}
	return result(in.rt.OpenBindingUI(appKey, set, device, showOnDesktop))
}

// ActionBindingInfo lists the current bindings of action, at most
// MaxActionBindingCount of them.
func (in *Input) ActionBindingInfo(action ActionHandle) ([]InputBindingInfo, error) {
	var raw [MaxActionBindingCount]RawInputBindingInfo
	n, code := in.rt.ActionBindingInfo(action, raw[:])
	if err := result(code); err != nil {
		return nil, err
	}
	n = min(n, MaxActionBindingCount)
	out := make([]InputBindingInfo, n)
	for i := range out {
		r := &raw[i]
		out[i] = InputBindingInfo{
			DevicePathName:  cString(r.DevicePathName[:]),
			InputPathName:   cString(r.InputPathName[:]),
			ModeName:        cString(r.ModeName[:]),
			SlotName:        cString(r.SlotName[:]),
			InputSourceType: cString(r.InputSourceType[:]),
		}
	}
	return out, nil
}
