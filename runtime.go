package ovr

// The interfaces below are the native runtime as seen from Go. They keep
// the C calling protocol: buffers are supplied by the caller, lengths are
// returned, and failures come back as error-code values. The manager types
// in this package do the marshalling on top of them.

// Runtime is a loaded native VR runtime.
type Runtime interface {
	Init(app ApplicationType) InitError
	Shutdown()

	System() SystemRuntime
	Compositor() CompositorRuntime
	Settings() SettingsRuntime
	ChaperoneSetup() ChaperoneSetupRuntime
	Input() InputRuntime
}

type SystemRuntime interface {
	// PollNextEvent fills record and reports whether an event was pending.
	// record is only valid until the call returns.
	PollNextEvent(record []byte) bool

	TrackedDeviceClass(idx DeviceIndex) DeviceClass
	IsTrackedDeviceConnected(idx DeviceIndex) bool
	ControllerRoleForTrackedDeviceIndex(idx DeviceIndex) ControllerRole
	DeviceToAbsoluteTrackingPose(origin TrackingUniverseOrigin, predictedSecondsToPhotons float32, poses []TrackedDevicePose)
	RawZeroPoseToStandingAbsoluteTrackingPose() Matrix34
	TimeSinceLastVsync() (seconds float32, frame uint64, ok bool)

	BoolTrackedDeviceProperty(idx DeviceIndex, prop DeviceProperty) (bool, TrackedPropertyError)
	FloatTrackedDeviceProperty(idx DeviceIndex, prop DeviceProperty) (float32, TrackedPropertyError)
	Int32TrackedDeviceProperty(idx DeviceIndex, prop DeviceProperty) (int32, TrackedPropertyError)
	Uint64TrackedDeviceProperty(idx DeviceIndex, prop DeviceProperty) (uint64, TrackedPropertyError)
	Matrix34TrackedDeviceProperty(idx DeviceIndex, prop DeviceProperty) (Matrix34, TrackedPropertyError)
	// StringTrackedDeviceProperty writes a NUL-terminated value into buf and
	// returns the length it needs, terminator included. A nil buf only
	// probes the length.
	StringTrackedDeviceProperty(idx DeviceIndex, prop DeviceProperty, buf []byte) (uint32, TrackedPropertyError)
}

type CompositorRuntime interface {
	Submit(eye Eye, tex Texture, bounds *TextureBounds, flags SubmitFlags) CompositorError
	LastPoses(render, game []TrackedDevicePose) CompositorError
	WaitGetPoses(render, game []TrackedDevicePose) CompositorError
	TrackingSpace() TrackingUniverseOrigin
	FrameTimeRemaining() float32
	CurrentSceneFocusProcess() uint32
	LastFrameRenderer() uint32
	IsCurrentSceneFocusAppLoading() bool
	// The Vulkan queries write a NUL-terminated, space separated list
	// into buf and return the length needed.
	VulkanInstanceExtensionsRequired(buf []byte) uint32
	VulkanDeviceExtensionsRequired(physicalDevice uint64, buf []byte) uint32
}

type SettingsRuntime interface {
	Float(section, key string) (float32, SettingsError)
	SetFloat(section, key string, v float32) SettingsError
	Bool(section, key string) (bool, SettingsError)
	SetBool(section, key string, v bool) SettingsError
	Int32(section, key string) (int32, SettingsError)
	SetInt32(section, key string, v int32) SettingsError
}

type ChaperoneSetupRuntime interface {
	// ExportLiveToBuffer writes the live configuration as NUL-terminated
	// JSON into buf. n is in/out: capacity in, length needed out.
	ExportLiveToBuffer(buf []byte, n *uint32) bool
	WorkingStandingZeroPoseToRawTrackingPose() (Matrix34, bool)
	SetWorkingStandingZeroPoseToRawTrackingPose(m Matrix34)
	CommitWorkingCopy(file ChaperoneConfigFile) bool
}

type InputRuntime interface {
	SetActionManifestPath(path string) InputError
	ActionSetHandle(name string) (ActionSetHandle, InputError)
	ActionHandle(name string) (ActionHandle, InputError)
	InputSourceHandle(path string) (InputValueHandle, InputError)
	UpdateActionState(sets []ActiveActionSet) InputError
	DigitalActionData(action ActionHandle, restrict InputValueHandle) (DigitalActionData, InputError)
	AnalogActionData(action ActionHandle, restrict InputValueHandle) (AnalogActionData, InputError)
	PoseActionDataRelativeToNow(action ActionHandle, origin TrackingUniverseOrigin, predictedSeconds float32, restrict InputValueHandle) (PoseActionData, InputError)
	TriggerHapticVibrationAction(action ActionHandle, startSecondsFromNow, durationSeconds, frequency, amplitude float32, restrict InputValueHandle) InputError
	ActionOrigins(set ActionSetHandle, action ActionHandle, origins []InputValueHandle) InputError
	OriginLocalizedName(origin InputValueHandle, buf []byte, parts InputStringBits) InputError
	OriginTrackedDeviceInfo(origin InputValueHandle) (RawInputOriginInfo, InputError)
	ShowActionOrigins(set ActionSetHandle, action ActionHandle) InputError
	ShowBindingsForActionSet(sets []ActiveActionSet, origin InputValueHandle) InputError
	// OpenBindingUI receives an empty appKey when the caller passed none.
	OpenBindingUI(appKey string, set ActionSetHandle, device InputValueHandle, showOnDesktop bool) InputError
	// ActionBindingInfo fills infos and returns how many entries it wrote.
	ActionBindingInfo(action ActionHandle, infos []RawInputBindingInfo) (uint32, InputError)
}

// ApplicationType selects how the runtime treats the calling process.
type ApplicationType uint32

const (
	ApplicationOther ApplicationType = iota
	ApplicationScene
	ApplicationOverlay
	ApplicationBackground
	ApplicationUtility
	ApplicationVRMonitor
	ApplicationSteamWatchdog
	ApplicationBootstrapper
	ApplicationWebHelper
	ApplicationOpenXRInstance
	ApplicationOpenXRScene
	ApplicationOpenXROverlay
	ApplicationPrism
	ApplicationRoomView
)

type DeviceClass uint32

const (
	DeviceClassInvalid DeviceClass = iota
	DeviceClassHMD
	DeviceClassController
	DeviceClassGenericTracker
	DeviceClassTrackingReference
	DeviceClassDisplayRedirect
)

func (c DeviceClass) String() string {
	switch c {
	case DeviceClassHMD:
		return "hmd"
	case DeviceClassController:
		return "controller"
	case DeviceClassGenericTracker:
		return "tracker"
	case DeviceClassTrackingReference:
		return "tracking-reference"
	case DeviceClassDisplayRedirect:
		return "display-redirect"
	default:
		return "invalid"
	}
}

type ControllerRole uint32

const (
	ControllerRoleInvalid ControllerRole = iota
	ControllerRoleLeftHand
	ControllerRoleRightHand
	ControllerRoleOptOut
	ControllerRoleTreadmill
	ControllerRoleStylus
)
