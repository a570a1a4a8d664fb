// Package fakevr is an in-memory ovr.Runtime for tests. It follows the
// native call protocol closely enough to exercise the marshalling code:
// records are written into caller buffers, strings are NUL-terminated and
// length probes behave like the real runtime.
package fakevr

import (
	"sync"

	"github.com/rawbytedev/ovr"
)

// Runtime bundles the fake interfaces.
type Runtime struct {
	InitCode      ovr.InitError
	InitApp       ovr.ApplicationType
	ShutdownCalls int

	Sys  *System
	Comp *Compositor
	Set  *Settings
	Chap *Chaperone
	In   *Input
}

func New() *Runtime {
	return &Runtime{
		Sys:  NewSystem(),
		Comp: &Compositor{},
		Set:  &Settings{values: map[string]any{}},
		Chap: &Chaperone{},
		In:   NewInput(),
	}
}

func (r *Runtime) Init(app ovr.ApplicationType) ovr.InitError {
	r.InitApp = app
	return r.InitCode
}

func (r *Runtime) Shutdown() { r.ShutdownCalls++ }

func (r *Runtime) System() ovr.SystemRuntime                 { return r.Sys }
func (r *Runtime) Compositor() ovr.CompositorRuntime         { return r.Comp }
func (r *Runtime) Settings() ovr.SettingsRuntime             { return r.Set }
func (r *Runtime) ChaperoneSetup() ovr.ChaperoneSetupRuntime { return r.Chap }
func (r *Runtime) Input() ovr.InputRuntime                   { return r.In }

// ---- system ----

type propKey struct {
	idx  ovr.DeviceIndex
	prop ovr.DeviceProperty
}

// System is a scripted event queue plus a device table.
type System struct {
	mu      sync.Mutex
	records [][]byte
	last    []byte
	props   map[propKey]any
	errs    map[propKey]ovr.TrackedPropertyError
	Devices map[ovr.DeviceIndex]ovr.DeviceClass
	Roles   map[ovr.DeviceIndex]ovr.ControllerRole
	Poses   []ovr.TrackedDevicePose
	Origin  ovr.TrackingUniverseOrigin

	StandingZero ovr.Matrix34
	VsyncSeconds float32
	VsyncFrame   uint64
	HasVsync     bool

	// Polls counts PollNextEvent calls, empty ones included.
	Polls int
}

func NewSystem() *System {
	return &System{
		props:   map[propKey]any{},
		errs:    map[propKey]ovr.TrackedPropertyError{},
		Devices: map[ovr.DeviceIndex]ovr.DeviceClass{},
		Roles:   map[ovr.DeviceIndex]ovr.ControllerRole{},
	}
}

// PushRecord queues a raw record. It is copied.
func (s *System) PushRecord(rec []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, append([]byte(nil), rec...))
}

// PushEvent queues the raw form of ev.
func (s *System) PushEvent(ev ovr.Event) {
	s.PushRecord(ev.AppendRecord(nil))
}

// Pending reports the number of queued records.
func (s *System) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// PollNextEvent scribbles over the buffer from the previous call before
// anything else, the way a runtime reusing its storage would.
func (s *System) PollNextEvent(record []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Polls++
	for i := range s.last {
		s.last[i] = 0xEE
	}
	s.last = record
	if len(s.records) == 0 {
		return false
	}
	copy(record, s.records[0])
	s.records = s.records[1:]
	return true
}

func (s *System) TrackedDeviceClass(idx ovr.DeviceIndex) ovr.DeviceClass {
	return s.Devices[idx]
}

func (s *System) IsTrackedDeviceConnected(idx ovr.DeviceIndex) bool {
	_, ok := s.Devices[idx]
	return ok
}

func (s *System) ControllerRoleForTrackedDeviceIndex(idx ovr.DeviceIndex) ovr.ControllerRole {
	return s.Roles[idx]
}

func (s *System) DeviceToAbsoluteTrackingPose(origin ovr.TrackingUniverseOrigin, _ float32, poses []ovr.TrackedDevicePose) {
	s.Origin = origin
	copy(poses, s.Poses)
}

func (s *System) RawZeroPoseToStandingAbsoluteTrackingPose() ovr.Matrix34 { return s.StandingZero }

func (s *System) TimeSinceLastVsync() (float32, uint64, bool) {
	return s.VsyncSeconds, s.VsyncFrame, s.HasVsync
}

// SetProperty stores a property value; its Go type decides which accessor
// answers it.
func (s *System) SetProperty(idx ovr.DeviceIndex, prop ovr.DeviceProperty, v any) {
	s.props[propKey{idx, prop}] = v
}

// FailProperty makes every accessor return code for the property.
func (s *System) FailProperty(idx ovr.DeviceIndex, prop ovr.DeviceProperty, code ovr.TrackedPropertyError) {
	s.errs[propKey{idx, prop}] = code
}

func lookup[T any](s *System, idx ovr.DeviceIndex, prop ovr.DeviceProperty) (T, ovr.TrackedPropertyError) {
	var zero T
	k := propKey{idx, prop}
	if code, ok := s.errs[k]; ok {
		return zero, code
	}
	if _, ok := s.Devices[idx]; !ok {
		return zero, ovr.TrackedPropInvalidDevice
	}
	raw, ok := s.props[k]
	if !ok {
		return zero, ovr.TrackedPropUnknownProperty
	}
	v, ok := raw.(T)
	if !ok {
		return zero, ovr.TrackedPropWrongDataType
	}
	return v, ovr.TrackedPropSuccess
}

func (s *System) BoolTrackedDeviceProperty(idx ovr.DeviceIndex, prop ovr.DeviceProperty) (bool, ovr.TrackedPropertyError) {
	return lookup[bool](s, idx, prop)
}

func (s *System) FloatTrackedDeviceProperty(idx ovr.DeviceIndex, prop ovr.DeviceProperty) (float32, ovr.TrackedPropertyError) {
	return lookup[float32](s, idx, prop)
}

func (s *System) Int32TrackedDeviceProperty(idx ovr.DeviceIndex, prop ovr.DeviceProperty) (int32, ovr.TrackedPropertyError) {
	return lookup[int32](s, idx, prop)
}

func (s *System) Uint64TrackedDeviceProperty(idx ovr.DeviceIndex, prop ovr.DeviceProperty) (uint64, ovr.TrackedPropertyError) {
	return lookup[uint64](s, idx, prop)
}

func (s *System) Matrix34TrackedDeviceProperty(idx ovr.DeviceIndex, prop ovr.DeviceProperty) (ovr.Matrix34, ovr.TrackedPropertyError) {
	return lookup[ovr.Matrix34](s, idx, prop)
}

// StringTrackedDeviceProperty reports an empty value with length 0 and
// answers a short buffer with the needed length and BufferTooSmall.
func (s *System) StringTrackedDeviceProperty(idx ovr.DeviceIndex, prop ovr.DeviceProperty, buf []byte) (uint32, ovr.TrackedPropertyError) {
	v, code := lookup[string](s, idx, prop)
	if code != ovr.TrackedPropSuccess {
		return 0, code
	}
	if v == "" {
		return 0, ovr.TrackedPropSuccess
	}
	need := uint32(len(v) + 1)
	if uint32(len(buf)) < need {
		return need, ovr.TrackedPropBufferTooSmall
	}
	copy(buf, v)
	buf[len(v)] = 0
	return need, ovr.TrackedPropSuccess
}

// ---- compositor ----

type Submission struct {
	Eye     ovr.Eye
	Texture ovr.Texture
	Bounds  *ovr.TextureBounds
	Flags   ovr.SubmitFlags
}

type Compositor struct {
	SubmitCode  ovr.CompositorError
	PosesCode   ovr.CompositorError
	Submissions []Submission
	RenderPoses []ovr.TrackedDevicePose
	GamePoses   []ovr.TrackedDevicePose

	Space              ovr.TrackingUniverseOrigin
	TimeRemaining      float32
	FocusProcess       uint32
	FrameRenderer      uint32
	FocusAppLoading    bool
	InstanceExtensions string
	DeviceExtensions   map[uint64]string
}

func (c *Compositor) Submit(eye ovr.Eye, tex ovr.Texture, bounds *ovr.TextureBounds, flags ovr.SubmitFlags) ovr.CompositorError {
	if c.SubmitCode != ovr.CompositorErrorNone {
		return c.SubmitCode
	}
	c.Submissions = append(c.Submissions, Submission{eye, tex, bounds, flags})
	return ovr.CompositorErrorNone
}

func (c *Compositor) LastPoses(render, game []ovr.TrackedDevicePose) ovr.CompositorError {
	if c.PosesCode != ovr.CompositorErrorNone {
		return c.PosesCode
	}
	copy(render, c.RenderPoses)
	copy(game, c.GamePoses)
	return ovr.CompositorErrorNone
}

func (c *Compositor) WaitGetPoses(render, game []ovr.TrackedDevicePose) ovr.CompositorError {
	return c.LastPoses(render, game)
}

func (c *Compositor) TrackingSpace() ovr.TrackingUniverseOrigin { return c.Space }
func (c *Compositor) FrameTimeRemaining() float32               { return c.TimeRemaining }
func (c *Compositor) CurrentSceneFocusProcess() uint32          { return c.FocusProcess }
func (c *Compositor) LastFrameRenderer() uint32                 { return c.FrameRenderer }
func (c *Compositor) IsCurrentSceneFocusAppLoading() bool       { return c.FocusAppLoading }

func (c *Compositor) VulkanInstanceExtensionsRequired(buf []byte) uint32 {
	return cCopy(buf, c.InstanceExtensions)
}

func (c *Compositor) VulkanDeviceExtensionsRequired(physicalDevice uint64, buf []byte) uint32 {
	return cCopy(buf, c.DeviceExtensions[physicalDevice])
}

// cCopy writes s NUL-terminated into buf when it fits and returns the
// length needed; 0 for an empty s.
func cCopy(buf []byte, s string) uint32 {
	if s == "" {
		return 0
	}
	need := len(s) + 1
	if len(buf) >= need {
		copy(buf, s)
		buf[len(s)] = 0
	}
	return uint32(need)
}

// ---- settings ----

type Settings struct {
	mu     sync.Mutex
	values map[string]any
	// FailWith, when set, is returned by every call.
	FailWith ovr.SettingsError
}

func settingsKey(section, key string) string { return section + "/" + key }

func getSetting[T any](s *Settings, section, key string) (T, ovr.SettingsError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	if s.FailWith != ovr.SettingsErrorNone {
		return zero, s.FailWith
	}
	raw, ok := s.values[settingsKey(section, key)]
	if !ok {
		return zero, ovr.SettingsErrorUnsetSettingHasNoDefault
	}
	v, ok := raw.(T)
	if !ok {
		return zero, ovr.SettingsErrorReadFailed
	}
	return v, ovr.SettingsErrorNone
}

func (s *Settings) set(section, key string, v any) ovr.SettingsError {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != ovr.SettingsErrorNone {
		return s.FailWith
	}
	s.values[settingsKey(section, key)] = v
	return ovr.SettingsErrorNone
}

func (s *Settings) Float(section, key string) (float32, ovr.SettingsError) {
	return getSetting[float32](s, section, key)
}

func (s *Settings) SetFloat(section, key string, v float32) ovr.SettingsError {
	return s.set(section, key, v)
}

func (s *Settings) Bool(section, key string) (bool, ovr.SettingsError) {
	return getSetting[bool](s, section, key)
}

func (s *Settings) SetBool(section, key string, v bool) ovr.SettingsError {
	return s.set(section, key, v)
}

func (s *Settings) Int32(section, key string) (int32, ovr.SettingsError) {
	return getSetting[int32](s, section, key)
}

func (s *Settings) SetInt32(section, key string, v int32) ovr.SettingsError {
	return s.set(section, key, v)
}

// ---- chaperone ----

type Chaperone struct {
	Live        string
	HasWorking  bool
	Working     ovr.Matrix34
	CommitOK    bool
	Committed   []ovr.ChaperoneConfigFile
	ExportCalls int
}

func (c *Chaperone) ExportLiveToBuffer(buf []byte, n *uint32) bool {
	c.ExportCalls++
	if c.Live == "" {
		*n = 0
		return false
	}
	need := uint32(len(c.Live) + 1)
	*n = need
	if uint32(len(buf)) < need {
		return false
	}
	copy(buf, c.Live)
	buf[len(c.Live)] = 0
	return true
}

func (c *Chaperone) WorkingStandingZeroPoseToRawTrackingPose() (ovr.Matrix34, bool) {
	return c.Working, c.HasWorking
}

func (c *Chaperone) SetWorkingStandingZeroPoseToRawTrackingPose(m ovr.Matrix34) {
	c.Working = m
	c.HasWorking = true
}

func (c *Chaperone) CommitWorkingCopy(file ovr.ChaperoneConfigFile) bool {
	if !c.CommitOK {
		return false
	}
	c.Committed = append(c.Committed, file)
	return true
}

// ---- input ----

type Haptic struct {
	Action               ovr.ActionHandle
	Start, Duration      float32
	Frequency, Amplitude float32
	Restrict             ovr.InputValueHandle
}

type Input struct {
	ManifestPath     string
	ActionSets       map[string]ovr.ActionSetHandle
	Actions          map[string]ovr.ActionHandle
	Sources          map[string]ovr.InputValueHandle
	Digital          map[ovr.ActionHandle]ovr.DigitalActionData
	Analog           map[ovr.ActionHandle]ovr.AnalogActionData
	Pose             map[ovr.ActionHandle]ovr.PoseActionData
	Origins          map[ovr.ActionHandle][]ovr.InputValueHandle
	OriginNames      map[ovr.InputValueHandle]string
	Updated          [][]ovr.ActiveActionSet
	Haptics          []Haptic
	PredictedSeconds float32

	DeviceInfo    map[ovr.InputValueHandle]ovr.InputOriginInfo
	Bindings      map[ovr.ActionHandle][]ovr.InputBindingInfo
	ShownOrigins  []ovr.ActionHandle
	ShownBindings [][]ovr.ActiveActionSet
	BindingUIs    []BindingUI
}

// BindingUI records one OpenBindingUI call.
type BindingUI struct {
	AppKey        string
	Set           ovr.ActionSetHandle
	Device        ovr.InputValueHandle
	ShowOnDesktop bool
}

func NewInput() *Input {
	return &Input{
		ActionSets:  map[string]ovr.ActionSetHandle{},
		Actions:     map[string]ovr.ActionHandle{},
		Sources:     map[string]ovr.InputValueHandle{},
		Digital:     map[ovr.ActionHandle]ovr.DigitalActionData{},
		Analog:      map[ovr.ActionHandle]ovr.AnalogActionData{},
		Pose:        map[ovr.ActionHandle]ovr.PoseActionData{},
		Origins:     map[ovr.ActionHandle][]ovr.InputValueHandle{},
		OriginNames: map[ovr.InputValueHandle]string{},
		DeviceInfo:  map[ovr.InputValueHandle]ovr.InputOriginInfo{},
		Bindings:    map[ovr.ActionHandle][]ovr.InputBindingInfo{},
	}
}

func (in *Input) SetActionManifestPath(path string) ovr.InputError {
	in.ManifestPath = path
	return ovr.InputErrorNone
}

func named[H any](m map[string]H, name string) (H, ovr.InputError) {
	h, ok := m[name]
	if !ok {
		var zero H
		return zero, ovr.InputErrorNameNotFound
	}
	return h, ovr.InputErrorNone
}

func (in *Input) ActionSetHandle(name string) (ovr.ActionSetHandle, ovr.InputError) {
	return named(in.ActionSets, name)
}

func (in *Input) ActionHandle(name string) (ovr.ActionHandle, ovr.InputError) {
	return named(in.Actions, name)
}

func (in *Input) InputSourceHandle(path string) (ovr.InputValueHandle, ovr.InputError) {
	return named(in.Sources, path)
}

func (in *Input) UpdateActionState(sets []ovr.ActiveActionSet) ovr.InputError {
	if len(sets) == 0 {
		return ovr.InputErrorNoActiveActionSet
	}
	in.Updated = append(in.Updated, append([]ovr.ActiveActionSet(nil), sets...))
	return ovr.InputErrorNone
}

func (in *Input) DigitalActionData(action ovr.ActionHandle, _ ovr.InputValueHandle) (ovr.DigitalActionData, ovr.InputError) {
	d, ok := in.Digital[action]
	if !ok {
		return d, ovr.InputErrorInvalidHandle
	}
	return d, ovr.InputErrorNone
}

func (in *Input) AnalogActionData(action ovr.ActionHandle, _ ovr.InputValueHandle) (ovr.AnalogActionData, ovr.InputError) {
	d, ok := in.Analog[action]
	if !ok {
		return d, ovr.InputErrorInvalidHandle
	}
	return d, ovr.InputErrorNone
}

func (in *Input) PoseActionDataRelativeToNow(action ovr.ActionHandle, _ ovr.TrackingUniverseOrigin, predicted float32, _ ovr.InputValueHandle) (ovr.PoseActionData, ovr.InputError) {
	in.PredictedSeconds = predicted
	d, ok := in.Pose[action]
	if !ok {
		return d, ovr.InputErrorInvalidHandle
	}
	return d, ovr.InputErrorNone
}

func (in *Input) TriggerHapticVibrationAction(action ovr.ActionHandle, start, duration, frequency, amplitude float32, restrict ovr.InputValueHandle) ovr.InputError {
	in.Haptics = append(in.Haptics, Haptic{action, start, duration, frequency, amplitude, restrict})
	return ovr.InputErrorNone
}

func (in *Input) ActionOrigins(_ ovr.ActionSetHandle, action ovr.ActionHandle, origins []ovr.InputValueHandle) ovr.InputError {
	src, ok := in.Origins[action]
	if !ok {
		return ovr.InputErrorInvalidHandle
	}
	copy(origins, src)
	return ovr.InputErrorNone
}

func (in *Input) OriginLocalizedName(origin ovr.InputValueHandle, buf []byte, _ ovr.InputStringBits) ovr.InputError {
	name, ok := in.OriginNames[origin]
	if !ok {
		return ovr.InputErrorInvalidHandle
	}
	if len(name)+1 > len(buf) {
		return ovr.InputErrorBufferTooSmall
	}
	cCopy(buf, name)
	return ovr.InputErrorNone
}

func (in *Input) OriginTrackedDeviceInfo(origin ovr.InputValueHandle) (ovr.RawInputOriginInfo, ovr.InputError) {
	var raw ovr.RawInputOriginInfo
	info, ok := in.DeviceInfo[origin]
	if !ok {
		return raw, ovr.InputErrorInvalidHandle
	}
	raw.DevicePath = info.DevicePath
	raw.TrackedDeviceIndex = info.TrackedDeviceIndex
	cCopy(raw.RenderModelComponentName[:], info.RenderModelComponentName)
	return raw, ovr.InputErrorNone
}

func (in *Input) ShowActionOrigins(_ ovr.ActionSetHandle, action ovr.ActionHandle) ovr.InputError {
	if _, ok := in.Origins[action]; !ok {
		return ovr.InputErrorInvalidHandle
	}
	in.ShownOrigins = append(in.ShownOrigins, action)
	return ovr.InputErrorNone
}

func (in *Input) ShowBindingsForActionSet(sets []ovr.ActiveActionSet, _ ovr.InputValueHandle) ovr.InputError {
	if len(sets) == 0 {
		return ovr.InputErrorNoActiveActionSet
	}
	in.ShownBindings = append(in.ShownBindings, append([]ovr.ActiveActionSet(nil), sets...))
	return ovr.InputErrorNone
}

func (in *Input) OpenBindingUI(appKey string, set ovr.ActionSetHandle, device ovr.InputValueHandle, showOnDesktop bool) ovr.InputError {
	in.BindingUIs = append(in.BindingUIs, BindingUI{appKey, set, device, showOnDesktop})
	return ovr.InputErrorNone
}

// ActionBindingInfo leaves entries past the returned count untouched.
func (in *Input) ActionBindingInfo(action ovr.ActionHandle, infos []ovr.RawInputBindingInfo) (uint32, ovr.InputError) {
	bindings, ok := in.Bindings[action]
	if !ok {
		return 0, ovr.InputErrorInvalidHandle
	}
	if len(bindings) > len(infos) {
		return 0, ovr.InputErrorBufferTooSmall
	}
	for i, b := range bindings {
		r := &infos[i]
		cCopy(r.DevicePathName[:], b.DevicePathName)
		cCopy(r.InputPathName[:], b.InputPathName)
		cCopy(r.ModeName[:], b.ModeName)
		cCopy(r.SlotName[:], b.SlotName)
		cCopy(r.InputSourceType[:], b.InputSourceType)
	}
	return uint32(len(bindings)), ovr.InputErrorNone
}
