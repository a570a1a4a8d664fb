package ovr

import (
	"errors"
	"strconv"
)

// Error codes returned by the runtime. Each kind is a closed enumeration
// whose zero member means success; managers turn that member into a nil
// error and return every other member as is, so callers can match codes
// with errors.Is.

var ErrAlreadyInitialized = errors.New("ovr: runtime already initialized")

func describe(kind string, code uint32, names map[uint32]string) string {
	return kind + "(" + strconv.FormatUint(uint64(code), 10) + "): " + nameOf(names, code)
}

// ---- init ----

type InitError uint32

const (
	InitErrorNone                         InitError = 0
	InitErrorUnknown                      InitError = 1
	InitErrorInstallationNotFound         InitError = 100
	InitErrorInstallationCorrupt          InitError = 101
	InitErrorVRClientDLLNotFound          InitError = 102
	InitErrorFileNotFound                 InitError = 103
	InitErrorFactoryNotFound              InitError = 104
	InitErrorInterfaceNotFound            InitError = 105
	InitErrorInvalidInterface             InitError = 106
	InitErrorUserConfigDirectoryInvalid   InitError = 107
	InitErrorHmdNotFound                  InitError = 108
	InitErrorNotInitialized               InitError = 109
	InitErrorPathRegistryNotFound         InitError = 110
	InitErrorNoConfigPath                 InitError = 111
	InitErrorNoLogPath                    InitError = 112
	InitErrorPathRegistryNotWritable      InitError = 113
	InitErrorAppInfoInitFailed            InitError = 114
	InitErrorRetry                        InitError = 115
	InitErrorCanceledByUser               InitError = 116
	InitErrorAnotherAppLaunching          InitError = 117
	InitErrorSettingsInitFailed           InitError = 118
	InitErrorShuttingDown                 InitError = 119
	InitErrorTooManyObjects               InitError = 120
	InitErrorNoServerForBackgroundApp     InitError = 121
	InitErrorNotSupportedWithCompositor   InitError = 122
	InitErrorNotAvailableToUtilityApps    InitError = 123
	InitErrorInternal                     InitError = 124
	InitErrorHmdDriverIDIsNone            InitError = 125
	InitErrorHmdNotFoundPresenceFailed    InitError = 126
	InitErrorVRMonitorNotFound            InitError = 127
	InitErrorVRMonitorStartupFailed       InitError = 128
	InitErrorLowPowerWatchdogNotSupported InitError = 129
	InitErrorInvalidApplicationType       InitError = 130
	InitErrorNotAvailableToWatchdogApps   InitError = 131
	InitErrorWatchdogDisabledInSettings   InitError = 132
	InitErrorVRDashboardNotFound          InitError = 133
	InitErrorVRDashboardStartupFailed     InitError = 134
)

var initErrorNames = map[uint32]string{
	0: "None", 1: "Unknown",
	100: "InstallationNotFound", 101: "InstallationCorrupt", 102: "VRClientDLLNotFound",
	103: "FileNotFound", 104: "FactoryNotFound", 105: "InterfaceNotFound",
	106: "InvalidInterface", 107: "UserConfigDirectoryInvalid", 108: "HmdNotFound",
	109: "NotInitialized", 110: "PathRegistryNotFound", 111: "NoConfigPath",
	112: "NoLogPath", 113: "PathRegistryNotWritable", 114: "AppInfoInitFailed",
	115: "Retry", 116: "InitCanceledByUser", 117: "AnotherAppLaunching",
	118: "SettingsInitFailed", 119: "ShuttingDown", 120: "TooManyObjects",
	121: "NoServerForBackgroundApp", 122: "NotSupportedWithCompositor",
	123: "NotAvailableToUtilityApps", 124: "Internal", 125: "HmdDriverIdIsNone",
	126: "HmdNotFoundPresenceFailed", 127: "VRMonitorNotFound", 128: "VRMonitorStartupFailed",
	129: "LowPowerWatchdogNotSupported", 130: "InvalidApplicationType",
	131: "NotAvailableToWatchdogApps", 132: "WatchdogDisabledInSettings",
	133: "VRDashboardNotFound", 134: "VRDashboardStartupFailed",
}

func (e InitError) Description() string { return nameOf(initErrorNames, uint32(e)) }
func (e InitError) Error() string       { return describe("EVRInitError", uint32(e), initErrorNames) }

// ---- tracked properties ----

type TrackedPropertyError uint32

const (
	TrackedPropSuccess TrackedPropertyError = iota
	TrackedPropWrongDataType
	TrackedPropWrongDeviceClass
	TrackedPropBufferTooSmall
	TrackedPropUnknownProperty
	TrackedPropInvalidDevice
	TrackedPropCouldNotContactServer
	TrackedPropValueNotProvidedByDevice
	TrackedPropStringExceedsMaximumLength
	TrackedPropNotYetAvailable
	TrackedPropPermissionDenied
	TrackedPropInvalidOperation
	TrackedPropCannotWriteToWildcards
	TrackedPropIPCReadFailure
	TrackedPropOutOfMemory
	TrackedPropInvalidContainer
)

var trackedPropertyErrorNames = map[uint32]string{
	0: "Success", 1: "WrongDataType", 2: "WrongDeviceClass", 3: "BufferTooSmall",
	4: "UnknownProperty", 5: "InvalidDevice", 6: "CouldNotContactServer",
	7: "ValueNotProvidedByDevice", 8: "StringExceedsMaximumLength", 9: "NotYetAvailable",
	10: "PermissionDenied", 11: "InvalidOperation", 12: "CannotWriteToWildcards",
	13: "IPCReadFailure", 14: "OutOfMemory", 15: "InvalidContainer",
}

func (e TrackedPropertyError) Description() string {
	return nameOf(trackedPropertyErrorNames, uint32(e))
}

func (e TrackedPropertyError) Error() string {
	return describe("ETrackedPropertyError", uint32(e), trackedPropertyErrorNames)
}

// ---- compositor ----

type CompositorError uint32

const (
	CompositorErrorNone                         CompositorError = 0
	CompositorErrorRequestFailed                CompositorError = 1
	CompositorErrorIncompatibleVersion          CompositorError = 100
	CompositorErrorDoNotHaveFocus               CompositorError = 101
	CompositorErrorInvalidTexture               CompositorError = 102
	CompositorErrorIsNotSceneApplication        CompositorError = 103
	CompositorErrorTextureIsOnWrongDevice       CompositorError = 104
	CompositorErrorTextureUsesUnsupportedFormat CompositorError = 105
	CompositorErrorSharedTexturesNotSupported   CompositorError = 106
	CompositorErrorIndexOutOfRange              CompositorError = 107
	CompositorErrorAlreadySubmitted             CompositorError = 108
	CompositorErrorInvalidBounds                CompositorError = 109
	CompositorErrorAlreadySet                   CompositorError = 110
)

var compositorErrorNames = map[uint32]string{
	0: "None", 1: "RequestFailed", 100: "IncompatibleVersion", 101: "DoNotHaveFocus",
	102: "InvalidTexture", 103: "IsNotSceneApplication", 104: "TextureIsOnWrongDevice",
	105: "TextureUsesUnsupportedFormat", 106: "SharedTexturesNotSupported",
	107: "IndexOutOfRange", 108: "AlreadySubmitted", 109: "InvalidBounds", 110: "AlreadySet",
}

func (e CompositorError) Description() string { return nameOf(compositorErrorNames, uint32(e)) }

func (e CompositorError) Error() string {
	return describe("EVRCompositorError", uint32(e), compositorErrorNames)
}

// ---- settings ----

type SettingsError uint32

const (
	SettingsErrorNone SettingsError = iota
	SettingsErrorIPCFailed
	SettingsErrorWriteFailed
	SettingsErrorReadFailed
	SettingsErrorJSONParseFailed
	SettingsErrorUnsetSettingHasNoDefault
)

var settingsErrorNames = map[uint32]string{
	0: "None", 1: "IPCFailed", 2: "WriteFailed", 3: "ReadFailed",
	4: "JsonParseFailed", 5: "UnsetSettingHasNoDefault",
}

func (e SettingsError) Description() string { return nameOf(settingsErrorNames, uint32(e)) }

func (e SettingsError) Error() string {
	return describe("EVRSettingsError", uint32(e), settingsErrorNames)
}

// ---- input ----

type InputError uint32

const (
	InputErrorNone InputError = iota
	InputErrorNameNotFound
	InputErrorWrongType
	InputErrorInvalidHandle
	InputErrorInvalidParam
	InputErrorNoSteam
	InputErrorMaxCapacityReached
	InputErrorIPCError
	InputErrorNoActiveActionSet
	InputErrorInvalidDevice
	InputErrorInvalidSkeleton
	InputErrorInvalidBoneCount
	InputErrorInvalidCompressedData
	InputErrorNoData
	InputErrorBufferTooSmall
	InputErrorMismatchedActionManifest
	InputErrorMissingSkeletonData
	InputErrorInvalidBoneIndex
	InputErrorInvalidPriority
	InputErrorPermissionDenied
	InputErrorInvalidRenderModel
)

var inputErrorNames = map[uint32]string{
	0: "None", 1: "NameNotFound", 2: "WrongType", 3: "InvalidHandle", 4: "InvalidParam",
	5: "NoSteam", 6: "MaxCapacityReached", 7: "IPCError", 8: "NoActiveActionSet",
	9: "InvalidDevice", 10: "InvalidSkeleton", 11: "InvalidBoneCount",
	12: "InvalidCompressedData", 13: "NoData", 14: "BufferTooSmall",
	15: "MismatchedActionManifest", 16: "MissingSkeletonData", 17: "InvalidBoneIndex",
	18: "InvalidPriority", 19: "PermissionDenied", 20: "InvalidRenderModel",
}

func (e InputError) Description() string { return nameOf(inputErrorNames, uint32(e)) }
func (e InputError) Error() string       { return describe("EVRInputError", uint32(e), inputErrorNames) }

// ---- applications ----

type ApplicationError uint32

const (
	ApplicationErrorNone                       ApplicationError = 0
	ApplicationErrorAppKeyAlreadyExists        ApplicationError = 100
	ApplicationErrorNoManifest                 ApplicationError = 101
	ApplicationErrorNoApplication              ApplicationError = 102
	ApplicationErrorInvalidIndex               ApplicationError = 103
	ApplicationErrorUnknownApplication         ApplicationError = 104
	ApplicationErrorIPCFailed                  ApplicationError = 105
	ApplicationErrorApplicationAlreadyRunning  ApplicationError = 106
	ApplicationErrorInvalidManifest            ApplicationError = 107
	ApplicationErrorInvalidApplication         ApplicationError = 108
	ApplicationErrorLaunchFailed               ApplicationError = 109
	ApplicationErrorApplicationAlreadyStarting ApplicationError = 110
	ApplicationErrorLaunchInProgress           ApplicationError = 111
	ApplicationErrorOldApplicationQuitting     ApplicationError = 112
	ApplicationErrorTransitionAborted          ApplicationError = 113
	ApplicationErrorIsTemplate                 ApplicationError = 114
	ApplicationErrorSteamVRIsExiting           ApplicationError = 115
	ApplicationErrorBufferTooSmall             ApplicationError = 200
	ApplicationErrorPropertyNotSet             ApplicationError = 201
	ApplicationErrorUnknownProperty            ApplicationError = 202
	ApplicationErrorInvalidParameter           ApplicationError = 203
	ApplicationErrorNotImplemented             ApplicationError = 300
)

var applicationErrorNames = map[uint32]string{
	0: "None", 100: "AppKeyAlreadyExists", 101: "NoManifest", 102: "NoApplication",
	103: "InvalidIndex", 104: "UnknownApplication", 105: "IPCFailed",
	106: "ApplicationAlreadyRunning", 107: "InvalidManifest", 108: "InvalidApplication",
	109: "LaunchFailed", 110: "ApplicationAlreadyStarting", 111: "LaunchInProgress",
	112: "OldApplicationQuitting", 113: "TransitionAborted", 114: "IsTemplate",
	115: "SteamVRIsExiting", 200: "BufferTooSmall", 201: "PropertyNotSet",
	202: "UnknownProperty", 203: "InvalidParameter", 300: "NotImplemented",
}

func (e ApplicationError) Description() string { return nameOf(applicationErrorNames, uint32(e)) }

func (e ApplicationError) Error() string {
	return describe("EVRApplicationError", uint32(e), applicationErrorNames)
}

// ---- overlays ----

type OverlayError uint32

const (
	OverlayErrorNone                       OverlayError = 0
	OverlayErrorUnknownOverlay             OverlayError = 10
	OverlayErrorInvalidHandle              OverlayError = 11
	OverlayErrorPermissionDenied           OverlayError = 12
	OverlayErrorOverlayLimitExceeded       OverlayError = 13
	OverlayErrorWrongVisibilityType        OverlayError = 14
	OverlayErrorKeyTooLong                 OverlayError = 15
	OverlayErrorNameTooLong                OverlayError = 16
	OverlayErrorKeyInUse                   OverlayError = 17
	OverlayErrorWrongTransformType         OverlayError = 18
	OverlayErrorInvalidTrackedDevice       OverlayError = 19
	OverlayErrorInvalidParameter           OverlayError = 20
	OverlayErrorThumbnailCantBeDestroyed   OverlayError = 21
	OverlayErrorArrayTooSmall              OverlayError = 22
	OverlayErrorRequestFailed              OverlayError = 23
	OverlayErrorInvalidTexture             OverlayError = 24
	OverlayErrorUnableToLoadFile           OverlayError = 25
	OverlayErrorKeyboardAlreadyInUse       OverlayError = 26
	OverlayErrorNoNeighbor                 OverlayError = 27
	OverlayErrorTooManyMaskPrimitives      OverlayError = 29
	OverlayErrorBadMaskPrimitive           OverlayError = 30
	OverlayErrorTextureAlreadyLocked       OverlayError = 31
	OverlayErrorTextureLockCapacityReached OverlayError = 32
	OverlayErrorTextureNotLocked           OverlayError = 33
	OverlayErrorTimedOut                   OverlayError = 34
)

var overlayErrorNames = map[uint32]string{
	0: "None", 10: "UnknownOverlay", 11: "InvalidHandle", 12: "PermissionDenied",
	13: "OverlayLimitExceeded", 14: "WrongVisibilityType", 15: "KeyTooLong",
	16: "NameTooLong", 17: "KeyInUse", 18: "WrongTransformType", 19: "InvalidTrackedDevice",
	20: "InvalidParameter", 21: "ThumbnailCantBeDestroyed", 22: "ArrayTooSmall",
	23: "RequestFailed", 24: "InvalidTexture", 25: "UnableToLoadFile",
	26: "KeyboardAlreadyInUse", 27: "NoNeighbor", 29: "TooManyMaskPrimitives",
	30: "BadMaskPrimitive", 31: "TextureAlreadyLocked", 32: "TextureLockCapacityReached",
	33: "TextureNotLocked", 34: "TimedOut",
}

func (e OverlayError) Description() string { return nameOf(overlayErrorNames, uint32(e)) }

func (e OverlayError) Error() string {
	return describe("EVROverlayError", uint32(e), overlayErrorNames)
}

func nameOf(names map[uint32]string, code uint32) string {
	if name, ok := names[code]; ok {
		return name
	}
	return "Unknown"
}

// code is the set of runtime error enumerations.
type code interface {
	~uint32
	error
}

// result maps the success member of an enumeration to a nil error.
func result[C code](c C) error {
	if c == 0 {
		return nil
	}
	return c
}
