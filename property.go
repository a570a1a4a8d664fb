package ovr

// DeviceProperty identifies a tracked device property. The suffix of each
// constant names the value kind the runtime stores for it.
type DeviceProperty uint32

const (
	PropInvalid DeviceProperty = 0

	PropTrackingSystemNameString            DeviceProperty = 1000
	PropModelNumberString                   DeviceProperty = 1001
	PropSerialNumberString                  DeviceProperty = 1002
	PropRenderModelNameString               DeviceProperty = 1003
	PropWillDriftInYawBool                  DeviceProperty = 1004
	PropManufacturerNameString              DeviceProperty = 1005
	PropTrackingFirmwareVersionString       DeviceProperty = 1006
	PropHardwareRevisionString              DeviceProperty = 1007
	PropAllWirelessDongleDescriptionsString DeviceProperty = 1008
	PropConnectedWirelessDongleString       DeviceProperty = 1009
	PropDeviceIsWirelessBool                DeviceProperty = 1010
	PropDeviceIsChargingBool                DeviceProperty = 1011
	PropDeviceBatteryPercentageFloat        DeviceProperty = 1012
	PropStatusDisplayTransformMatrix34      DeviceProperty = 1013

	PropReportsTimeSinceVSyncBool      DeviceProperty = 2000
	PropSecondsFromVsyncToPhotonsFloat DeviceProperty = 2001
	PropDisplayFrequencyFloat          DeviceProperty = 2002
	PropUserIpdMetersFloat             DeviceProperty = 2003
	PropCurrentUniverseIDUint64        DeviceProperty = 2004
	PropPreviousUniverseIDUint64       DeviceProperty = 2005
	PropDisplayFirmwareVersionUint64   DeviceProperty = 2006
	PropIsOnDesktopBool                DeviceProperty = 2007

	PropAttachedDeviceIDString DeviceProperty = 3000
	PropSupportedButtonsUint64 DeviceProperty = 3001
	PropAxis0TypeInt32         DeviceProperty = 3002
)

// PropertyValue is the closed set of value kinds the runtime can store for
// a tracked device property.
type PropertyValue interface {
	bool | float32 | int32 | uint64 | string | Matrix34
}

// maxPropertyString bounds the runtime's string property length.
const maxPropertyString = 32 * 1024

// GetProperty reads prop for the device at idx. The runtime reports a
// mismatched kind as TrackedPropWrongDataType.
func GetProperty[T PropertyValue](s *System, idx DeviceIndex, prop DeviceProperty) (T, error) {
	var (
		zero T
		v    any
		code TrackedPropertyError
	)
	switch any(zero).(type) {
	case bool:
		v, code = s.rt.BoolTrackedDeviceProperty(idx, prop)
	case float32:
		v, code = s.rt.FloatTrackedDeviceProperty(idx, prop)
	case int32:
		v, code = s.rt.Int32TrackedDeviceProperty(idx, prop)
	case uint64:
		v, code = s.rt.Uint64TrackedDeviceProperty(idx, prop)
	case Matrix34:
		v, code = s.rt.Matrix34TrackedDeviceProperty(idx, prop)
	case string:
		v, code = s.stringProperty(idx, prop)
	}
	if err := result(code); err != nil {
		return zero, err
	}
	return v.(T), nil
}

// stringProperty runs the size-probe-then-fill protocol. A zero length
// means the device reports an empty string.
func (s *System) stringProperty(idx DeviceIndex, prop DeviceProperty) (string, TrackedPropertyError) {
	n, code := s.rt.StringTrackedDeviceProperty(idx, prop, nil)
	if code != TrackedPropSuccess && code != TrackedPropBufferTooSmall {
		return "", code
	}
	if n == 0 {
		return "", TrackedPropSuccess
	}
	if n > maxPropertyString {
		return "", TrackedPropStringExceedsMaximumLength
	}
	buf := make([]byte, n)
	got, code := s.rt.StringTrackedDeviceProperty(idx, prop, buf)
	if code != TrackedPropSuccess {
		return "", code
	}
	if got != n {
		// the value changed between the two calls
		return "", TrackedPropBufferTooSmall
	}
	return cString(buf), TrackedPropSuccess
}

// cString trims b at its first NUL.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
