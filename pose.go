package ovr

// Matrix34 is a row-major 3x4 affine transform.
type Matrix34 [3][4]float32

// Identity34 is the identity transform.
var Identity34 = Matrix34{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
}

// Translation returns the translation column.
func (m Matrix34) Translation() [3]float32 {
	return [3]float32{m[0][3], m[1][3], m[2][3]}
}

type Vector3 [3]float32

type TrackingResult uint32

const (
	TrackingResultUninitialized         TrackingResult = 1
	TrackingResultCalibratingInProgress TrackingResult = 100
	TrackingResultCalibratingOutOfRange TrackingResult = 101
	TrackingResultRunningOK             TrackingResult = 200
	TrackingResultRunningOutOfRange     TrackingResult = 201
	TrackingResultFallbackRotationOnly  TrackingResult = 300
)

// TrackedDevicePose is one entry of the runtime's pose table.
type TrackedDevicePose struct {
	DeviceToAbsoluteTracking Matrix34
	Velocity                 Vector3 // meters/second
	AngularVelocity          Vector3 // radians/second
	TrackingResult           TrackingResult
	PoseIsValid              bool
	DeviceIsConnected        bool
}

type TrackingUniverseOrigin uint32

const (
	TrackingUniverseSeated TrackingUniverseOrigin = iota
	TrackingUniverseStanding
	TrackingUniverseRawAndUncalibrated
)

func (o TrackingUniverseOrigin) String() string {
	switch o {
	case TrackingUniverseSeated:
		return "seated"
	case TrackingUniverseStanding:
		return "standing"
	case TrackingUniverseRawAndUncalibrated:
		return "raw"
	default:
		return "unknown"
	}
}
