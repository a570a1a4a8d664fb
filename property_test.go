package ovr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/ovr"
	"github.com/rawbytedev/ovr/internal/fakevr"
)

func deviceSystem() (*ovr.System, *fakevr.System) {
	fake := fakevr.NewSystem()
	fake.Devices[ovr.DeviceIndexHMD] = ovr.DeviceClassHMD
	return ovr.NewSystem(fake), fake
}

func TestGetPropertyKinds(t *testing.T) {
	sys, fake := deviceSystem()
	hmd := ovr.DeviceIndexHMD
	fake.SetProperty(hmd, ovr.PropDeviceIsWirelessBool, true)
	fake.SetProperty(hmd, ovr.PropDisplayFrequencyFloat, float32(90))
	fake.SetProperty(hmd, ovr.PropAxis0TypeInt32, int32(-2))
	fake.SetProperty(hmd, ovr.PropCurrentUniverseIDUint64, uint64(1<<40))
	fake.SetProperty(hmd, ovr.PropStatusDisplayTransformMatrix34, ovr.Identity34)
	fake.SetProperty(hmd, ovr.PropModelNumberString, "Index")

	b, err := ovr.GetProperty[bool](sys, hmd, ovr.PropDeviceIsWirelessBool)
	require.NoError(t, err)
	assert.True(t, b)

	f, err := ovr.GetProperty[float32](sys, hmd, ovr.PropDisplayFrequencyFloat)
	require.NoError(t, err)
	assert.Equal(t, float32(90), f)

	i, err := ovr.GetProperty[int32](sys, hmd, ovr.PropAxis0TypeInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(-2), i)

	u, err := ovr.GetProperty[uint64](sys, hmd, ovr.PropCurrentUniverseIDUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), u)

	m, err := ovr.GetProperty[ovr.Matrix34](sys, hmd, ovr.PropStatusDisplayTransformMatrix34)
	require.NoError(t, err)
	assert.Equal(t, ovr.Identity34, m)

	s, err := ovr.GetProperty[string](sys, hmd, ovr.PropModelNumberString)
	require.NoError(t, err)
	assert.Equal(t, "Index", s)
}

func TestGetPropertyErrors(t *testing.T) {
	sys, fake := deviceSystem()
	hmd := ovr.DeviceIndexHMD
	fake.SetProperty(hmd, ovr.PropDisplayFrequencyFloat, float32(120))

	_, err := ovr.GetProperty[bool](sys, hmd, ovr.PropDisplayFrequencyFloat)
	assert.ErrorIs(t, err, ovr.TrackedPropWrongDataType)

	_, err = ovr.GetProperty[string](sys, hmd, ovr.PropSerialNumberString)
	assert.ErrorIs(t, err, ovr.TrackedPropUnknownProperty)

	_, err = ovr.GetProperty[float32](sys, 7, ovr.PropDisplayFrequencyFloat)
	assert.ErrorIs(t, err, ovr.TrackedPropInvalidDevice)

	fake.FailProperty(hmd, ovr.PropManufacturerNameString, ovr.TrackedPropCouldNotContactServer)
	_, err = ovr.GetProperty[string](sys, hmd, ovr.PropManufacturerNameString)
	assert.ErrorIs(t, err, ovr.TrackedPropCouldNotContactServer)
}

func TestStringPropertyEdges(t *testing.T) {
	sys, fake := deviceSystem()
	hmd := ovr.DeviceIndexHMD

	fake.SetProperty(hmd, ovr.PropRenderModelNameString, "")
	s, err := ovr.GetProperty[string](sys, hmd, ovr.PropRenderModelNameString)
	require.NoError(t, err)
	assert.Empty(t, s)

	long := strings.Repeat("x", 40*1024)
	fake.SetProperty(hmd, ovr.PropAllWirelessDongleDescriptionsString, long)
	_, err = ovr.GetProperty[string](sys, hmd, ovr.PropAllWirelessDongleDescriptionsString)
	assert.ErrorIs(t, err, ovr.TrackedPropStringExceedsMaximumLength)
}

// growingSystem reports a longer string on every call, as a runtime
// would if the value changed between the probe and the read.
type growingSystem struct {
	*fakevr.System
	calls int
}

func (g *growingSystem) StringTrackedDeviceProperty(_ ovr.DeviceIndex, _ ovr.DeviceProperty, buf []byte) (uint32, ovr.TrackedPropertyError) {
	g.calls++
	need := uint32(4 + g.calls)
	if uint32(len(buf)) < need {
		return need, ovr.TrackedPropBufferTooSmall
	}
	return need, ovr.TrackedPropSuccess
}

func TestStringPropertyChangedBetweenCalls(t *testing.T) {
	g := &growingSystem{System: fakevr.NewSystem()}
	_, err := ovr.GetProperty[string](ovr.NewSystem(g), 0, ovr.PropSerialNumberString)
	assert.ErrorIs(t, err, ovr.TrackedPropBufferTooSmall)
	assert.Equal(t, 2, g.calls)
}
