package ovr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rawbytedev/ovr"
)

func TestErrorStrings(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ovr.InitErrorHmdNotFound, "EVRInitError(108): HmdNotFound"},
		{ovr.TrackedPropBufferTooSmall, "ETrackedPropertyError(3): BufferTooSmall"},
		{ovr.CompositorErrorDoNotHaveFocus, "EVRCompositorError(101): DoNotHaveFocus"},
		{ovr.SettingsErrorReadFailed, "EVRSettingsError(3): ReadFailed"},
		{ovr.InputErrorNameNotFound, "EVRInputError(1): NameNotFound"},
		{ovr.ApplicationErrorLaunchFailed, "EVRApplicationError(109): LaunchFailed"},
		{ovr.OverlayErrorTimedOut, "EVROverlayError(34): TimedOut"},
		{ovr.InitError(999), "EVRInitError(999): Unknown"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.err.Error())
	}
}

func TestErrorDescription(t *testing.T) {
	assert.Equal(t, "None", ovr.InitErrorNone.Description())
	assert.Equal(t, "WrongDataType", ovr.TrackedPropWrongDataType.Description())
	assert.Equal(t, "Unknown", ovr.OverlayError(28).Description())
}

func TestErrorCodesMatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("read battery: %w", ovr.TrackedPropInvalidDevice)
	assert.ErrorIs(t, err, ovr.TrackedPropInvalidDevice)
	assert.NotErrorIs(t, err, ovr.TrackedPropUnknownProperty)

	var code ovr.TrackedPropertyError
	assert.True(t, errors.As(err, &code))
	assert.Equal(t, ovr.TrackedPropInvalidDevice, code)
}
