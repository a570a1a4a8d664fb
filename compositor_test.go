package ovr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/ovr"
)

func TestSubmit(t *testing.T) {
	ctx, rt := session(t)
	comp := ctx.Compositor()

	tex := ovr.Texture{Handle: 7, Type: ovr.TextureOpenGL, ColorSpace: ovr.ColorSpaceGamma}
	bounds := &ovr.TextureBounds{UMin: 0, VMin: 0, UMax: 0.5, VMax: 1}
	require.NoError(t, comp.Submit(ovr.EyeLeft, tex, bounds, ovr.SubmitDefault))
	require.Len(t, rt.Comp.Submissions, 1)
	assert.Equal(t, ovr.EyeLeft, rt.Comp.Submissions[0].Eye)
	assert.Equal(t, tex, rt.Comp.Submissions[0].Texture)

	rt.Comp.SubmitCode = ovr.CompositorErrorDoNotHaveFocus
	err := comp.Submit(ovr.EyeRight, tex, nil, ovr.SubmitDefault)
	assert.ErrorIs(t, err, ovr.CompositorErrorDoNotHaveFocus)
}

func TestWaitGetPoses(t *testing.T) {
	ctx, rt := session(t)
	rt.Comp.RenderPoses = []ovr.TrackedDevicePose{{PoseIsValid: true}}
	render := make([]ovr.TrackedDevicePose, ovr.MaxTrackedDeviceCount)
	require.NoError(t, ctx.Compositor().WaitGetPoses(render, nil))
	assert.True(t, render[0].PoseIsValid)

	rt.Comp.PosesCode = ovr.CompositorErrorIsNotSceneApplication
	assert.ErrorIs(t, ctx.Compositor().LastPoses(render, nil), ovr.CompositorErrorIsNotSceneApplication)
}

func TestVulkanExtensions(t *testing.T) {
	ctx, rt := session(t)
	comp := ctx.Compositor()
	assert.Nil(t, comp.VulkanInstanceExtensionsRequired())

	rt.Comp.InstanceExtensions = "VK_KHR_external_memory_capabilities  VK_KHR_get_physical_device_properties2"
	assert.Equal(t, []string{
		"VK_KHR_external_memory_capabilities",
		"VK_KHR_get_physical_device_properties2",
	}, comp.VulkanInstanceExtensionsRequired())

	rt.Comp.DeviceExtensions = map[uint64]string{42: "VK_KHR_external_memory"}
	assert.Equal(t, []string{"VK_KHR_external_memory"}, comp.VulkanDeviceExtensionsRequired(42))
	assert.Nil(t, comp.VulkanDeviceExtensionsRequired(1))
}

func TestCompositorPassThrough(t *testing.T) {
	ctx, rt := session(t)
	rt.Comp.Space = ovr.TrackingUniverseSeated
	rt.Comp.FocusProcess = 1234
	rt.Comp.FocusAppLoading = true
	comp := ctx.Compositor()
	assert.Equal(t, ovr.TrackingUniverseSeated, comp.TrackingSpace())
	assert.Equal(t, uint32(1234), comp.CurrentSceneFocusProcess())
	assert.True(t, comp.IsCurrentSceneFocusAppLoading())
}
