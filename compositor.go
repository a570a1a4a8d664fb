package ovr

import "strings"

type Eye uint32

const (
	EyeLeft Eye = iota
	EyeRight
)

type TextureType int32

const (
	TextureInvalid          TextureType = -1
	TextureDirectX          TextureType = 0
	TextureOpenGL           TextureType = 1
	TextureVulkan           TextureType = 2
	TextureIOSurface        TextureType = 3
	TextureDirectX12        TextureType = 4
	TextureDXGISharedHandle TextureType = 5
	TextureMetal            TextureType = 6
)

type ColorSpace uint32

const (
	ColorSpaceAuto ColorSpace = iota
	ColorSpaceGamma
	ColorSpaceLinear
)

// Texture names a caller-owned image. Handle is API specific (a GL name,
// a pointer to a Vulkan texture data block, and so on).
type Texture struct {
	Handle     uintptr
	Type       TextureType
	ColorSpace ColorSpace
}

// TextureBounds selects a sub-rectangle in UV space.
type TextureBounds struct {
	UMin, VMin float32
	UMax, VMax float32
}

type SubmitFlags uint32

const (
	SubmitDefault                      SubmitFlags = 0x00
	SubmitLensDistortionAlreadyApplied SubmitFlags = 0x01
	SubmitGLRenderBuffer               SubmitFlags = 0x02
	SubmitTextureWithPose              SubmitFlags = 0x08
	SubmitTextureWithDepth             SubmitFlags = 0x10
	SubmitFrameDiscontinuty            SubmitFlags = 0x20
)

// extensionBufferSize bounds the Vulkan extension lists.
const extensionBufferSize = 1024

// Compositor submits frames and reports frame timing.
type Compositor struct {
	rt CompositorRuntime
}

// Submit hands one eye's image to the compositor. A nil bounds submits the
// whole texture.
func (c *Compositor) Submit(eye Eye, tex Texture, bounds *TextureBounds, flags SubmitFlags) error {
	return result(c.rt.Submit(eye, tex, bounds, flags))
}

// LastPoses fills render and game with the poses used for the last frame.
// Either slice may be empty.
func (c *Compositor) LastPoses(render, game []TrackedDevicePose) error {
	return result(c.rt.LastPoses(render, game))
}

// WaitGetPoses blocks until the compositor is ready for the next frame and
// fills the predicted poses for it.
func (c *Compositor) WaitGetPoses(render, game []TrackedDevicePose) error {
	return result(c.rt.WaitGetPoses(render, game))
}

func (c *Compositor) TrackingSpace() TrackingUniverseOrigin { return c.rt.TrackingSpace() }

func (c *Compositor) FrameTimeRemaining() float32 { return c.rt.FrameTimeRemaining() }

func (c *Compositor) CurrentSceneFocusProcess() uint32 { return c.rt.CurrentSceneFocusProcess() }

func (c *Compositor) LastFrameRenderer() uint32 { return c.rt.LastFrameRenderer() }

func (c *Compositor) IsCurrentSceneFocusAppLoading() bool {
	return c.rt.IsCurrentSceneFocusAppLoading()
}

// VulkanInstanceExtensionsRequired lists the instance extensions the
// compositor needs. It is empty when the runtime reports none.
func (c *Compositor) VulkanInstanceExtensionsRequired() []string {
	buf := make([]byte, extensionBufferSize)
	return splitExtensions(buf, c.rt.VulkanInstanceExtensionsRequired(buf))
}

// VulkanDeviceExtensionsRequired lists the device extensions the
// compositor needs for physicalDevice (a VkPhysicalDevice handle).
func (c *Compositor) VulkanDeviceExtensionsRequired(physicalDevice uint64) []string {
	buf := make([]byte, extensionBufferSize)
	return splitExtensions(buf, c.rt.VulkanDeviceExtensionsRequired(physicalDevice, buf))
}

func splitExtensions(buf []byte, n uint32) []string {
	if n == 0 {
		return nil
	}
	if int(n) < len(buf) {
		buf = buf[:n]
	}
	s := cString(buf)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
