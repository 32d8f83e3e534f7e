package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// Backend is the GPU side of the present loop: a configurable surface
// handing out presentable frames, and a queue to submit work to.
type Backend interface {
	SurfaceCapabilities() wgpu.SurfaceCapabilities

	// ConfigureSurface applies the configuration to the surface.
	// This call blocks until the surface is reconfigured.
	ConfigureSurface(config *wgpu.SurfaceConfiguration)

	// AcquireFrame returns the next presentable image. Failures
	// are reported as *SurfaceError.
	AcquireFrame() (Frame, error)

	// Submit takes ownership of buf.
	Submit(buf *wgpu.CommandBuffer)
}

// Frame is a presentable image that is only valid for a single frame.
// A Frame must either be presented or released, never both.
type Frame interface {
	// EncodeClear records a single render pass clearing the frame
	// to the given color and returns the finished command buffer.
	EncodeClear(color Color) (*wgpu.CommandBuffer, error)

	Present()
	Release()
}
