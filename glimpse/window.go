package glimpse

import (
	"github.com/oliverbestmann/webgpu/wgpu"
	"golang.org/x/exp/constraints"
)

type Window interface {
	ID() WindowID

	// GetSize returns the physical size of the window in pixels
	GetSize() (uint32, uint32)

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// PollEvents processes pending window system events without
	// blocking and returns them in the order they occurred.
	PollEvents() []Event

	Terminate()
}

// WindowID identifies the window an Event belongs to.
type WindowID uint64

// Event is either CloseRequested or Resized.
type Event interface {
	WindowID() WindowID
}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct {
	Window WindowID
}

func (e CloseRequested) WindowID() WindowID {
	return e.Window
}

// Resized is sent when the physical size of the window changes. Width
// or Height are zero while the window is minimized.
type Resized struct {
	Window        WindowID
	Width, Height uint32
}

func (e Resized) WindowID() WindowID {
	return e.Window
}

// PhysicalSize converts a size as reported by the window system to
// unsigned pixels. Negative values are clamped to zero.
func PhysicalSize[T constraints.Integer](width, height T) (uint32, uint32) {
	return uint32(max(width, 0)), uint32(max(height, 0))
}
