// Package pulsetest provides in-memory implementations of pulse.Backend
// and pulse.Frame for tests. No GPU is needed.
package pulsetest

import (
	"errors"

	"github.com/oliverbestmann/present/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Backend records every call made to it. AcquireFrame pops the next
// entry of Acquire, a nil entry (or an empty queue) yields a new Frame.
type Backend struct {
	Caps wgpu.SurfaceCapabilities

	// scripted results of AcquireFrame
	Acquire []error

	// copies of every configuration applied
	Configured []wgpu.SurfaceConfiguration

	// every frame handed out by AcquireFrame
	Frames []*Frame

	Submitted int

	// Calls lists the frame and submit calls in the order they happened
	Calls []string

	// EncodeErr is returned by EncodeClear of every frame
	EncodeErr error
}

var _ pulse.Backend = (*Backend)(nil)

// NewBackend returns a Backend supporting BGRA8 formats and opaque alpha.
func NewBackend() *Backend {
	return &Backend{
		Caps: wgpu.SurfaceCapabilities{
			Formats: []wgpu.TextureFormat{
				wgpu.TextureFormatBGRA8Unorm,
				wgpu.TextureFormatBGRA8UnormSrgb,
			},
			AlphaModes: []wgpu.CompositeAlphaMode{
				wgpu.CompositeAlphaModeOpaque,
			},
			PresentModes: []wgpu.PresentMode{
				wgpu.PresentModeFifo,
			},
		},
	}
}

// StatusError builds the acquisition error Context.AcquireFrame reports for
// a status returned by wgpu without a texture.
func StatusError(status wgpu.SurfaceGetCurrentTextureStatus) error {
	return pulse.CheckAcquired(status, false)
}

// SurfaceError builds an acquisition error with the given status.
func SurfaceError(status pulse.SurfaceStatus) error {
	return &pulse.SurfaceError{
		Status: status,
		Err:    errors.New("fake " + status.String()),
	}
}

func (b *Backend) SurfaceCapabilities() wgpu.SurfaceCapabilities {
	return b.Caps
}

func (b *Backend) ConfigureSurface(config *wgpu.SurfaceConfiguration) {
	b.Configured = append(b.Configured, *config)
}

func (b *Backend) AcquireFrame() (pulse.Frame, error) {
	if len(b.Acquire) > 0 {
		err := b.Acquire[0]
		b.Acquire = b.Acquire[1:]

		if err != nil {
			return nil, err
		}
	}

	frame := &Frame{backend: b, encodeErr: b.EncodeErr}
	b.Frames = append(b.Frames, frame)
	return frame, nil
}

func (b *Backend) Submit(buf *wgpu.CommandBuffer) {
	b.Submitted++
	b.Calls = append(b.Calls, "submit")
}

// Presented counts the frames that were presented.
func (b *Backend) Presented() int {
	var count int
	for _, frame := range b.Frames {
		count += frame.Presented
	}

	return count
}

// Frame records what happened to a single acquired image.
type Frame struct {
	Cleared   []pulse.Color
	Presented int
	Released  int

	backend   *Backend
	encodeErr error
}

func (f *Frame) EncodeClear(color pulse.Color) (*wgpu.CommandBuffer, error) {
	f.backend.Calls = append(f.backend.Calls, "encode")

	if f.encodeErr != nil {
		return nil, f.encodeErr
	}

	f.Cleared = append(f.Cleared, color)
	return nil, nil
}

func (f *Frame) Present() {
	f.Presented++
	f.backend.Calls = append(f.backend.Calls, "present")
}

func (f *Frame) Release() {
	f.Released++
	f.backend.Calls = append(f.backend.Calls, "release")
}
