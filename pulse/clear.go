package pulse

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// surfaceFrame is a Frame backed by the current texture of a wgpu.Surface.
type surfaceFrame struct {
	ctx     *Context
	texture *wgpu.Texture
}

func (f *surfaceFrame) EncodeClear(color Color) (*wgpu.CommandBuffer, error) {
	view, err := f.texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create view: %w", err)
	}

	defer view.Release()

	enc, err := f.ctx.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Render Encoder",
	})

	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	// a single color attachment, no depth/stencil, no queries.
	// The pass only exists to clear the attachment.
	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Render Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: color.ToWGPU(),
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	if err := pass.End(); err != nil {
		return nil, fmt.Errorf("end render pass: %w", err)
	}

	passGuard.Release()

	// encode into a command buffer
	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "Render Encoder"})
	if err != nil {
		return nil, fmt.Errorf("finish command encoder: %w", err)
	}

	return buf, nil
}

func (f *surfaceFrame) Present() {
	f.ctx.Surface.Present()

	// a presented texture is owned by the surface again
	f.texture = nil
}

func (f *surfaceFrame) Release() {
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

type Releaser interface {
	Release()
}

type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
