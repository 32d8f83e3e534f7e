package pulse

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Queue, Surface and active Adapter.
// It is the wgpu implementation of Backend.
type Context struct {
	Device  *wgpu.Device
	Queue   *wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

var _ Backend = (*Context)(nil)

func New(sd *wgpu.SurfaceDescriptor) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(sd)

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("request adapter: %w", err)
	}

	// get a Device with the default settings
	st.Device, err = st.Adapter.RequestDevice(nil)
	if err != nil {
		return st, fmt.Errorf("request device: %w", err)
	}

	st.Queue = st.Device.GetQueue()

	slog.Info("GPU context ready", slog.Bool("fallbackAdapter", forceFallbackAdapter))

	return st, nil
}

func (d *Context) SurfaceCapabilities() wgpu.SurfaceCapabilities {
	return d.Surface.GetCapabilities(d.Adapter)
}

func (d *Context) ConfigureSurface(config *wgpu.SurfaceConfiguration) {
	d.Surface.Configure(d.Device, config)
}

func (d *Context) AcquireFrame() (Frame, error) {
	texture, status, err := acquireSurfaceTexture(d.Surface)
	if err != nil {
		return nil, &SurfaceError{Status: SurfaceStatusOther, Err: err}
	}

	if surfaceErr := CheckAcquired(status, texture != nil); surfaceErr != nil {
		if texture != nil {
			texture.Release()
		}

		return nil, surfaceErr
	}

	return &surfaceFrame{ctx: d, texture: texture}, nil
}

// Submit enqueues the command buffer and releases it afterwards.
func (d *Context) Submit(buf *wgpu.CommandBuffer) {
	defer buf.Release()
	d.Queue.Submit(buf)
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
