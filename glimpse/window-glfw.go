package glimpse

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/pkg/profile"
)

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()
}

var nextWindowID atomic.Uint64

type WindowOptions struct {
	Width, Height int
	Title         string

	// Profile selects a pkg/profile mode ("cpu", "mem", "block", "trace")
	// that runs for the lifetime of the window. Empty disables profiling.
	Profile string
}

type glfwWindow struct {
	id   WindowID
	win  *glfw.Window
	prof interface{ Stop() }

	// events recorded by the callbacks during glfw.PollEvents
	pending []Event
}

func NewWindow(opts WindowOptions) (Window, error) {
	// only validated here, profiling starts once the window exists
	profileMode, err := profileOption(opts.Profile)
	if err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// we render using webgpu, glfw must not create a context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{
		id:  WindowID(nextWindowID.Add(1)),
		win: window,
	}

	if profileMode != nil {
		slog.Info("Start profiling", slog.String("mode", opts.Profile))
		w.prof = profile.Start(profileMode, profile.NoShutdownHook, profile.Quiet)
	}

	w.configureCallbacks()

	return w, nil
}

func (g *glfwWindow) ID() WindowID {
	return g.id
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return PhysicalSize(width, height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) PollEvents() []Event {
	g.pending = g.pending[:0]
	glfw.PollEvents()
	return g.pending
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) configureCallbacks() {
	g.win.SetCloseCallback(func(win *glfw.Window) {
		// the loop decides when to close, not glfw
		win.SetShouldClose(false)

		g.pending = append(g.pending, CloseRequested{Window: g.id})
	})

	g.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		w, h := PhysicalSize(width, height)
		g.pending = append(g.pending, Resized{Window: g.id, Width: w, Height: h})
	})
}

func profileOption(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "block":
		return profile.BlockProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}
