package orion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/present/glimpse"
	"github.com/oliverbestmann/present/pulse"
)

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Color to clear every frame to, defaults to pulse.DefaultClearColor
	ClearColor *pulse.Color

	// Acquiring a surface texture taking longer than this is logged.
	// Defaults to pulse.DefaultSlowAcquireThreshold
	SlowAcquireThreshold time.Duration

	// pkg/profile mode to run with, see glimpse.WindowOptions
	Profile string

	Logger *slog.Logger
}

func (opts RunOptions) withDefaults() RunOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 800
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "present"
	}

	if opts.SlowAcquireThreshold == 0 {
		opts.SlowAcquireThreshold = pulse.DefaultSlowAcquireThreshold
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return opts
}

// Run opens a window and presents frames until the window is closed.
// Any error returned happened during startup.
func Run(opts RunOptions) error {
	opts = opts.withDefaults()

	// create a new window
	win, err := glimpse.NewWindow(glimpse.WindowOptions{
		Width:   opts.WindowWidth,
		Height:  opts.WindowHeight,
		Title:   opts.WindowTitle,
		Profile: opts.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	loop, err := NewLoop(win, ctx, opts)
	if err != nil {
		return err
	}

	return loop.Run()
}

// NewLoop configures the surface of backend to the current size
// of the window and builds a Loop presenting to it.
func NewLoop(win glimpse.Window, backend pulse.Backend, opts RunOptions) (*Loop, error) {
	opts = opts.withDefaults()

	width, height := win.GetSize()

	view, err := pulse.NewView(backend, width, height, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("create view: %w", err)
	}

	presenter := pulse.NewPresenter(backend, pulse.PresenterOptions{
		ClearColor:           opts.ClearColor,
		SlowAcquireThreshold: opts.SlowAcquireThreshold,
		Logger:               opts.Logger,
	})

	loop := &Loop{
		Window:    win,
		View:      view,
		Presenter: presenter,
		Logger:    opts.Logger,
	}

	return loop, nil
}
