package orion

import (
	"errors"
	"log/slog"

	"github.com/oliverbestmann/present/glimpse"
	"github.com/oliverbestmann/present/pulse"
)

//go:generate go tool stringer -type=LoopState

type LoopState int

const (
	Running LoopState = iota
	Exit
)

// Loop dispatches window events to the View and presents a frame
// whenever no more events are pending.
type Loop struct {
	Window    glimpse.Window
	View      *pulse.View
	Presenter *pulse.Presenter
	Logger    *slog.Logger

	state     LoopState
	stats     FrameStats
	errCounts *surfaceErrors
}

func (l *Loop) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}

	return l.Logger
}

func (l *Loop) State() LoopState {
	return l.state
}

// Run polls the window until the loop reaches the Exit state.
func (l *Loop) Run() error {
	for l.state == Running {
		for _, event := range l.Window.PollEvents() {
			if l.HandleEvent(event) == Exit {
				return nil
			}
		}

		l.Tick()
	}

	return nil
}

// HandleEvent reacts to a single window event. Events of other windows are ignored.
func (l *Loop) HandleEvent(event glimpse.Event) LoopState {
	if l.state == Exit || event.WindowID() != l.Window.ID() {
		return l.state
	}

	switch event := event.(type) {
	case glimpse.CloseRequested:
		l.logger().Info("Close requested")
		l.state = Exit

	case glimpse.Resized:
		l.View.Configure(event.Width, event.Height)
	}

	return l.state
}

// Tick presents a single frame and handles surface errors.
func (l *Loop) Tick() LoopState {
	if l.state == Exit {
		return l.state
	}

	err := l.Presenter.Present()
	if err == nil {
		if l.stats.Frame() {
			l.logger().Debug("Frame statistics",
				slog.Uint64("frames", l.stats.Frames),
				slog.Float64("fps", l.stats.FPS()),
				slog.Duration("maxFrameTime", l.stats.Max()),
			)
		}

		return l.state
	}

	var surfaceErr *pulse.SurfaceError
	if !errors.As(err, &surfaceErr) {
		l.recordError("Frame dropped", err)
		return l.state
	}

	switch surfaceErr.Status {
	case pulse.SurfaceStatusLost, pulse.SurfaceStatusOutdated:
		l.logger().Debug("Reconfigure surface", slog.String("status", surfaceErr.Status.String()))
		l.View.Configure(l.Window.GetSize())

	case pulse.SurfaceStatusOutOfMemory:
		l.logger().Error("Surface out of memory, exiting", slog.String("error", err.Error()))
		l.state = Exit

	case pulse.SurfaceStatusTimeout, pulse.SurfaceStatusOther:
		l.recordError("Surface error", err)
	}

	return l.state
}

func (l *Loop) recordError(msg string, err error) {
	if l.errCounts == nil {
		l.errCounts = newSurfaceErrors()
	}

	count := l.errCounts.Record(err)

	l.logger().Error(msg,
		slog.String("error", err.Error()),
		slog.Int("count", count),
	)
}
