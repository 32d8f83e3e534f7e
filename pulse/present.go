package pulse

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// LevelTrace is used for log entries written once per frame.
const LevelTrace = slog.LevelDebug - 4

// DefaultSlowAcquireThreshold is the time after which acquiring the next
// surface texture is reported as slow.
const DefaultSlowAcquireThreshold = 500 * time.Millisecond

type PresenterOptions struct {
	// Color the surface is cleared to, defaults to DefaultClearColor
	ClearColor *Color

	// Acquiring a frame taking longer than this is logged as a warning.
	// Defaults to DefaultSlowAcquireThreshold.
	SlowAcquireThreshold time.Duration

	Logger *slog.Logger

	// used to measure acquisition time, defaults to time.Now
	Now func() time.Time
}

// Presenter clears the next presentable image of a Backend and presents it.
type Presenter struct {
	backend Backend

	clearColor    Color
	slowThreshold time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

func NewPresenter(backend Backend, opts PresenterOptions) *Presenter {
	p := &Presenter{
		backend:       backend,
		clearColor:    DefaultClearColor,
		slowThreshold: opts.SlowAcquireThreshold,
		logger:        opts.Logger,
		now:           opts.Now,
	}

	if opts.ClearColor != nil {
		p.clearColor = *opts.ClearColor
	}

	if p.slowThreshold <= 0 {
		p.slowThreshold = DefaultSlowAcquireThreshold
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	if p.now == nil {
		p.now = time.Now
	}

	return p
}

// Present renders and presents a single frame. Acquisition failures are
// returned as *SurfaceError, nothing is submitted in that case.
func (p *Presenter) Present() error {
	timeStart := p.now()

	frame, err := p.backend.AcquireFrame()

	if elapsed := p.now().Sub(timeStart); elapsed > p.slowThreshold {
		p.logger.Warn("Get current texture was slow",
			slog.Int64("elapsedMs", elapsed.Milliseconds()),
		)
	}

	if err != nil {
		return err
	}

	// drop the frame unless it gets presented
	frameGuard := NewReleaseGuard(frame)
	defer frameGuard.Release()

	buf, err := frame.EncodeClear(p.clearColor)
	if err != nil {
		return fmt.Errorf("encode clear pass: %w", err)
	}

	p.backend.Submit(buf)

	p.logger.Log(context.Background(), LevelTrace, "Present")
	frame.Present()

	frameGuard.Keep()

	return nil
}
