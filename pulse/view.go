package pulse

import (
	"log/slog"
	"slices"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// View owns the configuration of the presentation surface. The configuration
// is created once and then only ever updated in place by Configure.
type View struct {
	backend Backend
	logger  *slog.Logger

	surfaceConfig *wgpu.SurfaceConfiguration
}

// NewView picks a configuration matching the surface capabilities and
// applies it to the surface right away.
func NewView(backend Backend, width, height uint32, logger *slog.Logger) (*View, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// the surface must never be configured with a zero dimension
	width, height = max(width, 1), max(height, 1)

	caps := backend.SurfaceCapabilities()
	logger.Debug("Available surface formats", slog.Any("formats", caps.Formats))

	config, err := NewSurfaceConfiguration(caps, width, height)
	if err != nil {
		return nil, err
	}

	logger.Info("Configure surface",
		slog.Any("format", config.Format),
		slog.Int("width", int(config.Width)),
		slog.Int("height", int(config.Height)),
	)

	backend.ConfigureSurface(config)

	st := &View{
		backend:       backend,
		logger:        logger,
		surfaceConfig: config,
	}

	return st, nil
}

// NewSurfaceConfiguration builds the initial surface configuration. It prefers the
// first sRGB format and falls back to the first supported format otherwise.
func NewSurfaceConfiguration(caps wgpu.SurfaceCapabilities, width, height uint32) (*wgpu.SurfaceConfiguration, error) {
	if len(caps.Formats) == 0 {
		return nil, ErrNoSurfaceFormat
	}

	if len(caps.AlphaModes) == 0 {
		return nil, ErrNoAlphaMode
	}

	format := caps.Formats[0]
	if idx := slices.IndexFunc(caps.Formats, IsSRGB); idx >= 0 {
		format = caps.Formats[idx]
	}

	config := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       width,
		Height:      height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],

		DesiredMaximumFrameLatency: 2,
	}

	return config, nil
}

// IsSRGB reports whether the format stores color values sRGB encoded.
func IsSRGB(format wgpu.TextureFormat) bool {
	switch format {
	// surfaces only ever expose the 8 bit color formats
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}

	return false
}

// Config returns a copy of the current surface configuration.
func (vs *View) Config() wgpu.SurfaceConfiguration {
	return *vs.surfaceConfig
}

// Configure resizes the surface. A zero width or height, as reported
// for minimized windows, leaves the configuration untouched and returns false.
func (vs *View) Configure(width, height uint32) bool {
	if width == 0 || height == 0 {
		return false
	}

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.backend.ConfigureSurface(vs.surfaceConfig)

	vs.logger.Info("Resized",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	return true
}
