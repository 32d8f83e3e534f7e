package pulse

import "errors"

//go:generate go tool stringer -type=SurfaceStatus -trimprefix=SurfaceStatus

// SurfaceStatus classifies why a presentable image could not be acquired.
type SurfaceStatus int

const (
	SurfaceStatusOther SurfaceStatus = iota
	SurfaceStatusTimeout
	SurfaceStatusOutdated
	SurfaceStatusLost
	SurfaceStatusOutOfMemory
)

var ErrNoSurfaceFormat = errors.New("surface supports no texture format")
var ErrNoAlphaMode = errors.New("surface supports no alpha mode")

// SurfaceError is returned by Backend.AcquireFrame.
type SurfaceError struct {
	Status SurfaceStatus
	Err    error
}

func (e *SurfaceError) Error() string {
	return "surface " + e.Status.String() + ": " + e.Err.Error()
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// Recoverable reports whether reconfiguring the surface fixes the error.
func (e *SurfaceError) Recoverable() bool {
	return e.Status == SurfaceStatusLost || e.Status == SurfaceStatusOutdated
}

// SurfaceStatusOf returns the status of a *SurfaceError within err's chain,
// or SurfaceStatusOther for any other error.
func SurfaceStatusOf(err error) SurfaceStatus {
	var surfaceErr *SurfaceError
	if errors.As(err, &surfaceErr) {
		return surfaceErr.Status
	}

	return SurfaceStatusOther
}
