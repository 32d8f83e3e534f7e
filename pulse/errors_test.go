package pulse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestCheckAcquired(t *testing.T) {
	cases := []struct {
		status   wgpu.SurfaceGetCurrentTextureStatus
		acquired bool
		expected SurfaceStatus
	}{
		{wgpu.SurfaceGetCurrentTextureStatusSuccessOptimal, false, SurfaceStatusLost},
		{wgpu.SurfaceGetCurrentTextureStatusSuccessSuboptimal, false, SurfaceStatusLost},
		{wgpu.SurfaceGetCurrentTextureStatusTimeout, false, SurfaceStatusTimeout},
		{wgpu.SurfaceGetCurrentTextureStatusOutdated, false, SurfaceStatusOutdated},
		{wgpu.SurfaceGetCurrentTextureStatusLost, false, SurfaceStatusLost},
		{wgpu.SurfaceGetCurrentTextureStatusOutOfMemory, false, SurfaceStatusOutOfMemory},
		{wgpu.SurfaceGetCurrentTextureStatusDeviceLost, false, SurfaceStatusOther},
		{wgpu.SurfaceGetCurrentTextureStatusError, false, SurfaceStatusOther},
		{wgpu.SurfaceGetCurrentTextureStatus(0), false, SurfaceStatusOther},

		// a texture returned together with a failure status is not used
		{wgpu.SurfaceGetCurrentTextureStatusOutdated, true, SurfaceStatusOutdated},
	}

	for _, tc := range cases {
		err := CheckAcquired(tc.status, tc.acquired)
		if err == nil {
			t.Errorf("%d (acquired=%v): expected error", tc.status, tc.acquired)
			continue
		}

		if err.Status != tc.expected {
			t.Errorf("%d (acquired=%v): expected %s, got %s", tc.status, tc.acquired, tc.expected, err.Status)
		}
	}
}

func TestCheckAcquiredSuccess(t *testing.T) {
	for _, status := range []wgpu.SurfaceGetCurrentTextureStatus{
		wgpu.SurfaceGetCurrentTextureStatusSuccessOptimal,
		wgpu.SurfaceGetCurrentTextureStatusSuccessSuboptimal,
	} {
		if err := CheckAcquired(status, true); err != nil {
			t.Errorf("%s: expected no error, got %s", status, err)
		}
	}
}

func TestHandleLayouts(t *testing.T) {
	if err := checkHandleLayouts(); err != nil {
		t.Fatal(err)
	}
}

func TestSurfaceStatusOf(t *testing.T) {
	lost := CheckAcquired(wgpu.SurfaceGetCurrentTextureStatusLost, false)

	if status := SurfaceStatusOf(fmt.Errorf("acquire: %w", lost)); status != SurfaceStatusLost {
		t.Errorf("expected wrapped status to be found, got %s", status)
	}

	if status := SurfaceStatusOf(errors.New("lost")); status != SurfaceStatusOther {
		t.Errorf("plain errors are not classified, got %s", status)
	}

	if !lost.Recoverable() {
		t.Errorf("lost surface must be recoverable")
	}

	if !errors.Is(lost, lost.Err) {
		t.Errorf("SurfaceError must unwrap to its cause")
	}
}

func TestSurfaceStatusString(t *testing.T) {
	if SurfaceStatusOutOfMemory.String() != "OutOfMemory" {
		t.Errorf("unexpected name %q", SurfaceStatusOutOfMemory.String())
	}

	if SurfaceStatus(42).String() != "SurfaceStatus(42)" {
		t.Errorf("unexpected name %q", SurfaceStatus(42).String())
	}
}
