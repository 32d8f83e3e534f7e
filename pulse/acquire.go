//go:build !js

package pulse

/*
#include <stdint.h>

typedef struct pulseSurfaceTexture {
	void *nextInChain;
	void *texture;
	uint32_t status;
} pulseSurfaceTexture;

// provided by the wgpu-native library linked in by the wgpu package
void wgpuSurfaceGetCurrentTexture(void *surface, pulseSurfaceTexture *surfaceTexture);
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// wgpu.Surface.GetCurrentTexture drops the status reported by wgpu-native and
// hands out a texture wrapping NULL for a lost or outdated surface. We read the
// status ourselves, which needs access to the handles wrapped by the binding.

// surfaceLayout mirrors the memory layout of wgpu.Surface.
type surfaceLayout struct {
	device   *wgpu.Device
	ref      unsafe.Pointer
	released int32
}

// textureLayout mirrors the memory layout of wgpu.Texture.
type textureLayout struct {
	device   *wgpu.Device
	ref      unsafe.Pointer
	released int32
}

func checkHandleLayouts() error {
	if unsafe.Sizeof(wgpu.Surface{}) != unsafe.Sizeof(surfaceLayout{}) {
		return errors.New("unexpected memory layout of wgpu.Surface")
	}

	if unsafe.Sizeof(wgpu.Texture{}) != unsafe.Sizeof(textureLayout{}) {
		return errors.New("unexpected memory layout of wgpu.Texture")
	}

	return nil
}

func init() {
	if err := checkHandleLayouts(); err != nil {
		panic(err)
	}
}

// acquireSurfaceTexture fetches the current texture of the surface together with
// the status wgpu-native reported for it. The texture is nil if none was returned.
func acquireSurfaceTexture(surface *wgpu.Surface) (*wgpu.Texture, wgpu.SurfaceGetCurrentTextureStatus, error) {
	raw := (*surfaceLayout)(unsafe.Pointer(surface))
	if raw.device == nil {
		return nil, 0, errors.New("surface not configured")
	}

	var st C.pulseSurfaceTexture
	C.wgpuSurfaceGetCurrentTexture(raw.ref, &st)

	status := wgpu.SurfaceGetCurrentTextureStatus(st.status)
	if st.texture == nil {
		return nil, status, nil
	}

	texture := &wgpu.Texture{}
	*(*textureLayout)(unsafe.Pointer(texture)) = textureLayout{
		device: raw.device,
		ref:    st.texture,
	}

	return texture, status, nil
}

// CheckAcquired maps the status of a GetCurrentTexture call onto a *SurfaceError.
// It returns nil only for a successful status that came with a texture. A success
// status without a texture is treated as a lost surface.
func CheckAcquired(status wgpu.SurfaceGetCurrentTextureStatus, acquired bool) *SurfaceError {
	var surfaceStatus SurfaceStatus

	switch status {
	case wgpu.SurfaceGetCurrentTextureStatusSuccessOptimal, wgpu.SurfaceGetCurrentTextureStatusSuccessSuboptimal:
		if acquired {
			return nil
		}

		surfaceStatus = SurfaceStatusLost

	case wgpu.SurfaceGetCurrentTextureStatusTimeout:
		surfaceStatus = SurfaceStatusTimeout

	case wgpu.SurfaceGetCurrentTextureStatusOutdated:
		surfaceStatus = SurfaceStatusOutdated

	case wgpu.SurfaceGetCurrentTextureStatusLost:
		surfaceStatus = SurfaceStatusLost

	case wgpu.SurfaceGetCurrentTextureStatusOutOfMemory:
		surfaceStatus = SurfaceStatusOutOfMemory

	// a lost device can not be fixed by reconfiguring the surface
	default:
		surfaceStatus = SurfaceStatusOther
	}

	return &SurfaceError{
		Status: surfaceStatus,
		Err:    fmt.Errorf("get current texture: status %d %s", uint32(status), status),
	}
}
