package renderer

import (
	"errors"
	"strings"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// Only specific power-of-two values are valid for GPU hardware. WebGPU guarantees support for
// 1 (off) and 4; higher values (8, 16) are adapter-dependent and may not be available.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4

	// MSAA8x enables 8× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA8x MSAASampleCount = 8

	// MSAA16x enables 16× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA16x MSAASampleCount = 16
)

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}

// SurfaceErrorKind is the recovery class of an error returned while acquiring the surface texture.
type SurfaceErrorKind int

const (
	// SurfaceErrorNone means there was no error.
	SurfaceErrorNone SurfaceErrorKind = iota

	// SurfaceErrorOutdated covers outdated, lost and timed out surfaces. The frame is dropped
	// and the surface reconfigured with the current framebuffer size.
	SurfaceErrorOutdated

	// SurfaceErrorFatal covers out of memory and device loss. Rendering cannot continue.
	SurfaceErrorFatal

	// SurfaceErrorOther is any other error. The frame is skipped.
	SurfaceErrorOther
)

func (k SurfaceErrorKind) String() string {
	switch k {
	case SurfaceErrorNone:
		return "none"
	case SurfaceErrorOutdated:
		return "outdated"
	case SurfaceErrorFatal:
		return "fatal"
	default:
		return "other"
	}
}

// ErrSurfaceOutdated is returned by BeginFrame when the surface no longer matches the window's
// framebuffer or no surface texture could be acquired. The surface has already been reconfigured
// when the size changed; the frame is dropped.
var ErrSurfaceOutdated = errors.New("surface outdated")

var (
	fatalSurfaceStatuses    = []string{"outofmemory", "devicelost"}
	outdatedSurfaceStatuses = []string{"outdated", "lost", "timeout"}
)

// ClassifySurfaceError maps an error from BeginFrame to the way the frame loop should recover.
// ErrSurfaceOutdated is matched with errors.Is. Other errors from the wgpu bindings carry no
// typed status, so they fall back to matching the status name in the error text with case,
// spaces and underscores ignored.
//
// Parameters:
//   - err: the error returned by BeginFrame
//
// Returns:
//   - SurfaceErrorKind: the recovery class of err
func ClassifySurfaceError(err error) SurfaceErrorKind {
	if err == nil {
		return SurfaceErrorNone
	}
	if errors.Is(err, ErrSurfaceOutdated) {
		return SurfaceErrorOutdated
	}

	msg := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(err.Error()))

	// "devicelost" contains "lost", so fatal statuses are matched first.
	for _, status := range fatalSurfaceStatuses {
		if strings.Contains(msg, status) {
			return SurfaceErrorFatal
		}
	}
	for _, status := range outdatedSurfaceStatuses {
		if strings.Contains(msg, status) {
			return SurfaceErrorOutdated
		}
	}
	return SurfaceErrorOther
}

// ParsePresentMode maps a config value to a PresentMode. Unknown values select VSync.
//
// Parameters:
//   - s: "vsync" or "uncapped", case-insensitive
//
// Returns:
//   - PresentMode: the matching present mode
func ParsePresentMode(s string) PresentMode {
	if strings.EqualFold(s, "uncapped") {
		return PresentModeUncapped
	}
	return PresentModeVSync
}
