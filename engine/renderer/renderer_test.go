package renderer

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/lumen/engine/window"
)

func TestClassifySurfaceError(t *testing.T) {
	cases := []struct {
		err  error
		want SurfaceErrorKind
	}{
		{nil, SurfaceErrorNone},
		{ErrSurfaceOutdated, SurfaceErrorOutdated},
		{fmt.Errorf("begin frame: %w", ErrSurfaceOutdated), SurfaceErrorOutdated},
		{errors.New("Outdated"), SurfaceErrorOutdated},
		{errors.New("Lost"), SurfaceErrorOutdated},
		{errors.New("Timeout"), SurfaceErrorOutdated},
		{errors.New("surface texture status: outdated"), SurfaceErrorOutdated},
		{errors.New("OutOfMemory"), SurfaceErrorFatal},
		{errors.New("out of memory"), SurfaceErrorFatal},
		{errors.New("DeviceLost"), SurfaceErrorFatal},
		{errors.New("device_lost"), SurfaceErrorFatal},
		{fmt.Errorf("begin frame: %w", errors.New("Timeout")), SurfaceErrorOutdated},
		{errors.New("previous frame surface not yet presented"), SurfaceErrorOther},
		{errors.New("validation error"), SurfaceErrorOther},
	}

	for _, tc := range cases {
		if got := ClassifySurfaceError(tc.err); got != tc.want {
			t.Errorf("ClassifySurfaceError(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestParsePresentMode(t *testing.T) {
	if ParsePresentMode("Uncapped") != PresentModeUncapped {
		t.Error("uncapped not parsed")
	}
	for _, s := range []string{"vsync", "", "triple"} {
		if ParsePresentMode(s) != PresentModeVSync {
			t.Errorf("ParsePresentMode(%q) should default to vsync", s)
		}
	}
}

type fakeBackend struct {
	RendererBackend

	width, height int
	configured    [][2]int
	begun         int
}

func (b *fakeBackend) ConfigureSurface(width, height int) {
	b.configured = append(b.configured, [2]int{width, height})
	if width > 0 && height > 0 {
		b.width, b.height = width, height
	}
}

func (b *fakeBackend) SurfaceSize() (int, int) { return b.width, b.height }

func (b *fakeBackend) BeginFrame() error {
	b.begun++
	return nil
}

type sizedWindow struct {
	window.Window
	width, height int
}

func (w *sizedWindow) Width() int { return w.width }

func (w *sizedWindow) Height() int { return w.height }

func newTestRenderer(win *sizedWindow, backend *fakeBackend) *renderer {
	return &renderer{mu: &sync.Mutex{}, backend: backend, win: win}
}

func TestBeginFrameReconfiguresStaleSurface(t *testing.T) {
	win := &sizedWindow{width: 800, height: 600}
	backend := &fakeBackend{width: 800, height: 600}
	r := newTestRenderer(win, backend)

	if err := r.BeginFrame(); err != nil {
		t.Fatalf("matching sizes should begin a frame, got %v", err)
	}

	win.width, win.height = 1024, 768
	err := r.BeginFrame()
	if !errors.Is(err, ErrSurfaceOutdated) {
		t.Fatalf("expected ErrSurfaceOutdated, got %v", err)
	}
	if ClassifySurfaceError(err) != SurfaceErrorOutdated {
		t.Errorf("stale surface classified as %s", ClassifySurfaceError(err))
	}
	if len(backend.configured) != 1 || backend.configured[0] != [2]int{1024, 768} {
		t.Errorf("configured = %v, want one reconfigure to 1024x768", backend.configured)
	}
	if backend.begun != 1 {
		t.Errorf("a stale frame must not acquire a texture, begun = %d", backend.begun)
	}

	if err := r.BeginFrame(); err != nil {
		t.Fatalf("frame after reconfigure failed: %v", err)
	}
	if backend.begun != 2 {
		t.Errorf("begun = %d, want 2", backend.begun)
	}
}

func TestBeginFrameDropsFramesWhileMinimized(t *testing.T) {
	win := &sizedWindow{}
	backend := &fakeBackend{width: 800, height: 600}
	r := newTestRenderer(win, backend)

	for range 3 {
		if err := r.BeginFrame(); !errors.Is(err, ErrSurfaceOutdated) {
			t.Fatalf("expected ErrSurfaceOutdated for a zero-size window, got %v", err)
		}
	}
	if backend.begun != 0 {
		t.Errorf("begun = %d while minimized, want 0", backend.begun)
	}
	if w, h := backend.SurfaceSize(); w != 800 || h != 600 {
		t.Errorf("surface size changed to %dx%d while minimized", w, h)
	}
}
