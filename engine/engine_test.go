package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/Carmen-Shannon/lumen/engine/config"
	"github.com/Carmen-Shannon/lumen/engine/renderer"
	"github.com/Carmen-Shannon/lumen/engine/scene"
	"github.com/Carmen-Shannon/lumen/engine/window"
)

// fakeWindow runs the update callback until closed or maxFrames is reached.
type fakeWindow struct {
	window.Window

	width, height int
	maxFrames     int
	frames        int
	closed        bool

	onUpdate func()
	onResize func(int, int)
	onKey    func(common.Key, common.KeyState)
	onButton func(common.MouseButton, common.KeyState)
	onMove   func(float64, float64)
	onScroll func(common.ScrollDelta)
}

func (w *fakeWindow) SetUpdateCallback(cb func()) { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(int, int)) { w.onResize = cb }
func (w *fakeWindow) SetKeyCallback(cb func(common.Key, common.KeyState)) { w.onKey = cb }
func (w *fakeWindow) SetMouseButtonCallback(cb func(common.MouseButton, common.KeyState)) {
	w.onButton = cb
}
func (w *fakeWindow) SetMouseMoveCallback(cb func(float64, float64)) { w.onMove = cb }
func (w *fakeWindow) SetScrollCallback(cb func(common.ScrollDelta)) { w.onScroll = cb }
func (w *fakeWindow) Width() int { return w.width }
func (w *fakeWindow) Height() int { return w.height }
func (w *fakeWindow) RequestClose() { w.closed = true }

func (w *fakeWindow) ProcessMessages() {
	for !w.closed && w.frames < w.maxFrames {
		w.frames++
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

type fakeScene struct {
	scene.Scene

	updates    []time.Duration
	renders    int
	renderErrs []error
	resizes    [][2]int
	tunables   []config.Tunables
	keys       []common.Key
	motion     int
}

func (s *fakeScene) Update(dt time.Duration) { s.updates = append(s.updates, dt) }

func (s *fakeScene) Render() error {
	s.renders++
	if len(s.renderErrs) == 0 {
		return nil
	}
	err := s.renderErrs[0]
	s.renderErrs = s.renderErrs[1:]
	return err
}

func (s *fakeScene) Resize(w, h int) { s.resizes = append(s.resizes, [2]int{w, h}) }

func (s *fakeScene) ApplyTunables(t config.Tunables) { s.tunables = append(s.tunables, t) }

func (s *fakeScene) ProcessKeyboard(key common.Key, _ common.KeyState) bool {
	s.keys = append(s.keys, key)
	return true
}

func (s *fakeScene) ProcessMouseButton(common.MouseButton, common.KeyState) bool { return true }

func (s *fakeScene) ProcessMouseMotion(float64, float64) bool {
	s.motion++
	return true
}

func (s *fakeScene) ProcessScroll(common.ScrollDelta) bool { return true }

func newTestEngine(frames int, s *fakeScene, options ...EngineBuilderOption) (*engine, *fakeWindow) {
	w := &fakeWindow{width: 1024, height: 768, maxFrames: frames}
	e := NewEngine(w, s, options...).(*engine)

	clock := time.Unix(0, 0)
	e.now = func() time.Time {
		clock = clock.Add(8 * time.Millisecond)
		return clock
	}
	return e, w
}

func TestRunUpdatesAndRendersEachFrame(t *testing.T) {
	s := &fakeScene{}
	e, w := newTestEngine(3, s)

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if s.renders != 3 || len(s.updates) != 3 {
		t.Errorf("renders=%d updates=%d, want 3 each", s.renders, len(s.updates))
	}
	for _, dt := range s.updates {
		if dt != 8*time.Millisecond {
			t.Errorf("dt = %v, want 8ms", dt)
		}
	}
	if w.onUpdate != nil {
		t.Error("update callback should be cleared after Run")
	}
}

func TestOutdatedSurfaceReconfigures(t *testing.T) {
	s := &fakeScene{renderErrs: []error{fmt.Errorf("begin frame: %w", renderer.ErrSurfaceOutdated)}}
	e, _ := newTestEngine(3, s)

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if len(s.resizes) != 1 || s.resizes[0] != [2]int{1024, 768} {
		t.Errorf("resizes = %v, want one to the window size", s.resizes)
	}
	if s.renders != 3 {
		t.Errorf("loop should continue after an outdated surface, renders=%d", s.renders)
	}
}

func TestFatalSurfaceStopsLoop(t *testing.T) {
	s := &fakeScene{renderErrs: []error{nil, errors.New("begin frame: DeviceLost")}}
	e, w := newTestEngine(10, s)

	err := e.Run(context.Background())
	if !errors.Is(err, ErrSurfaceLost) {
		t.Fatalf("expected ErrSurfaceLost, got %v", err)
	}
	if !w.closed || s.renders != 2 {
		t.Errorf("closed=%v renders=%d, want closed after 2", w.closed, s.renders)
	}
}

func TestOtherRenderErrorSkipsFrame(t *testing.T) {
	s := &fakeScene{renderErrs: []error{errors.New("validation failed")}}
	e, _ := newTestEngine(2, s)

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if len(s.resizes) != 0 || s.renders != 2 {
		t.Errorf("resizes=%v renders=%d", s.resizes, s.renders)
	}
}

func TestCanceledContextStopsLoop(t *testing.T) {
	s := &fakeScene{}
	e, w := newTestEngine(10, s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if !w.closed || s.renders != 0 {
		t.Errorf("closed=%v renders=%d, want closed without rendering", w.closed, s.renders)
	}
}

func TestConfigReloadsApplyTunables(t *testing.T) {
	reloads := make(chan config.Reload, 2)
	cfg := config.Default()
	cfg.Controller.Speed = 12
	reloads <- config.Reload{Err: config.ErrInvalid}
	reloads <- config.Reload{Config: cfg}

	s := &fakeScene{}
	e, _ := newTestEngine(1, s, WithConfigReloads(reloads))
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	if len(s.tunables) != 1 || s.tunables[0].Speed != 12 {
		t.Errorf("tunables = %+v, want one with speed 12", s.tunables)
	}
}

func TestWindowEventsReachScene(t *testing.T) {
	s := &fakeScene{}
	_, w := newTestEngine(0, s)

	w.onKey(common.KeyW, common.KeyPressed)
	w.onMove(3, 4)
	w.onResize(640, 480)

	if len(s.keys) != 1 || s.keys[0] != common.KeyW {
		t.Errorf("keys = %v", s.keys)
	}
	if s.motion != 1 {
		t.Errorf("motion events = %d, want 1", s.motion)
	}
	if len(s.resizes) != 1 || s.resizes[0] != [2]int{640, 480} {
		t.Errorf("resizes = %v", s.resizes)
	}
}

func TestRenderFrameLimit(t *testing.T) {
	e, _ := newTestEngine(0, &fakeScene{}, WithRenderFrameLimit(50))
	if e.renderFrameLimit != 20*time.Millisecond {
		t.Errorf("limit = %v, want 20ms", e.renderFrameLimit)
	}
	e.SetRenderFrameLimit(0)
	if e.renderFrameLimit != 0 {
		t.Error("0 should uncap the loop")
	}
}

func TestQuitAndProfilerToggles(t *testing.T) {
	s := &fakeScene{}
	e, w := newTestEngine(10, s, WithProfiling(time.Second))
	if !e.profilingEnabled {
		t.Fatal("WithProfiling should enable the profiler")
	}
	e.DisableProfiler()
	if e.profilingEnabled {
		t.Error("DisableProfiler had no effect")
	}
	e.EnableProfiler()

	if e.Scene() != s || e.Window() != w {
		t.Error("accessors should return the constructor arguments")
	}

	e.Quit()
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if s.renders != 0 {
		t.Errorf("renders = %d after Quit, want 0", s.renders)
	}
}
