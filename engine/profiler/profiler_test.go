package profiler

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestProfiler(interval time.Duration) (*Profiler, *fakeClock, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewProfiler(zap.New(core), interval)
	p.now = clock.now
	p.reset(clock.now())
	return p, clock, logs
}

func TestTickReportsAfterInterval(t *testing.T) {
	p, clock, logs := newTestProfiler(time.Second)

	frames := []time.Duration{
		10 * time.Millisecond,
		30 * time.Millisecond,
		20 * time.Millisecond,
	}
	for i := 0; i < 20; i++ {
		for _, f := range frames {
			clock.advance(f)
			if _, done := p.Tick(); done && clock.t.Sub(time.Unix(1000, 0)) < time.Second {
				t.Fatal("reported before the interval elapsed")
			}
		}
	}

	// 60 frames took 1.2s, so the report happened on the frame crossing 1s.
	if logs.Len() != 1 {
		t.Fatalf("expected 1 report, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "frame stats" {
		t.Errorf("unexpected message %q", entry.Message)
	}
}

func TestTickStats(t *testing.T) {
	p, clock, _ := newTestProfiler(100 * time.Millisecond)

	var stats Stats
	var done bool
	for _, f := range []time.Duration{20, 50, 30} {
		clock.advance(f * time.Millisecond)
		stats, done = p.Tick()
	}
	if !done {
		t.Fatal("interval should have finished")
	}
	if stats.Frames != 3 {
		t.Errorf("Frames = %d, want 3", stats.Frames)
	}
	if stats.MinFrame != 20*time.Millisecond || stats.MaxFrame != 50*time.Millisecond {
		t.Errorf("min/max = %v/%v, want 20ms/50ms", stats.MinFrame, stats.MaxFrame)
	}
	if stats.FPS < 29.9 || stats.FPS > 30.1 {
		t.Errorf("FPS = %v, want 30", stats.FPS)
	}

	clock.advance(10 * time.Millisecond)
	if _, done := p.Tick(); done {
		t.Error("a new interval should have started")
	}
}

func TestNonPositiveIntervalDefaults(t *testing.T) {
	p := NewProfiler(zap.NewNop(), 0)
	if p.updateInterval != time.Second {
		t.Errorf("interval = %v, want 1s", p.updateInterval)
	}
}
