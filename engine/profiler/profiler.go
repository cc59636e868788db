package profiler

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Stats summarizes the frames of one reporting interval.
type Stats struct {
	Frames   int
	FPS      float64
	MinFrame time.Duration
	MaxFrame time.Duration
	AvgFrame time.Duration

	HeapMB     float64
	AllocRate  float64 // MB/s
	NumGC      uint32
	MaxPauseUs uint64
}

// Profiler tracks frame timing and memory statistics and logs them at a fixed interval.
type Profiler struct {
	log            *zap.Logger
	now            func() time.Time
	updateInterval time.Duration

	intervalStart time.Time
	lastFrame     time.Time
	frames        int
	minFrame      time.Duration
	maxFrame      time.Duration

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a Profiler reporting to log every interval.
// A non-positive interval defaults to 1 second.
//
// Parameters:
//   - log: the logger stats are written to
//   - interval: the reporting interval
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(log *zap.Logger, interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	p := &Profiler{
		log:            log,
		now:            time.Now,
		updateInterval: interval,
	}
	p.reset(p.now())
	return p
}

func (p *Profiler) reset(now time.Time) {
	p.intervalStart = now
	p.lastFrame = now
	p.frames = 0
	p.minFrame = 0
	p.maxFrame = 0
}

// Tick should be called once per frame. When the interval has elapsed it logs the
// collected stats at debug level and starts a new interval.
//
// Returns:
//   - Stats: the stats of the finished interval
//   - bool: true if an interval finished on this tick
func (p *Profiler) Tick() (Stats, bool) {
	now := p.now()
	frame := now.Sub(p.lastFrame)
	p.lastFrame = now
	p.frames++
	if p.frames == 1 || frame < p.minFrame {
		p.minFrame = frame
	}
	if frame > p.maxFrame {
		p.maxFrame = frame
	}

	elapsed := now.Sub(p.intervalStart)
	if elapsed < p.updateInterval {
		return Stats{}, false
	}

	s := Stats{
		Frames:   p.frames,
		FPS:      float64(p.frames) / elapsed.Seconds(),
		MinFrame: p.minFrame,
		MaxFrame: p.maxFrame,
		AvgFrame: elapsed / time.Duration(p.frames),
	}
	p.readMemory(&s, elapsed)

	p.log.Debug("frame stats",
		zap.Float64("fps", s.FPS),
		zap.Duration("avg", s.AvgFrame),
		zap.Duration("min", s.MinFrame),
		zap.Duration("max", s.MaxFrame),
		zap.Float64("heap_mb", s.HeapMB),
		zap.Float64("alloc_mb_s", s.AllocRate),
		zap.Uint32("gc", s.NumGC),
		zap.Uint64("gc_max_pause_us", s.MaxPauseUs),
	)

	p.reset(now)
	return s, true
}

func (p *Profiler) readMemory(s *Stats, elapsed time.Duration) {
	runtime.ReadMemStats(&p.memStats)
	s.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
	s.AllocRate = float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()
	s.NumGC = p.memStats.NumGC

	// PauseNs is a circular buffer of the last 256 pauses.
	start := p.lastGCCount
	if s.NumGC-start > 256 {
		start = s.NumGC - 256
	}
	for i := start; i < s.NumGC; i++ {
		s.MaxPauseUs = max(s.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
	}

	p.lastGCCount = s.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
}
