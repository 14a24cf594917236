package posture

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const sampleStatsLogInterval = 5 * time.Second

// PostureChecker is the minimal check contract the sampler drives.
type PostureChecker interface {
	Check() (bool, error)
}

// Result is one completed posture check.
type Result struct {
	TooClose  bool
	CheckedAt time.Time
	Sequence  uint64
}

// SampleStats summarises sampler behaviour for instrumentation.
type SampleStats struct {
	Samples    uint64
	Errors     uint64
	AvgCheck   time.Duration
	LastSample time.Time
	LatestAge  time.Duration
	Sequence   uint64
}

// Sampler runs the background check loop at a fixed cadence and publishes
// each outcome. Check errors are logged and skipped: the previously published
// state stays in effect until the next successful sample.
type Sampler struct {
	checker  PostureChecker
	interval time.Duration
	onResult func(Result)
	logger   *slog.Logger

	running    atomic.Bool
	cancel     context.CancelFunc
	done       chan struct{}
	latest     atomic.Pointer[Result]
	samples    atomic.Uint64
	errors     atomic.Uint64
	checkNanos atomic.Uint64
	sequence   atomic.Uint64
}

// NewSampler constructs a sampler. onResult is invoked from the sampling
// goroutine after every successful check and may be nil.
func NewSampler(checker PostureChecker, interval time.Duration, onResult func(Result), logger *slog.Logger) *Sampler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Sampler{checker: checker, interval: interval, onResult: onResult, logger: logger}
}

// Start launches the sampling goroutine. It is a no-op when already running.
func (s *Sampler) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.loop(ctx, s.done)
}

// Stop cancels the sampling goroutine and waits for it to finish its
// in-flight check. Once Stop returns no further results are published and
// the camera is no longer touched, so callers may release downstream
// resources. It is a no-op when not running.
func (s *Sampler) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.done != nil {
		<-s.done
	}
}

// Running reports whether the loop is active.
func (s *Sampler) Running() bool { return s.running.Load() }

// Latest returns the most recently published result, or a zero Result before
// the first successful sample.
func (s *Sampler) Latest() Result {
	r := s.latest.Load()
	if r == nil {
		return Result{}
	}
	return *r
}

// Stats returns a snapshot of sampler instrumentation.
func (s *Sampler) Stats() SampleStats {
	samples := s.samples.Load()
	total := s.checkNanos.Load()
	var avg time.Duration
	if samples > 0 && total > 0 {
		avg = time.Duration(total / samples)
	}
	latest := s.Latest()
	age := time.Duration(0)
	if !latest.CheckedAt.IsZero() {
		age = time.Since(latest.CheckedAt)
	}
	return SampleStats{
		Samples:    samples,
		Errors:     s.errors.Load(),
		AvgCheck:   avg,
		LastSample: latest.CheckedAt,
		LatestAge:  age,
		Sequence:   latest.Sequence,
	}
}

func (s *Sampler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	logTicker := time.NewTicker(sampleStatsLogInterval)
	defer logTicker.Stop()

	for {
		s.sample()

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Sampler) sample() {
	start := time.Now()
	ok, err := s.checker.Check()
	if err != nil {
		s.errors.Add(1)
		if s.logger != nil {
			s.logger.Error("posture check", "error", err)
		}
		return
	}
	s.checkNanos.Add(uint64(time.Since(start).Nanoseconds()))
	s.samples.Add(1)
	seq := s.sequence.Add(1)
	res := Result{TooClose: !ok, CheckedAt: time.Now(), Sequence: seq}
	s.latest.Store(&res)
	if s.onResult != nil {
		s.onResult(res)
	}
}

func (s *Sampler) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("sampler.stats",
		"samples", stats.Samples,
		"errors", stats.Errors,
		"avg_check", stats.AvgCheck,
		"age", stats.LatestAge,
	)
}
