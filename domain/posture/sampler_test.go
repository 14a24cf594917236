package posture

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// flakyChecker alternates scripted outcomes; safe for the sampler goroutine.
type flakyChecker struct {
	mu     sync.Mutex
	script []checkOutcome
	call   int
}

type checkOutcome struct {
	ok  bool
	err error
}

func (c *flakyChecker) Check() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.call
	if i >= len(c.script) {
		i = len(c.script) - 1
	}
	c.call++
	if i < 0 {
		return true, nil
	}
	out := c.script[i]
	return out.ok, out.err
}

type resultRecorder struct {
	mu      sync.Mutex
	results []Result
}

func (r *resultRecorder) record(res Result) {
	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()
}

func (r *resultRecorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("timeout waiting for condition")
}

func TestSampler_PublishesResults(t *testing.T) {
	rec := &resultRecorder{}
	chk := &flakyChecker{script: []checkOutcome{{ok: false}, {ok: true}}}
	s := NewSampler(chk, 5*time.Millisecond, rec.record, discardLogger)
	s.Start()
	defer s.Stop()

	waitFor(t, time.Second, func() bool { return rec.len() >= 2 })
	rec.mu.Lock()
	first, second := rec.results[0], rec.results[1]
	rec.mu.Unlock()
	if !first.TooClose {
		t.Fatal("first sample should report too close")
	}
	if second.TooClose {
		t.Fatal("second sample should report acceptable")
	}
	if first.Sequence != 1 || second.Sequence != 2 {
		t.Fatalf("sequence numbers wrong: %d, %d", first.Sequence, second.Sequence)
	}
}

func TestSampler_StartStopIdempotent(t *testing.T) {
	s := NewSampler(&flakyChecker{}, 5*time.Millisecond, nil, discardLogger)
	s.Start()
	s.Start()
	if !s.Running() {
		t.Fatal("sampler should be running")
	}
	s.Stop()
	s.Stop()
	if s.Running() {
		t.Fatal("sampler should be stopped")
	}
}

func TestSampler_StopHaltsPublishing(t *testing.T) {
	rec := &resultRecorder{}
	s := NewSampler(&flakyChecker{}, 3*time.Millisecond, rec.record, discardLogger)
	s.Start()
	waitFor(t, time.Second, func() bool { return rec.len() >= 1 })
	s.Stop()
	n := rec.len()
	time.Sleep(30 * time.Millisecond)
	if rec.len() != n {
		t.Fatalf("sampler kept publishing after Stop: %d -> %d", n, rec.len())
	}
}

// gatedChecker blocks its first check until released, so a test can hold the
// sampling goroutine mid-check.
type gatedChecker struct {
	entered chan struct{}
	release chan struct{}
	first   sync.Once
}

func (c *gatedChecker) Check() (bool, error) {
	c.first.Do(func() {
		close(c.entered)
		<-c.release
	})
	return true, nil
}

func TestSampler_StopWaitsForInFlightCheck(t *testing.T) {
	chk := &gatedChecker{entered: make(chan struct{}), release: make(chan struct{})}
	rec := &resultRecorder{}
	s := NewSampler(chk, time.Millisecond, rec.record, discardLogger)
	s.Start()
	<-chk.entered

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
		t.Fatal("Stop returned while a check was still in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(chk.release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the check finished")
	}

	n := rec.len()
	time.Sleep(20 * time.Millisecond)
	if rec.len() != n {
		t.Fatalf("results published after Stop returned: %d -> %d", n, rec.len())
	}
}

func TestSampler_ErrorsSkipPublishAndKeepLastState(t *testing.T) {
	rec := &resultRecorder{}
	chk := &flakyChecker{script: []checkOutcome{
		{ok: false},
		{err: errors.New("grab failed")},
		{err: errors.New("grab failed")},
	}}
	s := NewSampler(chk, 3*time.Millisecond, rec.record, discardLogger)
	s.Start()
	defer s.Stop()

	waitFor(t, time.Second, func() bool { return s.Stats().Errors >= 2 })
	if got := rec.len(); got != 1 {
		t.Fatalf("errors must not publish results, got %d publishes", got)
	}
	if latest := s.Latest(); !latest.TooClose || latest.Sequence != 1 {
		t.Fatalf("latest result must survive errors, got %+v", latest)
	}
	stats := s.Stats()
	if stats.Samples != 1 {
		t.Fatalf("expected 1 successful sample, got %d", stats.Samples)
	}
}
