package model

import (
	"testing"
	"time"
)

func TestAlertModel_ZeroValueAndSet(t *testing.T) {
	m := &AlertModel{}
	if m.TooClose() {
		t.Fatal("zero value should not report too close")
	}
	m.Set(true)
	if !m.TooClose() {
		t.Fatal("Set(true) not reflected")
	}
	m.Set(true) // no change path
	m.Set(false)
	if m.TooClose() {
		t.Fatal("Set(false) not reflected")
	}
}

func TestAlertModel_NilSafe(t *testing.T) {
	var m *AlertModel
	if m.TooClose() {
		t.Fatal("nil model should report false")
	}
	m.Set(true) // must not panic
}

func TestExposureModel_AccumulatesAcrossEpisodes(t *testing.T) {
	m := NewExposureModel()
	base := time.Unix(0, 0)

	// First alert episode: 5s.
	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	current, total := m.Values()
	if current != 5*time.Second || total != 5*time.Second {
		t.Fatalf("ongoing episode expected 5s/5s, got %v/%v", current, total)
	}

	// Alert clears at 5s.
	m.OnTick(false, base.Add(5*time.Second))
	current, total = m.Values()
	if current != 5*time.Second || total != 5*time.Second {
		t.Fatalf("after clear expected persisted 5s, got %v/%v", current, total)
	}

	// Idle ticks change nothing.
	m.OnTick(false, base.Add(8*time.Second))
	if c2, t2 := m.Values(); c2 != current || t2 != total {
		t.Fatalf("idle tick should not change durations: %v/%v", c2, t2)
	}

	// Second episode at 10s lasting 3s: total 8s.
	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(13*time.Second))
	current, total = m.Values()
	if current != 3*time.Second || total != 8*time.Second {
		t.Fatalf("second episode expected 3s/8s, got %v/%v", current, total)
	}

	m.OnTick(false, base.Add(13*time.Second))
	if _, tFinal := m.Values(); tFinal != 8*time.Second {
		t.Fatalf("final total expected 8s, got %v", tFinal)
	}
}
