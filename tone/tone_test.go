package tone

import (
	"math"
	"testing"
	"time"
)

func TestSine_LengthMatchesDuration(t *testing.T) {
	s := Sine(440, 500*time.Millisecond, 44100)
	if got, want := len(s), 22050; got != want {
		t.Fatalf("sample count = %d, want %d", got, want)
	}
	if s := Sine(440, 0, 44100); s != nil {
		t.Fatal("zero duration should produce no samples")
	}
}

func TestSine_AmplitudeBounded(t *testing.T) {
	for _, v := range Sine(440, 100*time.Millisecond, 44100) {
		if v > 1 || v < -1 {
			t.Fatalf("sample %v outside [-1, 1]", v)
		}
	}
}

func TestSine_StartsAtZeroPhaseAndFadesOut(t *testing.T) {
	s := Sine(440, 100*time.Millisecond, 44100)
	if s[0] != 0 {
		t.Fatalf("first sample should be sin(0) = 0, got %v", s[0])
	}
	if last := math.Abs(float64(s[len(s)-1])); last > 0.01 {
		t.Fatalf("fade-out should end near zero, got %v", last)
	}
}

func TestSine_DefaultsSampleRate(t *testing.T) {
	if got := len(Sine(440, time.Second, 0)); got != 44100 {
		t.Fatalf("default sample rate not applied, got %d samples", got)
	}
}
