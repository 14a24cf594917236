// Package tone plays a short sine tone on the default output device. It is
// the audible half of the alert: fired once on the transition into the
// too-close state.
package tone

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	defaultSampleRate = 44100
	framesPerBuffer   = 1024
)

// Sine synthesizes a mono sine wave at freq Hz for the given duration with a
// short linear fade-out to avoid a click at the end.
func Sine(freq float64, dur time.Duration, sampleRate int) []float32 {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	n := int(float64(sampleRate) * dur.Seconds())
	if n <= 0 {
		return nil
	}
	out := make([]float32, n)
	fade := sampleRate / 100 // 10ms
	if fade > n {
		fade = n
	}
	step := 2 * math.Pi * freq / float64(sampleRate)
	for i := range out {
		v := math.Sin(float64(i) * step)
		if left := n - i; left < fade {
			v *= float64(left) / float64(fade)
		}
		out[i] = float32(v)
	}
	return out
}

// Player owns the portaudio lifecycle. Construct once at startup; playback
// failures are logged and never fatal.
type Player struct {
	logger *slog.Logger
	mu     sync.Mutex // one tone at a time
}

// NewPlayer initializes the audio backend.
func NewPlayer(logger *slog.Logger) (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	return &Player{logger: logger}, nil
}

// Close tears down the audio backend.
func (p *Player) Close() error {
	return portaudio.Terminate()
}

// Play synthesizes and writes the tone to the default output stream,
// blocking until playback ends. Concurrent calls are serialized.
func (p *Player) Play(freq float64, dur time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	samples := Sine(freq, dur, defaultSampleRate)
	if len(samples) == 0 {
		return
	}

	out := make([]float32, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(0, 1, defaultSampleRate, framesPerBuffer, &out)
	if err != nil {
		p.logError("open output stream", err)
		return
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		p.logError("start output stream", err)
		return
	}
	defer stream.Stop()

	for off := 0; off < len(samples); off += framesPerBuffer {
		end := off + framesPerBuffer
		if end > len(samples) {
			end = len(samples)
		}
		n := copy(out, samples[off:end])
		for i := n; i < len(out); i++ {
			out[i] = 0
		}
		if err := stream.Write(); err != nil {
			p.logError("write output stream", err)
			return
		}
	}
}

func (p *Player) logError(msg string, err error) {
	if p.logger != nil {
		p.logger.Error(msg, "error", err)
	}
}
