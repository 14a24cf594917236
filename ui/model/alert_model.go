package model

import (
	"sync/atomic"
)

// AlertModel holds the shared "too close" flag. The zero value is usable and
// reports an acceptable posture.
// Concurrency-safe via atomic Bool: the sampling goroutine writes, presenter
// ticks on the UI thread read.
type AlertModel struct{ tooClose atomic.Bool }

// TooClose reports whether the last completed check found the user too close.
func (m *AlertModel) TooClose() bool {
	if m == nil {
		return false
	}
	return m.tooClose.Load()
}

// Set stores the outcome of a completed check.
func (m *AlertModel) Set(tooClose bool) {
	if m == nil {
		return
	}
	prev := m.tooClose.Load()
	if prev == tooClose { // no change
		return
	}
	m.tooClose.Store(tooClose)
}
