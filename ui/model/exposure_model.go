package model

import (
	"time"
)

// ExposureModel tracks how long the current alert has lasted and the total
// time spent too close. It is decoupled from the UI; presenters should poll
// Values() and update views. The zero value is ready to use.
type ExposureModel struct {
	alerting     bool
	alertStart   time.Time
	lastDuration time.Duration
	accumulated  time.Duration
}

// NewExposureModel returns a pointer to a ready-to-use ExposureModel.
func NewExposureModel() *ExposureModel { return &ExposureModel{} }

// OnTick updates the model using the current alert state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *ExposureModel) OnTick(tooClose bool, now time.Time) {
	if m == nil {
		return
	}
	if tooClose {
		if !m.alerting { // transition clear -> alerting
			m.alerting = true
			m.alertStart = now
			m.lastDuration = 0
		}
		m.lastDuration = now.Sub(m.alertStart)
	} else if m.alerting { // transition alerting -> clear
		m.lastDuration = now.Sub(m.alertStart)
		m.accumulated += m.lastDuration
		m.alerting = false
	}
}

// Values returns the current (or last) alert duration and the total
// accumulated too-close time. The total includes the ongoing alert.
func (m *ExposureModel) Values() (current, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	current = m.lastDuration
	total = m.accumulated
	if m.alerting {
		total += current
	}
	return
}
