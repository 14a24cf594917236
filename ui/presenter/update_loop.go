package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick/ProcessFrame on the sub-presenters and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	State    *StatePresenter
	Alert    *AlertPresenter
	Exposure *ExposurePresenter
	Preview  *PreviewPresenter
	Schedule func()
}

func NewLoop(state *StatePresenter, alert *AlertPresenter, exposure *ExposurePresenter, preview *PreviewPresenter, schedule func()) *Loop {
	return &Loop{State: state, Alert: alert, Exposure: exposure, Preview: preview, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.Alert != nil {
		l.Alert.Tick(now)
	}
	if l.Exposure != nil {
		l.Exposure.Tick(now)
	}
	if l.Preview != nil {
		l.Preview.ProcessFrame()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
