package presenter

import (
	"time"
)

// AlertSource reports the shared too-close flag. Implemented by
// model.AlertModel.
type AlertSource interface {
	TooClose() bool
}

// OverlayView is the blocking surface toggled by the presenter.
type OverlayView interface {
	Show()
	Hide()
	Visible() bool
}

// AlertPresenter reflects the shared alert flag into the overlay on each
// tick, and fires the beep callback on the transition into the too-close
// state. Tick runs on the Tk event-loop thread; the overlay always mirrors
// the most recently completed check. The status label is the
// StatePresenter's job.
type AlertPresenter struct {
	Model   AlertSource
	Overlay OverlayView
	Beep    func() // optional; must not block

	latest bool
}

func NewAlertPresenter(model AlertSource, overlay OverlayView, beep func()) *AlertPresenter {
	return &AlertPresenter{Model: model, Overlay: overlay, Beep: beep}
}

// Tick synchronizes the overlay with the model.
func (p *AlertPresenter) Tick(now time.Time) {
	if p == nil || p.Model == nil || p.Overlay == nil {
		return
	}
	tooClose := p.Model.TooClose()
	if tooClose && !p.Overlay.Visible() {
		p.Overlay.Show()
		if !p.latest && p.Beep != nil {
			p.Beep()
		}
	} else if !tooClose && p.Overlay.Visible() {
		p.Overlay.Hide()
	}
	p.latest = tooClose
}
