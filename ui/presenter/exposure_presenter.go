package presenter

import (
	"time"

	"github.com/soocke/posture-watch-go/ui/model"
)

// ExposureView displays formatted alert durations.
type ExposureView interface {
	SetExposure(current, total time.Duration)
}

// ExposurePresenter feeds the shared alert flag into the exposure model and
// pushes the formatted durations to the view.
type ExposurePresenter struct {
	model *model.ExposureModel
	alert AlertSource
	view  ExposureView
}

// NewExposurePresenter returns a new ExposurePresenter.
func NewExposurePresenter(m *model.ExposureModel, alert AlertSource, view ExposureView) *ExposurePresenter {
	return &ExposurePresenter{model: m, alert: alert, view: view}
}

// Tick advances the exposure model and pushes values to the view.
func (p *ExposurePresenter) Tick(now time.Time) {
	if p == nil || p.model == nil || p.alert == nil || p.view == nil {
		return
	}
	p.model.OnTick(p.alert.TooClose(), now)
	current, total := p.model.Values()
	p.view.SetExposure(current, total)
}
