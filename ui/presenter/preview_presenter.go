package presenter

import (
	"image"

	"github.com/soocke/posture-watch-go/domain/camera"
)

// FrameSource supplies the most recent frame captured from the webcam.
type FrameSource interface {
	LatestFrame() camera.FrameSnapshot
}

// PreviewView draws the camera preview.
type PreviewView interface {
	UpdatePreview(img image.Image)
}

// PreviewPresenter pushes the latest camera snapshot to the status window,
// skipping frames already shown.
type PreviewPresenter struct {
	Source FrameSource
	View   PreviewView

	lastSeq uint64
}

func NewPreviewPresenter(source FrameSource, view PreviewView) *PreviewPresenter {
	return &PreviewPresenter{Source: source, View: view}
}

// ProcessFrame shows the newest snapshot, if any.
func (p *PreviewPresenter) ProcessFrame() {
	if p == nil || p.Source == nil || p.View == nil {
		return
	}
	snap := p.Source.LatestFrame()
	if snap.Image == nil || snap.Sequence == p.lastSeq {
		return
	}
	p.lastSeq = snap.Sequence
	p.View.UpdatePreview(snap.Image)
}
