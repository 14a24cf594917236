package view

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/posture-watch-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// UI abstracts the view operations needed by presenters, decoupling them from
// the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetExposure(current, total time.Duration)
	UpdatePreview(img image.Image)
}

// RootView is the small status window: monitoring state, too-close exposure
// readout, a camera preview and an Exit button.
type RootView struct {
	logger      *slog.Logger
	previewMaxW int
	previewMaxH int

	StateLabel    *LabelWidget
	ExposureLabel *LabelWidget
	preview       *LabelWidget
}

func NewRootView(previewMaxW, previewMaxH int, logger *slog.Logger) *RootView {
	return &RootView{logger: logger, previewMaxW: previewMaxW, previewMaxH: previewMaxH}
}

// Build constructs the layout. onExit is invoked when the operator presses
// the Exit button.
func (rv *RootView) Build(onExit func()) {
	if rv == nil {
		return
	}
	rv.StateLabel = Label(Txt("State: calibrating"), Borderwidth(1), Relief("ridge"))
	Pack(rv.StateLabel, Padx("1m"), Pady("1m"))

	rv.ExposureLabel = Label(Txt("Too close: 0s (total 0s)"))
	Pack(rv.ExposureLabel, Padx("1m"), Pady("1m"))

	Pack(Button(Txt("Exit"), Command(onExit)), Padx("1m"), Pady("1m"))
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv == nil || rv.StateLabel == nil {
		return
	}
	func() {
		defer func() { _ = recover() }()
		rv.StateLabel.Configure(Txt(text))
	}()
}

// SetExposure updates the too-close duration readout.
func (rv *RootView) SetExposure(current, total time.Duration) {
	if rv == nil || rv.ExposureLabel == nil {
		return
	}
	text := fmt.Sprintf("Too close: %s (total %s)", current.Round(time.Second), total.Round(time.Second))
	func() {
		defer func() { _ = recover() }()
		rv.ExposureLabel.Configure(Txt(text))
	}()
}

// UpdatePreview draws a downsampled copy of the latest camera frame. The
// label is created lazily on the first frame.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, rv.previewMaxW, rv.previewMaxH)
	pngBytes := images.EncodePNG(scaled)
	if len(pngBytes) == 0 {
		return
	}
	func() {
		defer func() { _ = recover() }()
		if rv.preview == nil {
			rv.preview = Label(Image(NewPhoto(Data(pngBytes))), Borderwidth(1), Relief("sunken"))
			Pack(rv.preview, Padx("1m"), Pady("1m"))
			return
		}
		rv.preview.Configure(Image(NewPhoto(Data(pngBytes))))
	}()
}

var _ UI = (*RootView)(nil)
