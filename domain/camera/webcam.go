package camera

import (
	"image"
	"image/draw"
	"log/slog"
	"sync/atomic"
	"time"
)

// Webcam is the frame source used by the posture monitor. It wraps a Driver
// with a stream lifecycle policy and retains the latest frame for the UI
// preview. A Webcam is confined to the sampling goroutine; only LatestFrame
// is safe to call from elsewhere.
type Webcam struct {
	drv    Driver
	mode   Mode
	logger *slog.Logger

	latest   atomic.Pointer[FrameSnapshot]
	sequence atomic.Uint64
}

// NewWebcam constructs a Webcam over the given driver with a fixed mode.
func NewWebcam(drv Driver, mode Mode, logger *slog.Logger) *Webcam {
	return &Webcam{drv: drv, mode: mode, logger: logger}
}

// Mode reports the lifecycle policy fixed at construction.
func (w *Webcam) Mode() Mode { return w.mode }

// Open acquires the underlying capture resource. It is idempotent when the
// stream is already open.
func (w *Webcam) Open() error {
	if w.drv.Opened() {
		return nil
	}
	if err := w.drv.Open(); err != nil {
		if _, ok := err.(*StreamOpenError); ok {
			return err
		}
		return &StreamOpenError{Reason: err.Error(), Err: err}
	}
	return nil
}

// Close releases the capture resource.
func (w *Webcam) Close() error {
	if err := w.drv.Close(); err != nil {
		if _, ok := err.(*StreamCloseError); ok {
			return err
		}
		return &StreamCloseError{Reason: err.Error(), Err: err}
	}
	return nil
}

// Capture returns one full frame. If the stream is not open it is opened
// first; in Discrete mode the stream is closed again before returning.
func (w *Webcam) Capture() (*image.RGBA, error) {
	if err := w.Open(); err != nil {
		return nil, err
	}

	img, err := w.drv.Grab()
	if err != nil {
		return nil, err
	}

	if w.mode == Discrete {
		if err := w.Close(); err != nil && w.logger != nil {
			w.logger.Error("camera close after discrete capture", "error", err)
		}
	}

	frame := toRGBA(img)
	seq := w.sequence.Add(1)
	w.latest.Store(&FrameSnapshot{Image: frame, CapturedAt: time.Now(), Sequence: seq})
	return frame, nil
}

// LatestFrame returns the freshest captured snapshot, or a zero snapshot when
// nothing has been captured yet.
func (w *Webcam) LatestFrame() FrameSnapshot {
	snap := w.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

// toRGBA returns img as *image.RGBA, copying only when the underlying
// representation differs.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
