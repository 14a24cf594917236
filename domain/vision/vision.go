// Package vision wraps a face-detection model behind a small contract the
// posture engine can consume. The model backend (OpenCV cascade) lives in
// cascade.go; everything else is backend-agnostic.
package vision

import (
	"image"
	"image/draw"
)

// Params are the model tuning knobs. They are fixed at construction; there is
// no runtime mutation.
type Params struct {
	// MinFaceSize is the smallest detectable face edge, in pixels.
	MinFaceSize int
	// ScoreThreshold filters low-confidence detections.
	ScoreThreshold float64
	// PyramidScale is the per-level downscale factor of the multi-scale search.
	PyramidScale float64
	// WindowStepX/Y is the sliding-window stride. Backends without a window
	// stride (the OpenCV cascade) ignore it.
	WindowStepX int
	WindowStepY int
}

// DefaultParams returns the documented default tuning.
func DefaultParams() Params {
	return Params{
		MinFaceSize:    20,
		ScoreThreshold: 2.0,
		PyramidScale:   0.8,
		WindowStepX:    4,
		WindowStepY:    4,
	}
}

// Normalize clamps out-of-range values back to the defaults.
func (p Params) Normalize() Params {
	def := DefaultParams()
	if p.MinFaceSize <= 0 {
		p.MinFaceSize = def.MinFaceSize
	}
	if p.ScoreThreshold <= 0 {
		p.ScoreThreshold = def.ScoreThreshold
	}
	if p.PyramidScale <= 0 || p.PyramidScale >= 1 {
		p.PyramidScale = def.PyramidScale
	}
	if p.WindowStepX <= 0 {
		p.WindowStepX = def.WindowStepX
	}
	if p.WindowStepY <= 0 {
		p.WindowStepY = def.WindowStepY
	}
	return p
}

// Model is the detection backend boundary: given a luminance frame it returns
// zero or more face bounding boxes in frame pixel coordinates. Ordering of
// multiple results is unspecified.
type Model interface {
	Detect(gray *image.Gray) []image.Rectangle
}

// Detector applies Params on top of a Model. Detect is a pure function of its
// input and the model weights.
type Detector struct {
	model  Model
	params Params
}

// NewDetector constructs a Detector over the given backend.
func NewDetector(model Model, params Params) *Detector {
	return &Detector{model: model, params: params.Normalize()}
}

// Params returns the tuning fixed at construction.
func (d *Detector) Params() Params { return d.params }

// Detect returns the bounding boxes of all faces clearing the configured
// thresholds. An empty slice means no face was found.
func (d *Detector) Detect(gray *image.Gray) []image.Rectangle {
	if gray == nil {
		return nil
	}
	raw := d.model.Detect(gray)
	if len(raw) == 0 {
		return nil
	}
	var faces []image.Rectangle
	for _, r := range raw {
		if r.Dx() < d.params.MinFaceSize || r.Dy() < d.params.MinFaceSize {
			continue
		}
		faces = append(faces, r)
	}
	return faces
}

// ToGray derives a luminance-only copy of src with identical dimensions. It
// is computed per call and never cached.
func ToGray(src image.Image) *image.Gray {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	return gray
}
