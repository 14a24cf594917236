// Package posture holds the decision engine: one-shot interactive
// calibration, the too-close check, the background sampler and the
// monitoring state machine.
package posture

import (
	"fmt"
	"image"
)

// Size is a width/height pair in frame pixel coordinates.
type Size struct {
	Width  int
	Height int
}

// Exceeds reports whether either dimension of s is strictly larger than the
// corresponding dimension of max. The boundary is inclusive: a face exactly
// at the calibrated size is still acceptable.
func (s Size) Exceeds(max Size) bool {
	return s.Width > max.Width || s.Height > max.Height
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// boxSize returns the Size of a detection bounding box.
func boxSize(r image.Rectangle) Size {
	return Size{Width: r.Dx(), Height: r.Dy()}
}

// Calibration is the single learned threshold: the largest face bounding box
// still considered an acceptable distance. Immutable once recorded.
type Calibration struct {
	MaxDetectionSize Size
}

// Valid reports whether the calibration has been recorded.
func (c Calibration) Valid() bool {
	return c.MaxDetectionSize.Width > 0 && c.MaxDetectionSize.Height > 0
}

// FrameSource produces still frames on demand. Implemented by camera.Webcam.
type FrameSource interface {
	Capture() (*image.RGBA, error)
}

// FaceDetector returns zero or more face bounding boxes for a luminance
// frame. Implemented by vision.Detector. No identity persists across calls.
type FaceDetector interface {
	Detect(gray *image.Gray) []image.Rectangle
}

// Prompter is the operator I/O boundary used only during calibration: write
// a line, then block until the operator acknowledges. The acknowledgement
// content is ignored.
type Prompter interface {
	Say(line string)
	WaitAck() error
}
