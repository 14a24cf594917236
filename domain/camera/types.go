package camera

import (
	"image"
	"time"
)

// Mode selects the stream lifecycle policy of a Webcam. It is fixed at
// construction time.
type Mode int

const (
	// Continuous keeps the stream open across Capture calls. Used by the
	// monitoring loop to avoid per-frame open/close overhead.
	Continuous Mode = iota
	// Discrete closes the stream after every Capture. Used for one-off shots.
	Discrete
)

func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	default:
		return "unknown"
	}
}

// Driver is the low-level capture boundary. Implementations own the actual
// device handle; Webcam layers lifecycle policy on top. Grab returns typed
// errors from this package (*FrameGrabError, *FrameDecodeError).
type Driver interface {
	Open() error
	Close() error
	Opened() bool
	Grab() (image.Image, error)
}

// FrameSnapshot carries the most recently captured frame and metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}
