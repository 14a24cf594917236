package posture

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/posture-watch-go/domain/vision"
)

// Monitor is the uncalibrated stage of the engine. Its only way forward is
// Calibrate, which hands the camera and detector over to a Checker; a check
// can therefore never run without a recorded calibration.
type Monitor struct {
	source   FrameSource
	detector FaceDetector
	prompter Prompter
	logger   *slog.Logger
}

// NewMonitor constructs an uncalibrated monitor.
func NewMonitor(source FrameSource, detector FaceDetector, prompter Prompter, logger *slog.Logger) *Monitor {
	return &Monitor{source: source, detector: detector, prompter: prompter, logger: logger}
}

// Calibrate runs the interactive calibration procedure: the operator assumes
// the closest posture they still consider bad, and the resulting face box
// size becomes the maximum acceptable detection size.
//
// Zero faces or more than one face in the sample are normal loop-continuation
// conditions, not errors; the loop re-prompts without limit. Cancelling ctx
// or losing the operator terminal are the only exits without a calibration.
func (m *Monitor) Calibrate(ctx context.Context) (*Checker, error) {
	m.prompter.Say("Press Enter to begin calibration...")
	if err := m.prompter.WaitAck(); err != nil {
		return nil, fmt.Errorf("calibration aborted: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.prompter.Say("Move to the position that you would consider to be a bad posture and then press Enter.")
		if err := m.prompter.WaitAck(); err != nil {
			return nil, fmt.Errorf("calibration aborted: %w", err)
		}

		faces, err := detectOnce(m.source, m.detector)
		if err != nil {
			if m.logger != nil {
				m.logger.Error("calibration sample", "error", err)
			}
			m.prompter.Say("Could not capture a frame. Please try again.")
			continue
		}
		switch {
		case len(faces) == 0:
			m.prompter.Say("No face was detected. Please try again.")
			continue
		case len(faces) > 1:
			// An ambiguous calibration subject is rejected outright rather
			// than resolved by picking one of the faces.
			m.prompter.Say("More than one face was detected. Please try again.")
			continue
		}

		calib := Calibration{MaxDetectionSize: boxSize(faces[0])}
		m.prompter.Say(fmt.Sprintf("Calibration successful. Using max detection size %s.", calib.MaxDetectionSize))
		if m.logger != nil {
			m.logger.Info("calibration complete", "max_detection_size", calib.MaxDetectionSize.String())
		}
		return NewCheckerWith(m.source, m.detector, calib, m.logger), nil
	}
}

// Checker is the calibrated stage of the engine. It owns the frame source and
// detector; both are confined to the sampling goroutine.
type Checker struct {
	source   FrameSource
	detector FaceDetector
	calib    Calibration
	logger   *slog.Logger
}

// NewCheckerWith builds a Checker from an already-recorded calibration.
// Checking without a calibration is a programming error, not a runtime
// condition: an invalid calibration panics.
func NewCheckerWith(source FrameSource, detector FaceDetector, calib Calibration, logger *slog.Logger) *Checker {
	if !calib.Valid() {
		panic("posture: checker requires a completed calibration")
	}
	return &Checker{source: source, detector: detector, calib: calib, logger: logger}
}

// Calibration returns the recorded threshold.
func (c *Checker) Calibration() Calibration { return c.calib }

// Check captures one frame and reports whether the posture is acceptable.
// True means acceptable, false means too close. A frame with no detected
// face is always acceptable: the subject is assumed to have stepped away.
//
// When several faces are present the largest box by area is compared (first
// wins on ties); detector output ordering carries no meaning.
func (c *Checker) Check() (bool, error) {
	faces, err := detectOnce(c.source, c.detector)
	if err != nil {
		return false, err
	}
	if len(faces) == 0 {
		return true, nil
	}
	size := boxSize(largest(faces))
	return !size.Exceeds(c.calib.MaxDetectionSize), nil
}

func detectOnce(source FrameSource, detector FaceDetector) ([]image.Rectangle, error) {
	frame, err := source.Capture()
	if err != nil {
		return nil, err
	}
	return detector.Detect(vision.ToGray(frame)), nil
}

func largest(faces []image.Rectangle) image.Rectangle {
	best := faces[0]
	bestArea := best.Dx() * best.Dy()
	for _, f := range faces[1:] {
		if a := f.Dx() * f.Dy(); a > bestArea {
			best, bestArea = f, a
		}
	}
	return best
}
