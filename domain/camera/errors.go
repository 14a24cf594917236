package camera

// Typed failures for the capture driver boundary. Each carries the driver's
// diagnostic string and wraps the underlying cause when one exists.

// StreamOpenError reports a failure to open the camera stream.
type StreamOpenError struct {
	Reason string
	Err    error
}

func (e *StreamOpenError) Error() string { return "failed to open camera stream: " + e.Reason }
func (e *StreamOpenError) Unwrap() error { return e.Err }

// StreamCloseError reports a failure to close the camera stream.
type StreamCloseError struct {
	Reason string
	Err    error
}

func (e *StreamCloseError) Error() string { return "failed to close camera stream: " + e.Reason }
func (e *StreamCloseError) Unwrap() error { return e.Err }

// FrameGrabError reports that the driver could not deliver a frame.
type FrameGrabError struct {
	Reason string
	Err    error
}

func (e *FrameGrabError) Error() string { return "failed to grab a frame: " + e.Reason }
func (e *FrameGrabError) Unwrap() error { return e.Err }

// FrameDecodeError reports that delivered bytes could not be decoded into pixels.
type FrameDecodeError struct {
	Reason string
	Err    error
}

func (e *FrameDecodeError) Error() string { return "failed to decode frame: " + e.Reason }
func (e *FrameDecodeError) Unwrap() error { return e.Err }
