package camera

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// gocvDriver captures frames from a V4L2/DirectShow device through OpenCV's
// VideoCapture. The Mat buffer is reused across grabs and released on Close.
type gocvDriver struct {
	index int
	cap   *gocv.VideoCapture
	mat   gocv.Mat
}

// NewDeviceDriver returns a Driver reading from the camera at the given
// device index.
func NewDeviceDriver(index int) Driver {
	return &gocvDriver{index: index}
}

func (d *gocvDriver) Open() error {
	if d.cap != nil {
		return nil
	}
	vc, err := gocv.OpenVideoCapture(d.index)
	if err != nil {
		return &StreamOpenError{Reason: fmt.Sprintf("device %d: %v", d.index, err), Err: err}
	}
	if !vc.IsOpened() {
		_ = vc.Close()
		return &StreamOpenError{Reason: fmt.Sprintf("device %d is not available", d.index)}
	}
	d.cap = vc
	d.mat = gocv.NewMat()
	return nil
}

func (d *gocvDriver) Close() error {
	if d.cap == nil {
		return nil
	}
	_ = d.mat.Close()
	err := d.cap.Close()
	d.cap = nil
	if err != nil {
		return &StreamCloseError{Reason: err.Error(), Err: err}
	}
	return nil
}

func (d *gocvDriver) Opened() bool {
	return d.cap != nil && d.cap.IsOpened()
}

func (d *gocvDriver) Grab() (image.Image, error) {
	if d.cap == nil {
		return nil, &FrameGrabError{Reason: "stream is not open"}
	}
	if ok := d.cap.Read(&d.mat); !ok {
		return nil, &FrameGrabError{Reason: fmt.Sprintf("device %d returned no frame", d.index)}
	}
	if d.mat.Empty() {
		return nil, &FrameGrabError{Reason: "empty frame buffer"}
	}
	img, err := d.mat.ToImage()
	if err != nil {
		return nil, &FrameDecodeError{Reason: err.Error(), Err: err}
	}
	return img, nil
}
