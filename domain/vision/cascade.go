package vision

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"
)

// Cascade is the OpenCV Haar-cascade Model backend. The classifier weights
// are loaded once from a named model file; a missing or corrupt file is a
// startup failure with no fallback.
//
// Params mapping: the multi-scale search factor is the inverse of
// PyramidScale, the minimum neighbour count is derived from ScoreThreshold,
// and MinFaceSize bounds the smallest window. The cascade has no sliding
// window stride, so WindowStepX/Y is not consulted.
type Cascade struct {
	cc     gocv.CascadeClassifier
	params Params
}

// LoadCascade reads classifier weights from path.
func LoadCascade(path string, params Params) (*Cascade, error) {
	cc := gocv.NewCascadeClassifier()
	if !cc.Load(path) {
		_ = cc.Close()
		return nil, fmt.Errorf("load cascade model %q", path)
	}
	return &Cascade{cc: cc, params: params.Normalize()}, nil
}

// Detect runs the classifier over the luminance frame.
func (c *Cascade) Detect(gray *image.Gray) []image.Rectangle {
	if gray == nil {
		return nil
	}
	mat, err := gocv.ImageGrayToMatGray(gray)
	if err != nil {
		return nil
	}
	defer mat.Close()

	scale := 1.0 / c.params.PyramidScale
	neighbors := int(math.Round(c.params.ScoreThreshold))
	if neighbors < 1 {
		neighbors = 1
	}
	minSize := image.Pt(c.params.MinFaceSize, c.params.MinFaceSize)
	return c.cc.DetectMultiScaleWithParams(mat, scale, neighbors, 0, minSize, image.Pt(0, 0))
}

// Close releases the classifier resources.
func (c *Cascade) Close() error {
	return c.cc.Close()
}

var _ Model = (*Cascade)(nil)
