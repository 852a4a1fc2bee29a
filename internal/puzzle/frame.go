package puzzle

import "math"

// ScaleFactor is the share of the viewport the frame may occupy along its
// limiting axis.
const ScaleFactor = 0.666

// Frame is the on-screen rectangle the sliced video is mapped into.
type Frame struct {
	Cols, Rows    int
	X, Y          float64
	Width, Height float64
}

// ComputeFrame fits a video of size videoW×videoH into the viewport, centred
// and scaled by ScaleFactor, keeping the video's aspect ratio.
func ComputeFrame(cols, rows int, viewW, viewH float64, videoW, videoH int) Frame {
	scale := ScaleFactor * math.Min(viewW/float64(videoW), viewH/float64(videoH))
	w := scale * float64(videoW)
	h := scale * float64(videoH)
	return Frame{
		Cols:   cols,
		Rows:   rows,
		X:      viewW/2 - w/2,
		Y:      viewH/2 - h/2,
		Width:  w,
		Height: h,
	}
}
