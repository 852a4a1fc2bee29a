package puzzle

import "image/color"

// Video is the live source pieces sample from.
type Video interface {
	Size() (w, h int)
}

// Canvas is the drawing surface the game renders onto.
type Canvas interface {
	Clear()
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)
	// DrawImageRegion draws the (sx,sy,sw,sh) region of src scaled into (dx,dy,dw,dh).
	DrawImageRegion(src Video, sx, sy, sw, sh, dx, dy, dw, dh float64)
}

var (
	PieceBorderColor  = color.RGBA{0x55, 0x55, 0x55, 0xff}
	FrameOutlineColor = color.RGBA{0x99, 0x99, 0x99, 0xff}
)

const (
	PieceBorderWidth  = 2
	FrameOutlineWidth = 1
)
