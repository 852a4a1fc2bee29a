package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/campuzzle/internal/camera"
)

// videoTexture mirrors the latest camera frame in a GPU image. Size reports
// the source's size so layout works before the first upload.
type videoTexture struct {
	src camera.Source
	img *ebiten.Image
	seq uint64
}

func newVideoTexture(src camera.Source) *videoTexture {
	return &videoTexture{src: src}
}

func (v *videoTexture) Size() (int, int) { return v.src.Size() }

// Texture returns the uploaded frame, or nil before the first refresh.
func (v *videoTexture) Texture() *ebiten.Image { return v.img }

// refresh uploads the current frame if the source published a new one.
// It must run on the game goroutine, inside Draw.
func (v *videoTexture) refresh() {
	frame, seq := v.src.Frame()
	if frame == nil || seq == v.seq {
		return
	}
	b := frame.Bounds()
	if b.Empty() {
		return
	}
	if v.img == nil || v.img.Bounds().Size() != b.Size() {
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	v.img.WritePixels(tightPixels(frame))
	v.seq = seq
}

// tightPixels returns img's pixels with no row padding and a zero origin, as
// WritePixels expects.
func tightPixels(img *image.RGBA) []byte {
	b := img.Bounds()
	rowLen := 4 * b.Dx()
	if img.Stride == rowLen && b.Min == (image.Point{}) {
		return img.Pix[:rowLen*b.Dy()]
	}
	out := make([]byte, 0, rowLen*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		out = append(out, img.Pix[off:off+rowLen]...)
	}
	return out
}
