package camera

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Static serves one still image as a never-changing video feed.
type Static struct {
	frame *image.RGBA
	ready chan struct{}
}

// NewStatic wraps img; the source is ready immediately.
func NewStatic(img image.Image) *Static {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	ready := make(chan struct{})
	close(ready)
	return &Static{frame: rgba, ready: ready}
}

// OpenImage decodes a PNG or JPEG file into a Static source.
func OpenImage(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("image %s is empty", path)
	}
	return NewStatic(img), nil
}

func (s *Static) Size() (int, int) {
	b := s.frame.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Static) Frame() (*image.RGBA, uint64) { return s.frame, 1 }

func (s *Static) Ready() <-chan struct{} { return s.ready }

func (s *Static) Close() error { return nil }
