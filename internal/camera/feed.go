package camera

import (
	"image"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// Feed holds the most recent frame of a live source. A producer goroutine
// calls Publish; the render loop reads with Frame.
type Feed struct {
	mu    sync.RWMutex
	frame *image.RGBA
	seq   uint64
	ready chan struct{}
	once  sync.Once
}

func NewFeed() *Feed {
	return &Feed{ready: make(chan struct{})}
}

// Publish replaces the current frame. The first call closes Ready.
func (f *Feed) Publish(img *image.RGBA) {
	if img == nil {
		return
	}
	f.mu.Lock()
	f.frame = img
	f.seq++
	f.mu.Unlock()
	f.once.Do(func() { close(f.ready) })
}

func (f *Feed) Size() (int, int) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.frame == nil {
		return 0, 0
	}
	b := f.frame.Bounds()
	return b.Dx(), b.Dy()
}

func (f *Feed) Frame() (*image.RGBA, uint64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.frame, f.seq
}

func (f *Feed) Ready() <-chan struct{} { return f.ready }

// Fit converts img to a zero-origin RGBA no wider than maxWidth, keeping the
// aspect ratio. maxWidth <= 0 disables scaling.
func Fit(img image.Image, maxWidth int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxWidth > 0 && w > maxWidth {
		h = h * maxWidth / w
		if h < 1 {
			h = 1
		}
		w = maxWidth
	}
	if rgba, ok := img.(*image.RGBA); ok && w == b.Dx() && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}
	return dst
}
