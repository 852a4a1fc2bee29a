package camera

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type pendingSource struct {
	ready  chan struct{}
	closed bool
}

func (p *pendingSource) Size() (int, int)             { return 0, 0 }
func (p *pendingSource) Frame() (*image.RGBA, uint64) { return nil, 0 }
func (p *pendingSource) Ready() <-chan struct{}       { return p.ready }
func (p *pendingSource) Close() error                 { p.closed = true; return nil }

func TestRequestWaitsForFirstFrame(t *testing.T) {
	src := &pendingSource{ready: make(chan struct{})}
	go func() {
		time.Sleep(10 * time.Millisecond)
		close(src.ready)
	}()
	got, err := Request(context.Background(), func() (Source, error) { return src, nil }, time.Second)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got != Source(src) {
		t.Fatalf("unexpected source %v", got)
	}
}

func TestRequestTimesOut(t *testing.T) {
	src := &pendingSource{ready: make(chan struct{})}
	_, err := Request(context.Background(), func() (Source, error) { return src, nil }, 10*time.Millisecond)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err=%v want ErrUnavailable", err)
	}
	if !src.closed {
		t.Fatalf("source left open after timeout")
	}
}

func TestRequestCancelled(t *testing.T) {
	src := &pendingSource{ready: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Request(ctx, func() (Source, error) { return src, nil }, time.Second)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err=%v want ErrUnavailable", err)
	}
	if !src.closed {
		t.Fatalf("source left open after cancel")
	}
}

func TestRequestOpenFailure(t *testing.T) {
	cause := errors.New("permission denied")
	_, err := Request(context.Background(), func() (Source, error) { return nil, cause }, time.Second)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err=%v want ErrUnavailable", err)
	}
	wrapped := errors.New("x")
	_, err = Request(context.Background(), func() (Source, error) {
		return nil, errors.Join(ErrUnavailable, wrapped)
	}, time.Second)
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, wrapped) {
		t.Fatalf("already-wrapped error altered: %v", err)
	}
}

func TestStaticSource(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 9, 8))
	img.Set(5, 5, color.NRGBA{R: 255, A: 255})
	s := NewStatic(img)
	w, h := s.Size()
	if w != 4 || h != 3 {
		t.Fatalf("size=%dx%d want 4x3", w, h)
	}
	frame, seq := s.Frame()
	if seq == 0 || frame.Bounds().Min != (image.Point{}) {
		t.Fatalf("frame bounds=%v seq=%d", frame.Bounds(), seq)
	}
	if r, _, _, _ := frame.At(0, 0).RGBA(); r != 0xffff {
		t.Fatalf("pixel not copied, r=%d", r)
	}
	select {
	case <-s.Ready():
	default:
		t.Fatalf("static source not ready")
	}
}

func TestOpenImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 9))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s, err := OpenImage(path)
	if err != nil {
		t.Fatalf("OpenImage: %v", err)
	}
	if w, h := s.Size(); w != 16 || h != 9 {
		t.Fatalf("size=%dx%d", w, h)
	}
	if _, err := OpenImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
