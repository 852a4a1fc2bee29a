// Package camera defines the video source consumed by the game and the
// one-shot acquisition that waits for its first frame.
package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"
)

// ErrUnavailable reports that no usable video source could be acquired:
// permission denied, no device, or no frame before the deadline.
var ErrUnavailable = errors.New("camera unavailable")

// DefaultTimeout bounds the wait for the first frame.
const DefaultTimeout = 10 * time.Second

// Source is a live video feed.
type Source interface {
	// Size returns the intrinsic frame size; zero until the first frame.
	Size() (w, h int)
	// Frame returns the latest frame and a sequence number that changes
	// whenever a new frame is published. The image must not be modified.
	Frame() (*image.RGBA, uint64)
	// Ready is closed once the first frame is decodable.
	Ready() <-chan struct{}
	Close() error
}

// Opener starts a Source.
type Opener func() (Source, error)

// Request opens a source and waits until its first frame is ready. Every
// failure wraps ErrUnavailable and leaves no source open.
func Request(ctx context.Context, open Opener, timeout time.Duration) (Source, error) {
	src, err := open()
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case <-src.Ready():
		return src, nil
	case <-ctx.Done():
		_ = src.Close()
		return nil, fmt.Errorf("%w: waiting for first frame: %v", ErrUnavailable, ctx.Err())
	}
}
