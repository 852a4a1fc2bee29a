// Package webcam captures frames from a local camera with OpenCV.
package webcam

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/ingyamilmolinar/campuzzle/internal/camera"
	game_log "github.com/ingyamilmolinar/campuzzle/internal/log"
)

const (
	retryDelay  = 15 * time.Millisecond
	missLogEach = 120 // empty reads between warnings
)

// Webcam is a camera.Source fed by a capture goroutine.
type Webcam struct {
	*camera.Feed

	capture  *gocv.VideoCapture
	maxWidth int
	logger   *game_log.Logger

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Open starts capturing from the given device index. Frames wider than
// maxWidth are downscaled.
func Open(device, maxWidth int, logger *game_log.Logger) (*Webcam, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("%w: open device %d: %v", camera.ErrUnavailable, device, err)
	}
	if !vc.IsOpened() {
		_ = vc.Close()
		return nil, fmt.Errorf("%w: device %d could not be opened", camera.ErrUnavailable, device)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Webcam{
		Feed:     camera.NewFeed(),
		capture:  vc,
		maxWidth: maxWidth,
		logger:   logger,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	logger.Infof("device %d opened", device)
	go w.run(ctx)
	return w, nil
}

func (w *Webcam) run(ctx context.Context) {
	defer close(w.done)
	mat := gocv.NewMat()
	defer mat.Close()

	misses := 0
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if ok := w.capture.Read(&mat); !ok || mat.Empty() {
			misses++
			if misses%missLogEach == 0 {
				w.logger.Warnf("no frame after %d reads", misses)
			}
			time.Sleep(retryDelay)
			continue
		}
		img, err := mat.ToImage()
		if err != nil {
			w.logger.Warnf("frame conversion failed: %v", err)
			continue
		}
		if _, seq := w.Frame(); seq == 0 {
			b := img.Bounds()
			w.logger.Infof("first frame: %dx%d", b.Dx(), b.Dy())
		}
		w.Publish(camera.Fit(img, w.maxWidth))
	}
}

// Close stops the capture goroutine and releases the device.
func (w *Webcam) Close() error {
	w.closeOnce.Do(func() {
		w.cancel()
		<-w.done
		w.closeErr = w.capture.Close()
	})
	return w.closeErr
}
