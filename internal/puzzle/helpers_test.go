package puzzle

import (
	"image/color"
	"io"
	"math"
	"math/rand"

	"github.com/ingyamilmolinar/campuzzle/internal/audio"
	game_log "github.com/ingyamilmolinar/campuzzle/internal/log"
)

var testLogger *game_log.Logger

func init() {
	testLogger = game_log.New(io.Discard, game_log.LevelError)
}

type fakeVideo struct{ w, h int }

func (v fakeVideo) Size() (int, int) { return v.w, v.h }

type toneRecorder struct {
	tones []*audio.Tone
	freqs []float64
}

func (r *toneRecorder) PlayTone(freq, vol float64, wave audio.Waveform, when float64) *audio.Tone {
	t := audio.NewTone(audio.SampleRate, freq, vol, wave, when)
	r.tones = append(r.tones, t)
	r.freqs = append(r.freqs, freq)
	return t
}

type canvasCall struct {
	op             string
	x, y, w, h     float64
	sx, sy, sw, sh float64
	lineWidth      float64
	col            color.Color
}

type recordingCanvas struct {
	calls []canvasCall
}

func (c *recordingCanvas) Clear() { c.calls = append(c.calls, canvasCall{op: "clear"}) }

func (c *recordingCanvas) StrokeRect(x, y, w, h, lineWidth float64, col color.Color) {
	c.calls = append(c.calls, canvasCall{op: "stroke", x: x, y: y, w: w, h: h, lineWidth: lineWidth, col: col})
}

func (c *recordingCanvas) DrawImageRegion(src Video, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	c.calls = append(c.calls, canvasCall{op: "image", sx: sx, sy: sy, sw: sw, sh: sh, x: dx, y: dy, w: dw, h: dh})
}

type panelCounter struct{ toggles int }

func (p *panelCounter) Toggle() { p.toggles++ }

// newTestController returns a controller with a fixed frame and viewport, so
// tests don't depend on ComputeFrame's scaling.
func newTestController(f Frame, rec *toneRecorder, panel *panelCounter) *Controller {
	c := NewController(fakeVideo{w: 640, h: 480}, rec,
		WithRand(rand.New(rand.NewSource(1))),
		WithLogger(testLogger),
		WithPanel(panel),
	)
	c.frame = f
	c.viewW, c.viewH = 800, 600
	c.BuildGrid(f.Rows, f.Cols)
	return c
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
