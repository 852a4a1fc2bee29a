package ui

import (
	"image"
	"io"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/campuzzle/internal/audio"
	"github.com/ingyamilmolinar/campuzzle/internal/camera"
	game_log "github.com/ingyamilmolinar/campuzzle/internal/log"
)

const (
	TestWinW = 1280
	TestWinH = 720
)

var testLogger *game_log.Logger

func init() {
	testLogger = game_log.New(io.Discard, game_log.LevelError)
}

// fakeInput backs the overridable input functions with plain fields.
type fakeInput struct {
	x, y    int
	left    bool
	touches []ebiten.TouchID
	tx, ty  int
	keys    map[ebiten.Key]bool
	shapes  []ebiten.CursorShapeType
}

func installInput(t *testing.T) *fakeInput {
	t.Helper()
	in := &fakeInput{keys: map[ebiten.Key]bool{}}
	restore := SetInputForTest(
		func() (int, int) { return in.x, in.y },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft && in.left },
		func(ids []ebiten.TouchID) []ebiten.TouchID { return append(ids, in.touches...) },
		func(ebiten.TouchID) (int, int) { return in.tx, in.ty },
		func(k ebiten.Key) bool { return in.keys[k] },
		func(s ebiten.CursorShapeType) { in.shapes = append(in.shapes, s) },
	)
	t.Cleanup(restore)
	return in
}

func (in *fakeInput) press(t *testing.T, g *Game, x, y int) {
	t.Helper()
	in.x, in.y, in.left = x, y, true
	mustUpdate(t, g)
}

func (in *fakeInput) release(t *testing.T, g *Game) {
	t.Helper()
	in.left = false
	mustUpdate(t, g)
}

// click presses at (x,y) and releases it on the next tick.
func (in *fakeInput) click(t *testing.T, g *Game, x, y int) {
	t.Helper()
	in.press(t, g, x, y)
	in.release(t, g)
}

func (in *fakeInput) tap(g *Game, k ebiten.Key) error {
	in.keys[k] = true
	defer delete(in.keys, k)
	return g.Update()
}

func (in *fakeInput) lastShape() ebiten.CursorShapeType {
	if len(in.shapes) == 0 {
		return ebiten.CursorShapeDefault
	}
	return in.shapes[len(in.shapes)-1]
}

func mustUpdate(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

type toneCounter struct{ n int }

func (c *toneCounter) PlayTone(freq, vol float64, wave audio.Waveform, when float64) *audio.Tone {
	c.n++
	return audio.NewTone(audio.SampleRate, freq, vol, wave, when)
}

// newTestGame builds a laid-out game over a 640x480 still frame.
func newTestGame(t *testing.T, difficulty string) (*Game, *toneCounter) {
	t.Helper()
	tones := &toneCounter{}
	g, err := New(Config{
		Source:     camera.NewStatic(image.NewRGBA(image.Rect(0, 0, 640, 480))),
		Tones:      tones,
		Difficulty: difficulty,
		Seed:       1,
		Logger:     testLogger,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Layout(TestWinW, TestWinH)
	return g, tones
}

func centre(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}
