package puzzle

import (
	"errors"
	"testing"
)

var twoByTwo = Frame{Cols: 2, Rows: 2, X: 0, Y: 0, Width: 200, Height: 100}

func TestBuildGridCoversEveryPreset(t *testing.T) {
	c := NewController(fakeVideo{w: 640, h: 480}, nil, WithLogger(testLogger))
	c.RecomputeLayout(1280, 720)
	for _, d := range Difficulties() {
		if err := c.SetDifficulty(d.Name); err != nil {
			t.Fatalf("%s: %v", d.Name, err)
		}
		ps := c.Pieces()
		if len(ps) != d.Cols*d.Rows {
			t.Fatalf("%s: %d pieces", d.Name, len(ps))
		}
		seen := map[[2]int]bool{}
		for i, p := range ps {
			if p.Row != i/d.Cols || p.Col != i%d.Cols {
				t.Fatalf("%s: piece %d at (%d,%d), want row-major", d.Name, i, p.Row, p.Col)
			}
			seen[[2]int{p.Row, p.Col}] = true
			if !p.Correct || p.DistanceToCorrect() != 0 {
				t.Fatalf("%s: fresh piece misplaced: %+v", d.Name, p)
			}
		}
		if len(seen) != d.Cols*d.Rows {
			t.Fatalf("%s: duplicate cells", d.Name)
		}
		if c.Difficulty() != d.Name {
			t.Fatalf("difficulty=%s", c.Difficulty())
		}
	}
}

func TestBuildGridIgnoresEmptyGrid(t *testing.T) {
	c := newTestController(twoByTwo, &toneRecorder{}, &panelCounter{})
	c.BuildGrid(0, 3)
	if len(c.Pieces()) != 4 {
		t.Fatalf("pieces=%d", len(c.Pieces()))
	}
}

func TestTwoByTwoLayout(t *testing.T) {
	c := newTestController(twoByTwo, &toneRecorder{}, &panelCounter{})
	want := [][2]float64{{0, 0}, {100, 0}, {0, 50}, {100, 50}}
	for i, p := range c.Pieces() {
		if p.CorrectX != want[i][0] || p.CorrectY != want[i][1] {
			t.Fatalf("piece %d correct=(%v,%v) want %v", i, p.CorrectX, p.CorrectY, want[i])
		}
		if p.Width != 100 || p.Height != 50 {
			t.Fatalf("piece %d size=%vx%v", i, p.Width, p.Height)
		}
	}
}

func TestPointerDownPicksTopmost(t *testing.T) {
	c := newTestController(twoByTwo, &toneRecorder{}, &panelCounter{})
	c.playing = true
	ps := c.Pieces()
	ps[0].PlaceAt(10, 10)
	ps[3].PlaceAt(20, 20)
	bottom, top := ps[0], ps[3]

	c.PointerDown(25, 25)
	if c.Selected() != top {
		t.Fatalf("selected %+v want topmost", c.Selected())
	}
	c.PointerUp()

	// bring the lower piece up by clicking where only it lies
	c.PointerDown(12, 12)
	if c.Selected() != bottom {
		t.Fatalf("selected %+v want bottom piece", c.Selected())
	}
	if got := c.Pieces()[len(c.Pieces())-1]; got != bottom {
		t.Fatalf("picked piece not moved to front")
	}
	if len(c.Pieces()) != 4 {
		t.Fatalf("bringToFront changed piece count: %d", len(c.Pieces()))
	}
	c.PointerUp()
	c.PointerDown(25, 25)
	if c.Selected() != bottom {
		t.Fatalf("overlap should now resolve to the front piece")
	}
}

func TestPointerDownIgnoredWhenIdle(t *testing.T) {
	c := newTestController(twoByTwo, &toneRecorder{}, &panelCounter{})
	c.PointerDown(10, 10)
	if c.Selected() != nil {
		t.Fatalf("selection while idle")
	}
}

func TestPointerDownMissesEmptySpace(t *testing.T) {
	c := newTestController(twoByTwo, &toneRecorder{}, &panelCounter{})
	c.playing = true
	c.PointerDown(500, 500)
	if c.Selected() != nil {
		t.Fatalf("selected a piece in empty space")
	}
}

func TestDragKeepsGrabOffset(t *testing.T) {
	c := newTestController(twoByTwo, &toneRecorder{}, &panelCounter{})
	c.playing = true
	p := c.Pieces()[0]
	c.PointerDown(30, 40)
	if ox, oy, ok := c.DragOffset(); !ok || ox != 30 || oy != 40 {
		t.Fatalf("offset=(%v,%v,%v)", ox, oy, ok)
	}
	if p.Correct {
		t.Fatalf("picked piece still flagged correct")
	}
	c.PointerMove(130, 140)
	if p.X != 100 || p.Y != 100 {
		t.Fatalf("piece at (%v,%v) want (100,100)", p.X, p.Y)
	}
}

func TestPointerMoveWithoutSelection(t *testing.T) {
	c := newTestController(twoByTwo, &toneRecorder{}, &panelCounter{})
	c.playing = true
	before := *c.Pieces()[0]
	c.PointerMove(300, 300)
	if *c.Pieces()[0] != before {
		t.Fatalf("piece moved without a selection")
	}
}

func TestPointerUpSnapsAndPlaysPlaced(t *testing.T) {
	rec := &toneRecorder{}
	c := newTestController(twoByTwo, rec, &panelCounter{})
	c.Start()
	p := c.Pieces()[3]
	c.bringToFront(p)
	c.PointerDown(p.X+1, p.Y+1)
	c.PointerMove(p.CorrectX+1+5, p.CorrectY+1+5) // ~7px off, threshold 20
	c.PointerUp()
	if p.X != p.CorrectX || p.Y != p.CorrectY || !p.Correct {
		t.Fatalf("piece not snapped: %+v", p)
	}
	if c.Selected() != nil {
		t.Fatalf("selection kept after drop")
	}
	if len(rec.tones) != 1 || rec.freqs[0] != 440 {
		t.Fatalf("tones=%v want one placed tone", rec.freqs)
	}
	if !c.Playing() {
		t.Fatalf("game ended early")
	}
}

func TestPointerUpFarDropLeavesPiece(t *testing.T) {
	rec := &toneRecorder{}
	c := newTestController(twoByTwo, rec, &panelCounter{})
	c.Start()
	p := c.Pieces()[0]
	c.bringToFront(p)
	c.PointerDown(p.X+1, p.Y+1)
	c.PointerMove(p.CorrectX+1+40, p.CorrectY+1)
	c.PointerUp()
	if p.Correct || p.X != p.CorrectX+40 {
		t.Fatalf("far drop snapped: %+v", p)
	}
	if len(rec.tones) != 0 {
		t.Fatalf("unexpected tones %v", rec.freqs)
	}
	if c.Selected() != nil {
		t.Fatalf("selection kept after drop")
	}
}

func TestSolvingEndsGame(t *testing.T) {
	rec := &toneRecorder{}
	panel := &panelCounter{}
	c := newTestController(twoByTwo, rec, panel)
	c.Start()
	if !c.Playing() || c.PanelVisible() || panel.toggles != 1 {
		t.Fatalf("after Start: playing=%v panel=%v toggles=%d", c.Playing(), c.PanelVisible(), panel.toggles)
	}
	pieces := append([]*Piece(nil), c.Pieces()...)
	for _, p := range pieces {
		c.bringToFront(p)
		c.PointerDown(p.X+1, p.Y+1)
		c.PointerMove(p.CorrectX+1, p.CorrectY+1)
		c.PointerUp()
	}
	if c.Playing() {
		t.Fatalf("game still running after last piece")
	}
	if !c.IsComplete() {
		t.Fatalf("puzzle not complete")
	}
	if !c.PanelVisible() || panel.toggles != 2 {
		t.Fatalf("panel visible=%v toggles=%d", c.PanelVisible(), panel.toggles)
	}
	// three placed tones then the six-note win melody
	if len(rec.tones) != 9 {
		t.Fatalf("tones=%d want 9", len(rec.tones))
	}
	win := rec.freqs[3:]
	want := []float64{440, 880, 220, 440, 220, 880}
	for i := range want {
		if win[i] != want[i] {
			t.Fatalf("win melody=%v want %v", win, want)
		}
	}
}

func TestPointerUpIgnoredWhenIdle(t *testing.T) {
	rec := &toneRecorder{}
	c := newTestController(twoByTwo, rec, &panelCounter{})
	c.PointerUp()
	if len(rec.tones) != 0 {
		t.Fatalf("PointerUp while idle played %v", rec.freqs)
	}
}

func TestStartRandomizesWithinViewport(t *testing.T) {
	c := newTestController(Frame{Cols: 4, Rows: 3, Width: 400, Height: 300}, &toneRecorder{}, &panelCounter{})
	c.Start()
	moved := 0
	for _, p := range c.Pieces() {
		if p.Correct {
			t.Fatalf("piece still flagged correct after Start")
		}
		if p.X < 0 || p.X > c.viewW-p.Width || p.Y < 0 || p.Y > c.viewH-p.Height {
			t.Fatalf("piece outside viewport: %+v", p)
		}
		if p.X != p.CorrectX || p.Y != p.CorrectY {
			moved++
		}
	}
	if moved == 0 {
		t.Fatalf("no piece moved")
	}
}

func TestSetDifficultyInvalid(t *testing.T) {
	c := newTestController(twoByTwo, &toneRecorder{}, &panelCounter{})
	err := c.SetDifficulty("impossible")
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("err=%v", err)
	}
	if len(c.Pieces()) != 4 {
		t.Fatalf("invalid difficulty touched the grid")
	}
}

func TestSetDifficultyWhilePlaying(t *testing.T) {
	c := newTestController(twoByTwo, &toneRecorder{}, &panelCounter{})
	c.Start()
	if err := c.SetDifficulty("hard"); err != nil {
		t.Fatal(err)
	}
	if !c.Playing() {
		t.Fatalf("difficulty change stopped the game")
	}
	if len(c.Pieces()) != 35 || !c.IsComplete() {
		t.Fatalf("pieces=%d complete=%v", len(c.Pieces()), c.IsComplete())
	}
}

func TestIsCompleteEmpty(t *testing.T) {
	c := NewController(fakeVideo{}, nil)
	if !c.IsComplete() {
		t.Fatalf("empty grid should be complete")
	}
}

func TestRecomputeLayoutSkipsWithoutVideo(t *testing.T) {
	c := NewController(fakeVideo{}, nil, WithLogger(testLogger))
	c.BuildGrid(3, 4)
	before := c.Frame()
	c.RecomputeLayout(1000, 1000)
	if c.Frame() != before {
		t.Fatalf("frame changed without video size: %+v", c.Frame())
	}
}

func TestRecomputeLayoutMovesCorrectPieces(t *testing.T) {
	c := NewController(fakeVideo{w: 640, h: 480}, nil, WithLogger(testLogger))
	c.RecomputeLayout(1000, 1000)
	c.BuildGrid(3, 4)
	loose := c.Pieces()[0]
	loose.Correct = false
	loose.PlaceAt(1, 1)

	c.RecomputeLayout(2000, 2000)
	f := c.Frame()
	if !approx(f.Width, 1332) {
		t.Fatalf("frame width=%v", f.Width)
	}
	for i, p := range c.Pieces() {
		if p.Width != f.Width/float64(f.Cols) || p.Height != f.Height/float64(f.Rows) {
			t.Fatalf("piece %d size=%vx%v want %vx%v", i, p.Width, p.Height, f.Width/float64(f.Cols), f.Height/float64(f.Rows))
		}
		if p != loose && (p.X != p.CorrectX || p.Y != p.CorrectY) {
			t.Fatalf("correct piece %d not relaid: %+v", i, p)
		}
	}
	if loose.X != 1 || loose.Y != 1 {
		t.Fatalf("loose piece moved: %+v", loose)
	}
}

func TestRenderFrameOrder(t *testing.T) {
	c := NewController(fakeVideo{w: 640, h: 480}, nil, WithLogger(testLogger))
	c.RecomputeLayout(1000, 1000)
	c.BuildGrid(3, 4)
	var canvas recordingCanvas
	c.RenderFrame(&canvas)
	if len(canvas.calls) != 2+2*12 {
		t.Fatalf("calls=%d", len(canvas.calls))
	}
	if canvas.calls[0].op != "clear" {
		t.Fatalf("first call %q", canvas.calls[0].op)
	}
	outline := canvas.calls[1]
	f := c.Frame()
	if outline.op != "stroke" || outline.x != f.X || outline.w != f.Width || outline.col != FrameOutlineColor {
		t.Fatalf("outline=%+v", outline)
	}
	// piece (1,2) is index 6 in row-major order
	img := canvas.calls[2+2*6]
	if img.op != "image" || img.sx != 320 || img.sy != 160 || img.sw != 160 || img.sh != 160 {
		t.Fatalf("piece (1,2) source=%+v", img)
	}
}
