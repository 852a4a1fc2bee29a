package puzzle

import (
	"io"
	"math/rand"
	"time"

	"github.com/ingyamilmolinar/campuzzle/internal/audio"
	game_log "github.com/ingyamilmolinar/campuzzle/internal/log"
)

// Panel is the options panel shown while no game is running. The controller
// toggles it when a game starts and when the puzzle is solved.
type Panel interface {
	Toggle()
}

type selection struct {
	piece            *Piece
	offsetX, offsetY float64
}

// Controller owns the pieces and the play state. It is driven from a single
// goroutine: the host loop calls the pointer, layout and render methods.
type Controller struct {
	video  Video
	tones  audio.Device
	panel  Panel
	rng    *rand.Rand
	logger *game_log.Logger

	frame        Frame
	pieces       []*Piece
	sel          selection
	playing      bool
	panelVisible bool
	difficulty   string
	viewW, viewH float64
}

type Option func(*Controller)

func WithRand(r *rand.Rand) Option { return func(c *Controller) { c.rng = r } }

func WithPanel(p Panel) Option { return func(c *Controller) { c.panel = p } }

func WithLogger(l *game_log.Logger) Option { return func(c *Controller) { c.logger = l } }

// NewController creates an idle controller with the default difficulty and no
// pieces. SetDifficulty or BuildGrid creates them; RecomputeLayout sizes them
// once the video has a size.
func NewController(video Video, tones audio.Device, opts ...Option) *Controller {
	d, _ := LookupDifficulty(DefaultDifficulty)
	c := &Controller{
		video:        video,
		tones:        tones,
		frame:        Frame{Cols: d.Cols, Rows: d.Rows},
		panelVisible: true,
		difficulty:   d.Name,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tones == nil {
		c.tones = audio.Silent{}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = game_log.New(io.Discard, game_log.LevelNone)
	}
	return c
}

/* ───────────────────────── grid ───────────────────────── */

// BuildGrid replaces every piece with rows×cols fresh pieces in row-major
// order, each at its correct position in the current frame.
func (c *Controller) BuildGrid(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		c.logger.Warnf("BuildGrid: ignoring %dx%d grid", cols, rows)
		return
	}
	c.clearSelection()
	c.frame.Rows = rows
	c.frame.Cols = cols
	c.pieces = make([]*Piece, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c.pieces = append(c.pieces, NewPiece(row, col, c.frame))
		}
	}
	c.logger.Infof("BuildGrid: %d pieces (%dx%d)", len(c.pieces), cols, rows)
}

// SetDifficulty switches to a named preset and rebuilds the pieces. A running
// game keeps running with a fresh, solved grid.
func (c *Controller) SetDifficulty(name string) error {
	d, err := LookupDifficulty(name)
	if err != nil {
		return err
	}
	if c.playing {
		c.logger.Warnf("SetDifficulty: %s while playing, progress discarded", d.Name)
	}
	c.difficulty = d.Name
	c.BuildGrid(d.Rows, d.Cols)
	return nil
}

/* ───────────────────────── play state ───────────────────────── */

// Start shuffles the pieces across the viewport and begins a game.
func (c *Controller) Start() {
	c.playing = true
	c.randomize()
	c.togglePanel()
	c.logger.Infof("Start: difficulty=%s pieces=%d", c.difficulty, len(c.pieces))
}

func (c *Controller) randomize() {
	for _, p := range c.pieces {
		p.Correct = false
		p.PlaceAt(
			c.rng.Float64()*(c.viewW-p.Width),
			c.rng.Float64()*(c.viewH-p.Height),
		)
	}
}

// IsComplete reports whether every piece is correct. An empty grid is complete.
func (c *Controller) IsComplete() bool {
	for _, p := range c.pieces {
		if !p.Correct {
			return false
		}
	}
	return true
}

func (c *Controller) togglePanel() {
	c.panelVisible = !c.panelVisible
	if c.panel != nil {
		c.panel.Toggle()
	}
}

/* ───────────────────────── input ───────────────────────── */

// PieceAt returns the topmost piece containing (x,y), or nil.
func (c *Controller) PieceAt(x, y float64) *Piece {
	for i := len(c.pieces) - 1; i >= 0; i-- {
		if c.pieces[i].Contains(x, y) {
			return c.pieces[i]
		}
	}
	return nil
}

func (c *Controller) bringToFront(p *Piece) {
	for i, q := range c.pieces {
		if q == p {
			copy(c.pieces[i:], c.pieces[i+1:])
			c.pieces[len(c.pieces)-1] = p
			return
		}
	}
}

func (c *Controller) selectPiece(p *Piece, x, y float64) {
	c.sel = selection{piece: p, offsetX: x - p.X, offsetY: y - p.Y}
}

func (c *Controller) clearSelection() {
	c.sel = selection{}
}

// PointerDown picks up the topmost piece under the pointer while playing.
func (c *Controller) PointerDown(x, y float64) {
	if !c.playing {
		return
	}
	p := c.PieceAt(x, y)
	if p == nil {
		return
	}
	c.bringToFront(p)
	p.Correct = false
	c.selectPiece(p, x, y)
	c.logger.Debugf("PointerDown: picked piece (%d,%d) at (%.1f,%.1f)", p.Row, p.Col, x, y)
}

// PointerMove drags the selected piece, keeping the grab offset.
func (c *Controller) PointerMove(x, y float64) {
	if c.sel.piece == nil {
		return
	}
	c.sel.piece.PlaceAt(x-c.sel.offsetX, y-c.sel.offsetY)
}

// PointerUp drops the selected piece, snapping it when close enough. Solving
// the last piece ends the game.
func (c *Controller) PointerUp() {
	if !c.playing || c.sel.piece == nil {
		return
	}
	p := c.sel.piece
	defer c.clearSelection()

	if !p.IsNearCorrectPosition() {
		c.logger.Debugf("PointerUp: piece (%d,%d) dropped %.1fpx away", p.Row, p.Col, p.DistanceToCorrect())
		return
	}
	p.SnapToCorrectPosition()
	if c.IsComplete() {
		c.playing = false
		audio.PlayWin(c.tones)
		c.togglePanel()
		c.logger.Infof("PointerUp: puzzle solved (%s)", c.difficulty)
		return
	}
	audio.PlayPlaced(c.tones)
	c.logger.Debugf("PointerUp: piece (%d,%d) placed", p.Row, p.Col)
}

/* ───────────────────────── layout & render ───────────────────────── */

// RecomputeLayout fits the frame to a viewW×viewH viewport using the live
// video size and updates every piece.
func (c *Controller) RecomputeLayout(viewW, viewH float64) {
	c.viewW, c.viewH = viewW, viewH
	vw, vh := c.video.Size()
	if vw <= 0 || vh <= 0 || viewW <= 0 || viewH <= 0 {
		c.logger.Debugf("RecomputeLayout: skipped, view=%.0fx%.0f video=%dx%d", viewW, viewH, vw, vh)
		return
	}
	c.frame = ComputeFrame(c.frame.Cols, c.frame.Rows, viewW, viewH, vw, vh)
	for _, p := range c.pieces {
		p.Update(c.frame)
	}
	c.logger.Debugf("RecomputeLayout: view=%.0fx%.0f frame=%+v", viewW, viewH, c.frame)
}

// RenderFrame draws the frame outline and every piece in draw order.
func (c *Controller) RenderFrame(dst Canvas) {
	dst.Clear()
	dst.StrokeRect(c.frame.X, c.frame.Y, c.frame.Width, c.frame.Height, FrameOutlineWidth, FrameOutlineColor)
	for _, p := range c.pieces {
		p.Render(dst, c.frame, c.video)
	}
}

/* ───────────────────────── accessors ───────────────────────── */

func (c *Controller) Pieces() []*Piece   { return c.pieces }
func (c *Controller) Frame() Frame       { return c.frame }
func (c *Controller) Playing() bool      { return c.playing }
func (c *Controller) Selected() *Piece   { return c.sel.piece }
func (c *Controller) Difficulty() string { return c.difficulty }
func (c *Controller) PanelVisible() bool { return c.panelVisible }

// DragOffset returns the grab offset of the selected piece.
func (c *Controller) DragOffset() (x, y float64, ok bool) {
	if c.sel.piece == nil {
		return 0, 0, false
	}
	return c.sel.offsetX, c.sel.offsetY, true
}
