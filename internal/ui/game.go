package ui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ingyamilmolinar/campuzzle/internal/audio"
	"github.com/ingyamilmolinar/campuzzle/internal/camera"
	game_log "github.com/ingyamilmolinar/campuzzle/internal/log"
	"github.com/ingyamilmolinar/campuzzle/internal/puzzle"
)

const commandQueueSize = 16

// ErrFyneUnavailable is returned when the Fyne panel is requested from a
// binary built without the fyne tag.
var ErrFyneUnavailable = errors.New("fyne panel not built in (rebuild with -tags fyne)")

// startFynePanel is set by the fyne-tagged build.
var startFynePanel func(g *Game) error

// FyneAvailable reports whether this binary can open the Fyne control window.
func FyneAvailable() bool { return startFynePanel != nil }

var levelKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Config holds the collaborators and options of a Game.
type Config struct {
	Source     camera.Source
	Tones      audio.Device
	Difficulty string
	Seed       int64 // 0 picks a time based seed
	Logger     *game_log.Logger
	Debug      bool
}

// Game implements ebiten.Game on top of a puzzle.Controller.
type Game struct {
	ctrl   *puzzle.Controller
	video  *videoTexture
	panel  *OptionsPanel
	logger *game_log.Logger
	cmds   chan func()

	winW, winH     int
	videoW, videoH int
	pointerDown    bool
	dragging       bool
	debug          bool
	cursor         ebiten.CursorShapeType
	stopped        atomic.Bool
	frame          int64
}

// New wires a controller to the source and tone device. The difficulty must
// name a preset.
func New(cfg Config) (*Game, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("ui: %w: no source", camera.ErrUnavailable)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = game_log.New(io.Discard, game_log.LevelNone)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		video:  newVideoTexture(cfg.Source),
		logger: logger.With("GAME"),
		cmds:   make(chan func(), commandQueueSize),
		debug:  cfg.Debug,
	}
	g.panel = NewOptionsPanel(puzzle.DefaultDifficulty, g.setDifficulty, g.startGame)
	g.ctrl = puzzle.NewController(g.video, cfg.Tones,
		puzzle.WithRand(rand.New(rand.NewSource(seed))),
		puzzle.WithPanel(g.panel),
		puzzle.WithLogger(logger.With("PUZZLE")),
	)
	name := cfg.Difficulty
	if name == "" {
		name = puzzle.DefaultDifficulty
	}
	if err := g.ctrl.SetDifficulty(name); err != nil {
		return nil, err
	}
	g.panel.SetCurrent(g.ctrl.Difficulty())
	g.logger.Infof("New: difficulty=%s seed=%d", g.ctrl.Difficulty(), seed)
	return g, nil
}

// Controller exposes the puzzle state, mainly for tests and tooling.
func (g *Game) Controller() *puzzle.Controller { return g.ctrl }

// OpenFynePanel starts the optional Fyne control window.
func (g *Game) OpenFynePanel() error {
	if startFynePanel == nil {
		return ErrFyneUnavailable
	}
	return startFynePanel(g)
}

/* ───────────────────────── commands ───────────────────────── */

// post queues fn to run on the game goroutine at the next Update. It never
// blocks; commands beyond the queue size are dropped.
func (g *Game) post(fn func()) bool {
	select {
	case g.cmds <- fn:
		return true
	default:
		g.logger.Warnf("post: command queue full, dropping command")
		return false
	}
}

// RequestStart asks the game to start from another goroutine.
func (g *Game) RequestStart() { g.post(g.startGame) }

// RequestDifficulty asks the game to switch presets from another goroutine.
func (g *Game) RequestDifficulty(name string) { g.post(func() { g.setDifficulty(name) }) }

// Stop ends the game loop at the next Update. Safe from any goroutine.
func (g *Game) Stop() {
	if g.stopped.CompareAndSwap(false, true) {
		g.logger.Infof("Stop: requested")
	}
}

func (g *Game) drainCommands() {
	for {
		select {
		case fn := <-g.cmds:
			fn()
		default:
			return
		}
	}
}

func (g *Game) startGame() {
	if g.ctrl.Playing() {
		g.logger.Debugf("startGame: already playing")
		return
	}
	g.ctrl.Start()
}

func (g *Game) setDifficulty(name string) {
	if err := g.ctrl.SetDifficulty(name); err != nil {
		g.logger.Errorf("setDifficulty: %v", err)
		return
	}
	g.panel.SetCurrent(g.ctrl.Difficulty())
	g.ctrl.RecomputeLayout(float64(g.winW), float64(g.winH))
}

/* ───────────────────────── ebiten.Game ───────────────────────── */

func (g *Game) Layout(w, h int) (int, int) {
	if w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		g.panel.SetViewport(w, h)
		g.relayout()
		g.logger.Infof("Layout: winW: %d, winH: %d, frame: %+v", w, h, g.ctrl.Frame())
	}
	return w, h
}

func (g *Game) relayout() {
	g.videoW, g.videoH = g.video.Size()
	g.ctrl.RecomputeLayout(float64(g.winW), float64(g.winH))
}

func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}
	g.drainCommands()

	if w, h := g.video.Size(); w != g.videoW || h != g.videoH {
		g.logger.Infof("Update: video size %dx%d -> %dx%d", g.videoW, g.videoH, w, h)
		g.relayout()
	}

	g.handleKeys()
	if g.stopped.Load() {
		return ebiten.Termination
	}
	g.handlePointer()
	g.updateCursor()
	g.frame++
	return nil
}

func (g *Game) handleKeys() {
	if isKeyJustPressed(ebiten.KeyEscape) {
		g.Stop()
		return
	}
	if isKeyJustPressed(ebiten.KeySpace) || isKeyJustPressed(ebiten.KeyEnter) {
		g.startGame()
	}
	names := puzzle.DifficultyNames()
	for i, k := range levelKeys {
		if i < len(names) && isKeyJustPressed(k) {
			g.setDifficulty(names[i])
		}
	}
}

func (g *Game) handlePointer() {
	p := pollPointer()
	wasDown := g.pointerDown
	g.pointerDown = p.pressed
	x, y := float64(p.x), float64(p.y)

	switch {
	case p.pressed && !wasDown:
		if g.panel.Handle(p.x, p.y, true) {
			return
		}
		g.ctrl.PointerDown(x, y)
		g.dragging = g.ctrl.Selected() != nil
		if g.dragging {
			g.logger.Debugf("handlePointer: drag start at (%d,%d) touch=%t", p.x, p.y, p.touch)
		}
	case p.pressed && wasDown:
		if g.dragging {
			g.ctrl.PointerMove(x, y)
			return
		}
		g.panel.Handle(p.x, p.y, true)
	case !p.pressed && wasDown:
		g.panel.Handle(p.x, p.y, false)
		if g.dragging {
			g.ctrl.PointerUp()
			g.dragging = false
		}
	default:
		g.panel.Handle(p.x, p.y, false)
	}
}

// updateCursor shows the move cursor while a piece is held.
func (g *Game) updateCursor() {
	shape := ebiten.CursorShapeDefault
	if g.ctrl.Selected() != nil {
		shape = ebiten.CursorShapeMove
	}
	if shape != g.cursor {
		setCursorShape(shape)
		g.cursor = shape
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.video.refresh()
	g.ctrl.RenderFrame(&screenCanvas{dst: screen})
	g.panel.Draw(screen)
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  %s  pieces %d  playing %t",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.ctrl.Difficulty(), len(g.ctrl.Pieces()), g.ctrl.Playing()))
	}
}
