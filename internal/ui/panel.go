package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/campuzzle/internal/puzzle"
)

const (
	panelMaxW   = 420
	panelH      = 180
	panelMargin = 20
	buttonPad   = 6
)

const hintText = "Space: start   1-4: difficulty   Esc: quit"

// OptionsPanel is the in-game overlay with the difficulty choice and the
// start button. It is shown while no game is running.
type OptionsPanel struct {
	bounds  image.Rectangle
	visible bool
	current string

	levels []*Button
	start  *Button
	layout *GridLayout
}

// NewOptionsPanel creates a visible panel. onLevel receives a preset name.
func NewOptionsPanel(current string, onLevel func(string), onStart func()) *OptionsPanel {
	p := &OptionsPanel{visible: true, current: current}
	for _, d := range puzzle.Difficulties() {
		name := d.Name
		p.levels = append(p.levels, NewButton(name, levelStyle, func() { onLevel(name) }))
	}
	p.start = NewButton("Start", startStyle, onStart)
	return p
}

// Toggle implements puzzle.Panel.
func (p *OptionsPanel) Toggle() { p.visible = !p.visible }

func (p *OptionsPanel) Visible() bool { return p.visible }

// SetCurrent highlights the chosen preset.
func (p *OptionsPanel) SetCurrent(name string) { p.current = name }

// SetViewport centres the panel in a w×h window.
func (p *OptionsPanel) SetViewport(w, h int) {
	pw := panelMaxW
	if pw > w-2*panelMargin {
		pw = w - 2*panelMargin
	}
	x := (w - pw) / 2
	y := (h - panelH) / 2
	p.bounds = image.Rect(x, y, x+pw, y+panelH)
	p.recalcButtons()
}

func (p *OptionsPanel) recalcButtons() {
	cols := make([]float64, len(p.levels))
	for i := range cols {
		cols[i] = 1
	}
	p.layout = NewGridLayout(insetRect(p.bounds, panelMargin/2), cols, []float64{1, 1, 1, 1})
	for i, b := range p.levels {
		b.SetRect(insetRect(p.layout.Cell(i, 1), buttonPad/2))
	}
	p.start.SetRect(insetRect(p.layout.Row(2), buttonPad/2))
}

// Handle routes the pointer to the buttons. It reports whether the pointer
// is over the panel so the puzzle underneath does not see it.
func (p *OptionsPanel) Handle(mx, my int, pressed bool) bool {
	if !p.visible {
		return false
	}
	for _, b := range p.levels {
		b.Handle(mx, my, pressed)
	}
	p.start.Handle(mx, my, pressed)
	return image.Pt(mx, my).In(p.bounds)
}

func (p *OptionsPanel) Draw(dst *ebiten.Image) {
	if !p.visible || p.layout == nil {
		return
	}
	panelStyle.Draw(dst, p.bounds)
	drawLabel(dst, "Choose a difficulty", p.layout.Row(0), colText)
	for _, b := range p.levels {
		b.Style = levelStyle
		if b.Text == p.current {
			b.Style = activeStyle
		}
		b.Draw(dst)
	}
	p.start.Draw(dst)
	drawLabel(dst, hintText, p.layout.Row(3), colHint)
}
