package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ingyamilmolinar/campuzzle/internal/puzzle"
)

// screenCanvas adapts an Ebiten screen to puzzle.Canvas for one Draw call.
type screenCanvas struct {
	dst *ebiten.Image
}

var _ puzzle.Canvas = (*screenCanvas)(nil)

func (c *screenCanvas) Clear() { c.dst.Fill(colBackground) }

func (c *screenCanvas) StrokeRect(x, y, w, h, lineWidth float64, col color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), col, true)
}

func (c *screenCanvas) DrawImageRegion(src puzzle.Video, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	v, ok := src.(interface{ Texture() *ebiten.Image })
	if !ok || v.Texture() == nil {
		return
	}
	r := sourceRect(sx, sy, sw, sh)
	if r.Empty() {
		return
	}
	sub := v.Texture().SubImage(r).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dw/float64(r.Dx()), dh/float64(r.Dy()))
	op.GeoM.Translate(dx, dy)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(sub, op)
}

// sourceRect snaps a fractional source region to whole texels.
func sourceRect(sx, sy, sw, sh float64) image.Rectangle {
	return image.Rect(
		int(math.Round(sx)), int(math.Round(sy)),
		int(math.Round(sx+sw)), int(math.Round(sy+sh)),
	)
}
