package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonStyle describes rectangular button visuals.
type ButtonStyle struct {
	Fill   color.Color
	Border color.Color
}

// Draw renders the button rectangle using the global drawButton primitive.
func (s ButtonStyle) Draw(dst *ebiten.Image, r image.Rectangle, pressed, hovered bool) {
	border := s.Border
	if hovered && !pressed {
		border = colLevelActive
	}
	drawButton(dst, r, s.Fill, border, pressed)
}

// PanelStyle styles the options panel background.
type PanelStyle struct {
	Fill   color.Color
	Border color.Color
}

func (s PanelStyle) Draw(dst *ebiten.Image, r image.Rectangle) {
	drawRect(dst, r, s.Fill, true)
	drawRect(dst, r, s.Border, false)
}

var (
	levelStyle  = ButtonStyle{Fill: colLevelButton, Border: colButtonBorder}
	activeStyle = ButtonStyle{Fill: colLevelActive, Border: colButtonBorder}
	startStyle  = ButtonStyle{Fill: colStartButton, Border: colButtonBorder}
	panelStyle  = PanelStyle{Fill: colPanel, Border: colPanelBorder}
)
