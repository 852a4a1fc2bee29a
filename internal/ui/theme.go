package ui

import "image/color"

var (
	colBackground = color.RGBA{0xff, 0xff, 0xff, 255}

	colPanel       = color.RGBA{30, 30, 40, 230}
	colPanelBorder = color.RGBA{0x99, 0x99, 0x99, 255}
	colText        = color.RGBA{240, 240, 240, 255}
	colHint        = color.RGBA{170, 170, 170, 255}

	colButtonBorder = color.RGBA{240, 240, 240, 255}
	colStartButton  = color.RGBA{40, 200, 40, 255}
	colLevelButton  = color.RGBA{40, 40, 40, 255}
	colLevelActive  = color.RGBA{40, 160, 200, 255}
)
