package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	appendTouchIDs       = ebiten.AppendTouchIDs
	touchPosition        = ebiten.TouchPosition
	isKeyJustPressed     = inpututil.IsKeyJustPressed
	setCursorShape       = ebiten.SetCursorShape
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	touches func([]ebiten.TouchID) []ebiten.TouchID,
	touchPos func(ebiten.TouchID) (int, int),
	key func(ebiten.Key) bool,
	shape func(ebiten.CursorShapeType),
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldTouches := appendTouchIDs
	oldTouchPos := touchPosition
	oldKey := isKeyJustPressed
	oldShape := setCursorShape
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	appendTouchIDs = touches
	touchPosition = touchPos
	isKeyJustPressed = key
	setCursorShape = shape
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		appendTouchIDs = oldTouches
		touchPosition = oldTouchPos
		isKeyJustPressed = oldKey
		setCursorShape = oldShape
	}
}

// pointer is the merged mouse/touch state for one tick.
type pointer struct {
	x, y    int
	pressed bool
	touch   bool
}

var touchBuf []ebiten.TouchID

// pollPointer reads the left mouse button, falling back to the first active
// touch so both drive the same drag.
func pollPointer() pointer {
	if isMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := cursorPosition()
		return pointer{x: x, y: y, pressed: true}
	}
	touchBuf = appendTouchIDs(touchBuf[:0])
	if len(touchBuf) > 0 {
		x, y := touchPosition(touchBuf[0])
		return pointer{x: x, y: y, pressed: true, touch: true}
	}
	x, y := cursorPosition()
	return pointer{x: x, y: y}
}
