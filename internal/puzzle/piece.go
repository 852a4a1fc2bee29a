package puzzle

import "github.com/ingyamilmolinar/campuzzle/internal/utils"

// snapDivisor sets the snap tolerance to a fifth of the piece width.
const snapDivisor = 5

// Piece is one grid cell of the video. Row and Col never change; the correct
// position and size follow the frame.
type Piece struct {
	Row, Col           int
	X, Y               float64
	CorrectX, CorrectY float64
	Width, Height      float64
	Correct            bool
}

// NewPiece creates a piece resting at its correct position.
func NewPiece(row, col int, f Frame) *Piece {
	p := &Piece{Row: row, Col: col, Correct: true}
	p.Update(f)
	return p
}

// Update recomputes size and correct position from f. Pieces flagged correct
// follow their cell.
func (p *Piece) Update(f Frame) {
	p.Width = f.Width / float64(f.Cols)
	p.Height = f.Height / float64(f.Rows)
	p.CorrectX = f.X + f.Width*(float64(p.Col)/float64(f.Cols))
	p.CorrectY = f.Y + f.Height*(float64(p.Row)/float64(f.Rows))
	if p.Correct {
		p.X = p.CorrectX
		p.Y = p.CorrectY
	}
}

// PlaceAt moves the piece. The Correct flag is left to the caller.
func (p *Piece) PlaceAt(x, y float64) {
	p.X = x
	p.Y = y
}

// DistanceToCorrect is the distance between current and correct position.
func (p *Piece) DistanceToCorrect() float64 {
	return utils.Distance(p.X, p.Y, p.CorrectX, p.CorrectY)
}

// IsNearCorrectPosition reports whether the piece is close enough to snap.
func (p *Piece) IsNearCorrectPosition() bool {
	return p.DistanceToCorrect() < p.Width/snapDivisor
}

// SnapToCorrectPosition moves the piece onto its cell and marks it correct.
func (p *Piece) SnapToCorrectPosition() {
	p.X = p.CorrectX
	p.Y = p.CorrectY
	p.Correct = true
}

// Contains reports whether (x,y) lies in the piece's box, edges included.
func (p *Piece) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// Render draws the piece's slice of v followed by its border.
func (p *Piece) Render(c Canvas, f Frame, v Video) {
	vw, vh := v.Size()
	sw := float64(vw) / float64(f.Cols)
	sh := float64(vh) / float64(f.Rows)
	c.DrawImageRegion(v, float64(p.Col)*sw, float64(p.Row)*sh, sw, sh, p.X, p.Y, p.Width, p.Height)
	c.StrokeRect(p.X, p.Y, p.Width, p.Height, PieceBorderWidth, PieceBorderColor)
}
