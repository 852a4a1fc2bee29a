//go:build fyne

package ui

import (
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ingyamilmolinar/campuzzle/internal/puzzle"
)

func init() { startFynePanel = runFynePanel }

// runFynePanel launches a control window implemented with Fyne. Widgets only
// post commands; the game goroutine applies them.
func runFynePanel(g *Game) error {
	current := g.ctrl.Difficulty()
	go func() {
		a := app.New()
		w := a.NewWindow("campuzzle controls")

		levelSelect := widget.NewSelect(puzzle.DifficultyNames(), nil)
		levelSelect.Selected = current
		levelSelect.OnChanged = g.RequestDifficulty

		startBtn := widget.NewButton("Start", g.RequestStart)
		quitBtn := widget.NewButton("Quit", func() {
			g.Stop()
			a.Quit()
		})

		w.SetContent(container.NewVBox(widget.NewLabel("Difficulty"), levelSelect, startBtn, quitBtn))
		w.ShowAndRun()
	}()
	g.logger.Infof("runFynePanel: control window started")
	return nil
}
