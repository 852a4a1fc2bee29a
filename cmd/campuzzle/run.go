package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/sqweek/dialog"

	"github.com/ingyamilmolinar/campuzzle/internal/audio"
	"github.com/ingyamilmolinar/campuzzle/internal/audio/speaker"
	"github.com/ingyamilmolinar/campuzzle/internal/camera"
	"github.com/ingyamilmolinar/campuzzle/internal/camera/webcam"
	game_log "github.com/ingyamilmolinar/campuzzle/internal/log"
	"github.com/ingyamilmolinar/campuzzle/internal/puzzle"
	"github.com/ingyamilmolinar/campuzzle/internal/ui"
)

const windowTitle = "campuzzle"

// showAlert and pickDifficulty are native dialogs, runGame is the Ebiten loop
// and newOpener picks the video source. They are variables so the headless
// paths can be exercised.
var (
	runGame   = ebiten.RunGame
	newOpener = openerFor

	showAlert = func(title string, err error) {
		dialog.Message("%v", err).Title(title).Error()
	}
	pickDifficulty = func(current string) (string, error) {
		return zenity.List("Choose a difficulty", puzzle.DifficultyNames(),
			zenity.Title(windowTitle),
			zenity.DefaultItems(current),
			zenity.DisallowEmpty(),
		)
	}
)

func run(ctx context.Context, cfg *Config) error {
	logger := game_log.New(os.Stderr, cfg.level())

	difficulty, err := resolveDifficulty(cfg.difficulty, logger)
	if err != nil {
		return err
	}

	src, err := camera.Request(ctx, newOpener(cfg, logger), cfg.cameraTimeout)
	if err != nil {
		if ctx.Err() != nil {
			logger.Infof("[CAMERA] cancelled while waiting for the camera")
			return err
		}
		logger.Errorf("[CAMERA] %v", err)
		showAlert("Camera unavailable", err)
		return err
	}
	defer src.Close()
	w, h := src.Size()
	logger.Infof("[CAMERA] ready: %dx%d", w, h)

	tones, closeTones := openTones(cfg.mute, logger)
	defer closeTones()

	g, err := ui.New(ui.Config{
		Source:     src,
		Tones:      tones,
		Difficulty: difficulty,
		Seed:       cfg.seed,
		Logger:     logger,
		Debug:      cfg.debug,
	})
	if err != nil {
		return err
	}
	if cfg.panel == panelFyne {
		if err := g.OpenFynePanel(); err != nil {
			return err
		}
	}

	go func() {
		<-ctx.Done()
		g.Stop()
	}()

	ebiten.SetWindowSize(cfg.width, cfg.height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := runGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Infof("[GAME] bye")
	return nil
}

// resolveDifficulty turns "ask" into a preset picked in a native list dialog.
// Cancelling the dialog keeps the default preset.
func resolveDifficulty(name string, logger *game_log.Logger) (string, error) {
	if name != askDifficulty {
		return name, nil
	}
	picked, err := pickDifficulty(puzzle.DefaultDifficulty)
	switch {
	case errors.Is(err, zenity.ErrCanceled):
		logger.Infof("[GAME] difficulty picker cancelled, using %s", puzzle.DefaultDifficulty)
		return puzzle.DefaultDifficulty, nil
	case err != nil:
		return "", fmt.Errorf("difficulty picker: %w", err)
	}
	if _, err := puzzle.LookupDifficulty(picked); err != nil {
		return "", err
	}
	return picked, nil
}

// openerFor picks the still image or the live camera.
func openerFor(cfg *Config, logger *game_log.Logger) camera.Opener {
	if cfg.image != "" {
		return func() (camera.Source, error) {
			s, err := camera.OpenImage(cfg.image)
			if err != nil {
				return nil, err
			}
			return s, nil
		}
	}
	return func() (camera.Source, error) {
		cam, err := webcam.Open(cfg.camera, cfg.maxFrameWidth, logger.With("CAMERA"))
		if err != nil {
			return nil, err
		}
		return cam, nil
	}
}

// openTones returns the speaker, or the silent device when muted or when no
// audio output can be opened.
func openTones(mute bool, logger *game_log.Logger) (audio.Device, func()) {
	if mute {
		return audio.Silent{}, func() {}
	}
	spk, err := speaker.Open(logger.With("AUDIO"))
	if err != nil {
		logger.Warnf("[AUDIO] %v; continuing without sound", err)
		return audio.Silent{}, func() {}
	}
	return spk, func() {
		if err := spk.Close(); err != nil {
			logger.Warnf("[AUDIO] close: %v", err)
		}
	}
}
