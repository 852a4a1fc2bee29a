package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ingyamilmolinar/campuzzle/internal/camera"
	game_log "github.com/ingyamilmolinar/campuzzle/internal/log"
	"github.com/ingyamilmolinar/campuzzle/internal/puzzle"
	"github.com/ingyamilmolinar/campuzzle/internal/ui"
)

const (
	askDifficulty = "ask"
	panelBuiltin  = "builtin"
	panelFyne     = "fyne"
	minWindowSize = 100
)

type Config struct {
	camera        int
	cameraTimeout time.Duration
	debug         bool
	difficulty    string
	height        int
	image         string
	logLevel      string
	maxFrameWidth int
	mute          bool
	panel         string
	seed          int64
	width         int
}

func (c *Config) validate() error {
	if _, err := game_log.ParseLevel(c.logLevel); err != nil {
		return err
	}
	if c.difficulty != askDifficulty {
		if _, err := puzzle.LookupDifficulty(c.difficulty); err != nil {
			return err
		}
	}
	if c.camera < 0 {
		return fmt.Errorf("invalid camera index (must be 0 or greater): %d", c.camera)
	}
	if c.cameraTimeout <= 0 {
		return fmt.Errorf("invalid camera timeout (must be positive): %s", c.cameraTimeout)
	}
	if c.maxFrameWidth < 0 {
		return fmt.Errorf("invalid max frame width (must be 0 or greater): %d", c.maxFrameWidth)
	}
	if c.width < minWindowSize || c.height < minWindowSize {
		return fmt.Errorf("invalid window size (each side must be at least %d): %dx%d", minWindowSize, c.width, c.height)
	}
	switch c.panel {
	case panelBuiltin:
	case panelFyne:
		if !ui.FyneAvailable() {
			return ui.ErrFyneUnavailable
		}
	default:
		return fmt.Errorf("invalid panel %q (want %s or %s)", c.panel, panelBuiltin, panelFyne)
	}
	if c.image != "" && c.camera != 0 {
		return errors.New("--image and --camera cannot be used together")
	}
	return nil
}

func (c *Config) level() game_log.Level {
	l, _ := game_log.ParseLevel(c.logLevel)
	return l
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CAMPUZZLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "campuzzle",
		Short:         "A jigsaw puzzle cut from your live webcam feed.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.IntVarP(&cfg.camera, "camera", "c", 0, "camera device index (env: CAMPUZZLE_CAMERA)")
	fs.DurationVar(&cfg.cameraTimeout, "camera-timeout", camera.DefaultTimeout, "time to wait for the first camera frame (env: CAMPUZZLE_CAMERA_TIMEOUT)")
	fs.BoolVar(&cfg.debug, "debug", false, "show the TPS/FPS overlay (env: CAMPUZZLE_DEBUG)")
	fs.StringVarP(&cfg.difficulty, "difficulty", "d", puzzle.DefaultDifficulty, "easy, medium, hard, insane, or ask (env: CAMPUZZLE_DIFFICULTY)")
	fs.IntVar(&cfg.height, "height", 720, "initial window height (env: CAMPUZZLE_HEIGHT)")
	fs.StringVar(&cfg.image, "image", "", "play with a PNG or JPEG instead of the camera (env: CAMPUZZLE_IMAGE)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "debug, info, warn, error, or none (env: CAMPUZZLE_LOG_LEVEL)")
	fs.IntVar(&cfg.maxFrameWidth, "max-frame-width", 1280, "downscale wider camera frames, 0 disables (env: CAMPUZZLE_MAX_FRAME_WIDTH)")
	fs.BoolVar(&cfg.mute, "mute", false, "disable sound (env: CAMPUZZLE_MUTE)")
	fs.StringVar(&cfg.panel, "panel", panelBuiltin, "builtin, or fyne for an extra control window (env: CAMPUZZLE_PANEL)")
	fs.Int64Var(&cfg.seed, "seed", 0, "shuffle seed, 0 is time based (env: CAMPUZZLE_SEED)")
	fs.BoolP("version", "V", false, "display version and exit (env: CAMPUZZLE_VERSION)")
	fs.IntVar(&cfg.width, "width", 1280, "initial window width (env: CAMPUZZLE_WIDTH)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("campuzzle v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
