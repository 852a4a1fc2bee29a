package main

import (
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/ingyamilmolinar/campuzzle/internal/audio"
	"github.com/ingyamilmolinar/campuzzle/internal/audio/speaker"
	game_log "github.com/ingyamilmolinar/campuzzle/internal/log"
)

// main plays the placed sound and then the win melody through the speaker,
// to check the envelope and output latency by ear.
func main() {
	level := pflag.String("log-level", "debug", "log level")
	pflag.Parse()
	logger := game_log.New(os.Stderr, game_log.LevelFromString(*level))

	spk, err := speaker.Open(logger.With("AUDIO"))
	if err != nil {
		logger.Errorf("open speaker: %v", err)
		os.Exit(1)
	}
	defer spk.Close()

	audio.PlayPlaced(spk)
	time.Sleep(500 * time.Millisecond)
	audio.PlayWin(spk)
	time.Sleep(1500 * time.Millisecond)
}
