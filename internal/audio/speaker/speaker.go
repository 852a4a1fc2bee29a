// Package speaker plays an audio.Mixer through the system output using oto.
package speaker

import (
	"fmt"

	"github.com/ebitengine/oto/v3"

	"github.com/ingyamilmolinar/campuzzle/internal/audio"
	game_log "github.com/ingyamilmolinar/campuzzle/internal/log"
)

const bufferSizeBytes10ms = audio.SampleRate / 100 * 2 // 10ms of 16-bit mono audio

// Speaker is an audio.Device that renders tones on the default output.
type Speaker struct {
	ctx    *oto.Context
	player *oto.Player
	mix    *audio.Mixer
	logger *game_log.Logger
}

// Open initializes the oto context. On the web the context may stay suspended
// until the first user gesture; PlayTone resumes it.
func Open(logger *game_log.Logger) (*Speaker, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   audio.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio output: %w", err)
	}
	<-ready

	mix := audio.NewMixer(audio.SampleRate)
	p := ctx.NewPlayer(mix)
	p.SetBufferSize(bufferSizeBytes10ms)
	p.Play()
	logger.Infof("output opened: rate=%d", audio.SampleRate)
	return &Speaker{ctx: ctx, player: p, mix: mix, logger: logger}, nil
}

// PlayTone implements audio.Device.
func (s *Speaker) PlayTone(freq, vol float64, wave audio.Waveform, when float64) *audio.Tone {
	if err := s.ctx.Resume(); err != nil {
		s.logger.Warnf("resume failed: %v", err)
	}
	s.logger.Debugf("tone: freq=%.0f vol=%.2f wave=%s when=%.2f", freq, vol, wave, when)
	return s.mix.PlayTone(freq, vol, wave, when)
}

// Close stops playback.
func (s *Speaker) Close() error {
	return s.player.Close()
}
