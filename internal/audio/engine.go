package audio

import "sync"

// SampleRate is the rate used by the speaker and by tones created through a Mixer.
const SampleRate = 44100

// Voice generates PCM samples in the range [-1,1].
type Voice interface {
	// Sample returns the next sample and whether the voice has finished.
	Sample() (float64, bool)
}

// Device plays tones. Offsets passed to PlayTone and to the returned Tone are
// seconds relative to the call.
type Device interface {
	PlayTone(freq, vol float64, wave Waveform, when float64) *Tone
}

// Mixer mixes multiple voices into a single 16-bit mono PCM stream. It is an
// io.Reader suitable for an oto player and a Device on its own.
type Mixer struct {
	mu         sync.Mutex
	voices     []*voiceState
	pos        int
	sampleRate int
}

type voiceState struct {
	start int
	v     Voice
}

func NewMixer(sampleRate int) *Mixer {
	return &Mixer{sampleRate: sampleRate}
}

// PlayTone creates a tone and schedules it immediately.
func (m *Mixer) PlayTone(freq, vol float64, wave Waveform, when float64) *Tone {
	t := NewTone(m.sampleRate, freq, vol, wave, when)
	m.Schedule(t, 0)
	return t
}

// Schedule adds a voice to start after delaySamples have elapsed.
func (m *Mixer) Schedule(v Voice, delaySamples int) {
	m.mu.Lock()
	m.voices = append(m.voices, &voiceState{start: m.pos + delaySamples, v: v})
	m.mu.Unlock()
}

// Active returns the number of voices that have not finished.
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Read implements io.Reader.
func (m *Mixer) Read(p []byte) (int, error) {
	samples := len(p) / 2
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < samples; i++ {
		var sum float64
		for idx := 0; idx < len(m.voices); idx++ {
			vs := m.voices[idx]
			if m.pos >= vs.start {
				val, done := vs.v.Sample()
				sum += val
				if done {
					m.voices = append(m.voices[:idx], m.voices[idx+1:]...)
					idx--
				}
			}
		}
		if sum > 1 {
			sum = 1
		} else if sum < -1 {
			sum = -1
		}
		v := int16(sum * 32767)
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
		m.pos++
	}
	return samples * 2, nil
}

// Silent is a Device whose tones are never rendered.
type Silent struct{}

func (Silent) PlayTone(freq, vol float64, wave Waveform, when float64) *Tone {
	return NewTone(SampleRate, freq, vol, wave, when)
}
