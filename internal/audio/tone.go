package audio

import (
	"math"
	"sync"

	"github.com/ingyamilmolinar/campuzzle/internal/utils"
)

// Waveform selects the oscillator shape of a Tone.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// at returns the waveform value for a phase in [0,1).
func (w Waveform) at(phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

const (
	attackLead     = 0.02  // oscillator runs this long before reaching full volume
	releaseLead    = 0.05  // release begins this long before the stop time
	releaseTau     = 0.02  // time constant of the release decay
	floorGain      = 0.001 // "silent" gain used at both ends of the envelope
	maxToneSeconds = 5.0   // tones that are never stopped end here
)

type freqEvent struct {
	at   float64
	freq float64
}

// Tone is a single disposable oscillator with a volume envelope. All times are
// seconds relative to the moment the tone was created. Tone implements Voice,
// and its automation methods may be called while a mixer is reading it.
type Tone struct {
	mu         sync.Mutex
	sampleRate float64
	wave       Waveform
	volume     float64
	start      float64
	peak       float64
	stop       float64
	freqs      []freqEvent

	i     int
	phase float64
}

// NewTone creates a tone that reaches vol at when. The oscillator starts
// attackLead seconds earlier with an exponential fade-in.
func NewTone(sampleRate int, freq, vol float64, wave Waveform, when float64) *Tone {
	start := when - attackLead
	if start < 0 {
		start = 0
	}
	if when < start {
		when = start
	}
	return &Tone{
		sampleRate: float64(sampleRate),
		wave:       wave,
		volume:     utils.Clamp(vol, 0, 1),
		start:      start,
		peak:       when,
		stop:       -1,
		freqs:      []freqEvent{{at: 0, freq: freq}},
	}
}

// SetFrequency switches the oscillator to freq at when.
func (t *Tone) SetFrequency(freq, when float64) *Tone {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := len(t.freqs)
	for idx > 0 && t.freqs[idx-1].at > when {
		idx--
	}
	t.freqs = append(t.freqs, freqEvent{})
	copy(t.freqs[idx+1:], t.freqs[idx:])
	t.freqs[idx] = freqEvent{at: when, freq: freq}
	return t
}

// Stop ends the tone at when, fading out over the preceding releaseLead seconds.
func (t *Tone) Stop(when float64) *Tone {
	t.mu.Lock()
	defer t.mu.Unlock()
	if when < 0 {
		when = 0
	}
	t.stop = when
	return t
}

// Waveform returns the oscillator shape.
func (t *Tone) Waveform() Waveform { return t.wave }

// Volume returns the sustain volume.
func (t *Tone) Volume() float64 { return t.volume }

// Start returns when the tone reaches its sustain volume.
func (t *Tone) Start() float64 { return t.peak }

// StopTime returns the stop time or -1 when Stop was never called.
func (t *Tone) StopTime() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop
}

// FrequencyAt returns the oscillator frequency in effect at sec.
func (t *Tone) FrequencyAt(sec float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frequencyAt(sec)
}

func (t *Tone) frequencyAt(sec float64) float64 {
	f := t.freqs[0].freq
	for _, ev := range t.freqs {
		if ev.at > sec {
			break
		}
		f = ev.freq
	}
	return f
}

// GainAt returns the envelope gain at sec.
func (t *Tone) GainAt(sec float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gainAt(sec)
}

func (t *Tone) gainAt(sec float64) float64 {
	if sec < t.start {
		return 0
	}
	g := t.volume
	if sec < t.peak && g > 0 {
		ratio := (sec - t.start) / (t.peak - t.start)
		g = floorGain * math.Pow(t.volume/floorGain, ratio)
	}
	if t.stop >= 0 {
		rel := t.stop - releaseLead
		if rel < t.start {
			rel = t.start
		}
		if sec >= rel {
			g = floorGain + (g-floorGain)*math.Exp(-(sec-rel)/releaseTau)
		}
	}
	return g
}

// Sample implements Voice.
func (t *Tone) Sample() (float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := float64(t.i) / t.sampleRate
	end := t.stop
	if end < 0 {
		end = t.start + maxToneSeconds
	}
	if now >= end {
		return 0, true
	}
	t.i++
	if now < t.start {
		return 0, false
	}
	v := t.wave.at(t.phase) * t.gainAt(now)
	t.phase += t.frequencyAt(now) / t.sampleRate
	t.phase -= math.Floor(t.phase)
	return v, false
}
