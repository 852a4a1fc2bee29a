package audio

import (
	"testing"
	"time"
)

func TestVoiceStartsWithin50ms(t *testing.T) {
	m := NewMixer(SampleRate)
	m.PlayTone(440, 0.5, Sine, DefaultStart).Stop(0.2)
	buf := make([]byte, SampleRate/10*2) // 0.1s of 16-bit mono
	m.Read(buf)
	first := firstNonZero(buf, 0)
	if first == -1 {
		t.Fatalf("no audio produced")
	}
	delay := time.Duration(first) * time.Second / SampleRate
	if delay > 50*time.Millisecond {
		t.Fatalf("start delay %v exceeds 50ms", delay)
	}
}
