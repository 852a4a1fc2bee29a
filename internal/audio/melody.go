package audio

// DefaultStart is the offset used when a tone should sound right away; it
// leaves room for the fade-in.
const DefaultStart = 0.02

type note struct {
	freq, at, stop float64
}

var winNotes = []note{
	{440, DefaultStart, 0.2},
	{880, 0.15, 0.35},
	{220, 0.3, 0.5},
	{440, 0.5, 0.7},
	{220, 0.65, 0.8},
	{880, 0.8, 1},
}

// PlayPlaced plays the short rising two-tone sound for a correctly placed piece.
func PlayPlaced(d Device) {
	d.PlayTone(440, 0.5, Sine, DefaultStart).SetFrequency(880, 0.1).Stop(0.2)
}

// PlayWin plays the completion melody.
func PlayWin(d Device) {
	for _, n := range winNotes {
		d.PlayTone(n.freq, 0.5, Sine, n.at).Stop(n.stop)
	}
}
