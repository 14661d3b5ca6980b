package theremin

import "math"

// Waveform families, cycled through at runtime by button presses.
const (
	Sine = iota
	Sawtooth
	Triangle
	Square
	numWaveforms
)

// Wave maps a phase, in cycles, to an amplitude. Output is in [-1, 1] except
// the square wave, which is unipolar [0, 1]. typ selects the family modulo
// the number of families.
func Wave(phase float64, typ int) float64 {
	typ %= numWaveforms
	if typ < 0 {
		typ += numWaveforms
	}

	switch typ {
	case Sawtooth:
		return 2 * (phase - math.Floor(0.5+phase))
	case Triangle:
		saw := 2 * (phase - math.Floor(0.5+phase))
		return 2*math.Abs(saw) - 1
	case Square:
		if phase-math.Floor(phase) > 0.5 {
			return 1
		}
		return 0
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
