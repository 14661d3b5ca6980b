package theremin

import "math"

// A Note is one sounding or fading tone. Frequency, Volume and Start are
// fixed for the note's lifetime; only the envelope state changes.
type Note struct {
	Frequency float64 // Hz, 0 means silence
	Volume    float64 // baseline gain, in 16-bit sample units
	Start     float64 // session time at which phase = 0

	Amplitude float64 // current envelope level, in [0, 1]
	Target    float64 // level the envelope glides toward, 0 or 1
}

// Below snapThreshold the envelope is considered converged and Amplitude is
// pinned to Target exactly. Reaching exact zero is what retires a note.
const snapThreshold = 1e-7

// step advances the envelope by one sample. coef is exp(-decay*dt), computed
// once per render call and shared by all notes.
func (n *Note) step(coef float64) {
	n.Amplitude = n.Target + (n.Amplitude-n.Target)*coef
	if math.Abs(n.Amplitude-n.Target) < snapThreshold {
		n.Amplitude = n.Target
	}
}

// done reports whether the note has fully faded out and can be dropped.
func (n *Note) done() bool {
	return n.Amplitude == 0 && n.Target == 0
}

// sample returns the note's contribution at session time t.
func (n *Note) sample(t float64, typ int) float64 {
	if n.Frequency == 0 {
		return 0
	}
	return n.Amplitude * n.Volume * Wave(n.Frequency*(t-n.Start), typ)
}

// startFor chooses the start time of a note with the given frequency so that
// its phase at time t continues the phase of prev. Without this a pitch
// slide would jump phase on every new note and click.
func startFor(prev *Note, freq, t float64) float64 {
	if freq == 0 || prev.Frequency == 0 {
		return t
	}
	return t - (t-prev.Start)*prev.Frequency/freq
}
