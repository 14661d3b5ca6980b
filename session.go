// Package theremin implements the audio engine of a joystick-controlled
// synthesizer: waveform generation, per-note envelopes and the real-time
// mixer that renders them.
package theremin

import "math"

// A Session owns the live note collection and the sample clock. Render runs
// on the audio thread under the device's playback lock; the input side must
// hold that same lock around AddNote, Damp and CycleWaveform. Nothing else
// mutates the collection.
type Session struct {
	sampleRate float64
	dt         float64 // 1 / sampleRate
	decay      float64 // envelope glide rate, 1/s

	t        float64 // session time in seconds
	waveform int
	notes    []*Note // most recent last; notes[0] is the permanent silence note
}

// NewSession creates a session rendering at the given sample rate. decay
// controls how fast notes fade in and out, in 1/seconds.
func NewSession(sampleRate int, decay float64) *Session {
	return &Session{
		sampleRate: float64(sampleRate),
		dt:         1 / float64(sampleRate),
		decay:      decay,
		// The permanent silence note is pinned at its target so it is never
		// retired, keeping the collection non-empty and giving the first
		// real note something to phase-reference.
		notes: []*Note{{Amplitude: 1, Target: 1}},
	}
}

// SampleRate returns the rate the session renders at, in Hz.
func (s *Session) SampleRate() int { return int(s.sampleRate) }

// Notes returns the number of live notes, the permanent silence note included.
func (s *Session) Notes() int { return len(s.notes) }

// Waveform returns the current waveform type.
func (s *Session) Waveform() int { return s.waveform }

// CycleWaveform switches to the next waveform family.
func (s *Session) CycleWaveform() { s.waveform = (s.waveform + 1) % numWaveforms }

func (s *Session) current() *Note { return s.notes[len(s.notes)-1] }

// Damp releases the current note so it fades to silence. The permanent
// silence note is left alone.
func (s *Session) Damp() {
	if len(s.notes) > 1 {
		s.current().Target = 0
	}
}

// AddNote fades out the current note and fades in a new one at the given
// frequency (Hz) and volume (16-bit sample units). An inaudible request,
// zero frequency or zero volume, is a rest: the current note is damped and
// nothing is added. The new note starts phase-aligned with the note it
// replaces and always attacks from silence, which doubles as anti-click
// smoothing on plain frequency changes.
func (s *Session) AddNote(freq, volume float64) {
	prev := s.current()
	s.Damp()
	if freq == 0 || volume == 0 {
		return
	}

	s.notes = append(s.notes, &Note{
		Frequency: freq,
		Volume:    volume,
		Start:     startFor(prev, freq, s.t),
		Target:    1,
	})
}

// Render fills out with the next len(out) samples, advancing session time by
// len(out)/sampleRate. This is the audio callback body: it never fails and
// never blocks. The caller guarantees exclusive access to the session for
// the duration of the call.
func (s *Session) Render(out []int16) {
	coef := math.Exp(-s.decay * s.dt)

	for i := range out {
		sum := 0.0
		for _, n := range s.notes {
			sum += n.sample(s.t, s.waveform)
			// Every envelope steps on every sample, contributing or not, so
			// fades progress in real time.
			n.step(coef)
		}

		live := s.notes[:0]
		for _, n := range s.notes {
			if !n.done() {
				live = append(live, n)
			}
		}
		s.notes = live

		out[i] = clamp(sum)
		s.t += s.dt
	}
}

// clamp hard-limits a mixed sample to the signed 16-bit range. Saturation,
// not wrap-around.
func clamp(v float64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
