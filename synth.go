package soitin

import "math"

// RenderNote synthesizes the contribution of a single note: the oscillator
// sample at each instant, shaped by the envelope and scaled by the note
// velocity and the waveform's volume compensation factor. It returns the
// index of the note's first sample in the master buffer and a fresh buffer
// holding the note's samples.
//
// RenderNote is a pure function with no error conditions: frequency 0 renders
// silence, velocity 0 renders silence, velocity 1 renders at full scale, and
// a non-positive duration renders an empty buffer.
func (s Synth) RenderNote(note Note) (start int, buffer AudioBuffer) {
	s = s.withDefaults()
	rate := float64(s.SampleRate)
	start = int(math.Round(note.Time * rate))
	n := int(math.Round(note.Duration * rate))
	if n <= 0 {
		return start, nil
	}
	env := makeEnvelope(s.Attack, s.Release, s.SampleRate, n)
	scale := note.Velocity * s.Oscillator.Volume()
	buffer = make(AudioBuffer, n)
	for i := range buffer {
		t := float64(i) / rate
		buffer[i] = float32(s.Oscillator.Sample(note.Frequency, t) * env.gain(i, n) * scale)
	}
	return start, buffer
}
