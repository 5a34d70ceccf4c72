// Package soitin renders note events into mono audio buffers. The core is
// deliberately small: a closed set of oscillator waveforms, a linear
// attack/sustain/release envelope and an additive mixer that quantizes the
// result to 16-bit PCM for .wav export. MIDI file reading and audio playback
// live in the midi and oto subpackages; the root package is pure computation
// with no IO.
package soitin

// DefaultSampleRate is the sample rate used when a Synth does not set one.
const DefaultSampleRate = 44100

// DefaultVelocity is the velocity given to notes constructed without an
// explicit one, e.g. by NewNote or ParseMelody.
const DefaultVelocity = 0.5

// DefaultAttack and DefaultRelease are the envelope ramp lengths in seconds.
const (
	DefaultAttack  = 0.01
	DefaultRelease = 0.01
)

type (
	// Note is a single note event on the score timeline. Notes are immutable
	// values: once constructed they are only ever read, so a Score can hand
	// them around freely.
	Note struct {
		Frequency float64 // frequency in Hz; 0 denotes a rest
		Time      float64 // start time in seconds from the beginning of the score
		Duration  float64 // length of the note in seconds
		Velocity  float64 // linear amplitude scale in (0,1]
	}

	// Synth is the configuration of a render pass: the sample rate, the
	// oscillator waveform used for every note, and the envelope ramp times.
	// The zero value is usable; unset fields fall back to the defaults above.
	// A Synth is passed by value so the configuration of an ongoing render
	// can never change under it.
	Synth struct {
		SampleRate int      `yaml:"samplerate"`
		Oscillator Waveform `yaml:"oscillator"`
		Attack     float64  `yaml:"attack,omitempty"`  // seconds
		Release    float64  `yaml:"release,omitempty"` // seconds
	}

	// Score is an ordered list of notes plus the synth configuration used to
	// render them. The order of the notes does not affect the rendered audio,
	// as mixing is additive, but it is preserved so renders are reproducible
	// bit by bit.
	Score struct {
		Synth Synth  `yaml:"synth"`
		Notes []Note `yaml:"notes"`
	}
)

// NewNote returns a note with the default velocity.
func NewNote(frequency, time, duration float64) Note {
	return Note{Frequency: frequency, Time: time, Duration: duration, Velocity: DefaultVelocity}
}

// End returns the absolute end time of the note in seconds.
func (n Note) End() float64 {
	return n.Time + n.Duration
}

// DefaultSynth returns a synth with every field set to its default value.
func DefaultSynth() Synth {
	return Synth{
		SampleRate: DefaultSampleRate,
		Oscillator: Sine,
		Attack:     DefaultAttack,
		Release:    DefaultRelease,
	}
}

// withDefaults fills unset fields with their defaults, so that the zero value
// of Synth renders sensibly. The sample rate and ramp lengths are resolved
// together, at the start of a render pass; every sample-count-derived
// quantity is computed from the resolved copy only.
func (s Synth) withDefaults() Synth {
	if s.SampleRate <= 0 {
		s.SampleRate = DefaultSampleRate
	}
	if s.Attack <= 0 {
		s.Attack = DefaultAttack
	}
	if s.Release <= 0 {
		s.Release = DefaultRelease
	}
	return s
}

// AddNote appends a note to the score.
func (s *Score) AddNote(n Note) {
	s.Notes = append(s.Notes, n)
}

// Copy makes a deep copy of a Score.
func (s Score) Copy() Score {
	notes := make([]Note, len(s.Notes))
	copy(notes, s.Notes)
	return Score{Synth: s.Synth, Notes: notes}
}

// EndTime returns the end time of the latest-ending note, i.e. the length of
// the rendered audio in seconds. An empty score has an end time of 0.
func (s Score) EndTime() float64 {
	ret := 0.0
	for _, n := range s.Notes {
		if e := n.End(); e > ret {
			ret = e
		}
	}
	return ret
}

// Render renders the score with its synth configuration.
func (s Score) Render() AudioBuffer {
	return s.Synth.Render(s.Notes)
}
