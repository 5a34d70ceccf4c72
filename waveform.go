package soitin

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Waveform selects the oscillator shape used for every note of a render. The
// set is closed: all three shapes are dispatched through waveformTable, so
// adding a shape means adding a table entry and nothing else.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Saw
)

type waveformInfo struct {
	name   string
	sample func(frequency, t float64) float64

	// volume is the compensation factor applied by the note renderer to
	// equalize perceived loudness across shapes: harmonically richer shapes
	// sound much louder than a sine at the same amplitude. New shapes should
	// pick a factor within 0.10..0.30.
	volume float64
}

var waveformTable = [...]waveformInfo{
	Sine:   {"sine", sineSample, 0.30},
	Square: {"square", squareSample, 0.15},
	Saw:    {"saw", sawSample, 0.15},
}

func sineSample(frequency, t float64) float64 {
	return math.Sin(2 * math.Pi * frequency * t)
}

// squareSample is the sign of the sine, with the zero crossings counted as
// +1 so the oscillator never emits a zero sample mid-cycle.
func squareSample(frequency, t float64) float64 {
	if math.Sin(2*math.Pi*frequency*t) >= 0 {
		return 1
	}
	return -1
}

// sawSample ramps linearly from -1 to +1, repeating every 1/frequency seconds.
func sawSample(frequency, t float64) float64 {
	x := frequency * t
	return 2*(x-math.Floor(x)) - 1
}

// Sample returns the instantaneous amplitude of the waveform in [-1, 1] at
// time t (seconds) for the given frequency (Hz). Frequency 0 denotes a rest
// and yields 0 for every shape and every t.
func (w Waveform) Sample(frequency, t float64) float64 {
	if frequency == 0 {
		return 0
	}
	return waveformTable[w].sample(frequency, t)
}

// Volume returns the volume compensation factor of the waveform.
func (w Waveform) Volume() float64 {
	return waveformTable[w].volume
}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformTable) {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
	return waveformTable[w].name
}

// ParseWaveform returns the waveform with the given name: "sine", "square" or
// "saw".
func ParseWaveform(name string) (Waveform, error) {
	for i, info := range waveformTable {
		if info.name == name {
			return Waveform(i), nil
		}
	}
	return 0, fmt.Errorf("unknown waveform %q", name)
}

// Waveforms appear by name in score files, in both the yaml and json forms.

func (w Waveform) MarshalYAML() (interface{}, error) {
	return w.String(), nil
}

func (w *Waveform) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseWaveform(name)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

func (w Waveform) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *Waveform) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseWaveform(name)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
