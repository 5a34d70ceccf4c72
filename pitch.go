package soitin

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Everything is tuned in equal temperament relative to A4 = 440 Hz, which is
// MIDI note number 69 in the standard numbering (C-1 = 0).
const (
	referenceFrequency = 440.0
	referenceNumber    = 69
)

var (
	// ErrInvalidPitchName is returned by NamedPitch for strings that are not
	// note names.
	ErrInvalidPitchName = errors.New("invalid pitch name")

	// ErrPitchOutOfRange is returned by MidiPitch for note numbers outside
	// 0..127.
	ErrPitchOutOfRange = errors.New("note number out of range")
)

// semitone offset of each letter A..G within an octave, relative to C
var letterSemitones = [7]int{9, 11, 0, 2, 4, 5, 7}

// NamedPitch converts a note name such as "A4", "C#5" or "Bb3" to a frequency
// in Hz. The name is a letter A-G, an optional accidental ('#' or 'b') and an
// octave number, which may be negative down to -1 (C-1 is MIDI note 0). The
// names "R" and "REST" denote a rest and resolve to 0 Hz. NamedPitch is a
// pure function: equal inputs give bit-identical outputs.
func NamedPitch(name string) (float64, error) {
	if name == "R" || name == "REST" {
		return 0, nil
	}
	if len(name) < 2 || name[0] < 'A' || name[0] > 'G' {
		return 0, fmt.Errorf("cannot parse %q: %w", name, ErrInvalidPitchName)
	}
	semitone := letterSemitones[name[0]-'A']
	rest := name[1:]
	switch rest[0] {
	case '#':
		semitone++
		rest = rest[1:]
	case 'b':
		semitone--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q: %w", name, ErrInvalidPitchName)
	}
	return numberToFrequency((octave+1)*12 + semitone), nil
}

// MidiPitch converts a MIDI note number in 0..127 to a frequency in Hz. It
// never clamps: out of range numbers return ErrPitchOutOfRange and the caller
// decides whether to clamp or abort.
func MidiPitch(number int) (float64, error) {
	if number < 0 || number > 127 {
		return 0, fmt.Errorf("MIDI note %v: %w", number, ErrPitchOutOfRange)
	}
	return numberToFrequency(number), nil
}

func numberToFrequency(n int) float64 {
	return referenceFrequency * math.Pow(2, float64(n-referenceNumber)/12)
}
