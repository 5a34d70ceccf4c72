package soitin

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMelody parses a melody string of whitespace-separated name:duration
// tokens, e.g. "C4:0.5 C4:0.5 G4:0.5 R:0.25 G4:1", into a sequence of notes
// played back to back starting at time 0. Durations are in seconds. Rests
// ("R" or "REST") advance the timeline without adding a note. All notes get
// the default velocity.
func ParseMelody(melody string) ([]Note, error) {
	var notes []Note
	time := 0.0
	for _, token := range strings.Fields(melody) {
		name, durString, found := strings.Cut(token, ":")
		if !found {
			return nil, fmt.Errorf("melody token %q is missing a duration", token)
		}
		frequency, err := NamedPitch(name)
		if err != nil {
			return nil, fmt.Errorf("melody token %q: %w", token, err)
		}
		duration, err := strconv.ParseFloat(durString, 64)
		if err != nil || duration <= 0 {
			return nil, fmt.Errorf("melody token %q has an invalid duration", token)
		}
		if frequency > 0 {
			notes = append(notes, NewNote(frequency, time, duration))
		}
		time += duration
	}
	return notes, nil
}
