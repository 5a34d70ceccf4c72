package soitin_test

import (
	"encoding/json"
	"testing"

	"github.com/vsariola/soitin"
	"gopkg.in/yaml.v3"
)

func TestNewNoteDefaults(t *testing.T) {
	note := soitin.NewNote(440, 1, 0.5)
	if note.Velocity != soitin.DefaultVelocity {
		t.Fatalf("velocity = %v, expected the default %v", note.Velocity, soitin.DefaultVelocity)
	}
	if note.End() != 1.5 {
		t.Fatalf("End() = %v, expected 1.5", note.End())
	}
}

func TestScoreYamlRoundTrip(t *testing.T) {
	score := soitin.Score{
		Synth: soitin.Synth{SampleRate: 22050, Oscillator: soitin.Square, Attack: 0.02},
		Notes: []soitin.Note{
			{Frequency: 261.63, Time: 0, Duration: 2, Velocity: 0.5},
			{Frequency: 329.63, Time: 0.5, Duration: 2, Velocity: 0.75},
		},
	}
	out, err := yaml.Marshal(score)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	var back soitin.Score
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if back.Synth != score.Synth {
		t.Fatalf("synth round trip gave %+v, expected %+v", back.Synth, score.Synth)
	}
	if len(back.Notes) != len(score.Notes) {
		t.Fatalf("notes round trip gave %v notes, expected %v", len(back.Notes), len(score.Notes))
	}
	for i := range back.Notes {
		if back.Notes[i] != score.Notes[i] {
			t.Fatalf("note %v round trip gave %+v, expected %+v", i, back.Notes[i], score.Notes[i])
		}
	}
}

func TestScoreJsonRoundTrip(t *testing.T) {
	score := soitin.Score{
		Synth: soitin.Synth{SampleRate: 44100, Oscillator: soitin.Saw},
		Notes: []soitin.Note{{Frequency: 440, Time: 0, Duration: 1, Velocity: 1}},
	}
	out, err := json.Marshal(score)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	var back soitin.Score
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if back.Synth != score.Synth || back.Notes[0] != score.Notes[0] {
		t.Fatalf("json round trip gave %+v, expected %+v", back, score)
	}
}

func TestSynthZeroValueDefaults(t *testing.T) {
	var synth soitin.Synth
	buffer := synth.Render([]soitin.Note{soitin.NewNote(440, 0, 1)})
	if len(buffer) != soitin.DefaultSampleRate {
		t.Fatalf("zero value synth rendered %v samples, expected %v", len(buffer), soitin.DefaultSampleRate)
	}
}
