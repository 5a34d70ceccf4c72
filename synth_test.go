package soitin_test

import (
	"math"
	"testing"

	"github.com/vsariola/soitin"
)

func TestRenderNoteSine(t *testing.T) {
	synth := soitin.DefaultSynth()
	note := soitin.Note{Frequency: 440, Time: 0, Duration: 1, Velocity: 1}
	start, buffer := synth.RenderNote(note)
	if start != 0 {
		t.Fatalf("start = %v, expected 0", start)
	}
	if len(buffer) != 44100 {
		t.Fatalf("buffer length = %v, expected 44100", len(buffer))
	}
	maxAbs := 0.0
	for _, v := range buffer {
		if a := math.Abs(float64(v)); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs > soitin.Sine.Volume() {
		t.Fatalf("peak amplitude %v exceeds the sine volume factor %v", maxAbs, soitin.Sine.Volume())
	}
	if maxAbs < 0.9*soitin.Sine.Volume() {
		t.Fatalf("peak amplitude %v suspiciously low for a full velocity note", maxAbs)
	}
	if buffer[0] != 0 {
		t.Fatalf("first sample = %v, expected 0 (attack)", buffer[0])
	}
	if buffer[len(buffer)-1] != 0 {
		t.Fatalf("last sample = %v, expected 0 (release)", buffer[len(buffer)-1])
	}
}

func TestRenderNoteStartIndex(t *testing.T) {
	synth := soitin.DefaultSynth()
	note := soitin.NewNote(440, 1.25, 0.5)
	start, buffer := synth.RenderNote(note)
	if start != 55125 { // round(1.25 * 44100)
		t.Fatalf("start = %v, expected 55125", start)
	}
	if len(buffer) != 22050 {
		t.Fatalf("buffer length = %v, expected 22050", len(buffer))
	}
}

func TestRenderNoteSilences(t *testing.T) {
	synth := soitin.DefaultSynth()
	for _, note := range []soitin.Note{
		{Frequency: 0, Time: 0, Duration: 0.1, Velocity: 1},   // rest
		{Frequency: 440, Time: 0, Duration: 0.1, Velocity: 0}, // zero velocity
	} {
		_, buffer := synth.RenderNote(note)
		for i, v := range buffer {
			if v != 0 {
				t.Fatalf("note %+v sample %v = %v, expected silence", note, i, v)
			}
		}
	}
	// zero duration is valid and renders nothing
	_, buffer := synth.RenderNote(soitin.Note{Frequency: 440, Velocity: 1})
	if len(buffer) != 0 {
		t.Fatalf("zero duration note rendered %v samples", len(buffer))
	}
}

func TestRenderNotePure(t *testing.T) {
	synth := soitin.Synth{SampleRate: 22050, Oscillator: soitin.Square}
	note := soitin.NewNote(220, 0.5, 0.25)
	_, a := synth.RenderNote(note)
	_, b := synth.RenderNote(note)
	if len(a) != len(b) {
		t.Fatalf("repeated renders differ in length: %v vs %v", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("repeated renders differ at sample %v: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRenderNoteVelocityScales(t *testing.T) {
	synth := soitin.DefaultSynth()
	full := soitin.Note{Frequency: 330, Time: 0, Duration: 0.2, Velocity: 1}
	half := full
	half.Velocity = 0.5
	_, fullBuffer := synth.RenderNote(full)
	_, halfBuffer := synth.RenderNote(half)
	for i := range fullBuffer {
		if math.Abs(float64(halfBuffer[i])-0.5*float64(fullBuffer[i])) > 1e-6 {
			t.Fatalf("sample %v: velocity 0.5 gave %v, expected half of %v", i, halfBuffer[i], fullBuffer[i])
		}
	}
}
