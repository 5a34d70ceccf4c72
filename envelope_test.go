package soitin

import "testing"

func TestEnvelopeShape(t *testing.T) {
	const rate = 44100
	const n = rate // one second
	env := makeEnvelope(DefaultAttack, DefaultRelease, rate, n)
	attack := 441 // round(0.01 * 44100)
	if env.attack != attack || env.release != attack {
		t.Fatalf("envelope ramps = %v/%v, expected %v/%v", env.attack, env.release, attack, attack)
	}
	if g := env.gain(0, n); g != 0 {
		t.Fatalf("gain at first sample = %v, expected 0", g)
	}
	if g := env.gain(n-1, n); g != 0 {
		t.Fatalf("gain at last sample = %v, expected 0", g)
	}
	for i := 0; i < n; i += 7 {
		g := env.gain(i, n)
		if g < 0 || g > 1 {
			t.Fatalf("gain(%v) = %v, outside [0, 1]", i, g)
		}
	}
	// sustain region holds at 1
	for _, i := range []int{attack, n / 2, n - attack - 1} {
		if g := env.gain(i, n); g != 1 {
			t.Fatalf("gain(%v) = %v, expected 1 in the sustain region", i, g)
		}
	}
	// ramps are linear
	if g := env.gain(attack/2, n); g != float64(attack/2)/float64(attack) {
		t.Fatalf("attack midpoint gain = %v, not linear", g)
	}
}

func TestEnvelopeShortNote(t *testing.T) {
	const rate = 44100
	// 5 ms note, shorter than the 10+10 ms ramps
	n := 221
	env := makeEnvelope(DefaultAttack, DefaultRelease, rate, n)
	if env.attack+env.release != n {
		t.Fatalf("scaled ramps %v+%v do not tile a note of %v samples", env.attack, env.release, n)
	}
	if g := env.gain(0, n); g != 0 {
		t.Fatalf("short note gain at first sample = %v, expected 0", g)
	}
	if g := env.gain(n-1, n); g != 0 {
		t.Fatalf("short note gain at last sample = %v, expected 0", g)
	}
	for i := 0; i < n; i++ {
		g := env.gain(i, n)
		if g < 0 || g > 1 {
			t.Fatalf("short note gain(%v) = %v, outside [0, 1]", i, g)
		}
	}
	// deterministic: scaling twice gives the same ramps
	again := makeEnvelope(DefaultAttack, DefaultRelease, rate, n)
	if again != env {
		t.Fatalf("makeEnvelope not deterministic: %v vs %v", again, env)
	}
}

func TestEnvelopeSingleSampleNote(t *testing.T) {
	env := makeEnvelope(DefaultAttack, DefaultRelease, 44100, 1)
	if g := env.gain(0, 1); g != 0 {
		t.Fatalf("one-sample note gain = %v, expected 0", g)
	}
}
