package soitin

import "math"

// envelope is the attack/sustain/release gain ramp of a single note, with the
// ramp lengths in samples. There is no separate decay stage and the sustain
// level is fixed at 1; the shaping only fades notes in and out to avoid
// clicks at their edges.
type envelope struct {
	attack, release int
}

// makeEnvelope computes the envelope for a note of n samples. Notes shorter
// than attack+release scale both ramps down proportionally so that they
// exactly tile the note (a' = n*a/(a+r), r' = n-a'): the gain still starts
// and ends at zero for arbitrarily short notes, and the rule is deterministic.
func makeEnvelope(attackTime, releaseTime float64, sampleRate, n int) envelope {
	a := int(math.Round(attackTime * float64(sampleRate)))
	r := int(math.Round(releaseTime * float64(sampleRate)))
	if a+r > n {
		a = n * a / (a + r)
		r = n - a
	}
	return envelope{attack: a, release: r}
}

// gain returns the envelope multiplier in [0, 1] for sample i of a note n
// samples long. The first sample of the attack and the last sample of the
// release are exactly zero.
func (e envelope) gain(i, n int) float64 {
	g := 1.0
	if i < e.attack {
		g = float64(i) / float64(e.attack)
	}
	if tail := n - 1 - i; tail < e.release {
		if rg := float64(tail) / float64(e.release); rg < g {
			g = rg
		}
	}
	return g
}
