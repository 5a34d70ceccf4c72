package soitin

import (
	"math"

	"github.com/viterin/vek/vek32"
)

// Render mixes every note into a single master buffer. The buffer is sized
// from the latest note end time, so every note span fits it by construction.
// Notes are rendered independently and summed element-wise in the order they
// appear in the slice; the fixed reduction order keeps repeated renders
// bit-identical even though float addition is not associative.
//
// The returned buffer holds the raw accumulated samples, which may exceed
// +-1 where many notes overlap; Pcm16, Wav and Raw clamp on the way out.
// Render owns the buffer exclusively until it returns. An empty note list
// yields an empty buffer, not an error.
func (s Synth) Render(notes []Note) AudioBuffer {
	s = s.withDefaults()
	length := int(math.Ceil(endTime(notes) * float64(s.SampleRate)))
	master := make(AudioBuffer, length)
	for _, note := range notes {
		start, buffer := s.RenderNote(note)
		if start < 0 || start >= len(master) || len(buffer) == 0 {
			continue
		}
		dst := master[start:]
		if len(buffer) > len(dst) {
			buffer = buffer[:len(dst)]
		}
		vek32.Add_Inplace(dst[:len(buffer)], buffer)
	}
	return master
}

func endTime(notes []Note) float64 {
	ret := 0.0
	for _, n := range notes {
		if e := n.End(); e > ret {
			ret = e
		}
	}
	return ret
}
