package oto

import "math"

// FloatBufferTo16BitLE converts a []float32 buffer to 16-bit little-endian
// integer samples, appending them to dst and returning it. Values outside
// [-1, 1] are clamped.
func FloatBufferTo16BitLE(buffer []float32, dst []byte) []byte {
	for _, v := range buffer {
		var uv int16
		if v < -1.0 {
			uv = -math.MaxInt16
		} else if v > 1.0 {
			uv = math.MaxInt16
		} else {
			uv = int16(v * math.MaxInt16)
		}
		dst = append(dst, byte(uv), byte(uv>>8))
	}
	return dst
}
