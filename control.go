package theremin

import "math"

// Joystick axis translation. Raw axis readings are signed 16-bit; these are
// pure functions so they stay testable without a controller attached.

// AxisRatio normalizes a raw axis value to [0, 1].
func AxisRatio(raw int16) float64 {
	return (float64(raw) - math.MinInt16) / (math.MaxInt16 - math.MinInt16)
}

// AxisVolume maps a raw axis value to a volume in [0, 32767.5]. The axis is
// inverted so that pushing the stick forward raises the volume.
func AxisVolume(raw int16) float64 {
	return float64(math.MaxInt16-int(raw)) / 2
}

// InterpolateFrequency maps x in [0, 1] to a frequency centered on 440 Hz
// and spanning the given number of octaves, with x = 0.5 giving 440 exactly.
// The map is exponential: equal stick travel moves the pitch by equal
// musical intervals, which is how pitch is heard.
func InterpolateFrequency(x, octaves float64) float64 {
	halfRange := math.Pow(2, octaves/2)
	k := math.Log(halfRange)
	return 440 * math.Exp(2*k*x) / halfRange
}
