package theremin

import (
	"math"
	"testing"
)

func TestAxisRatio(t *testing.T) {
	assert(t, AxisRatio(math.MinInt16), 0)
	assert(t, AxisRatio(math.MaxInt16), 1)
	within(t, AxisRatio(0), 0.5, 1e-4)
}

func TestAxisVolume(t *testing.T) {
	// Inverted: stick forward (negative raw) is loud.
	assert(t, AxisVolume(math.MaxInt16), 0)
	assert(t, AxisVolume(math.MinInt16), 32767.5)
	if AxisVolume(-1000) <= AxisVolume(1000) {
		t.Fatal("volume must decrease as the raw value grows")
	}
}

func TestInterpolateFrequency(t *testing.T) {
	t.Run("center", func(t *testing.T) {
		within(t, InterpolateFrequency(0.5, 2), 440, 1e-9)
		within(t, InterpolateFrequency(0.5, 4), 440, 1e-9)
	})
	t.Run("two octaves", func(t *testing.T) {
		within(t, InterpolateFrequency(0, 2), 220, 1e-9)
		within(t, InterpolateFrequency(1, 2), 880, 1e-9)
	})
	t.Run("four octaves", func(t *testing.T) {
		within(t, InterpolateFrequency(0, 4), 110, 1e-9)
		within(t, InterpolateFrequency(1, 4), 1760, 1e-9)
	})
	t.Run("log-symmetric around 440", func(t *testing.T) {
		lo := InterpolateFrequency(0, 2)
		hi := InterpolateFrequency(1, 2)
		within(t, math.Log2(440/lo), math.Log2(hi/440), 1e-9)
	})
}
