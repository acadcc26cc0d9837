package pathtracer

import (
	"math"
	"testing"
)

func TestGammaRoundTripWithinOneLSB(t *testing.T) {
	for i := 0; i < 256; i++ {
		linear := math.Pow(float64(i)/255, 1/GammaCorrection)
		got := gammaEncode(linear)

		diff := int(got) - i
		if diff < -1 || diff > 1 {
			t.Errorf("byte %d round-tripped to %d, diff %d exceeds 1 LSB", i, got, diff)
		}
	}
}

func TestGammaEncodeClampsToByteRange(t *testing.T) {
	if got := gammaEncode(1e9); got != 255 {
		t.Errorf("gammaEncode(1e9) = %d, want 255", got)
	}
	if got := gammaEncode(-1); got != 0 {
		t.Errorf("gammaEncode(-1) = %d, want 0", got)
	}
}

func TestSamplesPerPixelFollowsAntialiasing(t *testing.T) {
	defer func() { EnableAntialiasing = true }()

	EnableAntialiasing = true
	if got := samplesPerPixel(); got != AntialiasingSamples {
		t.Errorf("AA enabled: got %d, want %d", got, AntialiasingSamples)
	}

	EnableAntialiasing = false
	if got := samplesPerPixel(); got != 1 {
		t.Errorf("AA disabled: got %d, want 1", got)
	}
}
