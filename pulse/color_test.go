package pulse

import (
	"math"
	"testing"
)

func TestColorZeroValueIsWhite(t *testing.T) {
	var c Color
	if c != ColorWhite {
		t.Errorf("zero color must be white, got %v", c)
	}
}

func TestColorRGBA8(t *testing.T) {
	wc := ColorRGBA8(166, 227, 161, 255).ToWGPU()

	if wc.R != 166.0/255 || wc.G != 227.0/255 || wc.B != 161.0/255 || wc.A != 1 {
		t.Errorf("unexpected color %+v", wc)
	}
}

func TestColorSRGBA(t *testing.T) {
	r, _, _, a := ColorSRGBA(0.5, 0, 1, 0.5).Components()

	if math.Abs(r-0.21404) > 1e-4 {
		t.Errorf("expected degamma of 0.5, got %f", r)
	}

	// alpha is linear anyway
	if a != 0.5 {
		t.Errorf("alpha must not be converted, got %f", a)
	}
}
