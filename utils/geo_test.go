package utils

import (
	"math"
	"testing"
)

func TestHaversineZeroDistance(t *testing.T) {
	if d := HaversineMeters(52.5200, 13.4050, 52.5200, 13.4050); d != 0 {
		t.Errorf("expected 0 distance, got %f", d)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Paris (Notre-Dame) to London (Big Ben), roughly 340 km
	d := HaversineMeters(48.8530, 2.3499, 51.5007, -0.1246)
	if math.Abs(d-340000) > 5000 {
		t.Errorf("Paris-London distance off: got %f meters", d)
	}
}

func TestHaversineShortDistance(t *testing.T) {
	// Two points ~111 meters apart along a meridian (0.001 deg latitude)
	d := HaversineMeters(52.5200, 13.4050, 52.5210, 13.4050)
	if math.Abs(d-111.2) > 1.0 {
		t.Errorf("short distance off: got %f meters", d)
	}
}
