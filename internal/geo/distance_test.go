package geo

import (
	"math"
	"testing"
)

func TestDistanceKmSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{51.4706, -0.4619, 40.6413, -73.7781}, // LHR - JFK
		{47.4582, 8.5555, 25.2528, 55.3644},   // ZRH - DXB
		{-33.9399, 151.1753, 35.5494, 139.7798},
	}

	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("distance not symmetric: %f vs %f", ab, ba)
		}
	}
}

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	if d := DistanceKm(48.3538, 11.7861, 48.3538, 11.7861); d != 0 {
		t.Errorf("expected 0 for identical points, got %f", d)
	}
}

func TestDistanceKmKnownRoute(t *testing.T) {
	// LHR to JFK is roughly 5540 km great-circle
	d := DistanceKm(51.4706, -0.4619, 40.6413, -73.7781)
	if d < 5400 || d > 5700 {
		t.Errorf("LHR-JFK distance out of expected band: %f", d)
	}
}
