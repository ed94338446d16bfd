package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	t.Parallel()

	p := Point{Lat: 5.30, Lng: -4.00}
	if d := DistanceKm(p, p); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	t.Parallel()

	// Abidjan Plateau -> Abidjan Cocody, roughly 5.5 km.
	a := Point{Lat: 5.3251, Lng: -4.0208}
	b := Point{Lat: 5.3590, Lng: -3.9830}

	d := DistanceKm(a, b)
	if d < 5.0 || d > 6.5 {
		t.Fatalf("distance = %v km, want ~5.5 km", d)
	}
}

func TestDistanceKm_SmallOffsets(t *testing.T) {
	t.Parallel()

	// ~40m apart, the scenario pair from the dedup flow.
	a := Point{Lat: 5.30, Lng: -4.00}
	b := Point{Lat: 5.3003, Lng: -4.0003}

	d := DistanceKm(a, b)
	if d <= 0.03 || d >= 0.06 {
		t.Fatalf("distance = %v km, want ~0.045 km", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	a := Point{Lat: 48.8566, Lng: 2.3522}
	b := Point{Lat: 51.5074, Lng: -0.1278}

	if d1, d2 := DistanceKm(a, b), DistanceKm(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("asymmetric distance: %v vs %v", d1, d2)
	}
}

func TestValidCoordinates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		lat, lng float64
		want     bool
	}{
		{0, 0, true},
		{-90, 180, true},
		{90, -180, true},
		{90.01, 0, false},
		{-90.01, 0, false},
		{0, 180.5, false},
		{0, -181, false},
	}
	for _, tc := range cases {
		if got := ValidCoordinates(tc.lat, tc.lng); got != tc.want {
			t.Errorf("ValidCoordinates(%v, %v) = %v, want %v", tc.lat, tc.lng, got, tc.want)
		}
	}
}
