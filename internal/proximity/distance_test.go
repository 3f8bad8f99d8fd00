package proximity

import (
	"math"
	"testing"

	"github.com/akozadaev/rawgle/internal/models"
)

func TestDistanceKM(t *testing.T) {
	tests := []struct {
		name string
		a, b models.GeoPoint
		want float64
		tol  float64
	}{
		{"identical", models.GeoPoint{Lat: 51.48, Lon: -3.18}, models.GeoPoint{Lat: 51.48, Lon: -3.18}, 0, 0},
		{"cardiff to london", models.GeoPoint{Lat: 51.4816, Lon: -3.1791}, models.GeoPoint{Lat: 51.5074, Lon: -0.1278}, 211.5, 2},
		{"one degree on equator", models.GeoPoint{Lat: 0, Lon: 0}, models.GeoPoint{Lat: 0, Lon: 1}, 111.19, 0.05},
		{"antipodal", models.GeoPoint{Lat: 0, Lon: 0}, models.GeoPoint{Lat: 0, Lon: 180}, math.Pi * EarthRadiusKM, 0.001},
		{"poles", models.GeoPoint{Lat: 90, Lon: 0}, models.GeoPoint{Lat: -90, Lon: 0}, math.Pi * EarthRadiusKM, 0.001},
		{"dateline", models.GeoPoint{Lat: 10, Lon: 180}, models.GeoPoint{Lat: 10, Lon: -180}, 0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKM(tt.a, tt.b)
			if math.IsNaN(got) {
				t.Fatalf("DistanceKM returned NaN")
			}
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("DistanceKM() = %v, want %v ± %v", got, tt.want, tt.tol)
			}
		})
	}
}

func TestDistanceKMSymmetric(t *testing.T) {
	points := []models.GeoPoint{
		{Lat: 51.48, Lon: -3.18},
		{Lat: -33.86, Lon: 151.21},
		{Lat: 40.71, Lon: -74.0},
		{Lat: 89.9, Lon: 179.9},
		{Lat: -89.9, Lon: -179.9},
		{Lat: 0, Lon: 0},
	}
	for _, a := range points {
		if d := DistanceKM(a, a); d != 0 {
			t.Errorf("DistanceKM(%v, %v) = %v, want 0", a, a, d)
		}
		for _, b := range points {
			if DistanceKM(a, b) != DistanceKM(b, a) {
				t.Errorf("DistanceKM not symmetric for %v and %v", a, b)
			}
		}
	}
}

func TestRoundDistance(t *testing.T) {
	if got := RoundDistance(12.3456); got != 12.35 {
		t.Errorf("RoundDistance(12.3456) = %v, want 12.35", got)
	}
	if got := RoundDistance(0); got != 0 {
		t.Errorf("RoundDistance(0) = %v, want 0", got)
	}
}
