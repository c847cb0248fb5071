package kinetics_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/arcspatial/geocore/kinetics"
)

func sampleAt(base time.Time, offset time.Duration, lat, lon, alt float64) kinetics.Sample {
	return kinetics.Sample{Time: base.Add(offset), Lat: lat, Lon: lon, Alt: alt}
}

// TestS6_DateLineSmoothing is literal scenario S6 from spec.md §8.
func TestS6_DateLineSmoothing(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	lons := []float64{179.8, 179.9, 180.0, -179.9, -179.8}

	samples := make([]kinetics.Sample, len(lons))
	for i, lon := range lons {
		samples[i] = sampleAt(base, time.Duration(i)*time.Second, 0, lon, 0)
	}

	f := kinetics.New(kinetics.WithWindow(4 * time.Second))
	query := base.Add(2 * time.Second)

	snap, err := f.Interpolate(samples, query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(snap.Lon-180) > 1e-3 && math.Abs(snap.Lon+180) > 1e-3 {
		t.Fatalf("Lon = %v, want ~180 (or ~-180)", snap.Lon)
	}
	if math.Abs(snap.Lat) > 1e-6 {
		t.Fatalf("Lat = %v, want ~0", snap.Lat)
	}
	if math.Abs(snap.CourseDeg-90) > 1 {
		t.Fatalf("CourseDeg = %v, want ~90", snap.CourseDeg)
	}

	// Translate the same track by 180 degrees of longitude so it never
	// crosses the antimeridian, and verify the recovered location shifts
	// by exactly the translation (within tolerance), i.e. no spurious
	// dateline artifact is introduced when the seam is not actually
	// crossed.
	translated := make([]kinetics.Sample, len(lons))
	for i, lon := range lons {
		shifted := lon + 180
		if shifted > 180 {
			shifted -= 360
		}
		translated[i] = sampleAt(base, time.Duration(i)*time.Second, 0, shifted, 0)
	}

	f2 := kinetics.New(kinetics.WithWindow(4 * time.Second))
	snap2, err := f2.Interpolate(translated, query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := snap.Lon + 180
	if want > 180 {
		want -= 360
	}
	if math.Abs(snap2.Lon-want) > 1e-3 {
		t.Fatalf("translated Lon = %v, want ~%v", snap2.Lon, want)
	}
}

// TestProperty_NoExtrapolation is property 10.
func TestProperty_NoExtrapolation(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	samples := []kinetics.Sample{
		sampleAt(base, 0, 10, 20, 100),
		sampleAt(base, 1*time.Second, 10.001, 20.001, 101),
		sampleAt(base, 2*time.Second, 10.002, 20.002, 102),
	}

	f := kinetics.New(kinetics.WithWindow(3 * time.Second))

	// Query well outside the sample span must be refused, never
	// extrapolated.
	_, err := f.Interpolate(samples, base.Add(10*time.Second))
	if !errors.Is(err, kinetics.ErrNoFit) {
		t.Fatalf("expected ErrNoFit for out-of-span query, got %v", err)
	}

	// A query inside the span succeeds.
	_, err = f.Interpolate(samples, base.Add(1*time.Second))
	if err != nil {
		t.Fatalf("unexpected error for in-span query: %v", err)
	}
}

func TestInterpolate_RefusesBelowRequiredPoints(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	samples := []kinetics.Sample{
		sampleAt(base, 0, 10, 20, 100),
		sampleAt(base, 1*time.Second, 10.001, 20.001, 101),
	}

	f := kinetics.New(kinetics.WithWindow(3*time.Second), kinetics.WithRequiredPoints(3))
	_, err := f.Interpolate(samples, base.Add(500*time.Millisecond))
	if !errors.Is(err, kinetics.ErrNoFit) {
		t.Fatalf("expected ErrNoFit, got %v", err)
	}
}

func TestInterpolate_RejectsUnsortedSamples(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	samples := []kinetics.Sample{
		sampleAt(base, 1*time.Second, 10, 20, 0),
		sampleAt(base, 0, 10, 20, 0),
	}

	f := kinetics.New()
	_, err := f.Interpolate(samples, base)
	if !errors.Is(err, kinetics.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestInterpolate_ConstantVelocityTrack(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// Roughly 1 degree of longitude per second at the equator is a huge
	// speed, so use a small per-second longitude step instead.
	var samples []kinetics.Sample
	for i := 0; i < 7; i++ {
		samples = append(samples, sampleAt(base, time.Duration(i)*time.Second, 0, float64(i)*0.0001, 50))
	}

	f := kinetics.New(kinetics.WithWindow(6 * time.Second))
	snap, err := f.Interpolate(samples, base.Add(3*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(snap.CourseDeg-90) > 1 {
		t.Fatalf("CourseDeg = %v, want ~90 (due east)", snap.CourseDeg)
	}
	if snap.SpeedMPS <= 0 {
		t.Fatalf("SpeedMPS = %v, want > 0 for a moving track", snap.SpeedMPS)
	}
	if math.Abs(snap.Alt-50) > 1 {
		t.Fatalf("Alt = %v, want ~50", snap.Alt)
	}
}

func TestInterpolate_IgnoreAltitudeForcesZero(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	samples := []kinetics.Sample{
		sampleAt(base, 0, 10, 20, 999),
		sampleAt(base, 1*time.Second, 10, 20, 999),
		sampleAt(base, 2*time.Second, 10, 20, 999),
	}

	f := kinetics.New(kinetics.WithWindow(3*time.Second), kinetics.WithIgnoreAltitude())
	snap, err := f.Interpolate(samples, base.Add(1*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Alt != 0 || snap.ClimbRateMPS != 0 {
		t.Fatalf("expected zero altitude and climb rate, got Alt=%v ClimbRateMPS=%v", snap.Alt, snap.ClimbRateMPS)
	}
}

func TestWithWindow_RejectsNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on non-positive window")
		}
	}()
	kinetics.New(kinetics.WithWindow(0))
}

func TestWithRequiredPoints_RejectsNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on negative requiredPoints")
		}
	}()
	kinetics.New(kinetics.WithRequiredPoints(-1))
}
