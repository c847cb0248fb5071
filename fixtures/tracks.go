package fixtures

import (
	"math"
	"time"

	"github.com/arcspatial/geocore/geodesy"
	"github.com/arcspatial/geocore/kinetics"
)

// TrackSpec describes a synthetic GPS track: a straight-line path at
// constant ground speed and course, sampled at regular intervals, with
// optional Gaussian position jitter.
type TrackSpec struct {
	Start        time.Time
	Samples      int
	Interval     time.Duration
	StartLat     float64
	StartLon     float64
	SpeedMPS     float64
	CourseDeg    float64
	JitterMeters float64 // standard deviation of per-sample position noise; 0 disables jitter
}

// SyntheticTrack generates a []kinetics.Sample following spec, stepping
// forward one hop of SpeedMPS*Interval meters along CourseDeg per sample.
// Each hop is computed by displace's equirectangular small-angle
// approximation on a sphere of geodesy.EarthRadiusMeters, not by the
// great-circle formulas in geodesy.
func SyntheticTrack(spec TrackSpec, opts ...Option) []kinetics.Sample {
	c := newConfig(opts...)

	samples := make([]kinetics.Sample, spec.Samples)
	lat, lon := spec.StartLat, spec.StartLon

	for i := 0; i < spec.Samples; i++ {
		sampleLat, sampleLon := lat, lon
		if spec.JitterMeters > 0 {
			sampleLat, sampleLon = jitter(sampleLat, sampleLon, spec.JitterMeters, c)
		}

		samples[i] = kinetics.Sample{
			Time: spec.Start.Add(time.Duration(i) * spec.Interval),
			Lat:  sampleLat,
			Lon:  sampleLon,
		}

		hopMeters := spec.SpeedMPS * spec.Interval.Seconds()
		lat, lon = displace(lat, lon, spec.CourseDeg, hopMeters)
	}

	return samples
}

// displace moves (lat, lon) distanceMeters along bearingDeg using the
// equirectangular small-angle approximation, good enough for the short
// per-sample hops a synthetic track takes between consecutive points.
func displace(lat, lon, bearingDeg, distanceMeters float64) (float64, float64) {
	angular := distanceMeters / geodesy.EarthRadiusMeters

	bearingRad := bearingDeg * (math.Pi / 180)
	dLat := angular * math.Cos(bearingRad)
	dLon := angular * math.Sin(bearingRad) / math.Cos(lat*math.Pi/180)

	newLat := geodesy.ClampLatitude(lat + dLat*180/math.Pi)
	newLon := geodesy.ClampLongitude(wrapLongitude(lon + dLon*180/math.Pi))

	return newLat, newLon
}

func wrapLongitude(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}

	return lon
}

// jitter perturbs (lat, lon) by Gaussian noise with the given standard
// deviation in meters, converted to degrees via the equirectangular
// approximation used throughout this file.
func jitter(lat, lon, stddevMeters float64, c *config) (float64, float64) {
	metersPerDegreeLat := geodesy.EarthRadiusMeters * math.Pi / 180
	dLat := c.rng.NormFloat64() * stddevMeters / metersPerDegreeLat
	dLon := c.rng.NormFloat64() * stddevMeters / (metersPerDegreeLat * math.Cos(lat*math.Pi/180))

	return geodesy.ClampLatitude(lat + dLat), geodesy.ClampLongitude(wrapLongitude(lon + dLon))
}
