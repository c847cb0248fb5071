package kinetics

import (
	"math"
	"time"

	"github.com/arcspatial/geocore/geodesy"
	"github.com/arcspatial/geocore/polyfit"
)

// dateLineSpanDeg is the longitude range above which a sample window is
// treated as straddling the antimeridian and gets the mod-360 shift.
const dateLineSpanDeg = 350

// accelHorizonMS and turnHorizonMS are the time offsets (in milliseconds,
// relative to the query instant) at which the fitted lat/lon polynomials are
// sampled to derive speed, course, acceleration, and turn rate by finite
// differences. Climb rate comes from the altitude polynomial's derivative
// at 0 instead.
const (
	accelHorizonMS = 1000
	turnHorizonMS  = 500
)

// Interpolate fits samples locally around query and returns the resulting
// KineticSnapshot. samples must be sorted ascending by Time; an unsorted
// slice is rejected with ErrInvalidArgument. The fit never extrapolates: if
// query falls outside the span of the in-window samples, or too few
// distinct timestamps fall in the window, Interpolate returns ErrNoFit.
func (f *Fitter) Interpolate(samples []Sample, query time.Time) (KineticSnapshot, error) {
	if err := checkSorted(samples); err != nil {
		return KineticSnapshot{}, err
	}

	half := f.window / 2
	lo := query.Add(-half)
	hi := query.Add(half)

	var windowed []Sample
	for _, s := range samples {
		if !s.Time.Before(lo) && !s.Time.After(hi) {
			windowed = append(windowed, s)
		}
	}

	if distinctTimestamps(windowed) < f.requiredPoints {
		return KineticSnapshot{}, ErrNoFit
	}
	if len(windowed) == 0 || query.Before(windowed[0].Time) || query.After(windowed[len(windowed)-1].Time) {
		return KineticSnapshot{}, ErrNoFit
	}

	sigmaMS := float64(f.window.Milliseconds()) / 6

	xs := make([]float64, len(windowed))
	weights := make([]float64, len(windowed))
	lats := make([]float64, len(windowed))
	lons := make([]float64, len(windowed))
	alts := make([]float64, len(windowed))

	for i, s := range windowed {
		dtMS := float64(s.Time.Sub(query).Milliseconds())
		xs[i] = dtMS

		z := dtMS / sigmaMS
		weights[i] = math.Exp(-z * z / 2)

		lats[i] = s.Lat
		lons[i] = s.Lon
		alts[i] = s.Alt
	}

	shift, shifted := dateLineShift(lons)

	latFit, err := polyfit.WeightedPolyFit(2, weights, xs, lats)
	if err != nil {
		return KineticSnapshot{}, ErrNoFit
	}
	lonFit, err := polyfit.WeightedPolyFit(2, weights, xs, shifted)
	if err != nil {
		return KineticSnapshot{}, ErrNoFit
	}

	var altFit polyfit.Polynomial
	if !f.ignoreAltitude {
		altFit, err = polyfit.WeightedPolyFit(1, weights, xs, alts)
		if err != nil {
			return KineticSnapshot{}, ErrNoFit
		}
	}

	locAt := func(tMS float64) (lat, lon float64) {
		lat = geodesy.ClampLatitude(latFit.At(tMS))
		lon = unshiftLongitude(lonFit.At(tMS), shift)
		lon = geodesy.ClampLongitude(lon)
		return lat, lon
	}

	lat0, lon0 := locAt(0)

	var alt0, climbRate float64
	if !f.ignoreAltitude {
		alt0 = altFit.At(0)
		climbRate = altFit.Derivative(0) * 1000 // per-ms derivative -> per-second
	}

	latMinus, lonMinus := locAt(-accelHorizonMS)
	latPlus, lonPlus := locAt(accelHorizonMS)

	distTwoSec := geodesy.Distance(latMinus, lonMinus, latPlus, lonPlus)
	courseNow := geodesy.Bearing(latMinus, lonMinus, latPlus, lonPlus)
	speedNow := distTwoSec / 2 // meters per 2s horizon -> m/s

	// Acceleration: difference of the two 1-second speeds bracketing 0,
	// i.e. speed over [-1000ms, 0] vs speed over [0, +1000ms].
	speedBefore := geodesy.Distance(latMinus, lonMinus, lat0, lon0) / 1
	speedAfter := geodesy.Distance(lat0, lon0, latPlus, lonPlus) / 1
	accel := speedAfter - speedBefore

	latTurnMinus, lonTurnMinus := locAt(-turnHorizonMS)
	latTurnPlus, lonTurnPlus := locAt(turnHorizonMS)

	bearingIn := geodesy.Bearing(latTurnMinus, lonTurnMinus, lat0, lon0)
	bearingOut := geodesy.Bearing(lat0, lon0, latTurnPlus, lonTurnPlus)
	turnRate := signedAngleDelta(bearingIn, bearingOut) // bearingIn - bearingOut, over the 1s straddling 0

	return KineticSnapshot{
		Time:         query,
		Lat:          lat0,
		Lon:          lon0,
		Alt:          alt0,
		SpeedMPS:     speedNow,
		CourseDeg:    courseNow,
		ClimbRateMPS: climbRate,
		AccelMPS2:    accel,
		TurnRateDPS:  turnRate,
	}, nil
}

func checkSorted(samples []Sample) error {
	for i := 1; i < len(samples); i++ {
		if samples[i].Time.Before(samples[i-1].Time) {
			return ErrInvalidArgument
		}
	}
	return nil
}

func distinctTimestamps(samples []Sample) int {
	seen := map[int64]struct{}{}
	for _, s := range samples {
		seen[s.Time.UnixNano()] = struct{}{}
	}
	return len(seen)
}

// dateLineShift inspects lons and, if their span exceeds dateLineSpanDeg,
// returns shift=true and a copy mod-360-shifted into [0, 360). Otherwise
// returns the longitudes unchanged, since shifting a window that does not
// straddle the antimeridian would introduce a false discontinuity at the
// prime meridian.
func dateLineShift(lons []float64) (shift bool, out []float64) {
	min, max := lons[0], lons[0]
	for _, l := range lons[1:] {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	if max-min <= dateLineSpanDeg {
		out = make([]float64, len(lons))
		copy(out, lons)
		return false, out
	}

	out = make([]float64, len(lons))
	for i, l := range lons {
		v := math.Mod(l+360, 360)
		out[i] = v
	}
	return true, out
}

// unshiftLongitude reverses dateLineShift's mod-360 shift on a single
// evaluated value, coercing anything past 180° back into (-180, 180].
func unshiftLongitude(lon float64, shifted bool) float64 {
	if !shifted {
		return lon
	}
	if lon > 180 {
		return lon - 360
	}
	return lon
}

// signedAngleDelta returns a-b normalized into [-180, 180), the signed
// smallest rotation from b to a.
func signedAngleDelta(a, b float64) float64 {
	d := math.Mod(a-b+540, 360) - 180
	return d
}
