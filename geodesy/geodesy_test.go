package geodesy_test

import (
	"math"
	"testing"

	"github.com/arcspatial/geocore/geodesy"
)

func TestDistance_SameToEquator(t *testing.T) {
	// One degree of latitude along a meridian is ~111.2km.
	d := geodesy.Distance(0, 0, 1, 0)
	if d < 110500 || d > 111500 {
		t.Fatalf("expected ~111.2km, got %v meters", d)
	}
}

func TestDistance_IdenticalPointsIsZero(t *testing.T) {
	d := geodesy.Distance(51.5, -0.1, 51.5, -0.1)
	if d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestBearing_DueNorth(t *testing.T) {
	b := geodesy.Bearing(0, 0, 1, 0)
	if math.Abs(b-0) > 1e-6 {
		t.Fatalf("expected bearing 0, got %v", b)
	}
}

func TestBearing_DueEast(t *testing.T) {
	b := geodesy.Bearing(0, 0, 0, 1)
	if math.Abs(b-90) > 0.5 {
		t.Fatalf("expected bearing ~90, got %v", b)
	}
}

func TestMidpointOnSphere_Symmetric(t *testing.T) {
	lat, lon := geodesy.MidpointOnSphere(0, -1, 0, 1)
	if math.Abs(lat-0) > 1e-6 || math.Abs(lon-0) > 1e-6 {
		t.Fatalf("expected (0,0), got (%v,%v)", lat, lon)
	}
}

func TestClampLatitude(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{91, 90}, {-91, -90}, {45, 45},
	}
	for _, c := range cases {
		if got := geodesy.ClampLatitude(c.in); got != c.want {
			t.Fatalf("ClampLatitude(%v)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestClampLongitude(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{181, 180}, {-181, -180}, {90, 90},
	}
	for _, c := range cases {
		if got := geodesy.ClampLongitude(c.in); got != c.want {
			t.Fatalf("ClampLongitude(%v)=%v, want %v", c.in, got, c.want)
		}
	}
}
