package kinetics

import "time"

// Sample is one noisy geographic observation.
type Sample struct {
	Time time.Time
	Lat  float64
	Lon  float64
	Alt  float64 // meters above a reference datum; ignored when WithIgnoreAltitude is set
}

// KineticSnapshot is the immutable result of fitting a window of Samples
// and evaluating the fit at a single instant.
type KineticSnapshot struct {
	Time         time.Time
	Lat          float64 // degrees
	Lon          float64 // degrees
	Alt          float64 // meters
	SpeedMPS     float64 // meters per second, ground speed
	CourseDeg    float64 // degrees clockwise from true north, [0, 360)
	ClimbRateMPS float64 // meters per second, positive up
	AccelMPS2    float64 // meters per second squared, rate of change of SpeedMPS
	TurnRateDPS  float64 // degrees per second, signed (positive = turning left, counter-clockwise)
}
