// Package dtw adapts Dynamic Time Warping into a mtree.DistanceMetric over
// []float64 sequences, so a MetricIndex can index and query variable-length
// numeric series (sensor traces, flight-altitude profiles, anything shaped
// like a time series) rather than only fixed-dimension points.
//
// DTW's cost model — a Sakoe-Chiba band limiting how far the alignment may
// drift, plus a per-step insertion/deletion penalty — is exposed through
// Options exactly as in a direct two-sequence comparison; only the output
// differs, since a metric used inside an index never needs the backtraced
// alignment path, just the scalar distance.
package dtw
