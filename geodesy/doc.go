// Package geodesy provides the small set of spherical-earth primitives the
// rest of geocore treats as an ambient collaborator: great-circle distance,
// initial bearing, a midpoint on the sphere, and latitude/longitude clamps.
//
// There is no third-party geodesy/GIS dependency anywhere in the example
// corpus this module was grown from, and the teacher repo brands itself as
// "Pure Go — no cgo, no hidden dependencies" (see the root doc.go). This
// package follows that discipline: everything here is stdlib math on a
// spherical-earth approximation, which is what kinetics needs (sub-meter
// ellipsoidal correction is out of scope for a local smoother).
//
// All functions are stateless and safe for concurrent use by multiple
// goroutines, even though nothing upstream in geocore calls them that way.
package geodesy

// EarthRadiusMeters is the mean earth radius used by the spherical model.
const EarthRadiusMeters = 6371008.8
