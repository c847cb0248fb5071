// Package fixtures generates deterministic synthetic data for tests,
// benchmarks, and examples across this module: random point clouds,
// degenerate (all-equal-distance) key sets, synthetic GPS tracks, and
// random permutations of an integer range.
//
// Every generator is seeded explicitly — there is no package-level random
// source — so a given seed reproduces the same fixture across runs and
// platforms. Pass a seed via WithSeed, or an already-constructed *rand.Rand
// via WithRand when a caller wants to share one stream across several
// fixtures.
package fixtures
