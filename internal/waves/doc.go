// Package waves provides the procedural water heightfield shared by the
// simulation and the renderer.
//
// The field is a fractal sum of 2D simplex gradient noise:
//
//   - [Noise2]: a single simplex noise sample in roughly [-1, 1]
//   - [Elevation]: the multi-octave sum for a set of [Parameters]
//   - [Field]: a water plane placed in the world, the [Sampler] consumed by
//     buoyancy controllers
//
// The CPU evaluation must match the GPU vertex displacement sample for
// sample, so the noise construction (skew constants, gradient hash,
// permutation table, tie rule) is fixed. Use [Compare] against samples
// dumped from the renderer to check the two stay in agreement.
//
// # Thread Safety
//
// [Noise2] and [Elevation] are pure and read only package constants, so they
// may be called from any number of goroutines. A [Field] is not safe for
// concurrent SetParams and HeightAt.
package waves
