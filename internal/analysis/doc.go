// Package analysis turns recorded runs into numbers and pictures.
//
//   - [Spectrum] and [DominantFrequency]: FFT magnitude spectrum of a series,
//     typically the hull's heave
//   - [UpCrossings] and [MeanPeriod]: zero up-crossing wave statistics
//   - [TrackPortrait] and [HeavePortrait]: 2D point clouds for terminal plots
//   - [Sweep]: re-run a scenario across values of one parameter
//   - [Divergence]: growth rate of the gap between two nearby starts
//
// # Heave spectrum
//
//	heave := analysis.Heave(result.Frames)
//	f, ok := analysis.DominantFrequency(heave, dt)
package analysis
