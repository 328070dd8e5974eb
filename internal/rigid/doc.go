// Package rigid is a minimal rigid-body engine for box-shaped hulls.
//
// Water controllers talk to bodies only through [Handle]: they read the
// current transform and velocity and push point forces and torques. The
// [World] owns integration and steps every body on a fixed timestep with a
// time accumulator, so callers pass the real frame delta and a substep cap.
//
// Forces accumulate on a body until the next internal step consumes them,
// then reset to zero.
package rigid
