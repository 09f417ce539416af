// Package field implements the simulation core: a single fixed solar
// mass at the origin attracting any number of small bodies that do not
// interact with each other.
//
// The acceleration on a body at distance r is g*M/d^2 pointed at the
// origin, where d is r clamped to the field's [minDist, maxDist]
// range. The clamp applies to the force magnitude only; direction uses
// the true position. Bodies advance by semi-implicit Euler, velocity
// first, then position, which keeps long orbits from spiraling.
package field
