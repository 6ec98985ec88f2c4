// Package convention converts orientations and vectors between the two axis
// conventions used on the vehicle: the local navigation convention
// (east-north-up world, forward-left-up body) and the autopilot convention
// (north-east-down world, forward-right-down body).
//
// Both remaps are fixed 180°-class rotations, so every conversion is an
// involution: applying the same conversion twice returns the original value
// up to floating-point tolerance. All functions are pure and norm-preserving.
package convention
