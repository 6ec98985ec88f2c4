// Package frames generates canonical frame identifiers for a named vehicle
// and defines the closed sets of vehicle types, frame roles and mounted
// sensors. Frame IDs are scoped by vehicle name so multiple vehicles can
// share one network without colliding.
package frames
