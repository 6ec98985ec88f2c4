// Package rig builds the static frame set for a vehicle: the fixed edges
// from the body frame to every sensor mount, the camera link→optical
// remaps, and the frame-coincident FLU→FRD body convention edge.
//
// The set is resolved explicitly at startup, before any dynamic sample is
// accepted, and cached for the process lifetime. It is broadcast as one
// atomic batch so consumers never observe a partially connected static
// subtree.
package rig
