// Package pipeline converts pose and twist samples between conventions,
// one sample in, one sample out (or zero on drop).
//
// The pose pipeline applies the body-axis convention change, then composes
// with the looked-up navigation→autopilot transform. The twist pipeline
// applies the rotation-only component of the navigation→body transform:
// translating a velocity is the classic silent correctness bug this package
// exists to prevent.
//
// Both pipelines are single-threaded and reactive: a sample is processed to
// completion before the next is accepted, the only suspension point is the
// bounded transform lookup, and a dropped sample is simply absent from the
// output stream (no queueing, no retries).
package pipeline
