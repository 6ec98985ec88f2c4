// Package transform defines the rigid-body data model shared by every
// component of the frame-tree bridge: frame identifiers, stamped transforms,
// pose and twist samples, and the quaternion helpers used to compose them.
//
// A RigidTransform is always directed parent←child: a point expressed in the
// child frame maps into the parent frame via p' = R*p + t, with the
// translation expressed in the parent frame's axes. Twists are different:
// velocities are frame-relative directions, not points, so only the rotation
// of a transform may ever be applied to them (see RigidTransform.RotateTwist).
//
// The package also declares the Lookup and Sink collaborator interfaces and
// the error taxonomy used across the pipelines.
package transform
