package transform

import (
	"time"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// FrameID names a node in the frame tree. Values are opaque to this package;
// the frames package generates the canonical vehicle-scoped identifiers.
type FrameID string

// RigidTransform relates a child frame to its parent frame at a point in
// time. A point expressed in the child frame maps into the parent frame via
// p' = Rotation*p + Translation.
type RigidTransform struct {
	Parent      FrameID
	Child       FrameID
	Stamp       time.Time
	Translation r3.Vec
	Rotation    quat.Number // unit quaternion
}

// Pose is a stamped position + orientation expressed in Frame.
type Pose struct {
	Frame       FrameID
	Stamp       time.Time
	Position    r3.Vec
	Orientation quat.Number // unit quaternion
}

// Twist is a stamped linear + angular velocity pair expressed in Frame's
// axes.
type Twist struct {
	Frame   FrameID
	Stamp   time.Time
	Linear  r3.Vec // m/s
	Angular r3.Vec // rad/s
}

// Apply expresses a pose given in t.Child coordinates in t.Parent
// coordinates. The pose keeps its original stamp.
func (t RigidTransform) Apply(p Pose) Pose {
	return Pose{
		Frame:       t.Parent,
		Stamp:       p.Stamp,
		Position:    r3.Add(Rotate(t.Rotation, p.Position), t.Translation),
		Orientation: quat.Mul(t.Rotation, p.Orientation),
	}
}

// RotateTwist re-expresses a twist given in t.Child coordinates in t.Parent
// coordinates. Only the rotation participates: a velocity is a direction,
// and translating it would silently corrupt the sample.
func (t RigidTransform) RotateTwist(tw Twist) Twist {
	return Twist{
		Frame:   t.Parent,
		Stamp:   tw.Stamp,
		Linear:  Rotate(t.Rotation, tw.Linear),
		Angular: Rotate(t.Rotation, tw.Angular),
	}
}

// Invert returns the transform directed child←parent.
func (t RigidTransform) Invert() RigidTransform {
	qi := quat.Conj(t.Rotation)
	return RigidTransform{
		Parent:      t.Child,
		Child:       t.Parent,
		Stamp:       t.Stamp,
		Translation: r3.Scale(-1, Rotate(qi, t.Translation)),
		Rotation:    qi,
	}
}

// Compose chains two transforms a: A←B and b: B←C into A←C. The result
// carries b's stamp (the child-most edge).
func Compose(a, b RigidTransform) RigidTransform {
	return RigidTransform{
		Parent:      a.Parent,
		Child:       b.Child,
		Stamp:       b.Stamp,
		Translation: r3.Add(Rotate(a.Rotation, b.Translation), a.Translation),
		Rotation:    quat.Mul(a.Rotation, b.Rotation),
	}
}
