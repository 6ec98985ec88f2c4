package transform

import (
	"context"
	"time"
)

// Lookup resolves the rigid transform between two frames at a given time,
// blocking up to timeout while the frame graph connects. Implementations
// must resolve multi-hop paths and treat static and dynamic edges
// transparently. Failure is reported by wrapping ErrTransformUnavailable.
type Lookup interface {
	LookupTransform(ctx context.Context, parent, child FrameID, at time.Time, timeout time.Duration) (RigidTransform, error)
}

// Sink receives frame-tree edges. Calls are fire-and-forget: there is no
// acknowledgment and no retry. Static edges arrive as one atomic batch so
// consumers observe a fully connected static subtree; each dynamic edge
// fully replaces the previous edge with the same parent/child pair.
type Sink interface {
	SendStatic(edges []RigidTransform)
	SendDynamic(edge RigidTransform)
}
