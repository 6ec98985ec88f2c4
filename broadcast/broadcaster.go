package broadcast

import (
	"sync/atomic"

	"github.com/underwave-robotics/tfbridge/frames"
	"github.com/underwave-robotics/tfbridge/internal"
	"github.com/underwave-robotics/tfbridge/transform"
)

// Broadcaster turns pose samples into dynamic edges under the navigation
// frame. Single writer: callers feed samples one at a time.
type Broadcaster struct {
	sink transform.Sink

	nav    transform.FrameID
	body   transform.FrameID
	bodyGT transform.FrameID

	published atomic.Uint64
	rejected  atomic.Uint64
}

// New builds a broadcaster publishing to sink under the catalog's
// navigation frame.
func New(sink transform.Sink, cat frames.Catalog) *Broadcaster {
	return &Broadcaster{
		sink:   sink,
		nav:    cat.Map(),
		body:   cat.MustFrameID(frames.RoleBase),
		bodyGT: cat.MustFrameID(frames.RoleBaseGroundTruth),
	}
}

// OnPoseSample republishes an estimated body pose as the navigation→body
// edge.
func (b *Broadcaster) OnPoseSample(p transform.Pose) (transform.RigidTransform, error) {
	return b.publish(b.body, p)
}

// OnGroundTruthSample republishes a ground-truth pose as the
// navigation→ground-truth-body edge.
func (b *Broadcaster) OnGroundTruthSample(p transform.Pose) (transform.RigidTransform, error) {
	return b.publish(b.bodyGT, p)
}

func (b *Broadcaster) publish(child transform.FrameID, p transform.Pose) (transform.RigidTransform, error) {
	if err := transform.ValidatePose(p); err != nil {
		b.rejected.Add(1)
		internal.Warnf("dropping pose sample for %s: %v", child, err)
		return transform.RigidTransform{}, err
	}
	edge := transform.RigidTransform{
		Parent:      b.nav,
		Child:       child,
		Stamp:       p.Stamp,
		Translation: p.Position,
		Rotation:    p.Orientation,
	}
	b.sink.SendDynamic(edge)
	b.published.Add(1)
	return edge, nil
}

// Published reports how many edges were sent since startup.
func (b *Broadcaster) Published() uint64 { return b.published.Load() }

// Rejected reports how many samples failed validation and were dropped.
func (b *Broadcaster) Rejected() uint64 { return b.rejected.Load() }
