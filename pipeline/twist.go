package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/underwave-robotics/tfbridge/frames"
	"github.com/underwave-robotics/tfbridge/internal"
	"github.com/underwave-robotics/tfbridge/transform"
)

// TwistPipeline rotates velocity samples expressed in the navigation frame
// into a body frame. Only the rotational component of the looked-up
// transform is applied; the translation never touches a velocity.
type TwistPipeline struct {
	lookup  transform.Lookup
	source  transform.FrameID // navigation frame the samples arrive in
	target  transform.FrameID // body frame to express them in
	timeout time.Duration
	Stats   Stats
}

// NewTwistPipeline builds a twist pipeline rotating navigation-frame
// velocities into the body frame for targetRole (typically the
// ground-truth body). timeout <= 0 selects DefaultLookupTimeout.
func NewTwistPipeline(lookup transform.Lookup, cat frames.Catalog, targetRole frames.Role, timeout time.Duration) *TwistPipeline {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &TwistPipeline{
		lookup:  lookup,
		source:  cat.Map(),
		target:  cat.MustFrameID(targetRole),
		timeout: timeout,
	}
}

// Process converts one twist sample, dropping it on
// ErrTransformUnavailable. The output keeps the sample's original stamp and
// carries the target body frame id.
func (p *TwistPipeline) Process(ctx context.Context, sample transform.Twist) (transform.Twist, error) {
	t, err := p.lookup.LookupTransform(ctx, p.target, p.source, sample.Stamp, p.timeout)
	if err != nil {
		p.Stats.markDropped()
		internal.Warnf("dropping twist sample stamped %s: %v", sample.Stamp.Format(time.RFC3339Nano), err)
		return transform.Twist{}, fmt.Errorf("twist pipeline: %w", err)
	}

	out := t.RotateTwist(sample)
	p.Stats.markConverted(out.Stamp)
	return out, nil
}
