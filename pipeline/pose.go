package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/underwave-robotics/tfbridge/convention"
	"github.com/underwave-robotics/tfbridge/frames"
	"github.com/underwave-robotics/tfbridge/internal"
	"github.com/underwave-robotics/tfbridge/transform"
)

// DefaultLookupTimeout bounds the wait for the frame graph when the
// configuration does not say otherwise.
const DefaultLookupTimeout = time.Second

// PosePipeline converts body poses from the local navigation convention
// (ENU/FLU) into the autopilot convention (NED/FRD).
type PosePipeline struct {
	lookup  transform.Lookup
	source  transform.FrameID // local navigation frame
	target  transform.FrameID // autopilot navigation frame
	timeout time.Duration
	Stats   Stats
}

// NewPosePipeline builds a pose pipeline over the catalog's navigation
// frames. timeout <= 0 selects DefaultLookupTimeout.
func NewPosePipeline(lookup transform.Lookup, cat frames.Catalog, timeout time.Duration) *PosePipeline {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &PosePipeline{
		lookup:  lookup,
		source:  cat.Map(),
		target:  cat.MapNED(),
		timeout: timeout,
	}
}

// Process converts one pose sample. On ErrTransformUnavailable the sample
// is dropped and the error returned; output stamps always equal input
// stamps, so ordering follows the input stream.
func (p *PosePipeline) Process(ctx context.Context, sample transform.Pose) (transform.Pose, error) {
	// Body-axis convention change only. The world-axis change is carried by
	// the navigation→autopilot edge looked up below.
	adjusted := transform.Pose{
		Frame:    p.source,
		Stamp:    sample.Stamp,
		Position: sample.Position,
		Orientation: convention.ConvertOrientation(sample.Orientation,
			convention.Pair{World: convention.ENU, Body: convention.FLU},
			convention.Pair{World: convention.ENU, Body: convention.FRD}),
	}

	t, err := p.lookup.LookupTransform(ctx, p.target, p.source, sample.Stamp, p.timeout)
	if err != nil {
		p.Stats.markDropped()
		internal.Warnf("dropping pose sample stamped %s: %v", sample.Stamp.Format(time.RFC3339Nano), err)
		return transform.Pose{}, fmt.Errorf("pose pipeline: %w", err)
	}

	out := t.Apply(adjusted)
	p.Stats.markConverted(out.Stamp)
	return out, nil
}
