package rig

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/underwave-robotics/tfbridge/convention"
	"github.com/underwave-robotics/tfbridge/frames"
	"github.com/underwave-robotics/tfbridge/transform"
)

// linkToOptical is the fixed remap from a camera's mechanical mount axes
// (x forward, y left, z up) to its optical axes (z forward, x right,
// y down): roll -π/2, yaw -π/2, zero translation.
var linkToOptical = transform.FromEuler(-math.Pi/2, 0, -math.Pi/2)

// StaticSet holds the resolved static edges for one vehicle. Build it once
// with NewStaticSet; Edges never recomputes.
type StaticSet struct {
	edges     []transform.RigidTransform
	published bool
}

// NewStaticSet computes every static edge for the profile's vehicle type.
// mk2 yields 6 edges (two cameras), mk1 yields 4.
func NewStaticSet(p frames.Profile, cat frames.Catalog) (*StaticSet, error) {
	now := time.Now()
	base := cat.MustFrameID(frames.RoleBase)

	var edges []transform.RigidTransform
	for _, sensor := range p.Type.Sensors() {
		off, ok := p.Offsets[sensor]
		if !ok {
			return nil, fmt.Errorf("profile for %s has no offset for %s", p.Name, sensor)
		}
		link, err := cat.FrameID(sensor.LinkRole())
		if err != nil {
			return nil, err
		}
		edges = append(edges, transform.RigidTransform{
			Parent:      base,
			Child:       link,
			Stamp:       now,
			Translation: r3.Vec{X: off.X, Y: off.Y, Z: off.Z},
			Rotation:    transform.FromEuler(off.Roll, off.Pitch, off.Yaw),
		})
		if optical, ok := sensor.OpticalRole(); ok {
			frame, err := cat.FrameID(optical)
			if err != nil {
				return nil, err
			}
			edges = append(edges, transform.RigidTransform{
				Parent:   link,
				Child:    frame,
				Stamp:    now,
				Rotation: linkToOptical,
			})
		}
	}

	// Body convention edge: frame-coincident, pure roll π.
	edges = append(edges, transform.RigidTransform{
		Parent:   base,
		Child:    cat.MustFrameID(frames.RoleBaseFRD),
		Stamp:    now,
		Rotation: convention.BodySwapOrientation(),
	})

	return &StaticSet{edges: edges}, nil
}

// Edges returns the cached static edge list. Callers must treat it as
// read-only.
func (s *StaticSet) Edges() []transform.RigidTransform {
	return s.edges
}

// Broadcast publishes the whole set as a single batch. Subsequent calls
// are no-ops; the set is re-broadcast only on process restart.
func (s *StaticSet) Broadcast(sink transform.Sink) {
	if s.published {
		return
	}
	sink.SendStatic(s.edges)
	s.published = true
}
