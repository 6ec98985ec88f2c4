package pipeline

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/underwave-robotics/tfbridge/frames"
	"github.com/underwave-robotics/tfbridge/transform"
)

func TestTwistPipeline_RotatesVelocities(t *testing.T) {
	t.Parallel()

	// Rotation θ=π/2 about the vertical axis, with a deliberately huge
	// translation: the translation must have zero effect on a velocity.
	lk := &stubLookup{t: transform.RigidTransform{
		Parent:      "auv1/base_link_gt",
		Child:       "map",
		Translation: r3.Vec{X: 5000, Y: -1200, Z: 40},
		Rotation:    transform.FromEuler(0, 0, math.Pi/2),
	}}
	p := NewTwistPipeline(lk, testCatalog(), frames.RoleBaseGroundTruth, time.Second)

	stamp := time.Unix(9, 500000000)
	out, err := p.Process(context.Background(), transform.Twist{
		Frame:   "map",
		Stamp:   stamp,
		Linear:  r3.Vec{X: 1, Y: 2},
		Angular: r3.Vec{Z: 0.5},
	})
	require.NoError(t, err)

	assert.Equal(t, transform.FrameID("auv1/base_link_gt"), out.Frame)
	assert.Equal(t, stamp, out.Stamp)
	assert.InDelta(t, -2, out.Linear.X, 1e-9)
	assert.InDelta(t, 1, out.Linear.Y, 1e-9)
	assert.InDelta(t, 0, out.Linear.Z, 1e-9)
	assert.InDelta(t, 0, out.Angular.X, 1e-9)
	assert.InDelta(t, 0, out.Angular.Y, 1e-9)
	assert.InDelta(t, 0.5, out.Angular.Z, 1e-9)

	assert.Equal(t, transform.FrameID("auv1/base_link_gt"), lk.gotParent)
	assert.Equal(t, transform.FrameID("map"), lk.gotChild)
}

func TestTwistPipeline_DropsOnUnavailableTransform(t *testing.T) {
	t.Parallel()

	lk := &stubLookup{err: fmt.Errorf("tree empty: %w", transform.ErrTransformUnavailable)}
	p := NewTwistPipeline(lk, testCatalog(), frames.RoleBaseGroundTruth, 20*time.Millisecond)

	_, err := p.Process(context.Background(), transform.Twist{Frame: "map", Stamp: time.Unix(1, 0)})
	require.ErrorIs(t, err, transform.ErrTransformUnavailable)
	assert.Equal(t, uint64(1), p.Stats.Dropped())
}

func TestStats_LastStamp(t *testing.T) {
	t.Parallel()

	var s Stats
	assert.True(t, s.LastStamp().IsZero())

	stamp := time.Unix(123, 0)
	s.markConverted(stamp)
	assert.Equal(t, stamp.Unix(), s.LastStamp().Unix())
	assert.Equal(t, uint64(1), s.Converted())
}
