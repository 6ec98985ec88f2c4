package pipeline

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/underwave-robotics/tfbridge/frames"
	"github.com/underwave-robotics/tfbridge/transform"
)

// stubLookup returns a fixed transform (or error) and records the request.
type stubLookup struct {
	t   transform.RigidTransform
	err error

	gotParent  transform.FrameID
	gotChild   transform.FrameID
	gotAt      time.Time
	gotTimeout time.Duration
}

func (s *stubLookup) LookupTransform(_ context.Context, parent, child transform.FrameID, at time.Time, timeout time.Duration) (transform.RigidTransform, error) {
	s.gotParent, s.gotChild, s.gotAt, s.gotTimeout = parent, child, at, timeout
	if s.err != nil {
		return transform.RigidTransform{}, s.err
	}
	out := s.t
	out.Stamp = at
	return out, nil
}

func testCatalog() frames.Catalog {
	return frames.NewCatalog(frames.Profile{Name: "auv1", Type: frames.MK1})
}

func TestPosePipeline_ZeroPoseGetsBodyConventionRoll(t *testing.T) {
	t.Parallel()

	// Identity map→map_ned: the output orientation is exactly the fixed
	// FLU→FRD roll-π remap.
	lk := &stubLookup{t: transform.RigidTransform{
		Parent:   "map_ned",
		Child:    "map",
		Rotation: transform.Identity(),
	}}
	p := NewPosePipeline(lk, testCatalog(), 0)

	stamp := time.Unix(50, 0)
	out, err := p.Process(context.Background(), transform.Pose{
		Frame:       "map",
		Stamp:       stamp,
		Orientation: transform.Identity(),
	})
	require.NoError(t, err)

	assert.Equal(t, transform.FrameID("map_ned"), out.Frame)
	assert.Equal(t, stamp, out.Stamp, "original stamp must be preserved")
	assert.InDelta(t, 0, out.Orientation.Real, 1e-9)
	assert.InDelta(t, 1, out.Orientation.Imag, 1e-9)
	assert.InDelta(t, 0, out.Orientation.Jmag, 1e-9)
	assert.InDelta(t, 0, out.Orientation.Kmag, 1e-9)

	assert.Equal(t, transform.FrameID("map_ned"), lk.gotParent)
	assert.Equal(t, transform.FrameID("map"), lk.gotChild)
	assert.Equal(t, stamp, lk.gotAt)
	assert.Equal(t, DefaultLookupTimeout, lk.gotTimeout)
}

func TestPosePipeline_ComposesWithNavigationTransform(t *testing.T) {
	t.Parallel()

	// map→map_ned is the ENU→NED world remap. A zero ENU/FLU pose then
	// lands at the hand-computed W·B quaternion: w=-√2/2, z=-√2/2.
	lk := &stubLookup{t: transform.RigidTransform{
		Parent:   "map_ned",
		Child:    "map",
		Rotation: transform.FromEuler(math.Pi, 0, math.Pi/2),
	}}
	p := NewPosePipeline(lk, testCatalog(), time.Second)

	out, err := p.Process(context.Background(), transform.Pose{
		Frame:       "map",
		Stamp:       time.Unix(7, 0),
		Orientation: transform.Identity(),
	})
	require.NoError(t, err)

	s := math.Sqrt2 / 2
	assert.InDelta(t, -s, out.Orientation.Real, 1e-9)
	assert.InDelta(t, 0, out.Orientation.Imag, 1e-9)
	assert.InDelta(t, 0, out.Orientation.Jmag, 1e-9)
	assert.InDelta(t, -s, out.Orientation.Kmag, 1e-9)
	assert.Equal(t, uint64(1), p.Stats.Converted())
}

func TestPosePipeline_PositionFollowsLookedUpTransform(t *testing.T) {
	t.Parallel()

	lk := &stubLookup{t: transform.RigidTransform{
		Parent:      "map_ned",
		Child:       "map",
		Translation: r3.Vec{X: 10},
		Rotation:    transform.FromEuler(0, 0, math.Pi/2),
	}}
	p := NewPosePipeline(lk, testCatalog(), time.Second)

	out, err := p.Process(context.Background(), transform.Pose{
		Frame:       "map",
		Stamp:       time.Unix(7, 0),
		Position:    r3.Vec{X: 1, Y: 2},
		Orientation: transform.Identity(),
	})
	require.NoError(t, err)
	assert.InDelta(t, 8, out.Position.X, 1e-9) // rotate (1,2)→(-2,1), then +10
	assert.InDelta(t, 1, out.Position.Y, 1e-9)
}

func TestPosePipeline_DropsOnUnavailableTransform(t *testing.T) {
	t.Parallel()

	lk := &stubLookup{err: fmt.Errorf("not yet connected: %w", transform.ErrTransformUnavailable)}
	p := NewPosePipeline(lk, testCatalog(), 20*time.Millisecond)

	_, err := p.Process(context.Background(), transform.Pose{
		Frame:       "map",
		Stamp:       time.Unix(7, 0),
		Orientation: transform.Identity(),
	})
	require.ErrorIs(t, err, transform.ErrTransformUnavailable)
	assert.Equal(t, uint64(1), p.Stats.Dropped())
	assert.Equal(t, uint64(0), p.Stats.Converted())
}

func TestPosePipeline_NormPreserved(t *testing.T) {
	t.Parallel()

	lk := &stubLookup{t: transform.RigidTransform{
		Parent:   "map_ned",
		Child:    "map",
		Rotation: transform.FromEuler(0.1, -0.2, 0.9),
	}}
	p := NewPosePipeline(lk, testCatalog(), time.Second)

	in := transform.Pose{Frame: "map", Stamp: time.Unix(1, 0), Orientation: transform.FromEuler(0.5, 0.4, -1.3)}
	out, err := p.Process(context.Background(), in)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, quat.Abs(out.Orientation), 1e-9)
}
