package tfbridge

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/underwave-robotics/tfbridge/internal"
	"github.com/underwave-robotics/tfbridge/transform"
)

// sampleMsg is the JSON-lines wire form for incoming samples. Kinds:
//
//	"pose"  body pose estimate in the local navigation convention
//	"odom"  ground-truth odometry (pose + twist)
//	"tf"    an externally supplied frame-tree edge (e.g. map→map_ned)
//
// Quaternions are [x, y, z, w]; stamps are seconds since the Unix epoch.
type sampleMsg struct {
	Kind        string      `json:"kind"`
	Stamp       float64     `json:"t"`
	Parent      string      `json:"parent,omitempty"`
	Child       string      `json:"child,omitempty"`
	Position    [3]float64  `json:"position"`
	Orientation [4]float64  `json:"orientation"`
	Linear      *[3]float64 `json:"linear,omitempty"`
	Angular     *[3]float64 `json:"angular,omitempty"`
}

type poseJSON struct {
	Frame       string     `json:"frame"`
	Stamp       float64    `json:"t"`
	Position    [3]float64 `json:"position"`
	Orientation [4]float64 `json:"orientation"`
}

type twistJSON struct {
	Frame   string     `json:"frame"`
	Stamp   float64    `json:"t"`
	Linear  [3]float64 `json:"linear"`
	Angular [3]float64 `json:"angular"`
}

type edgeJSON struct {
	Parent      string     `json:"parent"`
	Child       string     `json:"child"`
	Stamp       float64    `json:"t"`
	Translation [3]float64 `json:"translation"`
	Rotation    [4]float64 `json:"rotation"`
}

func stampFromSeconds(sec float64) time.Time {
	s, frac := math.Modf(sec)
	return time.Unix(int64(s), int64(frac*1e9))
}

func secondsFromStamp(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func vecFromArray(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

func quatFromArray(a [4]float64) quat.Number {
	return quat.Number{Imag: a[0], Jmag: a[1], Kmag: a[2], Real: a[3]}
}

func arrayFromVec(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func arrayFromQuat(q quat.Number) [4]float64 {
	return [4]float64{q.Imag, q.Jmag, q.Kmag, q.Real}
}

func (m sampleMsg) pose() transform.Pose {
	return transform.Pose{
		Stamp:       stampFromSeconds(m.Stamp),
		Position:    vecFromArray(m.Position),
		Orientation: quatFromArray(m.Orientation),
	}
}

func (m sampleMsg) twist() transform.Twist {
	tw := transform.Twist{Stamp: stampFromSeconds(m.Stamp)}
	if m.Linear != nil {
		tw.Linear = vecFromArray(*m.Linear)
	}
	if m.Angular != nil {
		tw.Angular = vecFromArray(*m.Angular)
	}
	return tw
}

func (m sampleMsg) edge() transform.RigidTransform {
	return transform.RigidTransform{
		Parent:      transform.FrameID(m.Parent),
		Child:       transform.FrameID(m.Child),
		Stamp:       stampFromSeconds(m.Stamp),
		Translation: vecFromArray(m.Position),
		Rotation:    quatFromArray(m.Orientation),
	}
}

func encodePose(p transform.Pose) poseJSON {
	return poseJSON{
		Frame:       string(p.Frame),
		Stamp:       secondsFromStamp(p.Stamp),
		Position:    arrayFromVec(p.Position),
		Orientation: arrayFromQuat(p.Orientation),
	}
}

func encodeTwist(tw transform.Twist) twistJSON {
	return twistJSON{
		Frame:   string(tw.Frame),
		Stamp:   secondsFromStamp(tw.Stamp),
		Linear:  arrayFromVec(tw.Linear),
		Angular: arrayFromVec(tw.Angular),
	}
}

func encodeEdge(e transform.RigidTransform) edgeJSON {
	return edgeJSON{
		Parent:      string(e.Parent),
		Child:       string(e.Child),
		Stamp:       secondsFromStamp(e.Stamp),
		Translation: arrayFromVec(e.Translation),
		Rotation:    arrayFromQuat(e.Rotation),
	}
}

// RunStream decodes JSON-lines samples from r and writes converted samples
// to w, one line out per line in; dropped samples produce no output.
// Blank lines and lines starting with '#' are skipped. "tf" lines seed the
// buffer directly, standing in for the external transform feed during
// replay.
func (s *Service) RunStream(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	enc := json.NewEncoder(w)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		var m sampleMsg
		if err := json.Unmarshal(line, &m); err != nil {
			internal.Warnf("skipping malformed sample line: %v", err)
			continue
		}
		switch m.Kind {
		case "pose":
			out, err := s.HandlePose(ctx, m.pose())
			if err != nil {
				continue // dropped; already logged and counted
			}
			if err := enc.Encode(encodePose(out)); err != nil {
				return fmt.Errorf("write converted pose: %w", err)
			}
		case "odom":
			out, err := s.HandleGroundTruth(ctx, m.pose(), m.twist())
			if err != nil {
				continue
			}
			if err := enc.Encode(encodeTwist(out)); err != nil {
				return fmt.Errorf("write converted twist: %w", err)
			}
		case "tf":
			s.Buffer.SendDynamic(m.edge())
		default:
			internal.Warnf("skipping sample with unknown kind %q", m.Kind)
		}
	}
	return sc.Err()
}
