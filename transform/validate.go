package transform

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// QuatNormTolerance bounds how far a sample's orientation norm may drift
// from 1 before the sample is rejected.
const QuatNormTolerance = 1e-3

// ValidatePose rejects samples that would corrupt the frame tree if
// republished as an edge.
func ValidatePose(p Pose) error {
	if math.IsNaN(p.Position.X) || math.IsNaN(p.Position.Y) || math.IsNaN(p.Position.Z) {
		return &InvalidPoseSampleError{Reason: "NaN translation"}
	}
	n := quat.Abs(p.Orientation)
	if math.IsNaN(n) {
		return &InvalidPoseSampleError{Reason: "NaN orientation"}
	}
	if math.Abs(n-1) > QuatNormTolerance {
		return &InvalidPoseSampleError{Reason: "orientation norm outside tolerance"}
	}
	return nil
}
