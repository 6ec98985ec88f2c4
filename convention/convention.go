package convention

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/underwave-robotics/tfbridge/transform"
)

// World enumerates world-frame axis conventions.
type World int

const (
	ENU World = iota // east-north-up
	NED              // north-east-down
)

func (w World) String() string {
	if w == NED {
		return "NED"
	}
	return "ENU"
}

// Body enumerates body-frame axis conventions.
type Body int

const (
	FLU Body = iota // forward-left-up
	FRD             // forward-right-down
)

func (b Body) String() string {
	if b == FRD {
		return "FRD"
	}
	return "FLU"
}

// Pair declares the convention a pose or twist payload is currently
// expressed in, so conversions stay composable.
type Pair struct {
	World World
	Body  Body
}

func (p Pair) String() string { return p.World.String() + "/" + p.Body.String() }

// The two convention pairs in use on the vehicle.
var (
	LocalENUFLU     = Pair{World: ENU, Body: FLU}
	AutopilotNEDFRD = Pair{World: NED, Body: FRD}
)

// worldSwap maps ENU axes onto NED axes (and back): roll π composed with
// yaw π/2, sending (e, n, u) to (n, e, -u).
var worldSwap = transform.FromEuler(math.Pi, 0, math.Pi/2)

// bodySwap maps FLU body axes onto FRD body axes (and back): a pure roll π,
// sending (f, l, u) to (f, -l, -u).
var bodySwap = transform.FromEuler(math.Pi, 0, 0)

// ConvertOrientation re-expresses an orientation between conventions. The
// world remap pre-multiplies (it changes the reference axes), the body
// remap post-multiplies (it changes the rotated axes).
func ConvertOrientation(q quat.Number, from, to Pair) quat.Number {
	out := q
	if from.World != to.World {
		out = quat.Mul(worldSwap, out)
	}
	if from.Body != to.Body {
		out = quat.Mul(out, bodySwap)
	}
	return out
}

// ConvertWorldVector re-expresses a vector given in world-frame axes.
func ConvertWorldVector(v r3.Vec, from, to World) r3.Vec {
	if from == to {
		return v
	}
	return transform.Rotate(worldSwap, v)
}

// ConvertBodyVector re-expresses a vector given in body-frame axes.
func ConvertBodyVector(v r3.Vec, from, to Body) r3.Vec {
	if from == to {
		return v
	}
	return transform.Rotate(bodySwap, v)
}

// BodySwapOrientation exposes the fixed FLU→FRD remap used for the
// frame-coincident body convention edge in the static frame set.
func BodySwapOrientation() quat.Number { return bodySwap }
