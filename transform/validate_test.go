package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestValidatePose(t *testing.T) {
	t.Parallel()

	valid := Pose{Position: r3.Vec{X: 1}, Orientation: Identity()}

	t.Run("valid sample", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ValidatePose(valid))
	})

	t.Run("slight norm drift accepted", func(t *testing.T) {
		t.Parallel()
		p := valid
		p.Orientation = quat.Number{Real: 1 + 5e-4}
		assert.NoError(t, ValidatePose(p))
	})

	t.Run("norm outside tolerance rejected", func(t *testing.T) {
		t.Parallel()
		p := valid
		p.Orientation = quat.Number{Real: 1.01}
		err := ValidatePose(p)
		var invalid *InvalidPoseSampleError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("zero quaternion rejected", func(t *testing.T) {
		t.Parallel()
		p := valid
		p.Orientation = quat.Number{}
		var invalid *InvalidPoseSampleError
		require.ErrorAs(t, ValidatePose(p), &invalid)
	})

	t.Run("NaN translation rejected", func(t *testing.T) {
		t.Parallel()
		p := valid
		p.Position.Y = math.NaN()
		var invalid *InvalidPoseSampleError
		require.ErrorAs(t, ValidatePose(p), &invalid)
	})

	t.Run("NaN orientation rejected", func(t *testing.T) {
		t.Parallel()
		p := valid
		p.Orientation.Jmag = math.NaN()
		var invalid *InvalidPoseSampleError
		require.ErrorAs(t, ValidatePose(p), &invalid)
	})
}
