// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JyotsnaGuntha/mobius-strip-model/matrix"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateShapes(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, hide{MustDense(t, 2, 3)}))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, MustDense(t, 1, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateAxisAndStep(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateAxis(matrix.AxisRows))
	require.NoError(t, matrix.ValidateAxis(matrix.AxisCols))
	require.ErrorIs(t, matrix.ValidateAxis(matrix.Axis(-1)), matrix.ErrBadAxis)

	assert.Equal(t, "rows", matrix.AxisRows.String())
	assert.Equal(t, "cols", matrix.AxisCols.String())
	assert.Equal(t, "invalid", matrix.Axis(5).String())

	require.NoError(t, matrix.ValidateStep(-0.5))
	require.NoError(t, matrix.ValidateStep(1e-300))
	for _, h := range []float64{0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(t, matrix.ValidateStep(h), matrix.ErrBadStep)
	}
}
