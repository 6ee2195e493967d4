// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/JyotsnaGuntha/mobius-strip-model/matrix"
)

// tangents holds the six partial-derivative grids of a sampled surface.
type tangents struct {
	xu, yu, zu *matrix.Dense // ∂/∂u (along columns)
	xv, yv, zv *matrix.Dense // ∂/∂v (along rows)
}

// Steps returns the parameter spacings dU = U[0][1]-U[0][0] and
// dV = V[1][0]-V[0][0] of a meshgrid-style parameter grid.
//
// Errors: ErrGridTooSmall when either grid has fewer than two rows or columns.
func Steps(U, V matrix.Matrix) (dU, dV float64, err error) {
	if err = matrix.ValidateBinarySameShape(U, V); err != nil {
		return 0, 0, err
	}
	if U.Rows() < 2 || U.Cols() < 2 {
		return 0, 0, fmt.Errorf("%d×%d: %w", U.Rows(), U.Cols(), ErrGridTooSmall)
	}

	var a, b float64
	if a, err = U.At(0, 0); err != nil {
		return 0, 0, err
	}
	if b, err = U.At(0, 1); err != nil {
		return 0, 0, err
	}
	dU = b - a
	if a, err = V.At(0, 0); err != nil {
		return 0, 0, err
	}
	if b, err = V.At(1, 0); err != nil {
		return 0, 0, err
	}
	dV = b - a

	return dU, dV, nil
}

// Jacobian returns the n×m grid of local area-scaling factors
// |∂S/∂u × ∂S/∂v| for the surface sampled as X, Y, Z over the parameter
// grid U, V.
//
// Errors:
//   - ErrGridTooSmall, ErrGridMismatch.
//   - matrix.ErrNilMatrix, matrix.ErrBadStep (zero spacing).
//
// Complexity: O(n·m) time, O(n·m) memory (six derivative grids).
func Jacobian(U, V, X, Y, Z matrix.Matrix) (*matrix.Dense, error) {
	dU, dV, err := Steps(U, V)
	if err != nil {
		return nil, measureErrorf(opJacobian, err)
	}
	for _, g := range []matrix.Matrix{X, Y, Z} {
		if err = matrix.ValidateBinarySameShape(U, g); err != nil {
			return nil, measureErrorf(opJacobian, fmt.Errorf("%w: %w", ErrGridMismatch, err))
		}
	}

	t, err := differentiate(X, Y, Z, dU, dV)
	if err != nil {
		return nil, measureErrorf(opJacobian, err)
	}

	out, err := matrix.ZerosLike(X)
	if err != nil {
		return nil, measureErrorf(opJacobian, err)
	}
	rows, cols := out.Shape()
	for i := 0; i < rows; i++ {
		r, err := t.rows(i)
		if err != nil {
			return nil, measureErrorf(opJacobian, err)
		}
		for j := 0; j < cols; j++ {
			tu := vec3.T{r[0][j], r[1][j], r[2][j]}
			tv := vec3.T{r[3][j], r[4][j], r[5][j]}
			n := vec3.Cross(&tu, &tv)
			if err = out.Set(i, j, n.Length()); err != nil {
				return nil, measureErrorf(opJacobian, err)
			}
		}
	}

	return out, nil
}

// SurfaceArea approximates the area of the surface sampled as X, Y, Z over
// the parameter grid U, V: the sum of Jacobian over all cells times |dU·dV|.
//
// The absolute value makes the result independent of the orientation of
// either parameter axis; for ascending axes it equals Σ·dU·dV.
//
// Errors: see Jacobian.
func SurfaceArea(U, V, X, Y, Z matrix.Matrix) (float64, error) {
	dU, dV, err := Steps(U, V)
	if err != nil {
		return 0, measureErrorf(opSurfaceArea, err)
	}
	J, err := Jacobian(U, V, X, Y, Z)
	if err != nil {
		return 0, measureErrorf(opSurfaceArea, err)
	}
	s, err := matrix.Sum(J)
	if err != nil {
		return 0, measureErrorf(opSurfaceArea, err)
	}

	return s * math.Abs(dU*dV), nil
}

// differentiate computes the six partial-derivative grids.
func differentiate(X, Y, Z matrix.Matrix, dU, dV float64) (*tangents, error) {
	var t tangents
	var err error
	steps := []struct {
		dst  **matrix.Dense
		src  matrix.Matrix
		h    float64
		axis matrix.Axis
	}{
		{&t.xu, X, dU, matrix.AxisCols},
		{&t.yu, Y, dU, matrix.AxisCols},
		{&t.zu, Z, dU, matrix.AxisCols},
		{&t.xv, X, dV, matrix.AxisRows},
		{&t.yv, Y, dV, matrix.AxisRows},
		{&t.zv, Z, dV, matrix.AxisRows},
	}
	for _, s := range steps {
		if *s.dst, err = matrix.Gradient(s.src, s.h, s.axis); err != nil {
			return nil, err
		}
	}

	return &t, nil
}

// rows returns row i of xu, yu, zu, xv, yv, zv in that order.
func (t *tangents) rows(i int) ([6][]float64, error) {
	var out [6][]float64
	var err error
	for k, g := range []*matrix.Dense{t.xu, t.yu, t.zu, t.xv, t.yv, t.zv} {
		if out[k], err = g.Row(i); err != nil {
			return out, err
		}
	}

	return out, nil
}
