// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JyotsnaGuntha/mobius-strip-model/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewZeros(-1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestShape verifies Rows, Cols and Shape agree.
func TestShape(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.Zero(t, MustAt(t, m, 2, 3)) // zero-initialized
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At().
func TestSetGet(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestSetNaNInfPolicy checks the numeric guard in both policies.
func TestSetNaNInfPolicy(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 1, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.Zero(t, MustAt(t, m, 0, 0)) // rejected write leaves the cell untouched

	loose, err := matrix.ExportedNewDenseWithPolicy(1, 2, false)
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))
	require.NoError(t, loose.Set(0, 1, math.Inf(1)))
	require.True(t, math.IsNaN(MustAt(t, loose, 0, 0)))

	_, err = matrix.ExportedNewDenseWithPolicy(0, 2, false)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone() returns a deep copy with the same policy.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
	require.ErrorIs(t, clone.Set(1, 1, math.NaN()), matrix.ErrNaNInf)

	loose, err := matrix.ExportedNewDenseWithPolicy(1, 1, false)
	require.NoError(t, err)
	require.NoError(t, loose.Clone().Set(0, 0, math.NaN()))
}

// TestRowAndToRows checks both row exporters return copies.
func TestRowAndToRows(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 100
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	rows := m.ToRows()
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rows)
	rows[0][0] = -1
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestString checks the diagnostic dump format.
func TestString(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, -3, 4})
	assert.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}

// TestDoOrderAndEarlyStop verifies row-major visiting and the stop signal.
func TestDoOrderAndEarlyStop(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return true
	})
	require.Equal(t, []float64{1, 2, 3, 4}, seen)

	calls := 0
	m.Do(func(i, j int, _ float64) bool {
		calls++
		return !(i == 0 && j == 1)
	})
	require.Equal(t, 2, calls)
}

// TestApply covers in-place transforms and the NaN/Inf guard.
func TestApply(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return 2*v + float64(i) }))
	require.Equal(t, [][]float64{{2, 4}, {7, 9}}, m.ToRows())

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 0 {
			return math.Inf(1)
		}
		return 0
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	// Cells before the failing one were already written.
	require.Equal(t, [][]float64{{0, 0}, {7, 9}}, m.ToRows())
}

// TestZerosLike allocates by shape and rejects nil.
func TestZerosLike(t *testing.T) {
	t.Parallel()
	z, err := matrix.ZerosLike(hide{MustDense(t, 3, 2)})
	require.NoError(t, err)
	r, c := z.Shape()
	require.Equal(t, [2]int{3, 2}, [2]int{r, c})

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.ZerosLike(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
