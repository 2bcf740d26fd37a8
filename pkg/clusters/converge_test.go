package clusters

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestConverge(t *testing.T) {
	t.Run("Line", func(t *testing.T) {
		centers := mat.NewDense(2, 1, []float64{0, 0.1})

		res, err := Converge(linePoints(), centers, 100, 1e-9, Options{})

		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.Equal(t, 2, res.Steps)
		assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, res.Labels)
	})
	t.Run("Idempotent", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(11))
		obs := blobs(rnd, 30)
		centers, err := PlusPlusCenters(obs, 2, rnd)
		require.NoError(t, err)

		res, err := Converge(obs, centers, 100, 0, Options{})
		require.NoError(t, err)
		require.True(t, res.Converged)

		again, err := Lloyd(obs, res.Centers, 5)

		require.NoError(t, err)
		assert.Equal(t, res.Labels, again.Labels)
		assert.True(t, mat.EqualApprox(res.Centers, again.Centers, 1e-12))
	})
	t.Run("MaxSteps", func(t *testing.T) {
		centers := mat.NewDense(2, 1, []float64{0, 0.1})

		res, err := Converge(linePoints(), centers, 1, 0, Options{})

		require.NoError(t, err)
		assert.False(t, res.Converged)
		assert.Equal(t, 1, res.Steps)
	})
	t.Run("ZeroSteps", func(t *testing.T) {
		centers := mat.NewDense(2, 1, []float64{-1, 1})

		res, err := Converge(linePoints(), centers, 0, 0, Options{})

		require.NoError(t, err)
		assert.Equal(t, 0, res.Steps)
		assert.True(t, mat.Equal(centers, res.Centers))
	})
	t.Run("EmptyClusterStep", func(t *testing.T) {
		obs := mat.NewDense(6, 1, []float64{1, 3, 12, 10, 12, 3})
		centers := mat.NewDense(3, 1, []float64{18, 0, 3})

		_, lloydErr := Lloyd(obs, centers, 10)
		_, err := Converge(obs, centers, 10, 0, Options{})

		var fromLloyd, fromConverge *EmptyClusterError
		require.True(t, errors.As(lloydErr, &fromLloyd))
		require.True(t, errors.As(err, &fromConverge))

		assert.Equal(t, 2, fromConverge.Cluster)
		assert.Equal(t, 1, fromConverge.Step)
		assert.Equal(t, *fromLloyd, *fromConverge)
	})
	t.Run("NegativeSteps", func(t *testing.T) {
		_, err := Converge(linePoints(), mat.NewDense(1, 1, nil), -2, 0, Options{})
		assert.ErrorIs(t, err, ErrSteps)
	})
}

func TestShift(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{0, 0, 1, 1})
	b := mat.NewDense(2, 2, []float64{3, 4, 1, 1})

	assert.Equal(t, 5.0, Shift(a, b))
	assert.Equal(t, 0.0, Shift(a, a))
}
