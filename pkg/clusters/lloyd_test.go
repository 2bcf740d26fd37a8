package clusters

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func linePoints() *mat.Dense {
	return mat.NewDense(6, 1, []float64{-5, -4, -6, 5, 4, 6})
}

// blobs returns m observations around (-10,-10) followed by m around (10,10).
func blobs(rnd *rand.Rand, m int) *mat.Dense {
	data := mat.NewDense(2*m, 2, nil)

	for i := 0; i < 2*m; i++ {
		c := -10.0
		if i >= m {
			c = 10
		}

		data.Set(i, 0, c+rnd.NormFloat64())
		data.Set(i, 1, c+rnd.NormFloat64())
	}

	return data
}

func TestLloyd(t *testing.T) {
	t.Run("OneStep", func(t *testing.T) {
		centers := mat.NewDense(2, 1, []float64{0, 0.1})

		res, err := Lloyd(linePoints(), centers, 1)

		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, res.Labels)
		assert.InDelta(t, -5, res.Centers.At(0, 0), 1e-12)
		assert.InDelta(t, 5, res.Centers.At(1, 0), 1e-12)
		assert.Equal(t, 1, res.Steps)
		assert.Equal(t, []int{3, 3}, res.Sizes())
	})
	t.Run("Converged", func(t *testing.T) {
		centers := mat.NewDense(2, 1, []float64{0, 0.1})

		res, err := Lloyd(linePoints(), centers, 10)

		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, res.Labels)
		assert.InDelta(t, -5, res.Centers.At(0, 0), 1e-12)
		assert.InDelta(t, 5, res.Centers.At(1, 0), 1e-12)
	})
	t.Run("ZeroSteps", func(t *testing.T) {
		centers := mat.NewDense(2, 1, []float64{-1, 1})

		res, err := Lloyd(linePoints(), centers, 0)

		require.NoError(t, err)
		assert.True(t, mat.Equal(centers, res.Centers))
		assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, res.Labels)
		assert.Equal(t, 0, res.Steps)

		res.Centers.Set(0, 0, 42)
		assert.Equal(t, -1.0, centers.At(0, 0))
	})
	t.Run("InputsUnchanged", func(t *testing.T) {
		obs := linePoints()
		before := mat.DenseCopyOf(obs)
		centers := mat.NewDense(2, 1, []float64{0, 0.1})

		_, err := Lloyd(obs, centers, 3)

		require.NoError(t, err)
		assert.True(t, mat.Equal(before, obs))
		assert.Equal(t, []float64{0, 0.1}, centers.RawMatrix().Data)
	})
	t.Run("Deterministic", func(t *testing.T) {
		obs := blobs(rand.New(rand.NewSource(7)), 20)
		centers := mat.NewDense(2, 2, []float64{0, 0, 1, 1})

		a, err := Lloyd(obs, centers, 5)
		require.NoError(t, err)
		b, err := Lloyd(obs, centers, 5)
		require.NoError(t, err)

		assert.Equal(t, a.Labels, b.Labels)
		assert.True(t, mat.Equal(a.Centers, b.Centers))
	})
	t.Run("TieLowestIndex", func(t *testing.T) {
		obs := mat.NewDense(2, 1, []float64{0, 10})
		centers := mat.NewDense(2, 1, []float64{-1, 1})

		labels, err := Assign(obs, centers)

		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, labels)

		labels, err = Assign(mat.NewDense(2, 1, []float64{0, 0}), centers)

		require.NoError(t, err)
		assert.Equal(t, []int{0, 0}, labels)
	})
	t.Run("EmptyCluster", func(t *testing.T) {
		obs := mat.NewDense(3, 1, []float64{0, 1, 2})
		centers := mat.NewDense(2, 1, []float64{0, 100})

		_, err := Lloyd(obs, centers, 1)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyCluster))

		var empty *EmptyClusterError
		require.True(t, errors.As(err, &empty))
		assert.Equal(t, 1, empty.Cluster)
		assert.Equal(t, 0, empty.Step)
	})
	t.Run("EmptyKeep", func(t *testing.T) {
		obs := mat.NewDense(3, 1, []float64{0, 1, 2})
		centers := mat.NewDense(2, 1, []float64{0, 100})

		res, err := LloydWithOptions(obs, centers, 2, Options{EmptyPolicy: EmptyKeep})

		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0}, res.Labels)
		assert.Equal(t, 1.0, res.Centers.At(0, 0))
		assert.Equal(t, 100.0, res.Centers.At(1, 0))
	})
	t.Run("NegativeSteps", func(t *testing.T) {
		_, err := Lloyd(linePoints(), mat.NewDense(1, 1, nil), -1)
		assert.ErrorIs(t, err, ErrSteps)
	})
	t.Run("TooManyCenters", func(t *testing.T) {
		_, err := Lloyd(mat.NewDense(1, 1, []float64{1}), mat.NewDense(2, 1, nil), 1)
		assert.ErrorIs(t, err, ErrShape)
	})
	t.Run("NonFinite", func(t *testing.T) {
		obs := mat.NewDense(3, 1, []float64{0, math.NaN(), 2})

		_, err := Lloyd(obs, mat.NewDense(1, 1, []float64{1}), 1)
		assert.ErrorIs(t, err, ErrNonFinite)

		_, err = Lloyd(linePoints(), mat.NewDense(2, 1, []float64{0, math.Inf(1)}), 1)
		assert.ErrorIs(t, err, ErrNonFinite)

		_, err = Assign(obs, mat.NewDense(1, 1, []float64{1}))
		assert.ErrorIs(t, err, ErrNonFinite)
	})
	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := Lloyd(linePoints(), mat.NewDense(2, 2, nil), 1)

		var shape *ShapeError
		require.True(t, errors.As(err, &shape))
		assert.Equal(t, "lloyd", shape.Op)
	})
}

func TestFinite(t *testing.T) {
	assert.NoError(t, Finite(linePoints()))
	assert.ErrorIs(t, Finite(mat.NewDense(1, 2, []float64{1, math.NaN()})), ErrNonFinite)
	assert.ErrorIs(t, Finite(mat.NewDense(1, 1, []float64{math.Inf(-1)})), ErrNonFinite)
}

func TestAssign(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	obs := mat.NewDense(12, 3, nil)
	centers := mat.NewDense(4, 3, nil)

	for i := 0; i < 12; i++ {
		obs.SetRow(i, []float64{rnd.Float64(), rnd.Float64(), rnd.Float64()})
	}

	for j := 0; j < 4; j++ {
		centers.SetRow(j, []float64{rnd.Float64(), rnd.Float64(), rnd.Float64()})
	}

	labels, err := Assign(obs, centers)
	require.NoError(t, err)

	for i, l := range labels {
		best, min := -1, math.Inf(1)

		for j := 0; j < 4; j++ {
			if d := floats.Distance(mat.Row(nil, i, obs), mat.Row(nil, j, centers), 2); d < min {
				best, min = j, d
			}
		}

		assert.Equal(t, best, l, "observation %d", i)
	}
}

func TestUpdate(t *testing.T) {
	t.Run("Means", func(t *testing.T) {
		obs := mat.NewDense(5, 2, []float64{
			1, 2,
			3, 4,
			10, 10,
			5, 6,
			20, 30,
		})
		labels := []int{0, 0, 1, 0, 1}

		centers, err := Update(obs, labels, 2, 0)

		require.NoError(t, err)
		assert.Equal(t, []float64{3, 4}, mat.Row(nil, 0, centers))
		assert.Equal(t, []float64{15, 20}, mat.Row(nil, 1, centers))
	})
	t.Run("Empty", func(t *testing.T) {
		obs := mat.NewDense(2, 1, []float64{1, 2})

		_, err := Update(obs, []int{0, 0}, 3, 4)

		var empty *EmptyClusterError
		require.True(t, errors.As(err, &empty))
		assert.Equal(t, 1, empty.Cluster)
		assert.Equal(t, 4, empty.Step)
	})
	t.Run("LabelOutOfRange", func(t *testing.T) {
		_, err := Update(mat.NewDense(2, 1, []float64{1, 2}), []int{0, 2}, 2, 0)
		assert.ErrorIs(t, err, ErrShape)
	})
	t.Run("LabelCount", func(t *testing.T) {
		_, err := Update(mat.NewDense(2, 1, []float64{1, 2}), []int{0}, 1, 0)
		assert.ErrorIs(t, err, ErrShape)
	})
}

func TestInertia(t *testing.T) {
	t.Run("Line", func(t *testing.T) {
		centers := mat.NewDense(2, 1, []float64{-5, 5})

		inertia, err := Inertia(linePoints(), centers, []int{0, 0, 0, 1, 1, 1})

		require.NoError(t, err)
		assert.Equal(t, 4.0, inertia)
	})
	t.Run("LabelCount", func(t *testing.T) {
		_, err := Inertia(linePoints(), mat.NewDense(2, 1, []float64{-5, 5}), []int{0, 1})
		assert.ErrorIs(t, err, ErrShape)
	})
	t.Run("LabelOutOfRange", func(t *testing.T) {
		_, err := Inertia(linePoints(), mat.NewDense(2, 1, []float64{-5, 5}), []int{0, 0, 0, 1, 1, 2})
		assert.ErrorIs(t, err, ErrShape)

		_, err = Inertia(linePoints(), mat.NewDense(2, 1, []float64{-5, 5}), []int{-1, 0, 0, 1, 1, 1})
		assert.ErrorIs(t, err, ErrShape)
	})
	t.Run("NonIncreasing", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(42))
		obs := blobs(rnd, 50)
		centers, err := RandomCenters(obs, 2, rnd)
		require.NoError(t, err)

		last := math.Inf(1)

		for steps := 1; steps <= 8; steps++ {
			res, err := Lloyd(obs, centers, steps)
			require.NoError(t, err)

			labels, err := Assign(obs, res.Centers)
			require.NoError(t, err)

			inertia, err := Inertia(obs, res.Centers, labels)
			require.NoError(t, err)

			assert.LessOrEqual(t, inertia, last+1e-9, "steps %d", steps)
			last = inertia
		}
	})
}
