package clusters

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// KMeans is a hard clusterer built on the Lloyd iteration.
type KMeans struct {
	k       int
	steps   int
	tol     float64
	rnd     *rand.Rand
	init    InitFunc
	options Options

	result *Result
}

// KMeansOption configures a KMeans clusterer.
type KMeansOption func(*KMeans)

// WithTolerance makes Learn stop early once no center moves further than tol.
// Without it Learn runs exactly the configured number of steps.
func WithTolerance(tol float64) KMeansOption {
	return func(c *KMeans) {
		c.tol = tol
	}
}

// WithInit replaces the default random center initialization.
func WithInit(f InitFunc) KMeansOption {
	return func(c *KMeans) {
		c.init = f
	}
}

// WithEmptyPolicy sets how empty clusters are handled.
func WithEmptyPolicy(p EmptyPolicy) KMeansOption {
	return func(c *KMeans) {
		c.options.EmptyPolicy = p
	}
}

// NewKMeans returns a clusterer for k clusters that runs the given number of
// steps. Initial centers are drawn with rnd.
func NewKMeans(k, steps int, rnd *rand.Rand, opts ...KMeansOption) (*KMeans, error) {
	if k < 1 {
		return nil, fmt.Errorf("clusters: k must be positive, got %d", k)
	}

	if steps < 0 {
		return nil, ErrSteps
	}

	if rnd == nil {
		return nil, ErrRandSource
	}

	c := &KMeans{k: k, steps: steps, tol: -1, rnd: rnd, init: RandomCenters}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Learn clusters the data.
func (c *KMeans) Learn(data [][]float64) error {
	obs, err := Matrix(data)

	if err != nil {
		return err
	}

	return c.LearnMatrix(obs)
}

// LearnMatrix clusters the rows of an observation matrix.
func (c *KMeans) LearnMatrix(observations mat.Matrix) error {
	centers, err := c.init(observations, c.k, c.rnd)

	if err != nil {
		return err
	}

	var res *Result

	if c.tol >= 0 {
		res, err = Converge(observations, centers, c.steps, c.tol, c.options)
	} else {
		res, err = LloydWithOptions(observations, centers, c.steps, c.options)
	}

	if err != nil {
		return err
	}

	c.result = res

	return nil
}

// Result returns the outcome of the last Learn call, or nil.
func (c *KMeans) Result() *Result {
	return c.result
}

// Centers returns a copy of the learned centers.
func (c *KMeans) Centers() (*mat.Dense, error) {
	if c.result == nil {
		return nil, ErrNotLearned
	}

	return mat.DenseCopyOf(c.result.Centers), nil
}

// Sizes returns sizes of respective clusters.
func (c *KMeans) Sizes() []int {
	if c.result == nil {
		return nil
	}

	return c.result.Sizes()
}

// Guesses returns the cluster number of every learned observation.
func (c *KMeans) Guesses() []int {
	if c.result == nil {
		return nil
	}

	return append([]int(nil), c.result.Labels...)
}

// Predict returns the nearest learned center, or -1 before Learn.
func (c *KMeans) Predict(observation []float64) int {
	if c.result == nil {
		return -1
	}

	j, _ := nearest(observation, rows(c.result.Centers), EuclideanDistance)

	return j
}

// Matrix converts a slice of equally long observations into a dense matrix.
func Matrix(data [][]float64) (*mat.Dense, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, shapeErrorf("matrix", "empty observation set")
	}

	n := len(data[0])
	result := mat.NewDense(len(data), n, nil)

	for i, row := range data {
		if len(row) != n {
			return nil, shapeErrorf("matrix", "observation %d has %d coordinates, expected %d", i, len(row), n)
		}

		result.SetRow(i, row)
	}

	return result, nil
}
