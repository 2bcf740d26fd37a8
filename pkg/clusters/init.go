package clusters

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// ErrRandSource is returned when an initializer is called without a generator.
var ErrRandSource = errors.New("clusters: random source required")

// InitFunc chooses k initial centers from the observations.
type InitFunc func(observations mat.Matrix, k int, rnd *rand.Rand) (*mat.Dense, error)

// Initializers maps config names to center initialization functions.
var Initializers = map[string]InitFunc{
	"random":   RandomCenters,
	"kmeans++": PlusPlusCenters,
}

// RandomCenters picks k distinct observations uniformly at random (Forgy).
func RandomCenters(observations mat.Matrix, k int, rnd *rand.Rand) (*mat.Dense, error) {
	m, n, err := checkInit(observations, k, rnd)

	if err != nil {
		return nil, err
	}

	centers := mat.NewDense(k, n, nil)

	for j, i := range rnd.Perm(m)[:k] {
		centers.SetRow(j, mat.Row(nil, i, observations))
	}

	return centers, nil
}

// PlusPlusCenters picks the first center uniformly and every further center
// with probability proportional to its squared distance from the nearest
// center chosen so far (k-means++).
func PlusPlusCenters(observations mat.Matrix, k int, rnd *rand.Rand) (*mat.Dense, error) {
	m, n, err := checkInit(observations, k, rnd)

	if err != nil {
		return nil, err
	}

	obs := rows(observations)
	chosen := make([]bool, m)
	picked := make([][]float64, 0, k)
	weights := make([]float64, m)

	first := rnd.Intn(m)
	chosen[first] = true
	picked = append(picked, obs[first])

	for len(picked) < k {
		var total float64

		for i, o := range obs {
			if chosen[i] {
				weights[i] = 0
				continue
			}

			_, d := nearest(o, picked, EuclideanDistanceSquared)
			weights[i] = d
			total += d
		}

		next := -1

		if total > 0 {
			target := rnd.Float64() * total

			for i, w := range weights {
				if w == 0 {
					continue
				}

				next = i
				target -= w

				if target < 0 {
					break
				}
			}
		} else {
			// All remaining observations coincide with a center.
			free := make([]int, 0, m)

			for i := range obs {
				if !chosen[i] {
					free = append(free, i)
				}
			}

			next = free[rnd.Intn(len(free))]
		}

		chosen[next] = true
		picked = append(picked, obs[next])
	}

	centers := mat.NewDense(k, n, nil)

	for j, c := range picked {
		centers.SetRow(j, c)
	}

	return centers, nil
}

func checkInit(observations mat.Matrix, k int, rnd *rand.Rand) (m, n int, err error) {
	if rnd == nil {
		return 0, 0, ErrRandSource
	}

	if observations == nil {
		return 0, 0, shapeErrorf("init", "missing matrix")
	}

	m, n = observations.Dims()

	if k < 1 || k > m {
		return m, n, shapeErrorf("init", "cannot choose %d centers from %d observations", k, m)
	}

	return m, n, nil
}
