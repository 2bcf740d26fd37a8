package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NormEpsilon is the smallest squared norm used when scaling observations.
const NormEpsilon = 1e-10

// L2Norm scales every observation to unit Euclidean length in place. Rows
// with a squared norm below epsilon are divided by sqrt(epsilon) instead.
func L2Norm(observations *mat.Dense, epsilon float64) {
	m, _ := observations.Dims()

	for i := 0; i < m; i++ {
		row := observations.RawRowView(i)
		norm := floats.Norm(row, 2)
		floats.Scale(1/math.Sqrt(math.Max(norm*norm, epsilon)), row)
	}
}
