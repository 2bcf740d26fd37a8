package clusters

import (
	"gonum.org/v1/gonum/mat"
)

// Converge steps the Lloyd iteration one round at a time until no center moves
// further than tol or maxSteps rounds have run. The returned labels belong to
// the final centers and Converged reports whether the tolerance was reached.
func Converge(observations, centers mat.Matrix, maxSteps int, tol float64, opt Options) (*Result, error) {
	if maxSteps < 0 {
		return nil, ErrSteps
	}

	if err := validate("converge", observations, centers); err != nil {
		return nil, err
	}

	obs := rows(observations)
	cur := mat.DenseCopyOf(centers)
	steps := 0
	converged := false

	for steps < maxSteps {
		labels := assign(obs, rows(cur))
		next, err := update(obs, labels, cur, steps, opt.EmptyPolicy)

		if err != nil {
			return nil, err
		}

		shift := Shift(cur, next)
		cur = next
		steps++

		if shift <= tol {
			converged = true
			break
		}
	}

	return &Result{Labels: assign(obs, rows(cur)), Centers: cur, Steps: steps, Converged: converged}, nil
}

// Shift returns the largest Euclidean distance between corresponding rows of
// two center matrices of equal shape.
func Shift(a, b mat.Matrix) float64 {
	ra, rb := rows(a), rows(b)

	var max float64

	for i := range ra {
		if d := EuclideanDistance(ra[i], rb[i]); d > max {
			max = d
		}
	}

	return max
}
