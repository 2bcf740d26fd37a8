package clusters

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// EmptyPolicy decides what an update does with a cluster that has no members.
type EmptyPolicy int

const (
	// EmptyFail aborts the computation with an *EmptyClusterError.
	EmptyFail EmptyPolicy = iota
	// EmptyKeep retains the previous center of the empty cluster.
	EmptyKeep
)

// String returns the policy name as used in config files.
func (p EmptyPolicy) String() string {
	switch p {
	case EmptyKeep:
		return "keep"
	default:
		return "fail"
	}
}

// ParseEmptyPolicy returns the policy for a name, defaulting to EmptyFail.
func ParseEmptyPolicy(s string) EmptyPolicy {
	if s == "keep" {
		return EmptyKeep
	}

	return EmptyFail
}

// Options configure the Lloyd iteration.
type Options struct {
	EmptyPolicy EmptyPolicy
}

// Result is the state after a number of Lloyd rounds.
type Result struct {
	// Labels maps each observation index to a cluster id in [0, k).
	Labels []int
	// Centers holds one row per cluster.
	Centers *mat.Dense
	// Steps is the number of completed assignment and update rounds.
	Steps int
	// Converged is set by Converge once the centers stopped moving.
	Converged bool
}

// K returns the number of clusters.
func (r *Result) K() int {
	k, _ := r.Centers.Dims()
	return k
}

// Sizes returns the number of observations per cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, r.K())

	for _, l := range r.Labels {
		sizes[l]++
	}

	return sizes
}

// Lloyd runs exactly steps rounds of assignment followed by update, starting
// from the given centers. Neither input is modified.
//
// With steps == 0 the centers are returned unchanged and the labels come from
// a single assignment pass against them.
func Lloyd(observations, centers mat.Matrix, steps int) (*Result, error) {
	return LloydWithOptions(observations, centers, steps, Options{})
}

// LloydWithOptions is Lloyd with an explicit empty cluster policy.
func LloydWithOptions(observations, centers mat.Matrix, steps int, opt Options) (*Result, error) {
	if steps < 0 {
		return nil, ErrSteps
	}

	if err := validate("lloyd", observations, centers); err != nil {
		return nil, err
	}

	obs := rows(observations)
	cur := mat.DenseCopyOf(centers)

	var labels []int

	for step := 0; step < steps; step++ {
		labels = assign(obs, rows(cur))

		next, err := update(obs, labels, cur, step, opt.EmptyPolicy)

		if err != nil {
			return nil, err
		}

		cur = next
	}

	if steps == 0 {
		labels = assign(obs, rows(cur))
	}

	return &Result{Labels: labels, Centers: cur, Steps: steps}, nil
}

// Assign labels every observation with the index of its nearest center.
func Assign(observations, centers mat.Matrix) ([]int, error) {
	if err := validate("assign", observations, centers); err != nil {
		return nil, err
	}

	return assign(rows(observations), rows(centers)), nil
}

// Update returns the coordinate-wise mean of the observations carrying each
// label in [0, k). An empty cluster yields an *EmptyClusterError for step.
func Update(observations mat.Matrix, labels []int, k, step int) (*mat.Dense, error) {
	m, n := observations.Dims()

	if len(labels) != m {
		return nil, shapeErrorf("update", "%d labels for %d observations", len(labels), m)
	}

	if k < 1 || n < 1 {
		return nil, shapeErrorf("update", "invalid dimensions k=%d n=%d", k, n)
	}

	for i, l := range labels {
		if l < 0 || l >= k {
			return nil, shapeErrorf("update", "label %d of observation %d out of range [0, %d)", l, i, k)
		}
	}

	return update(rows(observations), labels, mat.NewDense(k, n, nil), step, EmptyFail)
}

// Inertia returns the total within-cluster sum of squared distances.
func Inertia(observations, centers mat.Matrix, labels []int) (float64, error) {
	if err := validate("inertia", observations, centers); err != nil {
		return 0, err
	}

	if err := checkLabels("inertia", labels, observations, centers); err != nil {
		return 0, err
	}

	obs := rows(observations)
	cs := rows(centers)

	var sum float64

	for i, o := range obs {
		sum += EuclideanDistanceSquared(o, cs[labels[i]])
	}

	return sum, nil
}

func assign(obs, centers [][]float64) []int {
	labels := make([]int, len(obs))

	for i, o := range obs {
		labels[i], _ = nearest(o, centers, EuclideanDistance)
	}

	return labels
}

// update computes new centers from the partition; prev supplies the centers
// kept under EmptyKeep.
func update(obs [][]float64, labels []int, prev *mat.Dense, step int, policy EmptyPolicy) (*mat.Dense, error) {
	k, n := prev.Dims()
	sums := make([][]float64, k)
	counts := make([]int, k)

	for j := range sums {
		sums[j] = make([]float64, n)
	}

	for i, o := range obs {
		floats.Add(sums[labels[i]], o)
		counts[labels[i]]++
	}

	next := mat.NewDense(k, n, nil)

	for j := 0; j < k; j++ {
		if counts[j] == 0 {
			if policy == EmptyKeep {
				next.SetRow(j, mat.Row(nil, j, prev))
				continue
			}

			return nil, &EmptyClusterError{Cluster: j, Step: step}
		}

		floats.Scale(1/float64(counts[j]), sums[j])
		next.SetRow(j, sums[j])
	}

	return next, nil
}

func validate(op string, observations, centers mat.Matrix) error {
	if observations == nil || centers == nil {
		return shapeErrorf(op, "missing matrix")
	}

	m, n := observations.Dims()
	k, cn := centers.Dims()

	switch {
	case m < 1 || n < 1:
		return shapeErrorf(op, "empty observation set")
	case k < 1:
		return shapeErrorf(op, "no centers")
	case k > m:
		return shapeErrorf(op, "%d centers for %d observations", k, m)
	case cn != n:
		return shapeErrorf(op, "centers have %d coordinates, observations %d", cn, n)
	}

	if err := Finite(observations); err != nil {
		return fmt.Errorf("clusters: %s: observations: %w", op, err)
	}

	if err := Finite(centers); err != nil {
		return fmt.Errorf("clusters: %s: centers: %w", op, err)
	}

	return nil
}

func checkLabels(op string, labels []int, observations, centers mat.Matrix) error {
	m, _ := observations.Dims()
	k, _ := centers.Dims()

	if len(labels) != m {
		return shapeErrorf(op, "%d labels for %d observations", len(labels), m)
	}

	for i, l := range labels {
		if l < 0 || l >= k {
			return shapeErrorf(op, "label %d of observation %d out of range [0, %d)", l, i, k)
		}
	}

	return nil
}

// rows copies a matrix into a slice of row slices.
func rows(a mat.Matrix) [][]float64 {
	r, _ := a.Dims()
	result := make([][]float64, r)

	for i := range result {
		result[i] = mat.Row(nil, i, a)
	}

	return result
}
