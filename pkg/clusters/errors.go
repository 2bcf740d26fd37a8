package clusters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape is returned when input matrices have incompatible dimensions.
	ErrShape = errors.New("clusters: shape mismatch")

	// ErrSteps is returned for a negative iteration count.
	ErrSteps = errors.New("clusters: steps must not be negative")

	// ErrEmptyCluster is returned when a cluster has no members during an update.
	ErrEmptyCluster = errors.New("clusters: empty cluster")

	// ErrNotLearned is returned when a clusterer is used before Learn.
	ErrNotLearned = errors.New("clusters: not learned")

	// ErrNonFinite is returned for NaN or infinite values and distances.
	ErrNonFinite = errors.New("clusters: value is not finite")
)

// ShapeError describes an invalid observation or center matrix.
type ShapeError struct {
	Op     string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("clusters: %s: %s", e.Op, e.Reason)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}

func shapeErrorf(op, format string, args ...interface{}) error {
	return &ShapeError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// EmptyClusterError reports a cluster that received no observations.
type EmptyClusterError struct {
	Cluster int
	Step    int
}

func (e *EmptyClusterError) Error() string {
	return fmt.Sprintf("clusters: cluster %d has no observations in step %d", e.Cluster, e.Step)
}

func (e *EmptyClusterError) Unwrap() error {
	return ErrEmptyCluster
}

// Finite returns an error wrapping ErrNonFinite if any element of a is NaN
// or infinite.
func Finite(a mat.Matrix) error {
	r, c := a.Dims()

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("clusters: row %d column %d is %g: %w", i, j, v, ErrNonFinite)
			}
		}
	}

	return nil
}
