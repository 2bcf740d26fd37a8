// Package clusters provides abstract definitions of clusterers as well as
// their implementations.
package clusters

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistanceFunc represents a function for measuring distance
// between n-dimensional vectors.
type DistanceFunc func([]float64, []float64) float64

// Clusterer defines the operation of learning
// common for all algorithms
type Clusterer interface {
	Learn([][]float64) error
}

// HardClusterer defines a set of operations for hard clustering algorithms
type HardClusterer interface {

	// Sizes returns sizes of respective clusters
	Sizes() []int

	// Guesses returns mapping from data point indices to cluster numbers. Clusters' numbering begins at 0.
	Guesses() []int

	// Predict returns number of cluster to which the observation would be assigned
	Predict(observation []float64) int

	// Implement common operation
	Clusterer
}

// Importer defines an operation of importing the dataset from an external file
type Importer interface {

	// Import fetches the data from a file, start and end arguments allow user
	// to specify the span of data columns to be imported (inclusively)
	Import(file string, start, end int) ([][]float64, error)
}

var (
	// EuclideanDistance is one of the common distance measurement
	EuclideanDistance = func(a, b []float64) float64 {
		return floats.Distance(a, b, 2)
	}

	// EuclideanDistanceSquared is one of the common distance measurement
	EuclideanDistanceSquared = func(a, b []float64) float64 {
		var (
			s, t float64
		)

		for i := range a {
			t = a[i] - b[i]
			s += t * t
		}

		return s
	}
)

// nearest returns the index of the row in centers closest to observation and
// the distance to it. Ties resolve to the lowest index.
func nearest(observation []float64, centers [][]float64, dist DistanceFunc) (int, float64) {
	best, min := 0, math.Inf(1)

	for j, c := range centers {
		if d := dist(observation, c); d < min {
			best, min = j, d
		}
	}

	return best, min
}
