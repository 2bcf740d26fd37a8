package learn

import (
	"github.com/carck/unsupervised/internal/dataset"
	"github.com/carck/unsupervised/pkg/clusters"
)

// KMeansOptions configure a k-means run.
type KMeansOptions struct {
	File    string
	Dataset dataset.Options
	K       int
	Steps   int
	// Tolerance enables convergence detection when not negative, Steps is
	// then the upper limit.
	Tolerance float64
}

// Exact tests if the run performs exactly Steps rounds.
func (o *KMeansOptions) Exact() bool {
	return o.Tolerance < 0
}

// HierarchyOptions configure an agglomerative clustering run.
type HierarchyOptions struct {
	File    string
	Dataset dataset.Options
	Linkage clusters.Linkage
	// K cuts the dendrogram into flat clusters when positive.
	K int
}

// FeaturesOptions configure a wavelet feature extraction run.
type FeaturesOptions struct {
	Path string
}

// KMeansOptionsDefault returns k-means options for the given file that run
// until convergence.
func KMeansOptionsDefault(fileName string, k int) KMeansOptions {
	return KMeansOptions{
		File:      fileName,
		Dataset:   dataset.Options{Start: 0, End: -1},
		K:         k,
		Steps:     100,
		Tolerance: 1e-9,
	}
}
