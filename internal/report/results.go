package report

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/carck/unsupervised/pkg/clusters"
)

// Source identifies an input file.
type Source struct {
	File     string `yaml:"File"`
	Checksum string `yaml:"Checksum,omitempty"`
}

// KMeans represents the result of a k-means run.
type KMeans struct {
	Source    Source      `yaml:"Source"`
	K         int         `yaml:"K"`
	Steps     int         `yaml:"Steps"`
	Converged bool        `yaml:"Converged"`
	Seed      int64       `yaml:"Seed"`
	Init      string      `yaml:"Init"`
	Inertia   float64     `yaml:"Inertia"`
	Sizes     Summary     `yaml:"Sizes"`
	Centers   [][]float64 `yaml:"Centers"`
	Labels    []int       `yaml:"Labels"`
	CreatedAt time.Time   `yaml:"CreatedAt"`
}

// Hierarchy represents the result of an agglomerative clustering.
type Hierarchy struct {
	Source    Source           `yaml:"Source"`
	Linkage   string           `yaml:"Linkage"`
	Merges    []clusters.Merge `yaml:"Merges"`
	K         int              `yaml:"K,omitempty"`
	Labels    []int            `yaml:"Labels,omitempty"`
	CreatedAt time.Time        `yaml:"CreatedAt"`
}

// Feature represents the wavelet features of one image.
type Feature struct {
	Source Source    `yaml:"Source"`
	Values []float64 `yaml:"Values"`
}

// Features represents the result of a feature extraction run.
type Features struct {
	Side      int       `yaml:"Side"`
	Bound     int       `yaml:"Bound"`
	Summary   Summary   `yaml:"Summary"`
	Images    []Feature `yaml:"Images"`
	CreatedAt time.Time `yaml:"CreatedAt"`
}

// Rows converts a matrix to nested slices for serialization.
func Rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	result := make([][]float64, r)

	for i := range result {
		result[i] = mat.Row(nil, i, m)
	}

	return result
}
