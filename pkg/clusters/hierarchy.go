package clusters

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Linkage selects how the distance between two clusters is derived from the
// distances between their members.
type Linkage int

const (
	SingleLinkage Linkage = iota
	CompleteLinkage
	AverageLinkage
	WardLinkage
)

// String returns the linkage name.
func (l Linkage) String() string {
	switch l {
	case CompleteLinkage:
		return "complete"
	case AverageLinkage:
		return "average"
	case WardLinkage:
		return "ward"
	default:
		return "single"
	}
}

// ParseLinkage returns the linkage for a name.
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return SingleLinkage, nil
	case "complete":
		return CompleteLinkage, nil
	case "average":
		return AverageLinkage, nil
	case "ward":
		return WardLinkage, nil
	}

	return SingleLinkage, fmt.Errorf("clusters: unknown linkage %q", s)
}

// Merge is one step of an agglomerative clustering. Clusters 0..N-1 are the
// observations, the cluster created by merge i has id N+i.
type Merge struct {
	A        int     `yaml:"A"`
	B        int     `yaml:"B"`
	Distance float64 `yaml:"Distance"`
	Size     int     `yaml:"Size"`
}

// Dendrogram is the full merge history over N observations.
type Dendrogram struct {
	N      int     `yaml:"N"`
	Merges []Merge `yaml:"Merges"`
}

// Agglomerate merges the two closest clusters until one remains. Distances
// between merged clusters follow the Lance-Williams update for the linkage.
// Ties are resolved in favour of the pair found first in row-major order.
func Agglomerate(observations mat.Matrix, linkage Linkage) (Dendrogram, error) {
	if observations == nil {
		return Dendrogram{}, shapeErrorf("agglomerate", "missing matrix")
	}

	m, n := observations.Dims()

	if m < 1 || n < 1 {
		return Dendrogram{}, shapeErrorf("agglomerate", "empty observation set")
	}

	if err := Finite(observations); err != nil {
		return Dendrogram{}, fmt.Errorf("clusters: agglomerate: %w", err)
	}

	obs := rows(observations)
	dist := make([][]float64, m)

	for i := range dist {
		dist[i] = make([]float64, m)

		for j := 0; j < i; j++ {
			d := EuclideanDistance(obs[i], obs[j])
			dist[i][j], dist[j][i] = d, d
		}
	}

	ids := make([]int, m)
	sizes := make([]int, m)
	active := make([]bool, m)

	for i := range ids {
		ids[i], sizes[i], active[i] = i, 1, true
	}

	d := Dendrogram{N: m, Merges: make([]Merge, 0, m-1)}

	for step := 0; step < m-1; step++ {
		a, b, min := -1, -1, math.Inf(1)

		for i := 0; i < m; i++ {
			if !active[i] {
				continue
			}

			for j := i + 1; j < m; j++ {
				if active[j] && dist[i][j] < min {
					a, b, min = i, j, dist[i][j]
				}
			}
		}

		if a < 0 {
			return Dendrogram{}, fmt.Errorf("clusters: agglomerate: no finite cluster distance in step %d: %w", step, ErrNonFinite)
		}

		merge := Merge{A: ids[a], B: ids[b], Distance: min, Size: sizes[a] + sizes[b]}

		if merge.A > merge.B {
			merge.A, merge.B = merge.B, merge.A
		}

		d.Merges = append(d.Merges, merge)

		for k := 0; k < m; k++ {
			if !active[k] || k == a || k == b {
				continue
			}

			v := lanceWilliams(linkage, dist[k][a], dist[k][b], dist[a][b], sizes[k], sizes[a], sizes[b])
			dist[k][a], dist[a][k] = v, v
		}

		ids[a] = m + step
		sizes[a] = merge.Size
		active[b] = false
	}

	return d, nil
}

func lanceWilliams(l Linkage, dka, dkb, dab float64, nk, na, nb int) float64 {
	switch l {
	case CompleteLinkage:
		return math.Max(dka, dkb)
	case AverageLinkage:
		return (float64(na)*dka + float64(nb)*dkb) / float64(na+nb)
	case WardLinkage:
		fk, fa, fb := float64(nk), float64(na), float64(nb)
		v := ((fk+fa)*dka*dka + (fk+fb)*dkb*dkb - fk*dab*dab) / (fk + fa + fb)
		return math.Sqrt(math.Max(v, 0))
	default:
		return math.Min(dka, dkb)
	}
}

// Cut replays the first N-k merges and returns a flat labelling with k
// clusters. Cluster ids are numbered by the first observation in each.
func (d Dendrogram) Cut(k int) ([]int, error) {
	if k < 1 || k > d.N {
		return nil, fmt.Errorf("clusters: cannot cut %d observations into %d clusters", d.N, k)
	}

	if len(d.Merges) < d.N-k {
		return nil, fmt.Errorf("clusters: dendrogram has %d merges, need %d", len(d.Merges), d.N-k)
	}

	parent := make([]int, d.N+len(d.Merges))

	for i := range parent {
		parent[i] = i
	}

	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}

	for i, merge := range d.Merges[:d.N-k] {
		node := d.N + i
		parent[find(merge.A)] = node
		parent[find(merge.B)] = node
	}

	labels := make([]int, d.N)
	numbers := make(map[int]int, k)

	for i := range labels {
		root := find(i)

		if _, ok := numbers[root]; !ok {
			numbers[root] = len(numbers)
		}

		labels[i] = numbers[root]
	}

	return labels, nil
}
