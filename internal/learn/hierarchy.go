package learn

import (
	"time"

	"github.com/dustin/go-humanize/english"

	"github.com/carck/unsupervised/internal/config"
	"github.com/carck/unsupervised/internal/dataset"
	"github.com/carck/unsupervised/internal/report"
	"github.com/carck/unsupervised/pkg/clusters"
)

// Hierarchy builds the dendrogram of the observations in opt.File.
func Hierarchy(conf *config.Config, opt HierarchyOptions) (result report.Hierarchy, err error) {
	start := time.Now()

	obs, err := dataset.Observations(opt.File, opt.Dataset)

	if err != nil {
		return result, err
	}

	m, _ := obs.Dims()

	log.Infof("hierarchy: merging %s with %s linkage", english.Plural(m, "observation", "observations"), opt.Linkage)

	d, err := clusters.Agglomerate(obs, opt.Linkage)

	if err != nil {
		return result, err
	}

	result = report.Hierarchy{
		Source:    source(opt.File),
		Linkage:   opt.Linkage.String(),
		Merges:    d.Merges,
		CreatedAt: time.Now().UTC(),
	}

	if opt.K > 0 {
		if result.Labels, err = d.Cut(opt.K); err != nil {
			return result, err
		}

		result.K = opt.K
	}

	log.Infof("hierarchy: %s [%s]", english.Plural(len(d.Merges), "merge", "merges"), time.Since(start))

	return result, nil
}
