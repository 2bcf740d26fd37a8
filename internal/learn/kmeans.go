package learn

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize/english"

	"github.com/carck/unsupervised/internal/config"
	"github.com/carck/unsupervised/internal/dataset"
	"github.com/carck/unsupervised/internal/report"
	"github.com/carck/unsupervised/pkg/clusters"
)

// KMeans clusters the observations in opt.File with Lloyd's algorithm.
func KMeans(conf *config.Config, opt KMeansOptions) (result report.KMeans, err error) {
	start := time.Now()

	obs, err := dataset.Observations(opt.File, opt.Dataset)

	if err != nil {
		return result, err
	}

	m, n := obs.Dims()

	log.Infof("kmeans: clustering %s with %d dimensions into %s", english.Plural(m, "observation", "observations"), n, english.Plural(opt.K, "cluster", "clusters"))

	initFunc, err := conf.InitFunc()

	if err != nil {
		return result, err
	}

	centers, err := initFunc(obs, opt.K, conf.Rand())

	if err != nil {
		return result, fmt.Errorf("kmeans: %w", err)
	}

	var res *clusters.Result

	lloyd := clusters.Options{EmptyPolicy: conf.EmptyPolicy()}

	if opt.Exact() {
		res, err = clusters.LloydWithOptions(obs, centers, opt.Steps, lloyd)
	} else {
		res, err = clusters.Converge(obs, centers, opt.Steps, opt.Tolerance, lloyd)
	}

	if errors.Is(err, clusters.ErrEmptyCluster) {
		log.Warnf("kmeans: %s, try another seed or --empty keep", err)
		return result, err
	} else if err != nil {
		return result, err
	}

	if !opt.Exact() && !res.Converged {
		log.Warnf("kmeans: not converged after %s", english.Plural(res.Steps, "step", "steps"))
	}

	inertia, err := clusters.Inertia(obs, res.Centers, res.Labels)

	if err != nil {
		return result, err
	}

	sizes, err := report.SummarizeInts(res.Sizes())

	if err != nil {
		return result, err
	}

	result = report.KMeans{
		Source:    source(opt.File),
		K:         res.K(),
		Steps:     res.Steps,
		Converged: res.Converged,
		Seed:      conf.Seed(),
		Init:      conf.InitName(),
		Inertia:   inertia,
		Sizes:     sizes,
		Centers:   report.Rows(res.Centers),
		Labels:    res.Labels,
		CreatedAt: time.Now().UTC(),
	}

	log.Infof("kmeans: inertia %.4f after %s [%s]", result.Inertia, english.Plural(res.Steps, "step", "steps"), time.Since(start))

	return result, nil
}
