package learn

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize/english"
	"gonum.org/v1/gonum/mat"

	"github.com/carck/unsupervised/internal/config"
	"github.com/carck/unsupervised/internal/dataset"
	"github.com/carck/unsupervised/internal/report"
	"github.com/carck/unsupervised/pkg/wavelet"
)

// Features extracts the wavelet features of every image below opt.Path.
func Features(conf *config.Config, opt FeaturesOptions) (result report.Features, err error) {
	start := time.Now()

	files, images, err := dataset.Images(opt.Path, conf.Side(), conf.Resample())

	if err != nil {
		return result, err
	}

	features, err := wavelet.FeaturesBatch(images, conf.Bound())

	if err != nil {
		return result, fmt.Errorf("features: %w", err)
	}

	result = report.Features{
		Side:      conf.Side(),
		Bound:     conf.Bound(),
		Images:    make([]report.Feature, len(files)),
		CreatedAt: time.Now().UTC(),
	}

	for j, fileName := range files {
		result.Images[j] = report.Feature{
			Source: source(fileName),
			Values: mat.Col(nil, j, features),
		}

		log.Debugf("features: extracted %s", filepath.Base(fileName))
	}

	if result.Summary, err = report.Summarize(features.RawMatrix().Data); err != nil {
		return result, err
	}

	log.Infof("features: extracted %s [%s]", english.Plural(len(files), "image", "images"), time.Since(start))

	return result, nil
}
