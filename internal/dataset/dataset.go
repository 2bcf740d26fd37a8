/*
Package dataset loads observation sets and image batches from disk.
*/
package dataset

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/carck/unsupervised/internal/event"
	"github.com/carck/unsupervised/pkg/clusters"
	"github.com/carck/unsupervised/pkg/fs"
)

var log = event.Log

// Options select the part of a data file to import.
type Options struct {
	// Start and End span the imported CSV columns inclusively. A negative
	// End imports column Start only.
	Start, End int
	// Path is the gjson path of the observation array in JSON files.
	Path string
	// Normalize scales every observation to unit length.
	Normalize bool
}

// Observations reads a CSV or JSON file into an m×n matrix.
func Observations(fileName string, opt Options) (*mat.Dense, error) {
	var data [][]float64
	var err error

	switch fs.GetFileFormat(fileName) {
	case fs.FormatCsv:
		end := opt.End

		if end < 0 {
			end = opt.Start
		}

		data, err = clusters.CsvImport().Import(fileName, opt.Start, end)
	case fs.FormatJson:
		data, err = JSONFile(fileName, opt.Path)
	default:
		return nil, fmt.Errorf("dataset: unsupported file %s", filepath.Base(fileName))
	}

	if err != nil {
		return nil, err
	}

	log.Debugf("dataset: read %d observations from %s", len(data), filepath.Base(fileName))

	obs, err := clusters.Matrix(data)

	if err != nil {
		return nil, err
	}

	if err := clusters.Finite(obs); err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", filepath.Base(fileName), err)
	}

	if opt.Normalize {
		L2Norm(obs, NormEpsilon)
	}

	return obs, nil
}
