package dataset

import (
	"fmt"

	"github.com/dustin/go-humanize/english"
	"gonum.org/v1/gonum/mat"

	"github.com/carck/unsupervised/internal/thumb"
	"github.com/carck/unsupervised/pkg/fs"
)

// Images loads every image file below root as a side×side grayscale grid and
// returns the file names together with a (side*side)×W matrix holding one
// flattened image per column.
func Images(root string, side int, opt thumb.ResampleOption) ([]string, *mat.Dense, error) {
	files, err := fs.Images(root)

	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("dataset: no images found in %s", root)
	}

	batch := mat.NewDense(side*side, len(files), nil)

	for j, fileName := range files {
		grid, err := thumb.Load(fileName, side, opt)

		if err != nil {
			return nil, nil, err
		}

		batch.SetCol(j, grid)
	}

	log.Infof("dataset: loaded %s from %s", english.Plural(len(files), "image", "images"), root)

	return files, batch, nil
}
