package wavelet

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Rescale maps the magnitudes of band linearly onto the integers [1, nb]:
// absolute values are shifted so the smallest becomes 0, scaled so the
// largest becomes nb, then floored and offset by one, with nb+1 clamped to nb.
func Rescale(band mat.Matrix, nb int) (*mat.Dense, error) {
	if nb < 1 {
		return nil, ErrBound
	}

	if band == nil {
		return nil, &ShapeError{Reason: "is missing"}
	}

	result := mat.DenseCopyOf(band)
	rows, cols := result.Dims()
	data := flatten(result)

	for i, v := range data {
		data[i] = math.Abs(v)
	}

	min := floats.Min(data)
	floats.AddConst(-min, data)

	max := floats.Max(data)

	if max == 0 {
		return nil, ErrFlatBand
	}

	bound := float64(nb)

	for i, v := range data {
		data[i] = math.Min(1+math.Floor(v/max*bound), bound)
	}

	for i := 0; i < rows; i++ {
		result.SetRow(i, data[i*cols:(i+1)*cols])
	}

	return result, nil
}
