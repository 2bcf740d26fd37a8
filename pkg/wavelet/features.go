package wavelet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultBound is the rescale bound used by the command line tools.
const DefaultBound = 15

// Features returns the sum of the rescaled horizontal and vertical detail
// bands of img. The result has half the rows and columns of img.
func Features(img mat.Matrix, nb int) (*mat.Dense, error) {
	if nb < 1 {
		return nil, ErrBound
	}

	bands, err := Decompose(img)

	if err != nil {
		return nil, err
	}

	h, err := Rescale(bands.Horizontal, nb)

	if err != nil {
		return nil, err
	}

	v, err := Rescale(bands.Vertical, nb)

	if err != nil {
		return nil, err
	}

	h.Add(h, v)

	return h, nil
}

// FeaturesVector reshapes a flat row-major image of perfect square length
// into a square grid and returns its features flattened the same way.
func FeaturesVector(pixels []float64, nb int) ([]float64, error) {
	side, err := Side(len(pixels))

	if err != nil {
		return nil, err
	}

	img := mat.NewDense(side, side, append([]float64(nil), pixels...))
	f, err := Features(img, nb)

	if err != nil {
		return nil, err
	}

	return flatten(f), nil
}

// FeaturesBatch treats every column of images as one flat square image and
// returns a matrix whose columns are the corresponding feature vectors.
func FeaturesBatch(images mat.Matrix, nb int) (*mat.Dense, error) {
	if images == nil {
		return nil, &ShapeError{Reason: "is missing"}
	}

	length, count := images.Dims()

	if _, err := Side(length); err != nil {
		return nil, err
	}

	result := mat.NewDense(length/4, count, nil)

	for j := 0; j < count; j++ {
		f, err := FeaturesVector(mat.Col(nil, j, images), nb)

		if err != nil {
			return nil, fmt.Errorf("wavelet: image %d: %w", j, err)
		}

		result.SetCol(j, f)
	}

	return result, nil
}

// Side returns the side of a square image with length pixels.
func Side(length int) (int, error) {
	if length < 4 {
		return 0, &ShapeError{Length: length, Reason: "is too short for a 2x2 image"}
	}

	side := int(math.Sqrt(float64(length)))

	for side*side > length {
		side--
	}

	for (side+1)*(side+1) <= length {
		side++
	}

	if side*side != length {
		return 0, &ShapeError{Length: length, Reason: "is not a perfect square"}
	}

	if side%2 != 0 {
		return 0, &ShapeError{Length: length, Reason: "has an odd side"}
	}

	return side, nil
}

func flatten(m *mat.Dense) []float64 {
	r, c := m.Dims()
	result := make([]float64, 0, r*c)

	for i := 0; i < r; i++ {
		result = append(result, m.RawRowView(i)...)
	}

	return result
}
