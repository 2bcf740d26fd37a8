package wavelet

import (
	"gonum.org/v1/gonum/mat"
)

// Bands are the four sub-bands of a single level 2D Haar decomposition.
type Bands struct {
	// Approx is the low-pass approximation.
	Approx *mat.Dense
	// Horizontal holds detail from differences between row pairs.
	Horizontal *mat.Dense
	// Vertical holds detail from differences between column pairs.
	Vertical *mat.Dense
	// Diagonal holds the remaining detail.
	Diagonal *mat.Dense
}

// Decompose applies one level of the orthonormal Haar transform to img.
// For each 2×2 block [[a b] [c d]] the coefficients are
//
//	A = (a+b+c+d)/2
//	H = (a+b-c-d)/2
//	V = (a-b+c-d)/2
//	D = (a-b-c+d)/2
//
// Both dimensions must be even.
func Decompose(img mat.Matrix) (Bands, error) {
	if img == nil {
		return Bands{}, &ShapeError{Reason: "is missing"}
	}

	rows, cols := img.Dims()

	if rows < 2 || cols < 2 || rows%2 != 0 || cols%2 != 0 {
		return Bands{}, &ShapeError{Rows: rows, Cols: cols, Reason: "must have even dimensions"}
	}

	r, c := rows/2, cols/2
	b := Bands{
		Approx:     mat.NewDense(r, c, nil),
		Horizontal: mat.NewDense(r, c, nil),
		Vertical:   mat.NewDense(r, c, nil),
		Diagonal:   mat.NewDense(r, c, nil),
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a := img.At(2*i, 2*j)
			bb := img.At(2*i, 2*j+1)
			cc := img.At(2*i+1, 2*j)
			d := img.At(2*i+1, 2*j+1)

			b.Approx.Set(i, j, (a+bb+cc+d)/2)
			b.Horizontal.Set(i, j, (a+bb-cc-d)/2)
			b.Vertical.Set(i, j, (a-bb+cc-d)/2)
			b.Diagonal.Set(i, j, (a-bb-cc+d)/2)
		}
	}

	return b, nil
}
