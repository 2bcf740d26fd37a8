/*
Package wavelet extracts edge features from grayscale images with a single
level two-dimensional Haar wavelet transform.

The horizontal and vertical detail bands are rescaled independently to the
integer range [1, nb] and summed, so a w×h image yields a (w/2)×(h/2)
feature grid whose values lie in [2, 2nb].
*/
package wavelet

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned for images that cannot be decomposed.
	ErrShape = errors.New("wavelet: shape mismatch")

	// ErrFlatBand is returned when a detail band has no range to rescale.
	ErrFlatBand = errors.New("wavelet: flat detail band")

	// ErrBound is returned for an upper bound below 1.
	ErrBound = errors.New("wavelet: bound must be at least 1")
)

// ShapeError describes an image with unusable dimensions.
type ShapeError struct {
	Rows, Cols int
	Length     int
	Reason     string
}

func (e *ShapeError) Error() string {
	if e.Length > 0 {
		return fmt.Sprintf("wavelet: length %d %s", e.Length, e.Reason)
	}

	return fmt.Sprintf("wavelet: %dx%d image %s", e.Rows, e.Cols, e.Reason)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}
