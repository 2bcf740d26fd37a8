package thumb

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxIntensity is the value of a white pixel in a grid.
const MaxIntensity = 255

// Grid returns the lightness of every pixel in row-major order, scaled to
// [0, MaxIntensity]. Transparent pixels count as black.
func Grid(img image.Image) []float64 {
	b := img.Bounds()
	result := make([]float64, 0, b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))

			if !ok {
				result = append(result, 0)
				continue
			}

			l, _, _ := c.Clamped().Lab()
			result = append(result, l*MaxIntensity)
		}
	}

	return result
}

// Load opens an image and returns its side×side grayscale grid.
func Load(fileName string, side int, opt ResampleOption) ([]float64, error) {
	img, err := Open(fileName)

	if err != nil {
		return nil, err
	}

	square, err := Resample(img, side, opt)

	if err != nil {
		return nil, err
	}

	return Grid(square), nil
}
