package thumb

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ResampleOption selects how a non-square image becomes a square.
type ResampleOption int

const (
	// ResampleResize stretches the whole image.
	ResampleResize ResampleOption = iota
	// ResampleFillCenter crops the largest centered square first.
	ResampleFillCenter
)

// ParseResample returns the option for a config name.
func ParseResample(s string) (ResampleOption, error) {
	switch s {
	case "", "resize":
		return ResampleResize, nil
	case "center":
		return ResampleFillCenter, nil
	}

	return ResampleResize, fmt.Errorf("unknown resample option %q", s)
}

// Resample scales img to a side×side image using Catmull-Rom interpolation.
func Resample(img image.Image, side int, opt ResampleOption) (image.Image, error) {
	if side < 1 {
		return nil, fmt.Errorf("invalid side %d", side)
	}

	src := img.Bounds()

	if src.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	if opt == ResampleFillCenter {
		src = centerSquare(src)
	}

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)

	return dst, nil
}

func centerSquare(r image.Rectangle) image.Rectangle {
	w, h := r.Dx(), r.Dy()

	if w > h {
		x := r.Min.X + (w-h)/2
		return image.Rect(x, r.Min.Y, x+h, r.Max.Y)
	}

	y := r.Min.Y + (h-w)/2

	return image.Rect(r.Min.X, y, r.Max.X, y+w)
}
