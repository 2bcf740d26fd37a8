/*
Package thumb loads images and converts them to square grayscale grids that
can be passed to the wavelet feature extractor.
*/
package thumb

import (
	"github.com/carck/unsupervised/internal/event"
)

var log = event.Log
