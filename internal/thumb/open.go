package thumb

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/carck/unsupervised/pkg/fs"
)

// Open loads an image from disk.
func Open(fileName string) (result image.Image, err error) {
	if fileName == "" {
		return result, fmt.Errorf("filename missing")
	}

	if f := fs.GetFileFormat(fileName); !f.IsImage() {
		return result, fmt.Errorf("%s is not a supported image", filepath.Base(fileName))
	}

	fileReader, err := os.Open(fileName)

	if err != nil {
		return result, err
	}

	defer fileReader.Close()

	img, format, err := image.Decode(fileReader)

	if err != nil {
		return result, fmt.Errorf("%s in %s (decode)", err, filepath.Base(fileName))
	}

	log.Tracef("thumb: decoded %s image %s", format, filepath.Base(fileName))

	return img, nil
}
