package fs

import (
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// FileFormat is the data format of an input file.
type FileFormat string

const (
	FormatJpeg   FileFormat = "jpg"
	FormatPng    FileFormat = "png"
	FormatGif    FileFormat = "gif"
	FormatBitmap FileFormat = "bmp"
	FormatTiff   FileFormat = "tiff"
	FormatWebP   FileFormat = "webp"
	FormatCsv    FileFormat = "csv"
	FormatJson   FileFormat = "json"
	FormatOther  FileFormat = ""
)

// imageTypes maps filetype extensions to image formats that can be decoded.
var imageTypes = map[string]FileFormat{
	"jpg":  FormatJpeg,
	"png":  FormatPng,
	"gif":  FormatGif,
	"bmp":  FormatBitmap,
	"tif":  FormatTiff,
	"webp": FormatWebP,
}

// Ext returns the lower case file extension without dot.
func Ext(fileName string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
}

// GetFileFormat returns the format of a file, detecting images by content and
// data files by extension.
func GetFileFormat(fileName string) FileFormat {
	switch Ext(fileName) {
	case "csv", "txt":
		return FormatCsv
	case "json":
		return FormatJson
	}

	kind, err := filetype.MatchFile(fileName)

	if err != nil || kind == filetype.Unknown {
		return FormatOther
	}

	if f, ok := imageTypes[kind.Extension]; ok {
		return f
	}

	return FormatOther
}

// IsImage tests if the file contains a decodable image.
func (f FileFormat) IsImage() bool {
	switch f {
	case FormatJpeg, FormatPng, FormatGif, FormatBitmap, FormatTiff, FormatWebP:
		return true
	}

	return false
}
