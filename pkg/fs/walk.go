package fs

import (
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
)

// Images returns the image files below root in lexical order. Hidden files
// and directories are skipped.
func Images(root string) (result []string, err error) {
	err = godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(fileName string, info *godirwalk.Dirent) error {
			if fileName != root && strings.HasPrefix(filepath.Base(fileName), ".") {
				if info.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if !info.IsRegular() {
				return nil
			}

			if GetFileFormat(fileName).IsImage() {
				result = append(result, fileName)
			}

			return nil
		},
		Unsorted:            false,
		FollowSymbolicLinks: false,
	})

	return result, err
}
