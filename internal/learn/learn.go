/*
Package learn contains the workers behind the command line tools: they load
a dataset, run a clustering or feature extraction routine and build the
result report.
*/
package learn

import (
	"path/filepath"

	"github.com/carck/unsupervised/internal/event"
	"github.com/carck/unsupervised/internal/report"
	"github.com/carck/unsupervised/pkg/fs"
)

var log = event.Log

// source returns the report entry for an input file.
func source(fileName string) report.Source {
	s := report.Source{File: fileName}

	if sum, err := fs.Checksum(fileName); err != nil {
		log.Debugf("learn: %s in %s (checksum)", err, filepath.Base(fileName))
	} else {
		s.Checksum = sum
	}

	return s
}
