/*
Package event provides the shared application logger.

All internal packages log through Log so that a single level set by the
config package applies everywhere:

	var log = event.Log

	log.Infof("kmeans: %d observations", m)
*/
package event

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the global application logger.
var Log *logrus.Logger

func init() {
	Log = logrus.StandardLogger()
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.InfoLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableColors: false,
		FullTimestamp: true,
	})
}
