/*
Unsupervised clusters numeric datasets with k-means or agglomerative
clustering and extracts Haar wavelet edge features from images.

	unsupervised kmeans --k 3 points.csv
	unsupervised hierarchy --linkage ward --k 3 points.csv
	unsupervised --side 64 features ./images
*/
package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/carck/unsupervised/internal/commands"
	"github.com/carck/unsupervised/internal/config"
	"github.com/carck/unsupervised/internal/event"
)

var version = "development"
var log = event.Log

func main() {
	app := cli.NewApp()
	app.Name = "unsupervised"
	app.Usage = "k-means, hierarchical clustering and wavelet features"
	app.Version = version
	app.EnableBashCompletion = true
	app.Flags = config.GlobalFlags
	app.Commands = commands.Commands

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
