package commands

import (
	"time"

	"github.com/urfave/cli"

	"github.com/carck/unsupervised/internal/learn"
)

// FeaturesCommand registers the features cli command.
var FeaturesCommand = cli.Command{
	Name:      "features",
	Usage:     "Extracts Haar wavelet edge features from a folder of images",
	ArgsUsage: "[path]",
	Action:    featuresAction,
}

// featuresAction saves the feature vectors of all images below a path.
func featuresAction(ctx *cli.Context) error {
	start := time.Now()

	conf, err := initConfig(ctx)

	if err != nil {
		return err
	}

	path, err := firstArg(ctx, "image path")

	if err != nil {
		return err
	}

	result, err := learn.Features(conf, learn.FeaturesOptions{Path: path})

	if err != nil {
		return err
	}

	return writeResult(conf, "features", result, start)
}
