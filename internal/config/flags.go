package config

import (
	"github.com/urfave/cli"

	"github.com/carck/unsupervised/pkg/wavelet"
)

// GlobalFlags describes global command-line parameters and flags.
var GlobalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:   "debug",
		Usage:  "enable debug mode, show additional log messages",
		EnvVar: "UNSUPERVISED_DEBUG",
	},
	cli.BoolFlag{
		Name:   "trace",
		Usage:  "enable trace mode, show all log messages",
		EnvVar: "UNSUPERVISED_TRACE",
	},
	cli.StringFlag{
		Name:   "config-file, c",
		Usage:  "load config options from `FILENAME`",
		EnvVar: "UNSUPERVISED_CONFIG_FILE",
	},
	cli.StringFlag{
		Name:   "output-path, o",
		Usage:  "result files `PATH`",
		Value:  "results",
		EnvVar: "UNSUPERVISED_OUTPUT_PATH",
	},
	cli.Int64Flag{
		Name:   "seed",
		Usage:  "random `SEED` for center initialization",
		Value:  1,
		EnvVar: "UNSUPERVISED_SEED",
	},
	cli.IntFlag{
		Name:   "bound",
		Usage:  "upper `LIMIT` of rescaled wavelet bands",
		Value:  wavelet.DefaultBound,
		EnvVar: "UNSUPERVISED_BOUND",
	},
	cli.IntFlag{
		Name:   "side",
		Usage:  "image grid side length in `PIXELS`, must be even",
		Value:  64,
		EnvVar: "UNSUPERVISED_SIDE",
	},
	cli.StringFlag{
		Name:   "resample",
		Usage:  "squaring method for non-square images (resize, center)",
		Value:  "resize",
		EnvVar: "UNSUPERVISED_RESAMPLE",
	},
	cli.StringFlag{
		Name:   "init",
		Usage:  "k-means center initialization (random, kmeans++)",
		Value:  "kmeans++",
		EnvVar: "UNSUPERVISED_INIT",
	},
	cli.StringFlag{
		Name:   "empty",
		Usage:  "empty cluster policy (fail, keep)",
		Value:  "fail",
		EnvVar: "UNSUPERVISED_EMPTY",
	},
}
