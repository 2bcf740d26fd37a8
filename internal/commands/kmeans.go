package commands

import (
	"time"

	"github.com/urfave/cli"

	"github.com/carck/unsupervised/internal/dataset"
	"github.com/carck/unsupervised/internal/learn"
)

// KMeansCommand registers the kmeans cli command.
var KMeansCommand = cli.Command{
	Name:      "kmeans",
	Usage:     "Partitions observations into k clusters with Lloyd's algorithm",
	ArgsUsage: "[data.csv|data.json]",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "k",
			Usage: "number of `CLUSTERS`",
			Value: 2,
		},
		cli.IntFlag{
			Name:  "steps",
			Usage: "number of assignment and update `ROUNDS`, the upper limit if --tol is set",
			Value: 100,
		},
		cli.Float64Flag{
			Name:  "tol",
			Usage: "stop once no center moves further than `DISTANCE`, negative runs exactly --steps rounds",
			Value: 1e-9,
		},
		columnsStartFlag,
		columnsEndFlag,
		jsonPathFlag,
		normalizeFlag,
	},
	Action: kmeansAction,
}

var (
	columnsStartFlag = cli.IntFlag{
		Name:  "start",
		Usage: "first CSV `COLUMN` to import",
	}
	columnsEndFlag = cli.IntFlag{
		Name:  "end",
		Usage: "last CSV `COLUMN` to import, negative for --start only",
		Value: -1,
	}
	jsonPathFlag = cli.StringFlag{
		Name:  "path",
		Usage: "JSON `PATH` of the observation array",
	}
	normalizeFlag = cli.BoolFlag{
		Name:  "normalize",
		Usage: "scale observations to unit length",
	}
)

func datasetOptions(ctx *cli.Context) dataset.Options {
	return dataset.Options{
		Start:     ctx.Int("start"),
		End:       ctx.Int("end"),
		Path:      ctx.String("path"),
		Normalize: ctx.Bool("normalize"),
	}
}

// kmeansAction clusters a data file and saves the labels and centers.
func kmeansAction(ctx *cli.Context) error {
	start := time.Now()

	conf, err := initConfig(ctx)

	if err != nil {
		return err
	}

	fileName, err := firstArg(ctx, "data file")

	if err != nil {
		return err
	}

	opt := learn.KMeansOptions{
		File:      fileName,
		Dataset:   datasetOptions(ctx),
		K:         ctx.Int("k"),
		Steps:     ctx.Int("steps"),
		Tolerance: ctx.Float64("tol"),
	}

	result, err := learn.KMeans(conf, opt)

	if err != nil {
		return err
	}

	return writeResult(conf, "kmeans", result, start)
}
