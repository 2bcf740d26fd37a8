package commands

import (
	"time"

	"github.com/urfave/cli"

	"github.com/carck/unsupervised/internal/learn"
	"github.com/carck/unsupervised/pkg/clusters"
)

// HierarchyCommand registers the hierarchy cli command.
var HierarchyCommand = cli.Command{
	Name:      "hierarchy",
	Usage:     "Builds a dendrogram by agglomerative clustering",
	ArgsUsage: "[data.csv|data.json]",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "linkage",
			Usage: "cluster distance `METHOD` (single, complete, average, ward)",
			Value: "single",
		},
		cli.IntFlag{
			Name:  "k",
			Usage: "cut the dendrogram into `CLUSTERS`, 0 to skip",
		},
		columnsStartFlag,
		columnsEndFlag,
		jsonPathFlag,
		normalizeFlag,
	},
	Action: hierarchyAction,
}

// hierarchyAction saves the merge history of a data file.
func hierarchyAction(ctx *cli.Context) error {
	start := time.Now()

	conf, err := initConfig(ctx)

	if err != nil {
		return err
	}

	fileName, err := firstArg(ctx, "data file")

	if err != nil {
		return err
	}

	linkage, err := clusters.ParseLinkage(ctx.String("linkage"))

	if err != nil {
		return err
	}

	result, err := learn.Hierarchy(conf, learn.HierarchyOptions{
		File:    fileName,
		Dataset: datasetOptions(ctx),
		Linkage: linkage,
		K:       ctx.Int("k"),
	})

	if err != nil {
		return err
	}

	return writeResult(conf, "hierarchy", result, start)
}
