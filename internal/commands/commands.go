/*
Package commands contains the command-line commands of the unsupervised tool.
*/
package commands

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/carck/unsupervised/internal/config"
	"github.com/carck/unsupervised/internal/event"
	"github.com/carck/unsupervised/internal/report"
)

var log = event.Log

// Commands lists all commands in the order shown by help.
var Commands = []cli.Command{
	KMeansCommand,
	HierarchyCommand,
	FeaturesCommand,
}

// initConfig creates and initialises the config for a command run.
func initConfig(ctx *cli.Context) (*config.Config, error) {
	conf := config.NewConfig(ctx)

	if err := conf.Init(); err != nil {
		return conf, err
	}

	return conf, nil
}

// firstArg returns the first argument or an error naming what is missing.
func firstArg(ctx *cli.Context, what string) (string, error) {
	if arg := ctx.Args().First(); arg != "" {
		return arg, nil
	}

	return "", fmt.Errorf("%s missing, see --help", what)
}

// writeResult saves a result file and logs where it went.
func writeResult(conf *config.Config, name string, result interface{}, start time.Time) error {
	fileName := conf.ResultFile(name)

	if err := report.Write(fileName, result); err != nil {
		return err
	}

	log.Infof("%s: saved %s [%s]", name, fileName, time.Since(start))

	return nil
}
