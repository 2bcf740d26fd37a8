/*
Package config provides global options, command-line flags, and the
configuration entity shared by all commands.
*/
package config

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/carck/unsupervised/internal/event"
	"github.com/carck/unsupervised/internal/thumb"
	"github.com/carck/unsupervised/pkg/clusters"
)

var log = event.Log

// Config holds the configuration of a command run.
type Config struct {
	options *Options
}

// NewConfig initialises a new configuration from the command-line context.
func NewConfig(ctx *cli.Context) *Config {
	return &Config{options: NewOptions(ctx)}
}

// NewTestConfig returns a configuration with the given options.
func NewTestConfig(opt *Options) *Config {
	return &Config{options: opt}
}

// Options returns the raw config options.
func (c *Config) Options() *Options {
	return c.options
}

// Init sets the log level, validates options and creates the output path.
func (c *Config) Init() error {
	c.SetLogLevel()

	if c.ConfigFile() != "" {
		log.Debugf("config: loaded %s", c.ConfigFile())
	}

	if _, err := c.InitFunc(); err != nil {
		return err
	}

	if _, err := thumb.ParseResample(c.options.Resample); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if side := c.Side(); side < 2 || side%2 != 0 {
		return fmt.Errorf("config: side must be even and at least 2, got %d", side)
	}

	if c.Bound() < 1 {
		return fmt.Errorf("config: bound must be at least 1, got %d", c.Bound())
	}

	return os.MkdirAll(c.OutputPath(), 0o755)
}

// SetLogLevel applies the debug and trace flags to the logger.
func (c *Config) SetLogLevel() {
	switch {
	case c.Trace():
		log.SetLevel(logrus.TraceLevel)
	case c.Debug():
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// Debug tests if debug mode is enabled.
func (c *Config) Debug() bool {
	return c.options.Debug || c.options.Trace
}

// Trace tests if trace mode is enabled.
func (c *Config) Trace() bool {
	return c.options.Trace
}

// ConfigFile returns the name of the loaded options file, if any.
func (c *Config) ConfigFile() string {
	return c.options.ConfigFile
}

// OutputPath returns the directory for result files.
func (c *Config) OutputPath() string {
	if c.options.OutputPath == "" {
		return "results"
	}

	return filepath.Clean(c.options.OutputPath)
}

// ResultFile returns the full path of a result file with the given base name.
func (c *Config) ResultFile(name string) string {
	return filepath.Join(c.OutputPath(), name+".yml")
}

// Seed returns the random seed for center initialization.
func (c *Config) Seed() int64 {
	return c.options.Seed
}

// Rand returns a new generator seeded with Seed. Every call starts the same
// sequence.
func (c *Config) Rand() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed()))
}

// Bound returns the upper limit of rescaled wavelet bands.
func (c *Config) Bound() int {
	return c.options.Bound
}

// Side returns the side length images are resampled to.
func (c *Config) Side() int {
	return c.options.Side
}

// Resample returns the squaring method for non-square images.
func (c *Config) Resample() thumb.ResampleOption {
	opt, _ := thumb.ParseResample(c.options.Resample)
	return opt
}

// InitName returns the name of the center initialization method.
func (c *Config) InitName() string {
	if c.options.Init == "" {
		return "kmeans++"
	}

	return strings.ToLower(c.options.Init)
}

// InitFunc returns the center initialization function.
func (c *Config) InitFunc() (clusters.InitFunc, error) {
	if f, ok := clusters.Initializers[c.InitName()]; ok {
		return f, nil
	}

	return nil, fmt.Errorf("config: unknown init method %q", c.options.Init)
}

// EmptyPolicy returns how empty clusters are handled.
func (c *Config) EmptyPolicy() clusters.EmptyPolicy {
	return clusters.ParseEmptyPolicy(strings.ToLower(c.options.Empty))
}
