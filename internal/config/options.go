package config

import (
	"fmt"
	"os"
	"reflect"

	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

// Options holds the global configuration values, see GlobalFlags.
type Options struct {
	Debug      bool   `yaml:"Debug" json:"Debug" flag:"debug"`
	Trace      bool   `yaml:"Trace" json:"Trace" flag:"trace"`
	ConfigFile string `yaml:"-" json:"-" flag:"config-file"`
	OutputPath string `yaml:"OutputPath" json:"-" flag:"output-path"`
	Seed       int64  `yaml:"Seed" json:"Seed" flag:"seed"`
	Bound      int    `yaml:"Bound" json:"Bound" flag:"bound"`
	Side       int    `yaml:"Side" json:"Side" flag:"side"`
	Resample   string `yaml:"Resample" json:"Resample" flag:"resample"`
	Init       string `yaml:"Init" json:"Init" flag:"init"`
	Empty      string `yaml:"Empty" json:"Empty" flag:"empty"`
}

// NewOptions creates a new configuration entity by using two methods:
//
// 1. Load: This will initialize options from a yaml config file.
//
// 2. SetContext: Which comes after Load and overrides
// any previous options giving an option two override file configs through the CLI.
func NewOptions(ctx *cli.Context) *Options {
	c := &Options{}

	if ctx == nil {
		return c
	}

	if err := c.Load(ctx.GlobalString("config-file")); err != nil {
		log.Debug(err)
	}

	if err := c.SetContext(ctx); err != nil {
		log.Error(err)
	}

	return c
}

// Load uses a yaml config file to initiate the configuration entity.
func (c *Options) Load(fileName string) error {
	if fileName == "" {
		return nil
	}

	if _, err := os.Stat(fileName); err != nil {
		return fmt.Errorf("config: %s not found", fileName)
	}

	yamlConfig, err := os.ReadFile(fileName)

	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(yamlConfig, c); err != nil {
		return err
	}

	c.ConfigFile = fileName

	return nil
}

// SetContext uses options from the CLI to setup configuration overrides
// for the entity. Flags are applied if they were set explicitly or if the
// option still has its zero value.
func (c *Options) SetContext(ctx *cli.Context) error {
	v := reflect.ValueOf(c).Elem()

	// Iterate through all config fields.
	for i := 0; i < v.NumField(); i++ {
		fieldValue := v.Field(i)

		tagValue := v.Type().Field(i).Tag.Get("flag")

		// Automatically assign options to fields with "flag" tag.
		if tagValue == "" {
			continue
		}

		if !ctx.GlobalIsSet(tagValue) && !fieldValue.IsZero() {
			continue
		}

		switch t := fieldValue.Interface().(type) {
		case int, int64:
			fieldValue.SetInt(ctx.GlobalInt64(tagValue))
		case string:
			fieldValue.SetString(ctx.GlobalString(tagValue))
		case bool:
			fieldValue.SetBool(ctx.GlobalBool(tagValue))
		default:
			return fmt.Errorf("config: unsupported field type %T", t)
		}
	}

	return nil
}
