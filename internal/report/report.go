/*
Package report builds and writes the result files of the command line tools.
*/
package report

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Summary represents descriptive statistics of a list of values.
type Summary struct {
	Count  int     `yaml:"Count"`
	Min    float64 `yaml:"Min"`
	Max    float64 `yaml:"Max"`
	Mean   float64 `yaml:"Mean"`
	StdDev float64 `yaml:"StdDev"`
}

// Write saves a result as YAML, creating the parent directory if needed.
func Write(fileName string, result interface{}) error {
	data, err := yaml.Marshal(result)

	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return err
	}

	return os.WriteFile(fileName, data, 0o644)
}
