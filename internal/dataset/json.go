package dataset

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/tidwall/gjson"
)

// JSONFile reads observations from a JSON file, see JSON.
func JSONFile(fileName, path string) ([][]float64, error) {
	data, err := os.ReadFile(fileName)

	if err != nil {
		return nil, err
	}

	return JSON(data, path)
}

// JSON parses an array of observations located at the gjson path, or at the
// document root if path is empty. Each observation is either a number or an
// array of numbers.
func JSON(jsonData []byte, path string) (result [][]float64, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("dataset: %s (json panic)\nstack: %s", e, debug.Stack())
		}
	}()

	if !gjson.ValidBytes(jsonData) {
		return nil, fmt.Errorf("dataset: invalid json")
	}

	var list gjson.Result

	if path == "" {
		list = gjson.ParseBytes(jsonData)
	} else {
		list = gjson.GetBytes(jsonData, path)
	}

	if !list.IsArray() {
		log.Warnf("dataset: no array at %q", path)
		return nil, fmt.Errorf("dataset: no observation array at %q", path)
	}

	for i, item := range list.Array() {
		switch {
		case item.Type == gjson.Number:
			result = append(result, []float64{item.Float()})
		case item.IsArray():
			values := item.Array()
			row := make([]float64, len(values))

			for j, v := range values {
				if v.Type != gjson.Number {
					return nil, fmt.Errorf("dataset: observation %d has non-numeric value %s", i, v.Raw)
				}

				row[j] = v.Float()
			}

			result = append(result, row)
		default:
			return nil, fmt.Errorf("dataset: observation %d is not numeric", i)
		}
	}

	return result, nil
}
