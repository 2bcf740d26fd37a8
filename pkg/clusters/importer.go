package clusters

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CsvImporter reads observations from a comma separated file. Lines that
// start with '#' are skipped, as is a header line whose fields are not numeric.
type CsvImporter struct {
	Comma rune
}

// CsvImport returns an importer for comma separated files.
func CsvImport() Importer {
	return &CsvImporter{Comma: ','}
}

// Import reads columns start through end of every record.
func (i *CsvImporter) Import(file string, start, end int) ([][]float64, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("clusters: invalid column span %d..%d", start, end)
	}

	f, err := os.Open(file)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	return i.Read(f, start, end)
}

// Read parses observations from r, see Import.
func (i *CsvImporter) Read(r io.Reader, start, end int) ([][]float64, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	if i.Comma != 0 {
		reader.Comma = i.Comma
	}

	var data [][]float64

	for line := 1; ; line++ {
		record, err := reader.Read()

		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if end >= len(record) {
			return nil, fmt.Errorf("clusters: line %d has %d columns, need %d", line, len(record), end+1)
		}

		row := make([]float64, 0, end-start+1)

		for _, field := range record[start : end+1] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)

			if err != nil {
				break
			}

			row = append(row, v)
		}

		if len(row) != end-start+1 {
			if line == 1 {
				// Header.
				continue
			}

			return nil, fmt.Errorf("clusters: line %d is not numeric", line)
		}

		data = append(data, row)
	}

	return data, nil
}
