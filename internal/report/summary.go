package report

import (
	"github.com/montanaflynn/stats"
)

// Summarize returns descriptive statistics of values.
func Summarize(values []float64) (s Summary, err error) {
	data := stats.Float64Data(values)
	s.Count = data.Len()

	if s.Count == 0 {
		return s, nil
	}

	if s.Min, err = data.Min(); err != nil {
		return s, err
	}

	if s.Max, err = data.Max(); err != nil {
		return s, err
	}

	if s.Mean, err = data.Mean(); err != nil {
		return s, err
	}

	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return s, err
	}

	return s, nil
}

// SummarizeInts returns descriptive statistics of integer values such as
// cluster sizes.
func SummarizeInts(values []int) (Summary, error) {
	return Summarize(stats.LoadRawData(values))
}
