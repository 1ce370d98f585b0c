package algo

import (
	"errors"
	"fmt"

	"github.com/huangsam/cardstats/schema"
)

// ErrInvalidWindow is returned for a rolling window below 1.
var ErrInvalidWindow = errors.New("rolling window must be at least 1")

// RollingAverage returns a series of the same length where index i is the
// mean of the last windowSize values up to and including i. Early indexes
// average over the values available so far instead of padding with zeros.
func RollingAverage(series []float64, windowSize int) ([]float64, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("%w (received %d)", ErrInvalidWindow, windowSize)
	}
	out := make([]float64, len(series))
	for i := range series {
		lo := max(0, i-windowSize+1)
		out[i] = Mean(series[lo : i+1])
	}
	return out, nil
}

// Total returns the sum of the series.
func Total(series []float64) float64 {
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean, or 0 for an empty series.
// It divides by the series length, so quiet days pull the mean down.
func Mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	return Total(series) / float64(len(series))
}

// Extremum finds the max and min of a series with the index of their first occurrence.
func Extremum(series []float64) schema.Extrema {
	if len(series) == 0 {
		return schema.Extrema{MaxIndex: -1, MinIndex: -1}
	}
	e := schema.Extrema{Max: series[0], Min: series[0]}
	for i, v := range series[1:] {
		if v > e.Max {
			e.Max, e.MaxIndex = v, i+1
		}
		if v < e.Min {
			e.Min, e.MinIndex = v, i+1
		}
	}
	return e
}

// Summarize bundles total, mean and extrema of a series.
func Summarize(series []float64) schema.SeriesSummary {
	return schema.SeriesSummary{
		Total:   Total(series),
		Mean:    Mean(series),
		Extrema: Extremum(series),
	}
}
