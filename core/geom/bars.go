package geom

import "github.com/huangsam/cardstats/schema"

// DefaultBarConfig is the two week mini chart of the streak card.
func DefaultBarConfig() schema.BarConfig {
	return schema.BarConfig{
		Count:     14,
		StartX:    24,
		BarWidth:  16,
		BarGap:    4,
		Height:    60,
		MinHeight: 2,
	}
}

// BuildBars draws the last cfg.Count days as bars scaled against the peak of
// the whole series, floored at 1. Quiet days keep a sliver of MinHeight.
// A non-positive Count draws every day.
func BuildBars(counts []int, cfg schema.BarConfig) []schema.Bar {
	peak := 1
	for _, c := range counts {
		peak = max(peak, c)
	}
	tail := counts
	if cfg.Count > 0 && len(counts) > cfg.Count {
		tail = counts[len(counts)-cfg.Count:]
	}

	bars := make([]schema.Bar, len(tail))
	for i, v := range tail {
		ratio := float64(max(v, 0)) / float64(peak)
		h := ratio * cfg.Height
		bar := schema.Bar{
			X:       cfg.StartX + float64(i)*(cfg.BarWidth+cfg.BarGap),
			Y:       cfg.Height - h,
			Width:   cfg.BarWidth,
			Height:  max(h, cfg.MinHeight),
			Opacity: 1,
			Active:  v > 0,
		}
		if bar.Active {
			bar.Opacity = 0.4 + 0.6*ratio
		}
		bars[i] = bar
	}
	return bars
}
