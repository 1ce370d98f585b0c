package schema

// Activity level labels.
const (
	HighValue     = "High"
	ModerateValue = "Moderate"
	LowValue      = "Low"
	NoneValue     = "None"
)

// Intensity is count as a percentage of peak, with peak floored at 1.
func Intensity(count, peak int) float64 {
	peak = max(peak, 1)
	return float64(count) / float64(peak) * 100
}

// GetPlainLabel returns a plain text label for how busy a day was
// relative to the busiest day of the window.
func GetPlainLabel(count, peak int) string {
	if count <= 0 {
		return NoneValue
	}
	switch v := Intensity(count, peak); {
	case v >= 75:
		return HighValue
	case v >= 40:
		return ModerateValue
	default:
		return LowValue
	}
}

// EnrichedDay adds presentation data to a DatedCount.
type EnrichedDay struct {
	Label     string  `json:"label" yaml:"label"`
	Intensity float64 `json:"intensity" yaml:"intensity"`
	DatedCount `yaml:",inline"`
}

// EnrichDaily labels every day of a series against the series peak.
func EnrichDaily(series TimeSeries) []EnrichedDay {
	peak := series.Max()
	output := make([]EnrichedDay, len(series))
	for i, d := range series {
		output[i] = EnrichedDay{
			Label:      GetPlainLabel(d.Count, peak),
			Intensity:  Intensity(d.Count, peak),
			DatedCount: d,
		}
	}
	return output
}
