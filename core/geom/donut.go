package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/huangsam/cardstats/schema"
)

var (
	// ErrInvalidDonut is returned for bad radii or gap.
	ErrInvalidDonut = errors.New("invalid donut geometry")

	// ErrNegativeCount is returned when a donut input has a negative count.
	ErrNegativeCount = errors.New("donut count must not be negative")
)

// DefaultDonutConfig is the time distribution ring of a 160px square chart.
func DefaultDonutConfig() schema.DonutConfig {
	return schema.DonutConfig{
		CenterX:     80,
		CenterY:     80,
		OuterRadius: 68,
		InnerRadius: 42,
		GapDegrees:  2,
	}
}

// ValidateDonutConfig checks radii and gap.
func ValidateDonutConfig(cfg schema.DonutConfig) error {
	if !(cfg.OuterRadius > 0) {
		return fmt.Errorf("%w: outer radius must be positive (received %g)", ErrInvalidDonut, cfg.OuterRadius)
	}
	if !(cfg.InnerRadius >= 0) || cfg.InnerRadius >= cfg.OuterRadius {
		return fmt.Errorf("%w: inner radius must be in [0, %g) (received %g)", ErrInvalidDonut, cfg.OuterRadius, cfg.InnerRadius)
	}
	if !(cfg.GapDegrees >= 0) || cfg.GapDegrees >= 360 {
		return fmt.Errorf("%w: gap must be in [0, 360) degrees (received %g)", ErrInvalidDonut, cfg.GapDegrees)
	}
	return nil
}

// BuildDonut lays the inputs out clockwise from 12 o'clock, in input order.
// A total of zero is treated as one, so every percent is then zero.
// Segments whose span does not exceed the gap get an empty path.
func BuildDonut(inputs []schema.DonutInput, cfg schema.DonutConfig) ([]schema.DonutSegment, error) {
	if err := ValidateDonutConfig(cfg); err != nil {
		return nil, err
	}
	total := 0
	for _, in := range inputs {
		if in.Count < 0 {
			return nil, fmt.Errorf("%w: '%s' (received %d)", ErrNegativeCount, in.Label, in.Count)
		}
		total += in.Count
	}
	denom := float64(max(total, 1))

	segments := make([]schema.DonutSegment, len(inputs))
	angle := 0.0
	for i, in := range inputs {
		pct := float64(in.Count) / denom
		start, end := angle, angle+pct*360
		angle = end
		segments[i] = schema.DonutSegment{
			Label:      in.Label,
			Color:      in.Color,
			Count:      in.Count,
			Percent:    pct,
			StartAngle: start,
			EndAngle:   end,
			Path:       wedgePath(cfg, start, end),
		}
	}
	return segments, nil
}

// polar returns the point at deg degrees clockwise from 12 o'clock.
func polar(cx, cy, r, deg float64) schema.Point {
	rad := (deg - 90) * math.Pi / 180
	return schema.Point{X: cx + r*math.Cos(rad), Y: cy + r*math.Sin(rad)}
}

// wedgePath draws the annulus wedge between start and end after insetting
// each side by half the gap. The large-arc flag follows the uninset span, so a
// span in (180, 180+gap] is drawn with the flag set over an inset chord of at
// most 180 degrees.
func wedgePath(cfg schema.DonutConfig, start, end float64) string {
	sa := start + cfg.GapDegrees/2
	ea := end - cfg.GapDegrees/2
	if ea <= sa {
		return ""
	}
	if ea-sa >= 360 {
		return ringPath(cfg, sa)
	}

	cx, cy := cfg.CenterX, cfg.CenterY
	R, r := cfg.OuterRadius, cfg.InnerRadius
	large := end-start > 180

	var w pathWriter
	w.moveTo(polar(cx, cy, R, sa))
	w.arcTo(R, large, true, polar(cx, cy, R, ea))
	w.lineTo(polar(cx, cy, r, ea))
	w.arcTo(r, large, false, polar(cx, cy, r, sa))
	w.close()
	return w.String()
}

// ringPath draws a full revolution as two half arcs per radius, since a
// single arc whose end equals its start renders nothing.
func ringPath(cfg schema.DonutConfig, sa float64) string {
	cx, cy := cfg.CenterX, cfg.CenterY
	R, r := cfg.OuterRadius, cfg.InnerRadius

	var w pathWriter
	w.moveTo(polar(cx, cy, R, sa))
	w.arcTo(R, false, true, polar(cx, cy, R, sa+180))
	w.arcTo(R, false, true, polar(cx, cy, R, sa))
	w.lineTo(polar(cx, cy, r, sa))
	w.arcTo(r, false, false, polar(cx, cy, r, sa+180))
	w.arcTo(r, false, false, polar(cx, cy, r, sa))
	w.close()
	return w.String()
}
