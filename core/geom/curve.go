package geom

import (
	"errors"
	"fmt"
	"slices"

	"github.com/huangsam/cardstats/schema"
)

var (
	// ErrSeriesTooShort is returned when a curve is requested for fewer than two points.
	ErrSeriesTooShort = errors.New("curve needs at least 2 points")

	// ErrInvalidCanvas is returned for non-positive dimensions or an out of range pad.
	ErrInvalidCanvas = errors.New("invalid canvas")

	// ErrUnknownSmoothing is returned for a smoothing method that is not supported.
	ErrUnknownSmoothing = errors.New("unknown smoothing method")
)

// DefaultCurveConfig is the contribution chart of an 800x220 card.
func DefaultCurveConfig() schema.CurveConfig {
	return schema.CurveConfig{
		Width:   700,
		Height:  120,
		OffsetX: 50,
		OffsetY: 50,
		Method:  schema.SimpleSmoothing,
	}
}

// ValidateCurveConfig checks the plot dimensions and smoothing method.
func ValidateCurveConfig(cfg schema.CurveConfig) error {
	if err := validateCanvas(cfg.Width, cfg.Height, cfg.TopPad); err != nil {
		return err
	}
	if _, ok := schema.ValidSmoothingMethods[cfg.Method]; !ok && cfg.Method != "" {
		return fmt.Errorf("%w '%s'. must be simple, catmull-rom", ErrUnknownSmoothing, cfg.Method)
	}
	return nil
}

func validateCanvas(width, height, topPad float64) error {
	if !(width > 0) || !(height > 0) {
		return fmt.Errorf("%w: width and height must be positive (received %gx%g)", ErrInvalidCanvas, width, height)
	}
	if !(topPad >= 0) || topPad >= height {
		return fmt.Errorf("%w: top pad must be in [0, %g) (received %g)", ErrInvalidCanvas, height, topPad)
	}
	return nil
}

// MapToCoordinates spreads the series evenly across width and scales values
// into the plot height below topPad. The largest value is floored at 1 so an
// all-zero series lies on the baseline.
func MapToCoordinates(series []float64, width, height, topPad float64) ([]schema.Point, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("%w (received %d)", ErrSeriesTooShort, len(series))
	}
	if err := validateCanvas(width, height, topPad); err != nil {
		return nil, err
	}

	effectiveMax := max(slices.Max(series), 1)
	plotH := height - topPad
	last := float64(len(series) - 1)

	coords := make([]schema.Point, len(series))
	for i, v := range series {
		coords[i] = schema.Point{
			X: float64(i) / last * width,
			Y: plotH - v/effectiveMax*plotH,
		}
	}
	return coords, nil
}

// Translate returns a copy of coords shifted by dx and dy.
func Translate(coords []schema.Point, dx, dy float64) []schema.Point {
	out := make([]schema.Point, len(coords))
	for i, p := range coords {
		out[i] = schema.Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// BuildSimpleSmoothPath joins consecutive points with cubic segments whose
// control points sit at one and two thirds of the horizontal span, each at
// the height of its nearest endpoint.
func BuildSimpleSmoothPath(coords []schema.Point) (string, error) {
	if len(coords) < 2 {
		return "", fmt.Errorf("%w (received %d)", ErrSeriesTooShort, len(coords))
	}
	var w pathWriter
	w.moveTo(coords[0])
	for i := 1; i < len(coords); i++ {
		prev, cur := coords[i-1], coords[i]
		dx := cur.X - prev.X
		w.cubicTo(
			schema.Point{X: prev.X + dx/3, Y: prev.Y},
			schema.Point{X: prev.X + 2*dx/3, Y: cur.Y},
			cur,
		)
	}
	return w.String(), nil
}

// BuildCatmullRomPath converts a uniform Catmull-Rom spline through coords into
// cubic segments. Neighbours past either end reuse the end point.
func BuildCatmullRomPath(coords []schema.Point) (string, error) {
	if len(coords) < 2 {
		return "", fmt.Errorf("%w (received %d)", ErrSeriesTooShort, len(coords))
	}
	n := len(coords)
	var w pathWriter
	w.moveTo(coords[0])
	for i := 0; i < n-1; i++ {
		p0 := coords[max(i-1, 0)]
		p1 := coords[i]
		p2 := coords[i+1]
		p3 := coords[min(i+2, n-1)]
		w.cubicTo(
			schema.Point{X: p1.X + (p2.X-p0.X)/6, Y: p1.Y + (p2.Y-p0.Y)/6},
			schema.Point{X: p2.X - (p3.X-p1.X)/6, Y: p2.Y - (p3.Y-p1.Y)/6},
			p2,
		)
	}
	return w.String(), nil
}

// BuildAreaPath closes linePath into a filled region by dropping to baselineY
// under the last point, running back under the first point and closing.
func BuildAreaPath(linePath string, coords []schema.Point, baselineY float64) (string, error) {
	if linePath == "" || len(coords) < 2 {
		return "", fmt.Errorf("%w (received %d)", ErrSeriesTooShort, len(coords))
	}
	var w pathWriter
	w.b.WriteString(linePath)
	w.lineTo(schema.Point{X: coords[len(coords)-1].X, Y: baselineY})
	w.lineTo(schema.Point{X: coords[0].X, Y: baselineY})
	w.close()
	return w.String(), nil
}

// SmoothPath dispatches to the builder for method. An empty method is simple.
func SmoothPath(coords []schema.Point, method schema.SmoothingMethod) (string, error) {
	switch method {
	case schema.SimpleSmoothing, "":
		return BuildSimpleSmoothPath(coords)
	case schema.CatmullRomSmoothing:
		return BuildCatmullRomPath(coords)
	default:
		return "", fmt.Errorf("%w '%s'", ErrUnknownSmoothing, method)
	}
}

// BuildCurve maps a series into the plot area described by cfg and returns
// the translated coordinates with their line and area descriptors.
func BuildCurve(series []float64, cfg schema.CurveConfig) (schema.CurvePath, error) {
	if err := ValidateCurveConfig(cfg); err != nil {
		return schema.CurvePath{}, err
	}
	local, err := MapToCoordinates(series, cfg.Width, cfg.Height, cfg.TopPad)
	if err != nil {
		return schema.CurvePath{}, err
	}
	coords := Translate(local, cfg.OffsetX, cfg.OffsetY)

	line, err := SmoothPath(coords, cfg.Method)
	if err != nil {
		return schema.CurvePath{}, err
	}
	area, err := BuildAreaPath(line, coords, Baseline(cfg))
	if err != nil {
		return schema.CurvePath{}, err
	}
	return schema.CurvePath{Coordinates: coords, LinePath: line, AreaPath: area}, nil
}

// Baseline is the y of a zero value inside the card.
func Baseline(cfg schema.CurveConfig) float64 {
	return cfg.OffsetY + cfg.Height - cfg.TopPad
}

// GridLines returns the y of a horizontal guide for each fraction of the plot
// height, where 0 is the baseline and 1 is the top of the plot.
func GridLines(cfg schema.CurveConfig, fractions []float64) []float64 {
	plotH := cfg.Height - cfg.TopPad
	out := make([]float64, len(fractions))
	for i, f := range fractions {
		out[i] = cfg.OffsetY + plotH*(1-f)
	}
	return out
}

// Markers picks every nth coordinate starting with the first.
func Markers(coords []schema.Point, every int) []schema.Point {
	if every < 1 {
		return nil
	}
	var out []schema.Point
	for i := 0; i < len(coords); i += every {
		out = append(out, coords[i])
	}
	return out
}
