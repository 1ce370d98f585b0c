package geom

import (
	"math"
	"strings"
	"testing"

	"github.com/huangsam/cardstats/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var peakCoords = []schema.Point{{X: 0, Y: 10}, {X: 30, Y: 0}, {X: 60, Y: 10}}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{1, "1"},
		{2.5, "2.5"},
		{1.23456, "1.235"},
		{8.3333333, "8.333"},
		{-0.0001, "0"},
		{math.Copysign(0, -1), "0"},
		{-12.5, "-12.5"},
		{1e6, "1000000"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatNumber(tt.in))
		})
	}
}

func TestMapToCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		width    float64
		height   float64
		topPad   float64
		expected []schema.Point
	}{
		{
			name:   "scaled to max",
			series: []float64{0, 5, 10}, width: 100, height: 50,
			expected: []schema.Point{{X: 0, Y: 50}, {X: 50, Y: 25}, {X: 100, Y: 0}},
		},
		{
			name:   "top pad shrinks the plot",
			series: []float64{0, 5, 10}, width: 100, height: 50, topPad: 10,
			expected: []schema.Point{{X: 0, Y: 40}, {X: 50, Y: 20}, {X: 100, Y: 0}},
		},
		{
			name:   "max floors at one",
			series: []float64{0, 0.5}, width: 10, height: 20,
			expected: []schema.Point{{X: 0, Y: 20}, {X: 10, Y: 10}},
		},
		{
			name:   "all zero lies on the baseline",
			series: []float64{0, 0, 0, 0}, width: 30, height: 20,
			expected: []schema.Point{{X: 0, Y: 20}, {X: 10, Y: 20}, {X: 20, Y: 20}, {X: 30, Y: 20}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords, err := MapToCoordinates(tt.series, tt.width, tt.height, tt.topPad)
			require.NoError(t, err)
			require.Len(t, coords, len(tt.expected))
			for i, p := range coords {
				assert.InDelta(t, tt.expected[i].X, p.X, 1e-9)
				assert.InDelta(t, tt.expected[i].Y, p.Y, 1e-9)
				assert.False(t, math.IsNaN(p.Y))
			}
		})
	}
}

func TestMapToCoordinatesErrors(t *testing.T) {
	tests := []struct {
		name    string
		series  []float64
		width   float64
		height  float64
		topPad  float64
		wantErr error
	}{
		{"single point", []float64{3}, 10, 10, 0, ErrSeriesTooShort},
		{"empty", nil, 10, 10, 0, ErrSeriesTooShort},
		{"zero width", []float64{1, 2}, 0, 10, 0, ErrInvalidCanvas},
		{"negative height", []float64{1, 2}, 10, -1, 0, ErrInvalidCanvas},
		{"negative pad", []float64{1, 2}, 10, 10, -1, ErrInvalidCanvas},
		{"pad fills height", []float64{1, 2}, 10, 10, 10, ErrInvalidCanvas},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapToCoordinates(tt.series, tt.width, tt.height, tt.topPad)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildSimpleSmoothPath(t *testing.T) {
	path, err := BuildSimpleSmoothPath(peakCoords)
	require.NoError(t, err)
	assert.Equal(t, "M 0 10 C 10 10, 20 0, 30 0 C 40 0, 50 10, 60 10", path)

	_, err = BuildSimpleSmoothPath(peakCoords[:1])
	assert.ErrorIs(t, err, ErrSeriesTooShort)
}

func TestBuildCatmullRomPath(t *testing.T) {
	path, err := BuildCatmullRomPath(peakCoords)
	require.NoError(t, err)
	assert.Equal(t, "M 0 10 C 5 8.333, 20 0, 30 0 C 40 0, 55 8.333, 60 10", path)

	// Two points clamp both neighbours, so the controls sit on the chord.
	path, err = BuildCatmullRomPath([]schema.Point{{X: 0, Y: 0}, {X: 6, Y: 6}})
	require.NoError(t, err)
	assert.Equal(t, "M 0 0 C 1 1, 5 5, 6 6", path)

	_, err = BuildCatmullRomPath(nil)
	assert.ErrorIs(t, err, ErrSeriesTooShort)
}

func TestSmoothingMethodsDiffer(t *testing.T) {
	simple, err := SmoothPath(peakCoords, schema.SimpleSmoothing)
	require.NoError(t, err)
	catmull, err := SmoothPath(peakCoords, schema.CatmullRomSmoothing)
	require.NoError(t, err)
	assert.NotEqual(t, simple, catmull)

	fallback, err := SmoothPath(peakCoords, "")
	require.NoError(t, err)
	assert.Equal(t, simple, fallback)

	_, err = SmoothPath(peakCoords, "bspline")
	assert.ErrorIs(t, err, ErrUnknownSmoothing)
}

func TestBuildAreaPath(t *testing.T) {
	line, err := BuildSimpleSmoothPath(peakCoords)
	require.NoError(t, err)

	area, err := BuildAreaPath(line, peakCoords, 10)
	require.NoError(t, err)
	assert.Equal(t, line+" L 60 10 L 0 10 Z", area)

	_, err = BuildAreaPath("", peakCoords, 10)
	assert.Error(t, err)
}

func TestBuildCurve(t *testing.T) {
	curve, err := BuildCurve([]float64{0, 2, 4}, DefaultCurveConfig())
	require.NoError(t, err)

	assert.Equal(t, []schema.Point{{X: 50, Y: 170}, {X: 400, Y: 110}, {X: 750, Y: 50}}, curve.Coordinates)
	assert.Equal(t,
		"M 50 170 C 166.667 170, 283.333 110, 400 110 C 516.667 110, 633.333 50, 750 50",
		curve.LinePath)
	assert.Equal(t, curve.LinePath+" L 750 170 L 50 170 Z", curve.AreaPath)

	again, err := BuildCurve([]float64{0, 2, 4}, DefaultCurveConfig())
	require.NoError(t, err)
	assert.Equal(t, curve, again, "identical inputs give identical output")
}

func TestBuildCurveErrors(t *testing.T) {
	cfg := DefaultCurveConfig()
	_, err := BuildCurve([]float64{1}, cfg)
	assert.ErrorIs(t, err, ErrSeriesTooShort)

	cfg.Method = "wiggly"
	_, err = BuildCurve([]float64{1, 2}, cfg)
	assert.ErrorIs(t, err, ErrUnknownSmoothing)

	cfg = DefaultCurveConfig()
	cfg.Height = 0
	_, err = BuildCurve([]float64{1, 2}, cfg)
	assert.ErrorIs(t, err, ErrInvalidCanvas)
}

func TestGridLinesAndMarkers(t *testing.T) {
	cfg := DefaultCurveConfig()
	assert.Equal(t, []float64{170, 110, 50}, GridLines(cfg, []float64{0, 0.5, 1}))

	coords := make([]schema.Point, 12)
	for i := range coords {
		coords[i] = schema.Point{X: float64(i)}
	}
	markers := Markers(coords, 5)
	require.Len(t, markers, 3)
	assert.InDelta(t, 10.0, markers[2].X, 1e-9)
	assert.Nil(t, Markers(coords, 0))
}

func FuzzSmoothPaths(f *testing.F) {
	f.Add(0.0, 1.0, 2.0, 3.0, 100.0, 50.0)
	f.Add(0.0, 0.0, 0.0, 0.0, 1.0, 1.0)
	f.Add(-5.0, 1e9, 3.0, 0.5, 700.0, 120.0)

	f.Fuzz(func(t *testing.T, a, b, c, d, width, height float64) {
		series := []float64{a, b, c, d}
		for _, v := range append(series, width, height) {
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1e12 {
				t.Skip()
			}
		}
		coords, err := MapToCoordinates(series, width, height, 0)
		if err != nil {
			return
		}
		for _, method := range []schema.SmoothingMethod{schema.SimpleSmoothing, schema.CatmullRomSmoothing} {
			path, err := SmoothPath(coords, method)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(path, "M ") || strings.Contains(path, "NaN") {
				t.Fatalf("malformed path %q", path)
			}
		}
	})
}
