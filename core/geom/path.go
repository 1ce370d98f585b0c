// Package geom builds pixel-space geometry for report charts: smoothed curves,
// area fills, donut wedges and bar rectangles. Path descriptors use the SVG
// path syntax and are deterministic for identical inputs.
package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/cardstats/schema"
)

// formatNumber rounds to three decimals and drops trailing zeros.
// Negative zero prints as "0".
func formatNumber(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// pathWriter accumulates path commands separated by single spaces.
type pathWriter struct {
	b strings.Builder
}

func (w *pathWriter) op(name string) {
	if w.b.Len() > 0 {
		w.b.WriteByte(' ')
	}
	w.b.WriteString(name)
}

func (w *pathWriter) nums(vs ...float64) {
	for _, v := range vs {
		w.b.WriteByte(' ')
		w.b.WriteString(formatNumber(v))
	}
}

func (w *pathWriter) moveTo(p schema.Point) {
	w.op("M")
	w.nums(p.X, p.Y)
}

func (w *pathWriter) lineTo(p schema.Point) {
	w.op("L")
	w.nums(p.X, p.Y)
}

// cubicTo writes "C x1 y1, x2 y2, x y".
func (w *pathWriter) cubicTo(c1, c2, p schema.Point) {
	w.op("C")
	w.nums(c1.X, c1.Y)
	w.b.WriteByte(',')
	w.nums(c2.X, c2.Y)
	w.b.WriteByte(',')
	w.nums(p.X, p.Y)
}

// arcTo writes a circular arc with no x-axis rotation.
func (w *pathWriter) arcTo(r float64, large, sweep bool, p schema.Point) {
	w.op("A")
	w.nums(r, r, 0, flag(large), flag(sweep), p.X, p.Y)
}

func (w *pathWriter) close() {
	w.op("Z")
}

func (w *pathWriter) String() string {
	return w.b.String()
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
