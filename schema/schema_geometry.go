package schema

// Point is a position in pixel space. Y grows downward.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// CurvePath is a mapped series plus its smoothed line and closed area descriptors.
type CurvePath struct {
	Coordinates []Point `json:"coordinates" yaml:"coordinates"`
	LinePath    string  `json:"line_path" yaml:"line_path"`
	AreaPath    string  `json:"area_path" yaml:"area_path"`
}

// CurveConfig places a curve inside a card.
// Width and Height size the plot area, TopPad is headroom above the tallest
// point, and OffsetX/OffsetY move the plot area inside the card.
type CurveConfig struct {
	Width   float64         `json:"width" yaml:"width"`
	Height  float64         `json:"height" yaml:"height"`
	TopPad  float64         `json:"top_pad" yaml:"top_pad"`
	OffsetX float64         `json:"offset_x" yaml:"offset_x"`
	OffsetY float64         `json:"offset_y" yaml:"offset_y"`
	Method  SmoothingMethod `json:"method" yaml:"method"`
}

// DonutInput is one category of a donut chart. Color is carried through untouched.
type DonutInput struct {
	Label string `json:"label" yaml:"label"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Count int    `json:"count" yaml:"count"`
}

// DonutSegment is the wedge laid out for one DonutInput.
// Angles are degrees clockwise from 12 o'clock, before the gap inset.
// Path is empty when the wedge is too thin to draw.
type DonutSegment struct {
	Label      string  `json:"label" yaml:"label"`
	Color      string  `json:"color,omitempty" yaml:"color,omitempty"`
	Count      int     `json:"count" yaml:"count"`
	Percent    float64 `json:"percent" yaml:"percent"` // 0-1
	StartAngle float64 `json:"start_angle" yaml:"start_angle"`
	EndAngle   float64 `json:"end_angle" yaml:"end_angle"`
	Path       string  `json:"path" yaml:"path"`
}

// DonutConfig is the ring geometry. GapDegrees is the total gap between neighbours.
type DonutConfig struct {
	CenterX     float64 `json:"center_x" yaml:"center_x"`
	CenterY     float64 `json:"center_y" yaml:"center_y"`
	OuterRadius float64 `json:"outer_radius" yaml:"outer_radius"`
	InnerRadius float64 `json:"inner_radius" yaml:"inner_radius"`
	GapDegrees  float64 `json:"gap_degrees" yaml:"gap_degrees"`
}

// DayPeriod is a named range of hours [StartHour, EndHour).
type DayPeriod struct {
	Label     string `json:"label" yaml:"label"`
	StartHour int    `json:"start_hour" yaml:"start_hour"`
	EndHour   int    `json:"end_hour" yaml:"end_hour"`
	Color     string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Bar is one rectangle of the streak mini chart.
type Bar struct {
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Opacity float64 `json:"opacity" yaml:"opacity"`
	Active  bool    `json:"active" yaml:"active"`
}

// BarConfig sizes the streak mini chart.
type BarConfig struct {
	Count     int     `json:"count" yaml:"count"` // Number of trailing days drawn
	StartX    float64 `json:"start_x" yaml:"start_x"`
	BarWidth  float64 `json:"bar_width" yaml:"bar_width"`
	BarGap    float64 `json:"bar_gap" yaml:"bar_gap"`
	Height    float64 `json:"height" yaml:"height"`
	MinHeight float64 `json:"min_height" yaml:"min_height"`
}
