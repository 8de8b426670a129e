package wheel

import "math"

// Segment colors cycle through this palette in table order.
var segmentColors = []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4"}

const (
	separatorColor = "#ffffff"
	separatorWidth = 2
	hubColor       = "#2d3436"
	hubBorderWidth = 3
	labelColor     = "#ffffff"

	// Labels are dropped entirely below this canvas size.
	minLabelSize = 300
	// Below this size long prize names get truncated.
	truncateBelowSize = 400
)

// Segment is one wedge of the wheel layout. Angles are absolute, with
// the spin rotation already applied.
type Segment struct {
	Name       string  `json:"name"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Color      string  `json:"color"`
	Label      string  `json:"label,omitempty"`
	LabelAngle float64 `json:"label_angle"`
	FontSize   int     `json:"font_size"`
}

// Layout is a resolution-independent description of the wheel at a
// given rotation, ready to be painted by any canvas.
type Layout struct {
	Size           int       `json:"size"`
	Radius         float64   `json:"radius"`
	HubRadius      float64   `json:"hub_radius"`
	HubColor       string    `json:"hub_color"`
	SeparatorColor string    `json:"separator_color"`
	SeparatorWidth int       `json:"separator_width"`
	Rotation       float64   `json:"rotation"`
	Segments       []Segment `json:"segments"`
}

// Renderer turns a prize table into wheel layouts for a square canvas.
type Renderer struct {
	table *Table
	size  int
}

// NewRenderer creates a renderer for a canvas of the given size.
func NewRenderer(table *Table, size int) *Renderer {
	return &Renderer{table: table, size: size}
}

// Size returns the current canvas size.
func (r *Renderer) Size() int { return r.size }

// Resize fits the wheel into a w by h viewport. The wheel stays
// square, so the smaller dimension wins.
func (r *Renderer) Resize(w, h int) {
	if w < h {
		r.size = w
	} else {
		r.size = h
	}
}

// Layout lays out every segment at the given rotation.
func (r *Renderer) Layout(rotation float64) Layout {
	half := float64(r.size) / 2
	layout := Layout{
		Size:           r.size,
		Radius:         half - 20,
		HubRadius:      math.Max(30, float64(r.size)/16),
		HubColor:       hubColor,
		SeparatorColor: separatorColor,
		SeparatorWidth: separatorWidth,
		Rotation:       rotation,
		Segments:       make([]Segment, 0, r.table.Len()),
	}

	fontSize := int(math.Max(12, float64(r.size)/30))
	for i, prize := range r.table.Prizes() {
		start, length := r.table.Arc(i)
		seg := Segment{
			Name:  prize.Name,
			Start: rotation + start,
			End:   rotation + start + length,
			Color: segmentColors[i%len(segmentColors)],
		}
		if r.size >= minLabelSize {
			seg.Label = r.label(prize.Name)
			seg.LabelAngle = seg.Start + length/2
			seg.FontSize = fontSize
		}
		layout.Segments = append(layout.Segments, seg)
	}
	return layout
}

// label shortens long prize names on small canvases.
func (r *Renderer) label(name string) string {
	runes := []rune(name)
	if r.size < truncateBelowSize && len(runes) > 10 {
		return string(runes[:8]) + "..."
	}
	return name
}

// Surface is the minimal set of drawing operations the wheel needs.
// Keeping the renderer behind it leaves the painting technology open.
type Surface interface {
	Clear()
	FillSegment(cx, cy, radius, start, end float64, color string)
	StrokeSegment(cx, cy, radius, start, end float64, color string, width int)
	FillCircle(cx, cy, radius float64, color string)
	StrokeCircle(cx, cy, radius float64, color string, width int)
	FillLabel(text string, angle, radius float64, color string, fontSize int)
}

// Paint draws the wheel at the given rotation onto a surface.
func (r *Renderer) Paint(s Surface, rotation float64) {
	layout := r.Layout(rotation)
	center := float64(layout.Size) / 2

	s.Clear()
	for _, seg := range layout.Segments {
		s.FillSegment(center, center, layout.Radius, seg.Start, seg.End, seg.Color)
		s.StrokeSegment(center, center, layout.Radius, seg.Start, seg.End, layout.SeparatorColor, layout.SeparatorWidth)
		if seg.Label != "" {
			s.FillLabel(seg.Label, seg.LabelAngle, layout.Radius-20, labelColor, seg.FontSize)
		}
	}
	s.FillCircle(center, center, layout.HubRadius, layout.HubColor)
	s.StrokeCircle(center, center, layout.HubRadius, layout.SeparatorColor, hubBorderWidth)
}
