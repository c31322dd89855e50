// Package shape maps primitive SVG shapes through an affine matrix.
//
// Shapes keep their kind: a rectangle stays an axis-aligned rectangle and
// an ellipse stays an axis-aligned ellipse. Under rotation or skew this is
// an approximation. Rectangles become the bounding box of their four
// transformed corners; ellipse radii become the lengths of the transformed
// radius offsets. Convert the shape to a path first when the exact outline
// matters.
package shape

import (
	"math"
	"svgxform/pkg/svgpath"
)

type Rect struct {
	X, Y          float64
	Width, Height float64
}

type Ellipse struct {
	CX, CY float64
	RX, RY float64
}

type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// TransformRect returns the rectangle at (x, y) of the given size after m.
func TransformRect(x, y, width, height float64, m svgpath.Matrix) Rect {
	if m.IsTranslation() {
		return Rect{X: x + m.E, Y: y + m.F, Width: width, Height: height}
	}

	minX := math.Inf(1)
	maxX := math.Inf(-1)
	minY := math.Inf(1)
	maxY := math.Inf(-1)
	for _, corner := range [][2]float64{
		{x, y},
		{x + width, y},
		{x + width, y + height},
		{x, y + height},
	} {
		cx, cy := m.TransformPoint(corner[0], corner[1])
		minX = math.Min(minX, cx)
		maxX = math.Max(maxX, cx)
		minY = math.Min(minY, cy)
		maxY = math.Max(maxY, cy)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// TransformEllipse returns the ellipse centred on (cx, cy) after m.
func TransformEllipse(cx, cy, rx, ry float64, m svgpath.Matrix) Ellipse {
	if m.IsTranslation() {
		return Ellipse{CX: cx + m.E, CY: cy + m.F, RX: rx, RY: ry}
	}

	tcx, tcy := m.TransformPoint(cx, cy)
	distance := func(x, y float64) float64 {
		px, py := m.TransformPoint(x, y)
		return math.Hypot(px-tcx, py-tcy)
	}
	return Ellipse{
		CX: tcx,
		CY: tcy,
		RX: distance(cx+rx, cy),
		RY: distance(cx, cy+ry),
	}
}

// TransformLine returns the segment from (x1, y1) to (x2, y2) after m.
// This one is exact.
func TransformLine(x1, y1, x2, y2 float64, m svgpath.Matrix) Line {
	var l Line
	l.X1, l.Y1 = m.TransformPoint(x1, y1)
	l.X2, l.Y2 = m.TransformPoint(x2, y2)
	return l
}

// Center returns the middle of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
