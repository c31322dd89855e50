package shape_test

import (
	"math"
	"svgxform/pkg/shape"
	"svgxform/pkg/svgpath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTransformRect(t *testing.T) {
	tests := []struct {
		description         string
		x, y, width, height float64
		transform           string
		want                shape.Rect
	}{
		{
			"translation keeps the size",
			0, 0, 10, 10,
			"translate(3,4)",
			shape.Rect{X: 3, Y: 4, Width: 10, Height: 10},
		},
		{
			"rotation gives the bounding box",
			-5, -5, 10, 10,
			"rotate(45)",
			shape.Rect{X: -5 * math.Sqrt2, Y: -5 * math.Sqrt2, Width: 10 * math.Sqrt2, Height: 10 * math.Sqrt2},
		},
		{
			"negative scale flips the corners",
			1, 2, 3, 4,
			"scale(-2)",
			shape.Rect{X: -8, Y: -12, Width: 6, Height: 8},
		},
		{
			"skew widens the box",
			0, 0, 10, 10,
			"skewX(45)",
			shape.Rect{X: 0, Y: 0, Width: 20, Height: 10},
		},
	}
	for _, test := range tests {
		m := svgpath.ParseTransform(test.transform)
		got := shape.TransformRect(test.x, test.y, test.width, test.height, m)
		if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Errorf("%s: %s", test.description, diff)
		}
	}
}

func TestTransformRectExactTranslation(t *testing.T) {
	got := shape.TransformRect(0, 0, 10, 10, svgpath.ParseTransform("translate(3,4)"))
	if got != (shape.Rect{X: 3, Y: 4, Width: 10, Height: 10}) {
		t.Errorf("translated rect = %+v", got)
	}
	cx, cy := got.Center()
	if cx != 8 || cy != 9 {
		t.Errorf("Center() = %g, %g", cx, cy)
	}
}

func TestTransformEllipse(t *testing.T) {
	got := shape.TransformEllipse(0, 0, 5, 3, svgpath.ParseTransform("translate(2,2)"))
	if got != (shape.Ellipse{CX: 2, CY: 2, RX: 5, RY: 3}) {
		t.Errorf("translated ellipse = %+v", got)
	}

	tests := []struct {
		transform string
		want      shape.Ellipse
	}{
		{"scale(2,3)", shape.Ellipse{CX: 2, CY: 3, RX: 10, RY: 9}},
		// Rotation swaps nothing: each radius keeps its length.
		{"rotate(90)", shape.Ellipse{CX: -1, CY: 1, RX: 5, RY: 3}},
		{"translate(10 0) scale(0.5)", shape.Ellipse{CX: 10.5, CY: 0.5, RX: 2.5, RY: 1.5}},
	}
	for _, test := range tests {
		got := shape.TransformEllipse(1, 1, 5, 3, svgpath.ParseTransform(test.transform))
		if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("%s: %s", test.transform, diff)
		}
	}
}

func TestTransformLine(t *testing.T) {
	got := shape.TransformLine(0, 0, 10, 0, svgpath.ParseTransform("rotate(90) scale(2)"))
	want := shape.Line{X1: 0, Y1: 0, X2: 0, Y2: 20}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("TransformLine: %s", diff)
	}
}
