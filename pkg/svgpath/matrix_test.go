package svgpath_test

import (
	"math"
	"svgxform/pkg/svgpath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestComposeOrder(t *testing.T) {
	translate := svgpath.Translate(5, 5)
	scale := svgpath.Scale(2, 2)

	got := svgpath.ParseTransform("translate(5,5) scale(2)")
	if diff := cmp.Diff(svgpath.Compose(translate, scale), got); diff != "" {
		t.Errorf("translate then scale: %s", diff)
	}

	reversed := svgpath.ParseTransform("scale(2) translate(5,5)")
	if got == reversed {
		t.Errorf("composition should not commute, both gave %+v", got)
	}

	// The right-most function applies to the point first.
	x, y := got.TransformPoint(1, 1)
	if diff := cmp.Diff([]float64{7, 7}, []float64{x, y}); diff != "" {
		t.Errorf("translate(5,5) scale(2) of (1,1): %s", diff)
	}
	x, y = reversed.TransformPoint(1, 1)
	if diff := cmp.Diff([]float64{12, 12}, []float64{x, y}); diff != "" {
		t.Errorf("scale(2) translate(5,5) of (1,1): %s", diff)
	}
}

func TestIdentity(t *testing.T) {
	if !svgpath.Identity().IsIdentity() {
		t.Errorf("Identity() is not the identity")
	}
	if svgpath.Translate(1e-12, 0).IsIdentity() {
		t.Errorf("a tiny translation must not count as identity")
	}
	if !svgpath.Translate(3, 4).IsTranslation() {
		t.Errorf("translate(3,4) should be a pure translation")
	}
	if svgpath.Scale(2, 1).IsTranslation() {
		t.Errorf("scale(2,1) is not a pure translation")
	}
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		transform string
		want      svgpath.Matrix
	}{
		{"", svgpath.Identity()},
		{"   ", svgpath.Identity()},
		{"foo(1,2,3)", svgpath.Identity()},
		{"translate(3)", svgpath.Translate(3, 0)},
		{"translate(3 4)", svgpath.Translate(3, 4)},
		{"scale(2)", svgpath.Scale(2, 2)},
		{"scale(2,-1)", svgpath.Scale(2, -1)},
		{"matrix(1 2 3 4 5 6)", svgpath.Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
		{"matrix(1 2 3 4 5)", svgpath.Identity()},
		{"rotate(90)", svgpath.Matrix{A: 0, B: 1, C: -1, D: 0}},
		{"rotate(90 10 10)", svgpath.Matrix{A: 0, B: 1, C: -1, D: 0, E: 20, F: 0}},
		{"skewX(45)", svgpath.Matrix{A: 1, C: 1, D: 1}},
		{"skewY(45)", svgpath.Matrix{A: 1, B: 1, D: 1}},
		{"translate(1,2), scale(3)", svgpath.Matrix{A: 3, D: 3, E: 1, F: 2}},
		{"translate(1,2) bogus(7) scale(3)", svgpath.Matrix{A: 3, D: 3, E: 1, F: 2}},
		{"translate()", svgpath.Identity()},
		{"translate(1,2", svgpath.Identity()},
		{"scale(2) )", svgpath.Identity()},
	}
	for _, test := range tests {
		got := svgpath.ParseTransform(test.transform)
		if diff := cmp.Diff(test.want, got, approx); diff != "" {
			t.Errorf("ParseTransform(%q): %s", test.transform, diff)
		}
	}
}

func TestRotateAboutPivot(t *testing.T) {
	m := svgpath.ParseTransform("rotate(90, 10, 10)")
	// The pivot stays put.
	x, y := m.TransformPoint(10, 10)
	if diff := cmp.Diff([]float64{10, 10}, []float64{x, y}, approx); diff != "" {
		t.Errorf("pivot moved: %s", diff)
	}
	x, y = m.TransformPoint(20, 10)
	if diff := cmp.Diff([]float64{10, 20}, []float64{x, y}, approx); diff != "" {
		t.Errorf("rotated point: %s", diff)
	}

	want := svgpath.Compose(svgpath.Compose(svgpath.Translate(10, 10), svgpath.Rotate(90)), svgpath.Translate(-10, -10))
	if diff := cmp.Diff(want, m, approx); diff != "" {
		t.Errorf("pivot rotation composition: %s", diff)
	}
}

func TestTransformLength(t *testing.T) {
	m := svgpath.ParseTransform("translate(100 100) rotate(30) scale(3)")
	if got := m.TransformLength(2); math.Abs(got-6) > 1e-9 {
		t.Errorf("TransformLength(2) = %g, want 6", got)
	}
	sx, sy := svgpath.Scale(2, 5).AxisScale()
	if diff := cmp.Diff([]float64{2, 5}, []float64{sx, sy}); diff != "" {
		t.Errorf("AxisScale: %s", diff)
	}
}

func TestConverterCache(t *testing.T) {
	c := svgpath.NewConverter(nil)
	a := c.ParseTransform("translate(1 2)")
	b := c.ParseTransform("scale(3)")
	again := c.ParseTransform("translate(1 2)")

	if diff := cmp.Diff(svgpath.Translate(1, 2), a); diff != "" {
		t.Errorf("first parse: %s", diff)
	}
	if diff := cmp.Diff(a, again); diff != "" {
		t.Errorf("cache hit differs from parse: %s", diff)
	}
	if diff := cmp.Diff(svgpath.Scale(3, 3), b); diff != "" {
		t.Errorf("distinct expression: %s", diff)
	}
	if got := c.CachedTransforms(); got != 2 {
		t.Errorf("CachedTransforms() = %d, want 2", got)
	}

	// Another run does not see this run's entries.
	if got := svgpath.NewConverter(nil).CachedTransforms(); got != 0 {
		t.Errorf("fresh converter has %d cached transforms", got)
	}
}
