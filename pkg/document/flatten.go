package document

import (
	"math"
	"strings"
	"svgxform/pkg/cfg"
	"svgxform/pkg/shape"
	"svgxform/pkg/svgpath"

	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

// Report counts what a Flatten run did with each element that carried a
// transform attribute.
type Report struct {
	// Converted elements had their transform baked into their geometry.
	Converted int
	// Skipped elements had attributes that could not be read as numbers.
	Skipped int
	// Retained elements kept their transform: groups, containers, and
	// anything without supported geometry.
	Retained int
}

// Flattener bakes each element's own transform attribute into its
// geometry. One Flattener is one conversion run: transform expressions are
// parsed once per run and shared by every element that repeats them.
type Flattener struct {
	config    cfg.Config
	logger    *slog.Logger
	converter *svgpath.Converter
	index     *Index
}

// NewFlattener returns a Flattener using the given configuration. A nil
// logger discards diagnostics.
func NewFlattener(config cfg.Config, logger *slog.Logger) *Flattener {
	return &Flattener{
		config:    config,
		logger:    logger,
		converter: svgpath.NewConverter(logger),
		index:     NewIndex(config.IndexMargin),
	}
}

// Index returns the anchors of every element converted so far.
func (f *Flattener) Index() *Index {
	return f.index
}

func (f *Flattener) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}

func (f *Flattener) warn(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Warn(msg, args...)
	}
}

// Flatten walks the document rooted at root. Only an element's own
// transform is applied; transforms on ancestors are left where they are.
func (f *Flattener) Flatten(root *Node) Report {
	var report Report
	root.walk(func(node *Node) {
		transform, ok := node.LookupAttr("transform")
		if !ok {
			return
		}
		m := f.converter.ParseTransform(transform)

		converted, err := f.convert(node, m)
		switch {
		case err != nil:
			f.warn("element left untransformed", "element", node.Name(), "id", node.Attr("id"), "err", err)
			report.Skipped++
		case converted:
			node.RemoveAttr("transform")
			f.debug("baked transform", "element", node.Name(), "id", node.Attr("id"), "transform", transform)
			report.Converted++
		default:
			report.Retained++
		}
	})
	f.debug("flatten done",
		"converted", report.Converted,
		"skipped", report.Skipped,
		"retained", report.Retained,
		"transforms", f.converter.CachedTransforms())
	return report
}

// convert applies m to a single element. It reports false for elements it
// does not know how to flatten.
func (f *Flattener) convert(node *Node, m svgpath.Matrix) (bool, error) {
	switch node.Name() {
	case "path":
		f.convertPath(node, node.Attr("d"), m)
	case "polygon", "polyline":
		if !f.config.ConvertPolygons {
			return false, nil
		}
		d := f.converter.PointsToPath(node.Attr("points"), node.Name() == "polygon")
		node.XMLName.Local = "path"
		node.RemoveAttr("points")
		f.convertPath(node, d, m)
	case "rect":
		if err := f.convertRect(node, m); err != nil {
			return false, err
		}
	case "circle", "ellipse":
		if err := f.convertEllipse(node, m); err != nil {
			return false, err
		}
	case "line":
		if err := f.convertLine(node, m); err != nil {
			return false, err
		}
	default:
		return false, nil
	}

	if f.config.ScaleStrokeWidth {
		f.scaleStrokeWidth(node, m)
	}
	return true, nil
}

func (f *Flattener) convertPath(node *Node, d string, m svgpath.Matrix) {
	commands := svgpath.TransformCommands(f.converter.ParseCommands(d), m)
	if m.IsIdentity() {
		node.SetAttr("d", d)
	} else {
		node.SetAttr("d", f.converter.FormatCommands(commands))
	}
	if x, y, ok := svgpath.StartPoint(commands); ok {
		f.index.Add(node, x, y)
	}
}

func (f *Flattener) convertRect(node *Node, m svgpath.Matrix) error {
	// Every attribute is read before any is written, so a bad one leaves
	// the element as it was.
	values, err := numbers(node, "x", "y", "width", "height", "rx", "ry")
	if err != nil {
		return err
	}
	r := shape.TransformRect(values[0], values[1], values[2], values[3], m)
	f.setNumber(node, "x", r.X)
	f.setNumber(node, "y", r.Y)
	f.setNumber(node, "width", r.Width)
	f.setNumber(node, "height", r.Height)

	// Corner radii follow the axis they belong to.
	sx, sy := m.AxisScale()
	if _, ok := node.LookupAttr("rx"); ok {
		f.setNumber(node, "rx", values[4]*sx)
	}
	if _, ok := node.LookupAttr("ry"); ok {
		f.setNumber(node, "ry", values[5]*sy)
	}

	cx, cy := r.Center()
	f.index.Add(node, cx, cy)
	return nil
}

func (f *Flattener) convertEllipse(node *Node, m svgpath.Matrix) error {
	var values []float64
	var err error
	if node.Name() == "circle" {
		values, err = numbers(node, "cx", "cy", "r")
		if err == nil {
			values = append(values, values[2])
		}
	} else {
		values, err = numbers(node, "cx", "cy", "rx", "ry")
	}
	if err != nil {
		return err
	}

	e := shape.TransformEllipse(values[0], values[1], values[2], values[3], m)
	f.setNumber(node, "cx", e.CX)
	f.setNumber(node, "cy", e.CY)
	if node.Name() == "circle" && svgpath.FormatNumber(e.RX) == svgpath.FormatNumber(e.RY) {
		node.XMLName.Local = "circle"
		node.RemoveAttr("rx")
		node.RemoveAttr("ry")
		f.setNumber(node, "r", e.RX)
	} else {
		node.XMLName.Local = "ellipse"
		node.RemoveAttr("r")
		f.setNumber(node, "rx", e.RX)
		f.setNumber(node, "ry", e.RY)
	}

	f.index.Add(node, e.CX, e.CY)
	return nil
}

func (f *Flattener) convertLine(node *Node, m svgpath.Matrix) error {
	values, err := numbers(node, "x1", "y1", "x2", "y2")
	if err != nil {
		return err
	}
	l := shape.TransformLine(values[0], values[1], values[2], values[3], m)
	f.setNumber(node, "x1", l.X1)
	f.setNumber(node, "y1", l.Y1)
	f.setNumber(node, "x2", l.X2)
	f.setNumber(node, "y2", l.Y2)

	f.index.Add(node, l.X1, l.Y1)
	return nil
}

// scaleStrokeWidth scales the stroke width by how much m stretches a
// horizontal offset.
func (f *Flattener) scaleStrokeWidth(node *Node, m svgpath.Matrix) {
	if v, ok := node.LookupAttr("stroke-width"); ok {
		if width, ok := parseLength(v); ok {
			f.setNumber(node, "stroke-width", m.TransformLength(width))
		}
	}
	if v := node.Style("stroke-width"); v != "" {
		if width, ok := parseLength(v); ok {
			node.SetStyle("stroke-width", svgpath.FormatNumber(m.TransformLength(width)))
		}
	}
}

// numbers reads the named attributes as lengths. Absent attributes are 0,
// the SVG default for every geometry attribute read here.
func numbers(node *Node, names ...string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		v, ok := node.LookupAttr(name)
		if !ok {
			continue
		}
		n, ok := parseLength(v)
		if !ok {
			return nil, xerrors.Errorf("attribute %s=%q is not a number", name, v)
		}
		values[i] = n
	}
	return values, nil
}

// parseLength parses a number with an optional "px" unit. Other units
// and percentages depend on the viewport and are not supported.
func parseLength(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	return svgpath.ParseNumber(v)
}

func (f *Flattener) setNumber(node *Node, name string, v float64) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		f.warn("attribute out of range, using 0", "element", node.Name(), "id", node.Attr("id"), "attribute", name)
	}
	node.SetAttr(name, svgpath.FormatNumber(v))
}
