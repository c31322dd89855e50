package document

import (
	"math"
	"sort"

	"github.com/asim/quadtree"
)

type anchor struct {
	node *Node
	x, y float64
}

// Index finds converted elements by position. Each element is indexed by
// one anchor point in output coordinates: a path's first point, the centre
// of a rect, circle or ellipse, the start of a line.
type Index struct {
	margin  float64
	anchors []anchor

	// Built on first query, since the quadtree needs its bounds up front.
	quadTree *quadtree.QuadTree
	width    float64
	height   float64
}

func NewIndex(margin float64) *Index {
	return &Index{margin: margin}
}

// Add indexes node at (x, y).
func (t *Index) Add(node *Node, x, y float64) {
	t.anchors = append(t.anchors, anchor{node: node, x: x, y: y})
	t.quadTree = nil
}

// Len returns the number of indexed elements.
func (t *Index) Len() int {
	return len(t.anchors)
}

func (t *Index) build() {
	minX := math.Inf(1)
	maxX := math.Inf(-1)
	minY := math.Inf(1)
	maxY := math.Inf(-1)
	for _, a := range t.anchors {
		minX = math.Min(minX, a.x)
		maxX = math.Max(maxX, a.x)
		minY = math.Min(minY, a.y)
		maxY = math.Max(maxY, a.y)
	}

	midX := (maxX + minX) / 2
	midY := (maxY + minY) / 2
	// Add a small margin to avoid dropping objects at the edges
	halfWidth := maxX - midX + t.margin + 1
	halfHeight := maxY - midY + t.margin + 1

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	t.quadTree = quadtree.New(aabb, 0, nil)
	t.width = halfWidth * 2
	t.height = halfHeight * 2

	// Elements sharing an anchor share one point.
	shared := map[[2]float64]*[]*Node{}
	for _, a := range t.anchors {
		key := [2]float64{a.x, a.y}
		if nodes, ok := shared[key]; ok {
			*nodes = append(*nodes, a.node)
			continue
		}
		nodes := []*Node{a.node}
		shared[key] = &nodes
		t.quadTree.Insert(quadtree.NewPoint(a.x, a.y, &nodes))
	}
}

type found struct {
	node *Node
	dist float64
}

// search returns every element anchored within radius (per axis) of
// (x, y), closest first.
func (t *Index) search(x, y, radius float64) []found {
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(x, y, nil),
		quadtree.NewPoint(radius, radius, nil),
	)
	var results []found
	for _, point := range t.quadTree.Search(aabb) {
		px, py := point.Coordinates()
		dist := math.Hypot(px-x, py-y)
		for _, node := range *point.Data().(*[]*Node) {
			results = append(results, found{node: node, dist: dist})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].dist < results[j].dist
	})
	return results
}

// Nearest returns up to maxCount elements whose anchors are closest to
// (x, y), closest first.
func (t *Index) Nearest(x, y float64, maxCount int) []*Node {
	if len(t.anchors) == 0 || maxCount <= 0 {
		return nil
	}
	if t.quadTree == nil {
		t.build()
	}

	// Grow a square around (x, y) until it holds enough elements. The
	// square can miss closer elements just outside its sides, so search
	// once more with the k-th distance as the radius.
	limit := t.width + t.height + math.Abs(x) + math.Abs(y)
	radius := math.Max(t.margin, 1)
	nearest := t.search(x, y, radius)
	for len(nearest) < maxCount && radius < limit {
		radius *= 2
		nearest = t.search(x, y, radius)
	}
	if len(nearest) >= maxCount {
		// Pad the radius so the k-th element itself is not lost to rounding.
		kth := nearest[maxCount-1].dist
		nearest = t.search(x, y, kth*(1+1e-9)+1e-9)
	}
	if len(nearest) > maxCount {
		nearest = nearest[:maxCount]
	}

	nodes := make([]*Node, len(nearest))
	for i, n := range nearest {
		nodes[i] = n.node
	}
	return nodes
}
