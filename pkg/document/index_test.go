package document_test

import (
	"svgxform/pkg/cfg"
	"svgxform/pkg/document"
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(nodes []*document.Node) []string {
	var result []string
	for _, n := range nodes {
		result = append(result, n.Attr("id"))
	}
	return result
}

func TestIndexNearest(t *testing.T) {
	index := document.NewIndex(0)
	node := func(id string) *document.Node {
		n := &document.Node{}
		n.SetAttr("id", id)
		return n
	}
	index.Add(node("origin"), 0, 0)
	index.Add(node("east"), 100, 0)
	index.Add(node("east-twin"), 100, 0)
	index.Add(node("north"), 0, -40)
	index.Add(node("far"), 1000, 1000)

	require.Equal(t, []string{"origin"}, ids(index.Nearest(1, 1, 1)))
	require.Equal(t, []string{"origin", "north"}, ids(index.Nearest(0, -10, 2)))
	require.ElementsMatch(t, []string{"east", "east-twin"}, ids(index.Nearest(90, 0, 2)))
	require.Equal(t, []string{"far"}, ids(index.Nearest(2000, 2000, 1)))
	require.Len(t, index.Nearest(0, 0, 10), 5)
	require.Nil(t, index.Nearest(0, 0, 0))

	// Adding after a query rebuilds the tree.
	index.Add(node("late"), 2, 2)
	require.Equal(t, []string{"late"}, ids(index.Nearest(2, 2, 1)))
}

func TestFlattenIndexesConvertedElements(t *testing.T) {
	root := parse(t)
	f := document.NewFlattener(cfg.Default(), nil)
	f.Flatten(root)

	// The translated rect is centred on (8, 9); the path starts at (1, 1).
	require.Equal(t, []string{"r"}, ids(f.Index().Nearest(8, 9, 1)))
	require.Equal(t, []string{"p", "poly"}, ids(f.Index().Nearest(1, 1, 2)))
	require.Empty(t, document.NewIndex(10).Nearest(0, 0, 3))
}
