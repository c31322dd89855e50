package document

import (
	"sort"
	"strings"
)

// Style returns one property of the element's style attribute.
func (n *Node) Style(name string) string {
	if n.style == nil {
		n.style = map[string]string{}
		n.styleNameOrder = map[string]int{}
		index := 0
		for _, pair := range strings.Split(n.Attr("style"), ";") {
			kv := strings.SplitN(pair, ":", 2)
			if len(kv) == 2 {
				key := strings.TrimSpace(kv[0])
				n.style[key] = strings.TrimSpace(kv[1])
				index++
				n.styleNameOrder[key] = index
			}
		}
	}
	return n.style[name]
}

func (n *Node) SetStyle(name string, value string) {
	if n.style == nil {
		// Call for side-effect of populating the style map
		n.Style(name)
	}
	n.style[name] = value
}

// serializeStyle writes the style map back to the style attribute, keeping
// the original property order. New properties go last, sorted by name.
func (n *Node) serializeStyle() {
	if n.style == nil {
		return
	}
	type nameValue struct {
		name  string
		value string
	}
	var styles []nameValue
	for name, value := range n.style {
		styles = append(styles, nameValue{name: name, value: value})
	}
	sort.Slice(styles, func(i, j int) bool {
		a := styles[i].name
		b := styles[j].name
		ao := n.styleNameOrder[a]
		bo := n.styleNameOrder[b]
		switch {
		case ao != 0 && bo != 0:
			return ao < bo
		case ao != 0:
			return true
		case bo != 0:
			return false
		}
		return a < b
	})
	var styleStrs []string
	for _, style := range styles {
		styleStrs = append(styleStrs, style.name+":"+style.value)
	}
	if len(styleStrs) == 0 {
		n.RemoveAttr("style")
		return
	}
	n.SetAttr("style", strings.Join(styleStrs, ";"))
}
