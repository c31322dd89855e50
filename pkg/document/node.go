package document

import (
	"encoding/xml"
	"strings"

	"golang.org/x/xerrors"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	xmlNamespace = "http://www.w3.org/XML/1998/namespace"
)

// Node is one element of an SVG document. Attributes are kept as parsed so
// anything the flattener does not touch survives a round trip.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []*Node    `xml:",any"`

	style          map[string]string
	styleNameOrder map[string]int
}

// Parse reads an SVG document. Namespaced names are rewritten to their
// "prefix:local" form using the document's own xmlns declarations.
func Parse(data []byte) (*Node, error) {
	var root Node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, xerrors.Errorf("parse svg: %w", err)
	}

	prefixes := map[string]string{xmlNamespace: "xml"}
	root.walk(func(n *Node) {
		for _, attr := range n.Attrs {
			if attr.Name.Space == "xmlns" {
				prefixes[attr.Value] = attr.Name.Local
			}
		}
	})
	root.walk(func(n *Node) {
		n.XMLName = localName(n.XMLName, prefixes)
		for i := range n.Attrs {
			n.Attrs[i].Name = localName(n.Attrs[i].Name, prefixes)
		}
		if strings.TrimSpace(n.Text) == "" {
			n.Text = ""
		}
	})
	return &root, nil
}

func localName(name xml.Name, prefixes map[string]string) xml.Name {
	switch name.Space {
	case "", svgNamespace:
		return xml.Name{Local: name.Local}
	case "xmlns":
		return xml.Name{Local: "xmlns:" + name.Local}
	}
	if prefix, ok := prefixes[name.Space]; ok {
		return xml.Name{Local: prefix + ":" + name.Local}
	}
	if !strings.ContainsAny(name.Space, ":/") {
		// An undeclared prefix is left as the space by the decoder.
		return xml.Name{Local: name.Space + ":" + name.Local}
	}
	return xml.Name{Local: name.Local}
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.walk(fn)
	}
}

// Name returns the element name, with any prefix.
func (n *Node) Name() string {
	return n.XMLName.Local
}

// Attr returns the value of the named attribute, or "" if it is absent.
func (n *Node) Attr(name string) string {
	v, _ := n.LookupAttr(name)
	return v
}

func (n *Node) LookupAttr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// SetAttr replaces the named attribute in place, or appends it.
func (n *Node) SetAttr(name, value string) {
	for i, attr := range n.Attrs {
		if attr.Name.Local == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

func (n *Node) RemoveAttr(name string) {
	kept := n.Attrs[:0]
	for _, attr := range n.Attrs {
		if attr.Name.Local != name {
			kept = append(kept, attr)
		}
	}
	n.Attrs = kept
}

// Marshal serializes the document, including any style changes.
func (n *Node) Marshal() ([]byte, error) {
	n.walk(func(child *Node) {
		child.serializeStyle()
	})
	data, err := xml.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, xerrors.Errorf("marshal svg: %w", err)
	}
	return data, nil
}
