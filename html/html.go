// Package html parses raw HTML documents into locdata node trees, merges
// multi-document pages (main page plus embedded frames) into one searchable
// tree, and serializes subtrees back to HTML fragments.
package html

import (
	"strings"

	"github.com/fwojciec/locdata"
	xhtml "golang.org/x/net/html"
)

// Parse parses a raw HTML document and returns the root element of the
// resulting tree. Comments and doctype declarations are dropped, as are
// whitespace-only text nodes, so a node's own text is meaningful for exact
// matching.
func Parse(src string) (*locdata.Node, error) {
	doc, err := xhtml.Parse(strings.NewReader(src))
	if err != nil {
		return nil, locdata.Errorf(locdata.EINVALID, "parsing HTML: %v", err)
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xhtml.ElementNode {
			return convert(c), nil
		}
	}
	return nil, locdata.Errorf(locdata.EINVALID, "document has no root element")
}

// convert maps an x/net/html node onto a locdata.Node subtree.
func convert(src *xhtml.Node) *locdata.Node {
	node := &locdata.Node{Tag: src.Data}
	for _, a := range src.Attr {
		node.Attrs = append(node.Attrs, locdata.Attr{Key: a.Key, Value: a.Val})
	}
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xhtml.ElementNode:
			node.Append(convert(c))
		case xhtml.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				node.Append(locdata.NewText(c.Data))
			}
		}
	}
	return node
}

// Body returns the document's body element, or nil if there is none.
func Body(doc *locdata.Node) *locdata.Node {
	if doc == nil {
		return nil
	}
	bodies := doc.FindAll(func(n *locdata.Node) bool { return n.Tag == "body" })
	if len(bodies) == 0 {
		return nil
	}
	return bodies[0]
}

// Merge unions several raw documents into one tree: the body children of
// each secondary document are deep-copied onto the main document's body, in
// input order. Secondary documents without a body are skipped. The merged
// tree shares no nodes with the source documents, so it is safe to mutate
// later. Returns the merged document root.
func Merge(docs []string) (*locdata.Node, error) {
	if len(docs) == 0 {
		return nil, locdata.Errorf(locdata.EINVALID, "at least one document required")
	}

	main, err := Parse(docs[0])
	if err != nil {
		return nil, err
	}
	mainBody := Body(main)
	if mainBody == nil {
		return nil, locdata.Errorf(locdata.EINVALID, "main document has no body")
	}

	for _, src := range docs[1:] {
		doc, err := Parse(src)
		if err != nil {
			return nil, err
		}
		body := Body(doc)
		if body == nil {
			continue
		}
		for _, child := range body.Children {
			mainBody.Append(child.Clone())
		}
	}

	return main, nil
}

// voidTags render without children or a closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Render serializes a subtree as an HTML fragment. This is the persisted
// on-disk form of a located sample.
func Render(n *locdata.Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n *locdata.Node) {
	if n.IsText() {
		b.WriteString(xhtml.EscapeString(n.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(xhtml.EscapeString(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if voidTags[n.Tag] {
		return
	}

	for _, child := range n.Children {
		render(b, child)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}
