package locdata

import "strings"

// Attr is a single element attribute. Attribute order is preserved from the
// source document.
type Attr struct {
	Key   string
	Value string
}

// textTags are the tags treated as prose blocks rather than discrete items
// when classifying a located region.
var textTags = map[string]bool{
	"p": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Node is an element or text unit in a document tree. A text node has an
// empty Tag and its content in Text. Sibling order is document order and is
// semantically significant: first/last record determination depends on it.
//
// The tree exclusively owns its children; Parent is a navigation-only
// backreference. Nodes are never mutated in place during traversal; edits
// that reshape a subtree (FirstRows, sample pruning) operate on clones.
type Node struct {
	Tag      string // empty for text nodes
	Text     string // set only for text nodes
	Attrs    []Attr
	Parent   *Node
	Children []*Node
}

// NewElement creates a detached element node.
func NewElement(tag string, attrs ...Attr) *Node {
	return &Node{Tag: tag, Attrs: attrs}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Text: text}
}

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// IsTextTag reports whether the node is a paragraph, heading or list, the
// tags whose repeated children read as prose rather than discrete items.
func (n *Node) IsTextTag() bool {
	return textTags[n.Tag]
}

// Append adds child to the node's children and sets its parent.
func (n *Node) Append(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// RemoveAttr removes the named attribute if present.
func (n *Node) RemoveAttr(key string) {
	for i, a := range n.Attrs {
		if a.Key == key {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return
		}
	}
}

// Identical reports whether two nodes share the same tag and the same
// attributes, ignoring the id attribute. Repeated records stamped from one
// template usually differ only by id, so they compare identical. Attribute
// order does not matter.
func (n *Node) Identical(other *Node) bool {
	if n == nil || other == nil {
		return false
	}
	if n.Tag != other.Tag {
		return false
	}
	return attrsEqualIgnoringID(n.Attrs, other.Attrs)
}

func attrsEqualIgnoringID(a, b []Attr) bool {
	am := make(map[string]string, len(a))
	for _, attr := range a {
		if attr.Key != "id" {
			am[attr.Key] = attr.Value
		}
	}
	bm := make(map[string]string, len(b))
	for _, attr := range b {
		if attr.Key != "id" {
			bm[attr.Key] = attr.Value
		}
	}
	if len(am) != len(bm) {
		return false
	}
	for k, v := range am {
		if bm[k] != v {
			return false
		}
	}
	return true
}

// IsDescendantOf reports whether n appears strictly below other in the tree.
func (n *Node) IsDescendantOf(other *Node) bool {
	if n == other {
		return false
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p == other {
			return true
		}
	}
	return false
}

// Ancestors returns the node's ancestors from immediate parent to root.
func (n *Node) Ancestors() []*Node {
	var ancestors []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		ancestors = append(ancestors, p)
	}
	return ancestors
}

// CommonAncestor returns the closest node that is an ancestor of both a and
// b, or nil if they do not share a root. A nil result indicates the nodes
// were never merged into one tree, which callers treat as a defect.
func CommonAncestor(a, b *Node) *Node {
	inB := make(map[*Node]bool)
	for _, anc := range b.Ancestors() {
		inB[anc] = true
	}
	for _, anc := range a.Ancestors() {
		if inB[anc] {
			return anc
		}
	}
	return nil
}

// AncestorsBetween returns the chain from n up to, but excluding, boundary,
// ordered so that index 0 is the direct child of boundary and the last
// element is n itself. If n == boundary the result is [n].
func (n *Node) AncestorsBetween(boundary *Node) []*Node {
	chain := []*Node{n}
	for p := n.Parent; p != nil && p != boundary; p = p.Parent {
		chain = append(chain, p)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// ParentTable returns the node itself if it is a table, otherwise its
// nearest table ancestor, or nil.
func (n *Node) ParentTable() *Node {
	if n.Tag == "table" {
		return n
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Tag == "table" {
			return p
		}
	}
	return nil
}

// FirstRows returns a copy of the table with all but the first n row
// elements removed. The receiver is left untouched.
func (n *Node) FirstRows(count int) *Node {
	clone := n.Clone()
	rows := clone.FindAll(func(node *Node) bool { return node.Tag == "tr" })
	for _, row := range rows[min(count, len(rows)):] {
		row.Detach()
	}
	return clone
}

// Detach removes the node from its parent's children.
func (n *Node) Detach() {
	parent := n.Parent
	if parent == nil {
		return
	}
	for i, child := range parent.Children {
		if child == n {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			break
		}
	}
	n.Parent = nil
}

// DistinctChildren returns the element children in document order, keeping
// each child only if no previously kept child is Identical to it.
func (n *Node) DistinctChildren() []*Node {
	var distinct []*Node
	for _, child := range n.Children {
		if child.IsText() {
			continue
		}
		seen := false
		for _, kept := range distinct {
			if child.Identical(kept) {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, child)
		}
	}
	return distinct
}

// Clone returns a deep copy of the subtree rooted at n. The copy is detached
// (its Parent is nil) and shares no nodes with the original.
func (n *Node) Clone() *Node {
	clone := &Node{
		Tag:  n.Tag,
		Text: n.Text,
	}
	if len(n.Attrs) > 0 {
		clone.Attrs = make([]Attr, len(n.Attrs))
		copy(clone.Attrs, n.Attrs)
	}
	for _, child := range n.Children {
		clone.Append(child.Clone())
	}
	return clone
}

// OwnText returns the node's direct text content, trimmed of surrounding
// whitespace. Text from descendant elements is not included.
func (n *Node) OwnText() string {
	if n.IsText() {
		return strings.TrimSpace(n.Text)
	}
	var parts []string
	for _, child := range n.Children {
		if child.IsText() {
			if t := strings.TrimSpace(child.Text); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, " ")
}

// AllText returns the concatenated text of the whole subtree, joined with
// single spaces.
func (n *Node) AllText() string {
	var parts []string
	n.Walk(func(node *Node) {
		if node.IsText() {
			if t := strings.TrimSpace(node.Text); t != "" {
				parts = append(parts, t)
			}
		}
	})
	return strings.Join(parts, " ")
}

// Walk visits every node in the subtree in document (preorder) order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// FindAll returns every node in the subtree, in document order, for which
// pred returns true.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var found []*Node
	n.Walk(func(node *Node) {
		if pred(node) {
			found = append(found, node)
		}
	})
	return found
}

// FindByText returns every element whose own text equals literal exactly
// (after trimming surrounding whitespace; not substring, not
// case-insensitive). Empty literals match nothing.
func (n *Node) FindByText(literal string) []*Node {
	if literal == "" {
		return nil
	}
	return n.FindAll(func(node *Node) bool {
		return !node.IsText() && node.OwnText() == literal
	})
}
