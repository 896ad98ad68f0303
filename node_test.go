package locdata_test

import (
	"testing"

	"github.com/fwojciec/locdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elem(tag string, attrs ...locdata.Attr) *locdata.Node {
	return locdata.NewElement(tag, attrs...)
}

func attr(key, value string) locdata.Attr {
	return locdata.Attr{Key: key, Value: value}
}

func TestNode_Identical(t *testing.T) {
	t.Parallel()

	t.Run("is reflexive", func(t *testing.T) {
		t.Parallel()

		n := elem("div", attr("class", "row"))
		assert.True(t, n.Identical(n))
	})

	t.Run("is symmetric", func(t *testing.T) {
		t.Parallel()

		a := elem("div", attr("class", "row"))
		b := elem("div", attr("class", "row"))
		assert.True(t, a.Identical(b))
		assert.True(t, b.Identical(a))
	})

	t.Run("ignores the id attribute", func(t *testing.T) {
		t.Parallel()

		a := elem("div", attr("class", "row"), attr("id", "row-1"))
		b := elem("div", attr("class", "row"), attr("id", "row-2"))
		assert.True(t, a.Identical(b))
	})

	t.Run("ignores attribute order", func(t *testing.T) {
		t.Parallel()

		a := elem("div", attr("class", "row"), attr("data-x", "1"))
		b := elem("div", attr("data-x", "1"), attr("class", "row"))
		assert.True(t, a.Identical(b))
	})

	t.Run("differs on any other attribute", func(t *testing.T) {
		t.Parallel()

		a := elem("div", attr("class", "row"))
		b := elem("div", attr("class", "header"))
		assert.False(t, a.Identical(b))
	})

	t.Run("differs on tag name", func(t *testing.T) {
		t.Parallel()

		assert.False(t, elem("div").Identical(elem("span")))
	})

	t.Run("nil nodes are never identical", func(t *testing.T) {
		t.Parallel()

		var nilNode *locdata.Node
		assert.False(t, elem("div").Identical(nilNode))
	})
}

func TestCommonAncestor(t *testing.T) {
	t.Parallel()

	t.Run("finds closest shared ancestor", func(t *testing.T) {
		t.Parallel()

		// root → div#C → div#B → p#A("x"), with p#A2 directly under div#C.
		root := elem("root")
		divC := elem("div", attr("id", "C"))
		divB := elem("div", attr("id", "B"))
		pA := elem("p", attr("id", "A"))
		pA.Append(locdata.NewText("x"))
		pA2 := elem("p", attr("id", "A2"))
		root.Append(divC)
		divC.Append(divB)
		divB.Append(pA)
		divC.Append(pA2)

		assert.Same(t, divC, locdata.CommonAncestor(pA, pA2))
	})

	t.Run("returns nil for unrelated trees", func(t *testing.T) {
		t.Parallel()

		a := elem("p")
		elem("div").Append(a)
		b := elem("p")
		elem("div").Append(b)

		assert.Nil(t, locdata.CommonAncestor(a, b))
	})
}

func TestNode_IsDescendantOf(t *testing.T) {
	t.Parallel()

	root := elem("div")
	child := elem("span")
	grandchild := elem("b")
	root.Append(child)
	child.Append(grandchild)

	assert.True(t, grandchild.IsDescendantOf(root))
	assert.True(t, child.IsDescendantOf(root))
	assert.False(t, root.IsDescendantOf(grandchild))
	assert.False(t, root.IsDescendantOf(root), "a node is not its own descendant")
}

func TestNode_AncestorsBetween(t *testing.T) {
	t.Parallel()

	t.Run("index 0 is the child of the boundary", func(t *testing.T) {
		t.Parallel()

		container := elem("ul")
		item := elem("li")
		span := elem("span")
		container.Append(item)
		item.Append(span)

		chain := span.AncestorsBetween(container)

		require.Len(t, chain, 2)
		assert.Same(t, item, chain[0])
		assert.Same(t, span, chain[1])
	})

	t.Run("node equal to boundary yields itself", func(t *testing.T) {
		t.Parallel()

		n := elem("div")
		chain := n.AncestorsBetween(n)

		require.Len(t, chain, 1)
		assert.Same(t, n, chain[0])
	})
}

func TestNode_ParentTable(t *testing.T) {
	t.Parallel()

	table := elem("table")
	tr := elem("tr")
	td := elem("td")
	table.Append(tr)
	tr.Append(td)

	assert.Same(t, table, td.ParentTable())
	assert.Same(t, table, table.ParentTable(), "a table is its own parent table")
	assert.Nil(t, elem("div").ParentTable())
}

func TestNode_FirstRows(t *testing.T) {
	t.Parallel()

	table := elem("table")
	for i := 0; i < 20; i++ {
		tr := elem("tr")
		td := elem("td")
		td.Append(locdata.NewText("cell"))
		tr.Append(td)
		table.Append(tr)
	}

	truncated := table.FirstRows(15)

	countRows := func(n *locdata.Node) int {
		return len(n.FindAll(func(node *locdata.Node) bool { return node.Tag == "tr" }))
	}
	assert.Equal(t, 15, countRows(truncated))
	assert.Equal(t, 20, countRows(table), "original table is untouched")
}

func TestNode_DistinctChildren(t *testing.T) {
	t.Parallel()

	// Children [p.test, p.test, span, p.different, span] → [p.test, span, p.different].
	container := elem("div")
	first := elem("p", attr("class", "test"))
	container.Append(first)
	container.Append(elem("p", attr("class", "test")))
	firstSpan := elem("span")
	container.Append(firstSpan)
	different := elem("p", attr("class", "different"))
	container.Append(different)
	container.Append(elem("span"))

	distinct := container.DistinctChildren()

	require.Len(t, distinct, 3)
	assert.Same(t, first, distinct[0])
	assert.Same(t, firstSpan, distinct[1])
	assert.Same(t, different, distinct[2])
}

func TestNode_Clone(t *testing.T) {
	t.Parallel()

	original := elem("div", attr("class", "row"))
	child := elem("span")
	child.Append(locdata.NewText("hello"))
	original.Append(child)

	clone := original.Clone()

	require.Len(t, clone.Children, 1)
	assert.Nil(t, clone.Parent)
	assert.NotSame(t, original.Children[0], clone.Children[0])

	// Mutating the clone leaves the original untouched.
	clone.Children[0].Detach()
	assert.Len(t, original.Children, 1)
}

func TestNode_OwnText(t *testing.T) {
	t.Parallel()

	td := elem("td")
	td.Append(locdata.NewText("  Austria  "))
	nested := elem("b")
	nested.Append(locdata.NewText("Vienna"))
	td.Append(nested)

	assert.Equal(t, "Austria", td.OwnText(), "descendant text is excluded")
	assert.Equal(t, "Austria Vienna", td.AllText())
}

func TestNode_FindByText(t *testing.T) {
	t.Parallel()

	root := elem("body")
	td := elem("td")
	td.Append(locdata.NewText("Austria"))
	root.Append(td)
	footer := elem("span")
	footer.Append(locdata.NewText("Austria"))
	root.Append(footer)
	other := elem("td")
	other.Append(locdata.NewText("Austrian Alps"))
	root.Append(other)

	found := root.FindByText("Austria")

	require.Len(t, found, 2, "exact matches only, no substrings")
	assert.Same(t, td, found[0])
	assert.Same(t, footer, found[1])
	assert.Empty(t, root.FindByText(""), "empty literal matches nothing")
}

func TestNode_IsTextTag(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"p", "ul", "ol", "h1", "h6"} {
		assert.True(t, elem(tag).IsTextTag(), tag)
	}
	for _, tag := range []string{"div", "li", "table", "span"} {
		assert.False(t, elem(tag).IsTextTag(), tag)
	}
}

func TestNode_RemoveAttr(t *testing.T) {
	t.Parallel()

	n := elem("div", attr("style", "color: red"), attr("class", "row"))
	n.RemoveAttr("style")

	_, ok := n.Attr("style")
	assert.False(t, ok)
	class, ok := n.Attr("class")
	require.True(t, ok)
	assert.Equal(t, "row", class)
}
