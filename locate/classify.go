package locate

import "github.com/fwojciec/locdata"

// tableSampleRows is how many rows of a located table survive into the
// canonical sample.
const tableSampleRows = 15

// Classify decides the structural shape of a located region and builds its
// canonical, minimal sample. A nil candidate means nothing was located: the
// whole body becomes a last-resort sample. On retry attempts (attempt > 1)
// refinement is skipped and the unrefined container is handed over, since
// previous refinements already failed downstream validation.
func Classify(body *locdata.Node, cand *locdata.Candidate, attempt int) *locdata.Location {
	if cand == nil || cand.Container == nil {
		return &locdata.Location{Container: body, Shape: locdata.ShapeNotFound, Sample: body}
	}

	loc := &locdata.Location{Container: cand.Container, Proportion: cand.Proportion}

	if attempt > 1 {
		loc.Shape = locdata.ShapeContainer
		loc.Sample = cand.Container
		return loc
	}

	if table := cand.Container.ParentTable(); table != nil {
		loc.Container = table
		loc.Shape = locdata.ShapeTable
		loc.Sample = table.FirstRows(tableSampleRows)
		return loc
	}

	if item := firstItem(cand); item != nil {
		if item.IsTextTag() {
			loc.Shape = locdata.ShapeText
			loc.Sample = cand.Container
			return loc
		}
		loc.Shape = locdata.ShapeFirstItem
		loc.Sample = item
		return loc
	}

	loc.Shape = locdata.ShapeDistinctItems
	loc.Sample = distinctSample(cand.Container)
	return loc
}

// firstItem returns the container child holding the first anchor, if the
// children holding both anchors are structurally identical, the signature
// of a repeated list of template items.
func firstItem(cand *locdata.Candidate) *locdata.Node {
	chain1 := cand.Anchor1.AncestorsBetween(cand.Container)
	chain2 := cand.Anchor2.AncestorsBetween(cand.Container)
	if len(chain1) == 0 || len(chain2) == 0 {
		return nil
	}
	if chain1[0].Identical(chain2[0]) {
		return chain1[0]
	}
	return nil
}

// distinctSample builds a pruned copy of the container holding one exemplar
// of each structurally distinct child, with inline styling removed from the
// direct children first.
func distinctSample(container *locdata.Node) *locdata.Node {
	work := container.Clone()
	for _, child := range work.Children {
		if !child.IsText() {
			child.RemoveAttr("style")
		}
	}

	pruned := &locdata.Node{Tag: container.Tag}
	if len(container.Attrs) > 0 {
		pruned.Attrs = make([]locdata.Attr, len(container.Attrs))
		copy(pruned.Attrs, container.Attrs)
	}
	for _, child := range work.DistinctChildren() {
		pruned.Append(child.Clone())
	}
	return pruned
}
