// Package bloom provides a probabilistic membership index over the own-texts
// of a document tree, used to skip full-tree anchor searches for strings
// that cannot be present.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/locdata"
)

const (
	// expectedTexts is the expected number of distinct own-texts for filter sizing.
	expectedTexts = 10000
	// falsePositiveRate is the acceptable false positive rate.
	falsePositiveRate = 0.01
)

// TextIndex answers "might any element in this tree have exactly this own
// text?". False positives are possible; false negatives are not, so a
// negative answer safely skips the tree walk.
type TextIndex struct {
	f *bloom.BloomFilter
}

// NewTextIndex builds an index over every non-empty own-text in the tree.
func NewTextIndex(root *locdata.Node) *TextIndex {
	idx := &TextIndex{
		f: bloom.NewWithEstimates(expectedTexts, falsePositiveRate),
	}
	root.Walk(func(n *locdata.Node) {
		if n.IsText() {
			return
		}
		if text := n.OwnText(); text != "" {
			idx.f.AddString(text)
		}
	})
	return idx
}

// MightContain returns true if some element might have the given own text.
func (i *TextIndex) MightContain(text string) bool {
	return i.f.TestString(text)
}
