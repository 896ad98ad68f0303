// Package locate implements the structural data-region locator: given a
// merged document tree and a small sample of records known to appear on the
// page, it finds the smallest subtree containing the full data region and
// classifies its shape.
package locate

import (
	"math/rand"
	"strings"

	"github.com/fwojciec/locdata"
	"github.com/fwojciec/locdata/bloom"
)

const (
	// maxPairs caps the anchor cross-product. Above the cap a uniform
	// random sample of pairs is evaluated instead, trading exhaustiveness
	// for bounded cost; later filtering only needs a good candidate, not
	// all candidates.
	maxPairs = 1000

	// coverageThreshold is the minimum fraction of pooled sample strings a
	// candidate container must contain.
	coverageThreshold = 0.35
)

// Locator finds the container of a repeated data region. It keeps a running
// pool of distinct sample leaf strings across Locate calls, so repeated
// attempts on the same page score coverage against everything seen so far.
//
// The random source only comes into play above the cross-product cap; tests
// seed it for determinism.
type Locator struct {
	rng  *rand.Rand
	pool []string
	seen map[string]bool
}

// NewLocator creates a Locator with the given random seed.
func NewLocator(seed int64) *Locator {
	return &Locator{
		rng:  rand.New(rand.NewSource(seed)),
		seen: make(map[string]bool),
	}
}

// Pool returns the leaf strings accumulated across Locate calls so far.
func (l *Locator) Pool() []string {
	pool := make([]string, len(l.pool))
	copy(pool, l.pool)
	return pool
}

func (l *Locator) addToPool(leaves []string) {
	for _, leaf := range leaves {
		if !l.seen[leaf] {
			l.seen[leaf] = true
			l.pool = append(l.pool, leaf)
		}
	}
}

// Locate finds the container holding the data described by the sample
// records. The first and last records anchor the search. Returns ENOTFOUND
// when the sample is unusable, no anchors match, or filtering eliminates
// every candidate; EINTERNAL when anchor nodes turn out not to share a root,
// which indicates a tree-construction defect.
func (l *Locator) Locate(body *locdata.Node, records []locdata.Record) (*locdata.Candidate, error) {
	if body == nil {
		return nil, locdata.Errorf(locdata.EINVALID, "document body required")
	}
	if len(records) < 2 {
		return nil, locdata.Errorf(locdata.ENOTFOUND, "sample must contain at least two records")
	}

	l.addToPool(locdata.FlattenRecords(records))

	idx := bloom.NewTextIndex(body)
	anchors1 := findAnchors(body, idx, records[0])
	anchors2 := findAnchors(body, idx, records[len(records)-1])
	if len(anchors1) == 0 || len(anchors2) == 0 {
		return nil, locdata.Errorf(locdata.ENOTFOUND, "no anchor matches for boundary records")
	}

	candidates := make([]*locdata.Candidate, 0, min(len(anchors1)*len(anchors2), maxPairs))
	for _, pair := range l.samplePairs(anchors1, anchors2) {
		container := locdata.CommonAncestor(pair[0], pair[1])
		if container == nil {
			return nil, locdata.Errorf(locdata.EINTERNAL, "anchor nodes share no root")
		}
		candidates = append(candidates, &locdata.Candidate{
			Container: container,
			Anchor1:   pair[0],
			Anchor2:   pair[1],
		})
	}

	candidates = UniqueContainers(candidates)
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	candidates = CoverageFilter(candidates, l.pool)
	if len(candidates) == 0 {
		return nil, locdata.Errorf(locdata.ENOTFOUND, "no candidate container covers enough of the sample")
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	candidates = DropWrappers(candidates)
	if len(candidates) == 0 {
		return nil, locdata.Errorf(locdata.ENOTFOUND, "every candidate container was a wrapper")
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Proportion > best.Proportion {
			best = c
		}
	}
	return best, nil
}

// findAnchors returns every element whose own text equals one of the
// record's leaf strings, in document order, without duplicates. Leaf strings
// ending in an ellipsis marker have their trailing periods stripped, to
// tolerate truncation introduced when page text was shortened for the
// sample oracle.
func findAnchors(body *locdata.Node, idx *bloom.TextIndex, record locdata.Record) []*locdata.Node {
	var anchors []*locdata.Node
	seen := make(map[*locdata.Node]bool)
	for _, leaf := range locdata.FlattenRecord(record) {
		if strings.HasSuffix(leaf, "...") {
			leaf = strings.TrimRight(leaf, ".")
		}
		if leaf == "" || !idx.MightContain(leaf) {
			continue
		}
		for _, node := range body.FindByText(leaf) {
			if !seen[node] {
				seen[node] = true
				anchors = append(anchors, node)
			}
		}
	}
	return anchors
}

// samplePairs returns the cartesian product of the two anchor sets, capped
// at maxPairs by a uniform random sample without replacement.
func (l *Locator) samplePairs(anchors1, anchors2 []*locdata.Node) [][2]*locdata.Node {
	total := len(anchors1) * len(anchors2)
	if total <= maxPairs {
		pairs := make([][2]*locdata.Node, 0, total)
		for _, a1 := range anchors1 {
			for _, a2 := range anchors2 {
				pairs = append(pairs, [2]*locdata.Node{a1, a2})
			}
		}
		return pairs
	}

	pairs := make([][2]*locdata.Node, 0, maxPairs)
	for _, i := range l.rng.Perm(total)[:maxPairs] {
		pairs = append(pairs, [2]*locdata.Node{anchors1[i/len(anchors2)], anchors2[i%len(anchors2)]})
	}
	return pairs
}

// UniqueContainers keeps one candidate per distinct container node (node
// identity, not structural identity), preserving discovery order.
func UniqueContainers(candidates []*locdata.Candidate) []*locdata.Candidate {
	var unique []*locdata.Candidate
	seen := make(map[*locdata.Node]bool)
	for _, c := range candidates {
		if !seen[c.Container] {
			seen[c.Container] = true
			unique = append(unique, c)
		}
	}
	return unique
}

// CoverageFilter fills in each candidate's proportion, the fraction of
// pooled sample strings found case-insensitively in the container's text,
// and keeps candidates above the coverage threshold.
func CoverageFilter(candidates []*locdata.Candidate, pool []string) []*locdata.Candidate {
	if len(pool) == 0 {
		return nil
	}
	var kept []*locdata.Candidate
	for _, c := range candidates {
		text := strings.ToLower(c.Container.AllText())
		found := 0
		for _, s := range pool {
			if strings.Contains(text, strings.ToLower(s)) {
				found++
			}
		}
		c.Proportion = float64(found) / float64(len(pool))
		if c.Proportion > coverageThreshold {
			kept = append(kept, c)
		}
	}
	return kept
}

// DropWrappers removes any candidate whose container merely wraps another
// surviving candidate with exactly equal proportion: the outer container is
// redundant once an equally-scoring inner one exists.
func DropWrappers(candidates []*locdata.Candidate) []*locdata.Candidate {
	var kept []*locdata.Candidate
	for _, a := range candidates {
		wrapper := false
		for _, b := range candidates {
			if a == b || a.Proportion != b.Proportion {
				continue
			}
			if b.Container.IsDescendantOf(a.Container) {
				wrapper = true
				break
			}
		}
		if !wrapper {
			kept = append(kept, a)
		}
	}
	return kept
}
