package locate

import (
	"context"

	"github.com/fwojciec/locdata"
	"github.com/fwojciec/locdata/html"
)

// Ensure Finder implements locdata.DataFinder at compile time.
var _ locdata.DataFinder = (*Finder)(nil)

// Finder runs the full location pipeline: merge the fetched documents into
// one tree, snapshot the page text, ask the sample oracle for boundary
// records, locate the container, classify its shape, and persist the
// canonical sample.
type Finder struct {
	oracle  locdata.SampleOracle
	snap    locdata.Snapshotter
	store   locdata.SampleStore
	locator *Locator

	feedback string
}

// NewFinder creates a Finder. The store may be nil, in which case samples
// are not persisted.
func NewFinder(oracle locdata.SampleOracle, snap locdata.Snapshotter, store locdata.SampleStore, locator *Locator) *Finder {
	return &Finder{oracle: oracle, snap: snap, store: store, locator: locator}
}

// SetFeedback threads guidance from a failed downstream attempt into the
// next oracle request.
func (f *Finder) SetFeedback(feedback string) {
	f.feedback = feedback
}

// Find locates the data region described by query across the given raw
// documents (main page first, then embedded frames) and persists the chosen
// sample under name. An unusable oracle sample or an unlocatable region
// yields a ShapeNotFound location with the whole body as sample, never an
// error; errors are reserved for oracle transport failures, malformed
// documents and internal defects.
func (f *Finder) Find(ctx context.Context, docs []string, query, name string, attempt int) (*locdata.Location, error) {
	if len(docs) == 0 {
		return nil, locdata.Errorf(locdata.EINVALID, "at least one document required")
	}
	if query == "" {
		return nil, locdata.Errorf(locdata.EINVALID, "query required")
	}

	merged, err := html.Merge(docs)
	if err != nil {
		return nil, err
	}
	body := html.Body(merged)
	if body == nil {
		return nil, locdata.Errorf(locdata.EINTERNAL, "merged document has no body")
	}

	pageText, err := f.snap.Snapshot(docs)
	if err != nil {
		return nil, err
	}

	records, err := f.oracle.GenerateSample(ctx, locdata.SampleRequest{
		Query:    query,
		PageText: pageText,
		Feedback: f.feedback,
	})
	if err != nil {
		return nil, err
	}

	var cand *locdata.Candidate
	if len(records) >= 2 {
		c, err := f.locator.Locate(body, records)
		if err != nil && locdata.ErrorCode(err) != locdata.ENOTFOUND {
			return nil, err
		}
		cand = c
	}

	loc := Classify(body, cand, attempt)

	if f.store != nil {
		path, err := f.store.SaveSample(ctx, name, html.Render(loc.Sample))
		if err != nil {
			return nil, err
		}
		loc.SamplePath = path
	}

	return loc, nil
}
