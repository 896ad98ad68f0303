package locdata

import (
	"context"
	"time"
)

// Shape classifies the structural kind of a located region.
type Shape string

// Shape constants for Location.
const (
	// ShapeNotFound means no container could be located; the whole document
	// body is used as a last-resort sample.
	ShapeNotFound Shape = "not_found"

	// ShapeTable is a region inside an HTML table; the sample is a
	// truncated copy of the table.
	ShapeTable Shape = "table"

	// ShapeText is a container of repeated prose blocks (paragraphs,
	// headings, lists); consumers should treat it as running text.
	ShapeText Shape = "text"

	// ShapeFirstItem is a container of structurally identical items; the
	// sample is the first item only.
	ShapeFirstItem Shape = "first_item"

	// ShapeDistinctItems is a container whose children differ; the sample
	// keeps one exemplar of each structurally distinct child.
	ShapeDistinctItems Shape = "distinct_items"

	// ShapeContainer is the unrefined located container, returned on retry
	// attempts after previous refinements failed downstream.
	ShapeContainer Shape = "container"
)

// Candidate is one hypothesis for the data region: the common ancestor of a
// pair of anchor nodes. Proportion is the fraction of known sample leaf
// strings found in the container's text; it is filled in lazily, only when
// needed to rank candidates.
type Candidate struct {
	Container  *Node
	Anchor1    *Node
	Anchor2    *Node
	Proportion float64
}

// Location is the outcome of locating and classifying a data region.
// Sample is the canonical minimal subtree handed to downstream consumers;
// it may be a pruned copy rather than a node of the searched tree.
// SamplePath is set when the sample was persisted.
type Location struct {
	Container  *Node
	Shape      Shape
	Sample     *Node
	Proportion float64
	SamplePath string
}

// DataFinder runs the full location pipeline against a set of raw documents.
type DataFinder interface {
	// Find merges the documents, samples values for the query, locates the
	// data region and persists its canonical sample under name. The attempt
	// number (starting at 0) controls refinement on retries.
	Find(ctx context.Context, docs []string, query, name string, attempt int) (*Location, error)
}

// Region records one located data region for later inspection.
type Region struct {
	ID         string    `json:"id"`
	PageURL    string    `json:"pageUrl"`
	Query      string    `json:"query"`
	Shape      Shape     `json:"shape"`
	Proportion float64   `json:"proportion"`
	SamplePath string    `json:"samplePath"`
	Attempt    int       `json:"attempt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the region contains invalid fields.
func (r *Region) Validate() error {
	if r.PageURL == "" {
		return Errorf(EINVALID, "region page URL required")
	}
	if r.Query == "" {
		return Errorf(EINVALID, "region query required")
	}
	return nil
}

// RegionFilter represents a filter for FindRegions.
type RegionFilter struct {
	ID      *string `json:"id"`
	PageURL *string `json:"pageUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RegionService represents a service for managing located regions.
type RegionService interface {
	// CreateRegion creates a new region record.
	CreateRegion(ctx context.Context, region *Region) error

	// FindRegionByID retrieves a region by ID.
	// Returns ENOTFOUND if the region does not exist.
	FindRegionByID(ctx context.Context, id string) (*Region, error)

	// FindRegions retrieves regions matching the filter, newest first.
	FindRegions(ctx context.Context, filter RegionFilter) ([]*Region, error)

	// DeleteRegion permanently removes a region record.
	// Returns ENOTFOUND if the region does not exist.
	DeleteRegion(ctx context.Context, id string) error
}
