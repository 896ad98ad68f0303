package locdata

import "context"

// SampleRequest describes what the sample oracle should look for.
type SampleRequest struct {
	// Query is the user's description of the data to extract.
	Query string

	// PageText is a flattened text snapshot of the page, one string per
	// text node, with long strings truncated.
	PageText string

	// Feedback is optional guidance from a previous failed attempt.
	Feedback string
}

// SampleOracle produces a small ordered sample of the records the user asked
// for, copied literally from the page text. The first and last records are
// used to anchor the structural search, so the oracle must return at least
// two records for the sample to be usable; fewer means "no relevant data".
type SampleOracle interface {
	GenerateSample(ctx context.Context, req SampleRequest) ([]Record, error)
}
