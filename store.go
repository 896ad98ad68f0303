package locdata

import "context"

// SampleStore persists canonical region samples for the downstream
// extraction-script generator. The fragment is a serialized HTML subtree.
type SampleStore interface {
	// SaveSample writes the fragment under the given name and returns the
	// path it was stored at.
	SaveSample(ctx context.Context, name, fragment string) (string, error)
}
