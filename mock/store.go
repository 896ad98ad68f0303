package mock

import (
	"context"

	"github.com/fwojciec/locdata"
)

var _ locdata.SampleStore = (*SampleStore)(nil)

// SampleStore is a mock implementation of locdata.SampleStore.
type SampleStore struct {
	SaveSampleFn func(ctx context.Context, name, fragment string) (string, error)
}

func (s *SampleStore) SaveSample(ctx context.Context, name, fragment string) (string, error) {
	return s.SaveSampleFn(ctx, name, fragment)
}
