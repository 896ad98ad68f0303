package mock

import (
	"context"

	"github.com/fwojciec/locdata"
)

var _ locdata.SampleOracle = (*SampleOracle)(nil)

// SampleOracle is a mock implementation of locdata.SampleOracle.
type SampleOracle struct {
	GenerateSampleFn func(ctx context.Context, req locdata.SampleRequest) ([]locdata.Record, error)
}

func (o *SampleOracle) GenerateSample(ctx context.Context, req locdata.SampleRequest) ([]locdata.Record, error) {
	return o.GenerateSampleFn(ctx, req)
}
