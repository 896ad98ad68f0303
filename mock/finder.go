package mock

import (
	"context"

	"github.com/fwojciec/locdata"
)

var _ locdata.DataFinder = (*DataFinder)(nil)

// DataFinder is a mock implementation of locdata.DataFinder.
type DataFinder struct {
	FindFn func(ctx context.Context, docs []string, query, name string, attempt int) (*locdata.Location, error)
}

func (f *DataFinder) Find(ctx context.Context, docs []string, query, name string, attempt int) (*locdata.Location, error) {
	return f.FindFn(ctx, docs, query, name, attempt)
}
