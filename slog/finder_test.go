package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/locdata"
	"github.com/fwojciec/locdata/mock"
	locslog "github.com/fwojciec/locdata/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFinder_Find(t *testing.T) {
	t.Parallel()

	t.Run("logs shape and proportion on success", func(t *testing.T) {
		t.Parallel()

		next := &mock.DataFinder{
			FindFn: func(ctx context.Context, docs []string, query, name string, attempt int) (*locdata.Location, error) {
				return &locdata.Location{Shape: locdata.ShapeTable, Proportion: 0.9}, nil
			},
		}

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		finder := locslog.NewLoggingFinder(next, logger)
		loc, err := finder.Find(context.Background(), []string{"<html></html>"}, "countries", "data0", 1)

		require.NoError(t, err)
		assert.Equal(t, locdata.ShapeTable, loc.Shape)

		out := buf.String()
		assert.Contains(t, out, "data location")
		assert.Contains(t, out, "query=countries")
		assert.Contains(t, out, "attempt=1")
		assert.Contains(t, out, "shape=table")
		assert.Contains(t, out, "proportion=0.9")
		assert.Contains(t, out, "duration=")
	})

	t.Run("logs errors and passes them through", func(t *testing.T) {
		t.Parallel()

		next := &mock.DataFinder{
			FindFn: func(ctx context.Context, docs []string, query, name string, attempt int) (*locdata.Location, error) {
				return nil, locdata.Errorf(locdata.EINTERNAL, "model unavailable")
			},
		}

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		finder := locslog.NewLoggingFinder(next, logger)
		_, err := finder.Find(context.Background(), []string{"<html></html>"}, "countries", "data0", 0)

		require.Error(t, err)
		assert.Equal(t, locdata.EINTERNAL, locdata.ErrorCode(err))
		assert.Contains(t, buf.String(), "data location failed")
		assert.Contains(t, buf.String(), "model unavailable")
	})
}
