package locdata_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/locdata"
	"github.com/stretchr/testify/assert"
)

func TestFlattenRecord(t *testing.T) {
	t.Parallel()

	t.Run("flattens nested maps and sequences", func(t *testing.T) {
		t.Parallel()

		record := map[string]any{
			"a": "one",
			"b": []any{"two", map[string]any{"c": "three"}},
		}

		assert.Equal(t, []string{"one", "two", "three"}, locdata.FlattenRecord(record))
	})

	t.Run("map keys are visited in sorted order", func(t *testing.T) {
		t.Parallel()

		record := map[string]any{
			"country": "Austria",
			"capital": "Vienna",
		}

		assert.Equal(t, []string{"Vienna", "Austria"}, locdata.FlattenRecord(record))
	})

	t.Run("numbers become strings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"42"}, locdata.FlattenRecord(json.Number("42")))
		assert.Equal(t, []string{"3.5"}, locdata.FlattenRecord(3.5))
		assert.Equal(t, []string{"7"}, locdata.FlattenRecord(7))
	})

	t.Run("booleans are excluded", func(t *testing.T) {
		t.Parallel()

		record := map[string]any{"active": true, "name": "x"}

		assert.Equal(t, []string{"x"}, locdata.FlattenRecord(record))
	})

	t.Run("empty record yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, locdata.FlattenRecord(map[string]any{}))
		assert.Empty(t, locdata.FlattenRecord(nil))
	})
}

func TestFlattenRecords(t *testing.T) {
	t.Parallel()

	records := []locdata.Record{
		map[string]any{"country": "Austria"},
		map[string]any{"country": "Austria", "capital": "Vienna"},
		map[string]any{"country": "Sweden"},
	}

	pooled := locdata.FlattenRecords(records)

	assert.Equal(t, []string{"Austria", "Vienna", "Sweden"}, pooled,
		"first-seen order, duplicates dropped")
}
