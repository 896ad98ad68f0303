package locdata

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Record is one structured item produced by the sample oracle: a nested
// mapping/sequence of scalar leaves. Records arrive from an external model
// and are treated as untrusted; malformed shapes simply flatten to nothing.
type Record any

// FlattenRecord returns the record's leaf values as strings, in a
// deterministic order: map keys are visited sorted, sequences in order.
// Strings and numbers are leaves; booleans are excluded since they are
// rarely literal page text.
func FlattenRecord(record Record) []string {
	var leaves []string
	flattenValue(record, &leaves)
	return leaves
}

func flattenValue(v any, leaves *[]string) {
	switch val := v.(type) {
	case string:
		*leaves = append(*leaves, val)
	case json.Number:
		*leaves = append(*leaves, val.String())
	case float64:
		*leaves = append(*leaves, strconv.FormatFloat(val, 'f', -1, 64))
	case int:
		*leaves = append(*leaves, strconv.Itoa(val))
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenValue(val[k], leaves)
		}
	case []any:
		for _, item := range val {
			flattenValue(item, leaves)
		}
	}
}

// FlattenRecords flattens every record and pools the resulting leaf strings,
// keeping first-seen order and dropping duplicates.
func FlattenRecords(records []Record) []string {
	var pooled []string
	seen := make(map[string]bool)
	for _, record := range records {
		for _, leaf := range FlattenRecord(record) {
			if !seen[leaf] {
				seen[leaf] = true
				pooled = append(pooled, leaf)
			}
		}
	}
	return pooled
}
